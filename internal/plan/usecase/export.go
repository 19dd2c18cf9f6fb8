package usecase

import (
	"context"
	"errors"
	"strings"

	"tidy-planner/internal/export"
	"tidy-planner/internal/merge"
	"tidy-planner/internal/model"
	"tidy-planner/internal/plan"
)

func (uc *implUseCase) Export(ctx context.Context, input plan.ExportInput) (plan.ExportOutput, error) {
	if uc.sink == nil {
		return plan.ExportOutput{}, plan.ErrExportDisabled
	}

	tasks := selectTasks(merge.Validate(input.Tasks), input.SelectedIDs)
	if len(tasks) == 0 {
		return plan.ExportOutput{}, plan.ErrNoTasksSelected
	}

	listName := strings.TrimSpace(input.ListName)
	if listName == "" {
		listName = uc.settings.Snapshot().RemindersList
	}

	listID, err := uc.sink.EnsureList(ctx, listName)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Export: EnsureList %q: %v", listName, err)
		return plan.ExportOutput{}, err
	}

	out := plan.ExportOutput{ListID: listID, ListName: listName, Attempted: len(tasks)}
	imported, err := uc.sink.Import(ctx, tasks, listName)
	out.Imported = imported

	var partial *export.PartialFailureError
	if errors.As(err, &partial) {
		uc.l.Warnf(ctx, "plan.usecase.Export: %v", partial)
		out.FailedIDs = partial.FailedIDs
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}
		return out, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Export: Import: %v", err)
		return out, err
	}
	return out, nil
}

// selectTasks keeps tasks whose id is in ids, in plan order. Empty ids selects all.
func selectTasks(tasks []model.TidyTask, ids []string) []model.TidyTask {
	if len(ids) == 0 {
		return tasks
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]model.TidyTask, 0, len(ids))
	for _, t := range tasks {
		if _, ok := wanted[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}
