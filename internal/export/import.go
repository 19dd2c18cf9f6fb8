package export

import (
	"context"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/log"
)

// WriteFunc writes a single rendered task.
type WriteFunc func(ctx context.Context, t model.TidyTask, e Entry) error

// ImportEach renders and writes every task, skipping tasks that fail.
// Cancellation stops the loop. Any failure yields a *PartialFailureError.
func ImportEach(ctx context.Context, l log.Logger, tasks []model.TidyTask, write WriteFunc) (int, error) {
	var (
		imported int
		failed   []string
		lastErr  error
	)
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			for _, rest := range tasks[i:] {
				failed = append(failed, rest.ID)
			}
			lastErr = err
			break
		}
		if err := write(ctx, t, NewEntry(t)); err != nil {
			l.Errorf(ctx, "export: task %s failed: %v", t.ID, err)
			failed = append(failed, t.ID)
			lastErr = err
			continue
		}
		imported++
	}

	if len(failed) > 0 {
		return imported, &PartialFailureError{
			Imported:  imported,
			Attempted: len(tasks),
			FailedIDs: failed,
			Err:       lastErr,
		}
	}
	l.Infof(ctx, "export_completed count=%d", imported)
	return imported, nil
}
