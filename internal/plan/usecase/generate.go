package usecase

import (
	"context"
	"time"

	"tidy-planner/internal/compose"
	"tidy-planner/internal/enrich"
	"tidy-planner/internal/intent"
	"tidy-planner/internal/locale"
	"tidy-planner/internal/merge"
	"tidy-planner/internal/model"
	"tidy-planner/internal/plan"
	"tidy-planner/internal/prompt"
	"tidy-planner/internal/remote"
	"tidy-planner/internal/schedule"
	"tidy-planner/pkg/datemath"
)

const fallbackGoalHorizon = 14 * 24 * time.Hour

func (uc *implUseCase) Generate(ctx context.Context, input plan.GenerateInput) (plan.GenerateOutput, error) {
	settings := uc.settings.Snapshot()

	language := uc.preferredLanguage
	if input.PreferredLanguage != "" {
		language = input.PreferredLanguage
	}
	guide := locale.NewGuide(settings.Region, language)
	scheduler := schedule.New(uc.goal(ctx, settings), settings)

	raw, notice, err := uc.detect(ctx, input, settings, guide)
	if err != nil {
		return plan.GenerateOutput{}, err
	}

	items, stats := uc.normalizer.Normalize(ctx, raw)
	if stats.AllDropped() {
		notice = guide.AllDroppedNotice(stats.Raw)
	}
	filtered := intent.FilterFor(items, settings)

	composer := compose.New(guide, scheduler, settings.Purpose)
	local, blueprints := composer.Compose(filtered, stats.Raw)

	out := plan.GenerateOutput{
		Result:    model.PlanResult{Plan: local, Source: model.LocalSource(), Notice: notice},
		Detection: stats,
	}

	reason, ok := enrich.Eligibility{
		FeatureEnabled: uc.enrichmentEnabled,
		HasAPIKey:      uc.enricher != nil,
		Consent:        settings.LLM.Consent,
		AllowNetwork:   input.AllowNetwork,
		ItemCount:      len(blueprints),
	}.Check()
	if !ok {
		uc.l.Infof(ctx, "enrichment_skipped reason=%s", reason)
		out.SkipReason = reason
		return uc.finish(ctx, out, composer, input, stats.Raw), nil
	}

	prompts, err := prompt.Build(settings, guide, blueprints)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Generate: prompt.Build: %v", err)
		return uc.finish(ctx, out, composer, input, stats.Raw), nil
	}

	res, err := uc.enricher.Enrich(ctx, remote.Request{
		Prompts:   prompts,
		Scheduler: scheduler,
		Timeout:   time.Duration(settings.LLM.TimeoutSec) * time.Second,
	})
	if err != nil {
		return plan.GenerateOutput{}, err
	}
	out.Attempts = res.Attempts

	switch res.Outcome {
	case enrich.OutcomeSuccess:
		merged := merge.Validate(merge.Merge(res.Tasks, local.Tasks))
		if len(merged) > 0 {
			out.Result.Plan = composer.Plan(merged)
			out.Result.Source = model.RemoteSource(res.RequestID)
		}
	case enrich.OutcomeRateLimited:
		out.Result.Source = model.RateLimitedSource()
		out.Result.Notice = guide.RateLimitedNotice()
	default:
		uc.l.Warnf(ctx, "plan.usecase.Generate: enrichment failed, using local plan: %v", res.Err)
	}

	return uc.finish(ctx, out, composer, input, stats.Raw), nil
}

// finish validates the plan, guarantees at least one task and stamps the photo id.
func (uc *implUseCase) finish(ctx context.Context, out plan.GenerateOutput, composer *compose.Composer, input plan.GenerateInput, rawCount int) plan.GenerateOutput {
	tasks := merge.Validate(out.Result.Plan.Tasks)
	if len(tasks) == 0 {
		tasks = []model.TidyTask{composer.FallbackTask(rawCount)}
	}
	if input.PhotoAssetID != "" {
		for i := range tasks {
			tasks[i].PhotoAssetID = input.PhotoAssetID
		}
	}
	out.Result.Plan.Tasks = tasks

	uc.l.Infof(ctx, "plan_generated source=%s tasks=%d raw=%d dropped=%d",
		out.Result.Source.Kind, len(tasks), out.Detection.Raw, out.Detection.Dropped)
	return out
}

// goal parses the settings goal date, defaulting to two weeks out.
func (uc *implUseCase) goal(ctx context.Context, settings model.IntentSettings) time.Time {
	goal, err := time.Parse(datemath.ISOLayout, settings.GoalDateISO)
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.goal: invalid goal date %q: %v", settings.GoalDateISO, err)
		return uc.now().Add(fallbackGoalHorizon)
	}
	return goal
}
