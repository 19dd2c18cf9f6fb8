package usecase

import (
	"context"
	"errors"

	"tidy-planner/internal/detection"
	"tidy-planner/internal/locale"
	"tidy-planner/internal/model"
	"tidy-planner/internal/plan"
	"tidy-planner/pkg/openai"
)

// detect picks the detector for this run and converts detector failures into
// an empty fallback result plus a notice. Only cancellation is returned.
func (uc *implUseCase) detect(ctx context.Context, input plan.GenerateInput, settings model.IntentSettings, guide locale.Guide) (model.DetectionResult, string, error) {
	if input.Detections != nil {
		static := detection.Static{
			Items: input.Detections.Items,
			Frame: input.Detections.Frame,
			Units: input.Detections.Units,
		}
		result, err := static.Detect(ctx, detection.Image{}, settings)
		return result, "", err
	}
	if input.Image == nil {
		return model.DetectionResult{UsedFallback: true}, "", nil
	}

	switch {
	case !input.AllowNetwork || !settings.LLM.Consent:
		return fallbackResult(guide.DetectionOffNotice()), guide.DetectionOffNotice(), nil
	case uc.detector == nil:
		return fallbackResult(guide.MissingKeyNotice()), guide.MissingKeyNotice(), nil
	}

	result, err := uc.detector.Detect(ctx, *input.Image, settings)
	if err == nil {
		uc.l.Infof(ctx, "detection_completed raw=%d processing_ms=%d", len(result.Items), result.ProcessingTimeMs)
		return result, "", nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.DetectionResult{}, "", ctxErr
	}

	uc.l.Warnf(ctx, "plan.usecase.detect: %v", err)
	var cooling *detection.CoolingDownError
	switch {
	case errors.As(err, &cooling):
		return fallbackResult(err.Error()), guide.CooldownNotice(cooling.Remaining), nil
	case errors.Is(err, openai.ErrRateLimited) && uc.cooldown != nil:
		return fallbackResult(err.Error()), guide.CooldownNotice(uc.cooldown.Remaining()), nil
	default:
		return fallbackResult(err.Error()), guide.DetectionFailedNotice(), nil
	}
}

func fallbackResult(message string) model.DetectionResult {
	return model.DetectionResult{UsedFallback: true, ErrorMessage: message}
}
