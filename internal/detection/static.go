package detection

import (
	"context"

	"tidy-planner/internal/model"
)

// Static is a Detector that replays detections produced elsewhere,
// typically by an on-device detector running in the client.
type Static struct {
	Items []model.RawDetection
	Frame model.Frame
	Units model.BoxUnits
}

// Detect ignores the image and returns the stored detections.
func (s Static) Detect(ctx context.Context, _ Image, _ model.IntentSettings) (model.DetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return model.DetectionResult{}, err
	}
	units := s.Units
	if units == "" {
		units = model.BoxUnitsNormalized
	}
	return model.DetectionResult{Items: s.Items, Frame: s.Frame, Units: units}, nil
}
