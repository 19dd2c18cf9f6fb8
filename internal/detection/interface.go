package detection

import (
	"context"

	"tidy-planner/internal/model"
)

// Image is an encoded photo handed to a detector.
type Image struct {
	Data     []byte
	MIMEType string
}

// Detector finds items in a photo. Implementations may be local or remote.
type Detector interface {
	Detect(ctx context.Context, img Image, settings model.IntentSettings) (model.DetectionResult, error)
}
