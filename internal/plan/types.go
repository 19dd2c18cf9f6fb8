package plan

import (
	"tidy-planner/internal/detection"
	"tidy-planner/internal/enrich"
	"tidy-planner/internal/model"
)

// --- UseCase Inputs ---

// GenerateInput carries either a photo for the remote detector or detections
// that were already produced by the caller. Detections win when both are set.
type GenerateInput struct {
	Image        *detection.Image
	Detections   *model.DetectionResult
	AllowNetwork bool
	// PreferredLanguage overrides the configured UI language, e.g. "ja".
	PreferredLanguage string
	PhotoAssetID      string
}

type ExportInput struct {
	Tasks []model.TidyTask
	// SelectedIDs limits the export. Empty exports every task.
	SelectedIDs []string
	// ListName defaults to the reminders list from settings.
	ListName string
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Result     model.PlanResult
	SkipReason enrich.SkipReason
	Detection  detection.Stats
	Attempts   int
}

type ExportOutput struct {
	ListID    string
	ListName  string
	Imported  int
	Attempted int
	FailedIDs []string
}
