package http

import (
	"tidy-planner/internal/detection"
	"tidy-planner/internal/model"
	"tidy-planner/internal/plan"
)

// --- Request DTOs ---

type rawDetectionReq struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"`
}

type frameReq struct {
	Width  float64 `json:"width"  binding:"gte=0"`
	Height float64 `json:"height" binding:"gte=0"`
}

type generateReq struct {
	// Image is the base64-encoded photo.
	Image        []byte            `json:"image"`
	MIMEType     string            `json:"mime_type"`
	Detections   []rawDetectionReq `json:"detections"`
	Frame        frameReq          `json:"frame"`
	Units        string            `json:"units"`
	AllowNetwork bool              `json:"allow_network"`
	Language     string            `json:"language"     binding:"max=35"`
	PhotoAssetID string            `json:"photo_asset_id" binding:"max=255"`
}

func (r generateReq) validate() error {
	if len(r.Image) == 0 && r.Detections == nil {
		return errMissingInput
	}
	if len(r.Image) > 0 && r.MIMEType == "" {
		return errMissingMIME
	}
	switch model.BoxUnits(r.Units) {
	case "", model.BoxUnitsNormalized, model.BoxUnitsPixels:
	default:
		return errInvalidUnits
	}
	return nil
}

func (r generateReq) toInput() plan.GenerateInput {
	in := plan.GenerateInput{
		AllowNetwork:      r.AllowNetwork,
		PreferredLanguage: r.Language,
		PhotoAssetID:      r.PhotoAssetID,
	}
	if len(r.Image) > 0 {
		in.Image = &detection.Image{Data: r.Image, MIMEType: r.MIMEType}
	}
	if r.Detections != nil {
		units := model.BoxUnits(r.Units)
		if units == "" {
			units = model.BoxUnitsNormalized
		}
		items := make([]model.RawDetection, len(r.Detections))
		for i, d := range r.Detections {
			items[i] = model.RawDetection{
				ID:         d.ID,
				Label:      d.Label,
				Confidence: d.Confidence,
				BBox:       d.BBox,
			}
		}
		in.Detections = &model.DetectionResult{
			Items: items,
			Frame: model.Frame{Width: r.Frame.Width, Height: r.Frame.Height},
			Units: units,
		}
	}
	return in
}

// ---

type exportReq struct {
	Tasks       []model.TidyTask `json:"tasks"`
	SelectedIDs []string         `json:"selected_ids"`
	ListName    string           `json:"list_name" binding:"max=255"`
}

func (r exportReq) validate() error {
	if len(r.Tasks) == 0 {
		return errMissingTasks
	}
	for _, t := range r.Tasks {
		if !t.IsValid() {
			return errInvalidTaskID
		}
	}
	return nil
}

func (r exportReq) toInput() plan.ExportInput {
	return plan.ExportInput{
		Tasks:       r.Tasks,
		SelectedIDs: r.SelectedIDs,
		ListName:    r.ListName,
	}
}

// --- Response DTOs ---

type detectionStatsResp struct {
	Raw        int `json:"raw"`
	Normalized int `json:"normalized"`
	Dropped    int `json:"dropped"`
}

type generateResp struct {
	Plan       model.Plan         `json:"plan"`
	Source     model.PlanSource   `json:"source"`
	Notice     string             `json:"notice,omitempty"`
	SkipReason string             `json:"skip_reason,omitempty"`
	Detection  detectionStatsResp `json:"detection"`
	Attempts   int                `json:"attempts"`
}

func (h *handler) newGenerateResp(out plan.GenerateOutput) generateResp {
	return generateResp{
		Plan:       out.Result.Plan,
		Source:     out.Result.Source,
		Notice:     out.Result.Notice,
		SkipReason: string(out.SkipReason),
		Detection: detectionStatsResp{
			Raw:        out.Detection.Raw,
			Normalized: out.Detection.Normalized,
			Dropped:    out.Detection.Dropped,
		},
		Attempts: out.Attempts,
	}
}

type exportResp struct {
	ListID    string   `json:"list_id"`
	ListName  string   `json:"list_name"`
	Imported  int      `json:"imported"`
	Attempted int      `json:"attempted"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}

func (h *handler) newExportResp(out plan.ExportOutput) exportResp {
	return exportResp{
		ListID:    out.ListID,
		ListName:  out.ListName,
		Imported:  out.Imported,
		Attempted: out.Attempted,
		FailedIDs: out.FailedIDs,
	}
}
