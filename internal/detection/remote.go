package detection

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

const (
	remoteMaxItems      = 8
	remoteSchemaName    = "remote_detection"
	minDetectionTokens  = 1000
	tokensPerDetection  = 160
	detectionSystemText = `You are an object detector for household disposal planning. Respond with valid JSON matching: {"items":[{"id":"str","label":"str","bbox":[x,y,w,h],"confidence":0..1}]}. Coordinates must be normalized 0-1. Reply with JSON only.`
	detectionUserText   = "Detect major household items (furniture/appliances)."
)

var detectionSchema = mustJSON(map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"items": map[string]any{
			"type":     "array",
			"maxItems": remoteMaxItems,
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"label": map[string]any{"type": "string"},
					"bbox": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "number"},
						"minItems": 4,
						"maxItems": 4,
					},
					"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				},
				"required": []string{"id", "label", "bbox", "confidence"},
			},
		},
	},
	"required": []string{"items"},
})

type remoteReply struct {
	Items []model.RawDetection `json:"items"`
}

// RemoteConfig configures a vision-model backed detector.
type RemoteConfig struct {
	Client          openai.IOpenAI
	Model           string
	ReasoningEffort string
	Cooldown        *Cooldown
}

// Remote detects items by asking a vision-capable model for bounding boxes.
type Remote struct {
	l        log.Logger
	client   openai.IOpenAI
	model    string
	effort   string
	cooldown *Cooldown
}

// NewRemote creates a remote detector.
func NewRemote(l log.Logger, cfg RemoteConfig) *Remote {
	if cfg.Cooldown == nil {
		cfg.Cooldown = NewCooldown(nil)
	}
	if cfg.ReasoningEffort == "" {
		cfg.ReasoningEffort = openai.DefaultReasoningEffort
	}
	return &Remote{
		l:        l,
		client:   cfg.Client,
		model:    cfg.Model,
		effort:   cfg.ReasoningEffort,
		cooldown: cfg.Cooldown,
	}
}

// Detect uploads img and returns the model's detections in normalized units.
func (r *Remote) Detect(ctx context.Context, img Image, settings model.IntentSettings) (model.DetectionResult, error) {
	if remaining := r.cooldown.Remaining(); remaining > 0 {
		r.l.Warnf(ctx, "detection.Remote.Detect: cooling down, remaining=%s", remaining)
		return model.DetectionResult{}, &CoolingDownError{Remaining: remaining}
	}
	if len(img.Data) == 0 {
		return model.DetectionResult{}, ErrImageEncoding
	}

	start := time.Now()
	resp, err := r.client.CreateResponse(ctx, r.buildRequest(img, settings))
	if err != nil {
		if rl, ok := openai.AsRateLimit(err); ok {
			wait := r.cooldown.Register(rl.RetryAfter, rl.HasRetryAfter)
			r.l.Warnf(ctx, "detection.Remote.Detect: rate limited, cooldown=%s", wait)
		}
		return model.DetectionResult{}, err
	}

	var reply remoteReply
	report, err := resp.Envelope.Decode(&reply)
	if len(report.UnhandledTypes) > 0 {
		r.l.Infof(ctx, "detection.Remote.Detect: unhandled content types=%v", report.UnhandledTypes)
	}
	if err != nil {
		r.l.Errorf(ctx, "detection.Remote.Detect: request_id=%s sample=%q: %v", resp.RequestID, report.TextSample, err)
		return model.DetectionResult{}, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	items := reply.Items
	if len(items) > remoteMaxItems {
		items = items[:remoteMaxItems]
	}
	r.l.Infof(ctx, "detection.Remote.Detect: request_id=%s raw=%d", resp.RequestID, len(items))

	return model.DetectionResult{
		Items:            items,
		Frame:            frameOf(img.Data),
		Units:            model.BoxUnitsNormalized,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		UsedFallback:     len(items) == 0,
	}, nil
}

func (r *Remote) buildRequest(img Image, settings model.IntentSettings) *openai.Request {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data))

	return &openai.Request{
		Model: r.model,
		Input: []openai.Message{
			openai.TextMessage(openai.RoleSystem, detectionSystemText),
			{
				Role: openai.RoleUser,
				Content: []openai.InputContent{
					{Type: openai.InputText, Text: detectionUserText},
					{Type: openai.InputImage, ImageURL: dataURL},
				},
			},
		},
		Text:            openai.JSONSchemaFormat(remoteSchemaName, detectionSchema),
		MaxOutputTokens: max(minDetectionTokens, settings.MaxTasksPerPhoto*tokensPerDetection),
		Reasoning:       &openai.Reasoning{Effort: r.effort},
	}
}

// frameOf reads pixel dimensions from the image header, if it is a known format.
func frameOf(data []byte) model.Frame {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.Frame{}
	}
	return model.Frame{Width: float64(cfg.Width), Height: float64(cfg.Height)}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
