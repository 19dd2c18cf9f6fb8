package detection

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/log"
)

// MinConfidence is the floor below which detections are discarded.
const MinConfidence = 0.05

// Stats counts what happened to one batch of raw detections.
type Stats struct {
	Raw        int
	Normalized int
	Dropped    int
}

// AllDropped reports a non-empty batch where nothing survived.
func (s Stats) AllDropped() bool {
	return s.Raw > 0 && s.Normalized == 0
}

// Normalizer turns untrusted detector output into DetectedItems.
type Normalizer struct {
	l     log.Logger
	newID func() string
}

// NewNormalizer creates a normalizer that logs batch counters to l.
func NewNormalizer(l log.Logger) *Normalizer {
	return &Normalizer{l: l, newID: func() string { return uuid.NewString() }}
}

// Normalize validates every raw record and returns the survivors in input order.
func (n *Normalizer) Normalize(ctx context.Context, result model.DetectionResult) ([]model.DetectedItem, Stats) {
	stats := Stats{Raw: len(result.Items)}
	frame := result.Frame
	if frame.Width <= 0 || frame.Height <= 0 {
		frame = model.Frame{Width: 1, Height: 1}
	}

	items := make([]model.DetectedItem, 0, len(result.Items))
	for _, raw := range result.Items {
		unit, ok := unitBox(raw.BBox, result.Units, result.Frame)
		if !ok {
			stats.Dropped++
			continue
		}
		confidence, ok := normalizeConfidence(raw.Confidence)
		if !ok {
			stats.Dropped++
			continue
		}
		label := SanitizeLabel(raw.Label)
		if label == "" {
			stats.Dropped++
			continue
		}

		items = append(items, model.DetectedItem{
			ID:         n.sanitizeID(raw.ID),
			Label:      label,
			Confidence: confidence,
			BoundingBox: model.Rect{
				X:      unit.X * frame.Width,
				Y:      unit.Y * frame.Height,
				Width:  unit.Width * frame.Width,
				Height: unit.Height * frame.Height,
			},
			AreaRatio: clamp01(unit.Width * unit.Height),
		})
	}
	stats.Normalized = len(items)

	n.l.Infof(ctx, "detection.Normalize: raw=%d normalized=%d dropped=%d", stats.Raw, stats.Normalized, stats.Dropped)
	if stats.AllDropped() {
		n.l.Warnf(ctx, "detection.Normalize: every raw detection was dropped")
	}
	return items, stats
}

// unitBox converts a raw [x, y, w, h] box into the unit square, clamping and
// intersecting it. Boxes with no area left are rejected.
func unitBox(bbox []float64, units model.BoxUnits, frame model.Frame) (model.Rect, bool) {
	if len(bbox) != 4 {
		return model.Rect{}, false
	}
	for _, v := range bbox {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.Rect{}, false
		}
	}

	x, y, w, h := bbox[0], bbox[1], bbox[2], bbox[3]
	if units == model.BoxUnitsPixels {
		if frame.Width <= 0 || frame.Height <= 0 {
			return model.Rect{}, false
		}
		x, w = x/frame.Width, w/frame.Width
		y, h = y/frame.Height, h/frame.Height
	}

	x, y, w, h = clamp01(x), clamp01(y), clamp01(w), clamp01(h)
	if w <= 0 || h <= 0 {
		return model.Rect{}, false
	}
	maxW := math.Min(1, x+w) - x
	maxH := math.Min(1, y+h) - y
	if maxW <= 0 || maxH <= 0 {
		return model.Rect{}, false
	}
	return model.Rect{X: x, Y: y, Width: maxW, Height: maxH}, true
}

func normalizeConfidence(c float64) (float64, bool) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	c = clamp01(c)
	return c, c >= MinConfidence
}

func (n *Normalizer) sanitizeID(id string) string {
	if u, err := uuid.Parse(strings.TrimSpace(id)); err == nil && u != uuid.Nil {
		return strings.ToUpper(u.String())
	}
	return strings.ToUpper(n.newID())
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
