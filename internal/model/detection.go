package model

// BoxUnits tells the normalizer how to read a raw bounding box.
type BoxUnits string

const (
	BoxUnitsNormalized BoxUnits = "normalized"
	BoxUnitsPixels     BoxUnits = "pixels"
)

// Frame is the pixel size of the analyzed image.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RawDetection is one untrusted detector record: bbox is [x, y, w, h].
type RawDetection struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"`
}

// Rect is a bounding box in pixels (or unit coordinates when no frame is known).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedItem is a normalized detection. AreaRatio is in [0,1] and Label is never empty.
type DetectedItem struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	BoundingBox Rect    `json:"boundingBox"`
	AreaRatio   float64 `json:"areaRatio"`
}

// DetectionResult is what a detector hands to the planning pipeline.
type DetectionResult struct {
	Items            []RawDetection
	Frame            Frame
	Units            BoxUnits
	ProcessingTimeMs int64
	UsedFallback     bool
	ErrorMessage     string
}
