package model

import "maps"

// Purpose is the user's decluttering intent.
type Purpose string

const (
	PurposeMoveFast     Purpose = "move_fast"
	PurposeMoveValue    Purpose = "move_value"
	PurposeCleanup      Purpose = "cleanup"
	PurposeLegacyHidden Purpose = "legacy_hidden"
)

// Valid reports whether p is a known purpose.
func (p Purpose) Valid() bool {
	switch p {
	case PurposeMoveFast, PurposeMoveValue, PurposeCleanup, PurposeLegacyHidden:
		return true
	}
	return false
}

// SmallThreshold controls how aggressively small items are filtered out.
type SmallThreshold string

const (
	SmallThresholdLow     SmallThreshold = "low"
	SmallThresholdDefault SmallThreshold = "default"
	SmallThresholdHigh    SmallThreshold = "high"
)

// Multiplier scales the base area-ratio threshold.
func (s SmallThreshold) Multiplier() float64 {
	switch s {
	case SmallThresholdLow:
		return 0.6
	case SmallThresholdHigh:
		return 1.4
	default:
		return 1.0
	}
}

// Valid reports whether s is a known threshold level.
func (s SmallThreshold) Valid() bool {
	switch s {
	case SmallThresholdLow, SmallThresholdDefault, SmallThresholdHigh:
		return true
	}
	return false
}

// LLMConfig holds remote enrichment preferences.
type LLMConfig struct {
	Consent     bool `json:"consent"`
	TimeoutSec  int  `json:"timeoutSec"`
	Concurrency int  `json:"concurrency"`
}

// IntentSettings parameterizes a planning run.
type IntentSettings struct {
	Purpose            Purpose        `json:"purpose"`
	GoalDateISO        string         `json:"goalDateISO"`
	Region             string         `json:"region"`
	RemindersList      string         `json:"remindersList"`
	SmallItemThreshold SmallThreshold `json:"smallItemThreshold"`
	MaxTasksPerPhoto   int            `json:"maxTasksPerPhoto"`
	Offsets            map[string]int `json:"offsets"`
	LLM                LLMConfig      `json:"llm"`
}

// Clone returns a deep copy so snapshots never share the offsets map.
func (s IntentSettings) Clone() IntentSettings {
	out := s
	out.Offsets = maps.Clone(s.Offsets)
	return out
}

// OffsetDays returns the configured offset for tag, falling back to the built-in default.
func (s IntentSettings) OffsetDays(tag ExitTag) int {
	if days, ok := s.Offsets[string(tag)]; ok {
		return days
	}
	return tag.DefaultOffsetDays()
}
