package model

import "strings"

// ExitTag is the disposal category assigned to an item.
type ExitTag string

const (
	ExitTagSell    ExitTag = "SELL"
	ExitTagGive    ExitTag = "GIVE"
	ExitTagRecycle ExitTag = "RECYCLE"
	ExitTagTrash   ExitTag = "TRASH"
	ExitTagKeep    ExitTag = "KEEP"
)

// ExitTags lists every exit tag in display order.
var ExitTags = []ExitTag{ExitTagSell, ExitTagGive, ExitTagRecycle, ExitTagTrash, ExitTagKeep}

var defaultOffsets = map[ExitTag]int{
	ExitTagSell:    -7,
	ExitTagGive:    -5,
	ExitTagRecycle: -3,
	ExitTagTrash:   -2,
	ExitTagKeep:    -1,
}

var displayNames = map[ExitTag]string{
	ExitTagSell:    "Sell",
	ExitTagGive:    "Give",
	ExitTagRecycle: "Recycle",
	ExitTagTrash:   "Trash",
	ExitTagKeep:    "Keep",
}

// ParseExitTag accepts the canonical upper-case value, case-insensitively.
func ParseExitTag(s string) (ExitTag, bool) {
	tag := ExitTag(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := defaultOffsets[tag]; !ok {
		return "", false
	}
	return tag, true
}

// Valid reports whether t is one of the five known tags.
func (t ExitTag) Valid() bool {
	_, ok := defaultOffsets[t]
	return ok
}

// DisplayName returns the English display name.
func (t ExitTag) DisplayName() string {
	return displayNames[t]
}

// DefaultOffsetDays is the built-in schedule offset relative to the goal date.
func (t ExitTag) DefaultOffsetDays() int {
	return defaultOffsets[t]
}

// DefaultOffsets returns a fresh copy of the built-in offsets keyed by tag value.
func DefaultOffsets() map[string]int {
	out := make(map[string]int, len(defaultOffsets))
	for tag, days := range defaultOffsets {
		out[string(tag)] = days
	}
	return out
}
