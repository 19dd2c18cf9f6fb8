package compose

import "tidy-planner/internal/model"

// Blueprint bundles everything known about one item before it becomes a task.
// The same blueprint feeds both the local task and the remote prompt, so both
// sides stay keyed by ID.
type Blueprint struct {
	ID              string
	DisplayLabel    string
	LabelKey        string
	ExitTag         model.ExitTag
	Schedule        model.TaskSchedule
	Title           string
	Checklist       []string
	Links           []string
	Note            string
	Tip             string
	TimeEstimateMin int
	Priority        int
}

var timeEstimates = map[model.ExitTag]int{
	model.ExitTagSell:    25,
	model.ExitTagGive:    20,
	model.ExitTagRecycle: 15,
	model.ExitTagTrash:   10,
	model.ExitTagKeep:    15,
}

var priorities = map[model.ExitTag]int{
	model.ExitTagSell:    3,
	model.ExitTagGive:    2,
	model.ExitTagRecycle: 3,
	model.ExitTagTrash:   4,
	model.ExitTagKeep:    1,
}

const (
	fallbackPriority  = 3
	fallbackEffortMin = 15
	fallbackLabel     = "fallback"
)

// TimeEstimate returns the expected effort in minutes for tag.
func TimeEstimate(tag model.ExitTag) int {
	return timeEstimates[tag]
}

// Priority returns the 1-4 urgency for tag; selling is raised when value matters.
func Priority(tag model.ExitTag, purpose model.Purpose) int {
	if tag == model.ExitTagSell && purpose == model.PurposeMoveValue {
		return 4
	}
	return priorities[tag]
}
