package schedule

import (
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/datemath"
)

// Scheduler computes due dates backwards from a goal date.
type Scheduler struct {
	goal    time.Time
	offsets map[string]int
}

// New builds a scheduler from a settings snapshot and its parsed goal date.
func New(goal time.Time, settings model.IntentSettings) Scheduler {
	return Scheduler{goal: goal, offsets: settings.Clone().Offsets}
}

// Goal returns the goal date the scheduler offsets from.
func (s Scheduler) Goal() time.Time {
	return s.goal
}

// OffsetDays returns the configured offset for tag, or its built-in default.
func (s Scheduler) OffsetDays(tag model.ExitTag) int {
	if days, ok := s.offsets[string(tag)]; ok {
		return days
	}
	return tag.DefaultOffsetDays()
}

// Schedule returns the due date for tag: goal + offsetDays(tag).
func (s Scheduler) Schedule(tag model.ExitTag) model.TaskSchedule {
	days := s.OffsetDays(tag)
	return model.TaskSchedule{
		ExitTag:    tag,
		DueDate:    datemath.AddDays(s.goal, days),
		OffsetDays: days,
	}
}

// DueAt is Schedule(tag).DueDate rendered as the task due_at string.
func (s Scheduler) DueAt(tag model.ExitTag) string {
	return datemath.FormatISO(s.Schedule(tag).DueDate)
}
