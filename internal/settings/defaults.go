package settings

import (
	"strings"
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/datemath"
)

// Defaults returns the settings used on first launch.
func Defaults(now time.Time) model.IntentSettings {
	return model.IntentSettings{
		Purpose:            model.PurposeMoveFast,
		GoalDateISO:        datemath.FormatISO(now.Add(DefaultGoalHorizon)),
		Region:             DefaultRegion,
		RemindersList:      DefaultRemindersList,
		SmallItemThreshold: model.SmallThresholdDefault,
		MaxTasksPerPhoto:   MaxTasksPerPhoto,
		Offsets:            model.DefaultOffsets(),
		LLM: model.LLMConfig{
			Consent:     false,
			TimeoutSec:  DefaultTimeoutSec,
			Concurrency: DefaultConcurrency,
		},
	}
}

// normalize repairs out-of-range values in place. The goal date is resolved
// with parser so relative phrases like "in 2 weeks" are stored as instants.
func normalize(s *model.IntentSettings, parser *datemath.Parser, now time.Time) error {
	if !s.Purpose.Valid() {
		s.Purpose = model.PurposeMoveFast
	}
	if !s.SmallItemThreshold.Valid() {
		s.SmallItemThreshold = model.SmallThresholdDefault
	}
	s.MaxTasksPerPhoto = min(max(s.MaxTasksPerPhoto, MinTasksPerPhoto), MaxTasksPerPhoto)

	s.Region = strings.ToUpper(strings.TrimSpace(s.Region))
	if s.Region == "" {
		s.Region = DefaultRegion
	}
	s.RemindersList = strings.TrimSpace(s.RemindersList)
	if s.RemindersList == "" {
		s.RemindersList = DefaultRemindersList
	}

	offsets := make(map[string]int, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		if days, ok := s.Offsets[string(tag)]; ok {
			offsets[string(tag)] = days
		} else {
			offsets[string(tag)] = tag.DefaultOffsetDays()
		}
	}
	s.Offsets = offsets

	if s.LLM.TimeoutSec <= 0 {
		s.LLM.TimeoutSec = DefaultTimeoutSec
	}
	if s.LLM.Concurrency < 1 {
		s.LLM.Concurrency = DefaultConcurrency
	}

	goal, err := parser.ParseGoal(s.GoalDateISO, now)
	if err != nil {
		return ErrInvalidGoalDate
	}
	s.GoalDateISO = datemath.FormatISO(goal)
	return nil
}
