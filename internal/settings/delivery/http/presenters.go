package http

import (
	"tidy-planner/internal/model"
)

// --- Request DTOs ---

type llmPatch struct {
	Consent     *bool `json:"consent"`
	TimeoutSec  *int  `json:"timeoutSec"  binding:"omitempty,min=1,max=300"`
	Concurrency *int  `json:"concurrency" binding:"omitempty,min=1,max=8"`
}

// updateReq is a partial update; absent fields keep their current value.
type updateReq struct {
	Purpose            *string        `json:"purpose"`
	GoalDate           *string        `json:"goalDate"`
	Region             *string        `json:"region"             binding:"omitempty,max=16"`
	RemindersList      *string        `json:"remindersList"      binding:"omitempty,max=255"`
	SmallItemThreshold *string        `json:"smallItemThreshold"`
	MaxTasksPerPhoto   *int           `json:"maxTasksPerPhoto"`
	Offsets            map[string]int `json:"offsets"`
	LLM                *llmPatch      `json:"llm"`
}

func (r updateReq) validate() error {
	if r.Purpose != nil && !model.Purpose(*r.Purpose).Valid() {
		return errInvalidPurpose
	}
	if r.SmallItemThreshold != nil && !model.SmallThreshold(*r.SmallItemThreshold).Valid() {
		return errInvalidThreshold
	}
	for tag := range r.Offsets {
		if _, ok := model.ParseExitTag(tag); !ok {
			return unknownTagError{tag: tag}
		}
	}
	return nil
}

// apply returns the mutation handed to the store. Out-of-range values are clamped there.
func (r updateReq) apply() func(*model.IntentSettings) {
	return func(s *model.IntentSettings) {
		if r.Purpose != nil {
			s.Purpose = model.Purpose(*r.Purpose)
		}
		if r.GoalDate != nil {
			s.GoalDateISO = *r.GoalDate
		}
		if r.Region != nil {
			s.Region = *r.Region
		}
		if r.RemindersList != nil {
			s.RemindersList = *r.RemindersList
		}
		if r.SmallItemThreshold != nil {
			s.SmallItemThreshold = model.SmallThreshold(*r.SmallItemThreshold)
		}
		if r.MaxTasksPerPhoto != nil {
			s.MaxTasksPerPhoto = *r.MaxTasksPerPhoto
		}
		for raw, days := range r.Offsets {
			tag, _ := model.ParseExitTag(raw)
			if s.Offsets == nil {
				s.Offsets = make(map[string]int, len(r.Offsets))
			}
			s.Offsets[string(tag)] = days
		}
		if r.LLM != nil {
			if r.LLM.Consent != nil {
				s.LLM.Consent = *r.LLM.Consent
			}
			if r.LLM.TimeoutSec != nil {
				s.LLM.TimeoutSec = *r.LLM.TimeoutSec
			}
			if r.LLM.Concurrency != nil {
				s.LLM.Concurrency = *r.LLM.Concurrency
			}
		}
	}
}

// --- Response DTOs ---

type settingsResp struct {
	Settings model.IntentSettings `json:"settings"`
}

func (h *handler) newSettingsResp(s model.IntentSettings) settingsResp {
	return settingsResp{Settings: s}
}
