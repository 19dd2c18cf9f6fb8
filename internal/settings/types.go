package settings

import (
	"time"

	"tidy-planner/internal/model"
)

const (
	// CurrentVersion is the on-disk document version written by this build.
	CurrentVersion = 1

	MinTasksPerPhoto = 4
	MaxTasksPerPhoto = 8

	DefaultRegion        = "JP"
	DefaultRemindersList = "TidyPlan"
	DefaultGoalHorizon   = 14 * 24 * time.Hour
	DefaultTimeoutSec    = 30
	DefaultConcurrency   = 1

	filePerms = 0o600
	dirPerms  = 0o755
)

// document is the persisted form of the settings.
type document struct {
	Version  int                  `json:"version"`
	Settings model.IntentSettings `json:"settings"`
}

// Options configures Open.
type Options struct {
	// Path of the settings document. Empty keeps settings in memory only.
	Path string
	// Secrets mirrors the consent flag. Optional.
	Secrets SecretStore
	// Timezone used to resolve relative goal dates. Defaults to UTC.
	Timezone string
	Now      func() time.Time
}
