package settings

import (
	"context"

	"tidy-planner/internal/model"
)

// Manager is the read/update surface of the settings store.
type Manager interface {
	Snapshot() model.IntentSettings
	Update(ctx context.Context, fn func(*model.IntentSettings)) (model.IntentSettings, error)
}

var _ Manager = (*Store)(nil)
