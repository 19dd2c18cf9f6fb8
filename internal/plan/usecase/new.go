package usecase

import (
	"context"
	"time"

	"tidy-planner/internal/detection"
	"tidy-planner/internal/enrich"
	"tidy-planner/internal/export"
	"tidy-planner/internal/model"
	"tidy-planner/internal/remote"
	pkgLog "tidy-planner/pkg/log"
)

// SettingsSource hands out the settings snapshot for one run.
type SettingsSource interface {
	Snapshot() model.IntentSettings
}

// Enricher is satisfied by *enrich.Orchestrator.
type Enricher interface {
	Enrich(ctx context.Context, req remote.Request) (enrich.Result, error)
}

// Config is the dependency bag passed to New. Detector and Enricher are nil
// when no API key is configured; Sink is nil when export is disabled.
type Config struct {
	Settings          SettingsSource
	Detector          detection.Detector
	Cooldown          *detection.Cooldown
	Enricher          Enricher
	Sink              export.Sink
	EnrichmentEnabled bool
	PreferredLanguage string
	Now               func() time.Time
}

type implUseCase struct {
	l          pkgLog.Logger
	settings   SettingsSource
	detector   detection.Detector
	cooldown   *detection.Cooldown
	normalizer *detection.Normalizer
	enricher   Enricher
	sink       export.Sink

	enrichmentEnabled bool
	preferredLanguage string
	now               func() time.Time
}

// New creates a plan UseCase.
func New(l pkgLog.Logger, cfg Config) *implUseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:                 l,
		settings:          cfg.Settings,
		detector:          cfg.Detector,
		cooldown:          cfg.Cooldown,
		normalizer:        detection.NewNormalizer(l),
		enricher:          cfg.Enricher,
		sink:              cfg.Sink,
		enrichmentEnabled: cfg.EnrichmentEnabled,
		preferredLanguage: cfg.PreferredLanguage,
		now:               now,
	}
}
