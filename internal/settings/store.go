package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/datemath"
	"tidy-planner/pkg/log"
)

// Store owns the process-wide settings. Readers take snapshots; writers go
// through Update, which replaces the whole value and persists it.
type Store struct {
	mu      sync.RWMutex
	current model.IntentSettings

	path    string
	secrets SecretStore
	parser  *datemath.Parser
	now     func() time.Time
	l       log.Logger
}

// Open loads settings from opts.Path, falling back to defaults when the
// document is missing or unreadable.
func Open(ctx context.Context, l log.Logger, opts Options) (*Store, error) {
	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}
	parser, err := datemath.NewParser(tz)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Store{
		path:    opts.Path,
		secrets: opts.Secrets,
		parser:  parser,
		now:     now,
		l:       l,
	}
	s.current = s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) model.IntentSettings {
	now := s.now()
	doc := document{Settings: Defaults(now)}

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			s.l.Warnf(ctx, "settings: read %s: %v", s.path, err)
		default:
			// Fields missing from older documents keep their defaults.
			if err := json.Unmarshal(data, &doc); err != nil {
				s.l.Warnf(ctx, "settings: decode %s: %v", s.path, err)
				doc = document{Settings: Defaults(now)}
			} else if doc.Version != CurrentVersion {
				s.l.Infof(ctx, "settings: migrating document version %d to %d", doc.Version, CurrentVersion)
			}
		}
	}

	settings := doc.Settings
	if err := normalize(&settings, s.parser, now); err != nil {
		settings.GoalDateISO = Defaults(now).GoalDateISO
	}

	if s.secrets != nil {
		consent, found, err := s.secrets.LoadConsent()
		if err != nil {
			s.l.Warnf(ctx, "settings: load consent: %v", err)
		} else if found {
			settings.LLM.Consent = consent
		}
	}
	return settings
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() model.IntentSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the current settings, normalizes and
// persists the result, then publishes it. On error the store is unchanged.
func (s *Store) Update(ctx context.Context, fn func(*model.IntentSettings)) (model.IntentSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current
	next := prev.Clone()
	fn(&next)
	if err := normalize(&next, s.parser, s.now()); err != nil {
		return prev.Clone(), err
	}

	if err := s.persist(next); err != nil {
		s.l.Errorf(ctx, "settings: persist: %v", err)
		return prev.Clone(), fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if s.secrets != nil && next.LLM.Consent != prev.LLM.Consent {
		if err := s.secrets.SaveConsent(next.LLM.Consent); err != nil {
			s.l.Errorf(ctx, "settings: save consent: %v", err)
			return prev.Clone(), fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	if next.Purpose != prev.Purpose {
		s.l.Infof(ctx, "intent_changed from=%s to=%s", prev.Purpose, next.Purpose)
		if next.Purpose == model.PurposeLegacyHidden {
			s.l.Infof(ctx, "legacy_mode_enabled")
		}
	}

	s.current = next
	return next.Clone(), nil
}

func (s *Store) persist(settings model.IntentSettings) error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(document{Version: CurrentVersion, Settings: settings}, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(s.path, data)
}
