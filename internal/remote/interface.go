package remote

import (
	"context"

	"tidy-planner/pkg/log"
)

// Planner asks a remote model to rewrite task content.
type Planner interface {
	// GenerateTasks returns the model's tasks with locally computed due dates.
	// Errors from the transport are returned unchanged so callers can detect
	// openai.ErrRateLimited.
	GenerateTasks(ctx context.Context, req Request) (Result, error)
}

// New creates a Planner backed by the Responses API.
func New(l log.Logger, cfg Config) Planner {
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}
	return &implPlanner{l: l, cfg: cfg}
}
