package http

import (
	"tidy-planner/internal/plan"
	"tidy-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc plan.UseCase
}

// New creates a new HTTP handler for the planning domain.
func New(l log.Logger, uc plan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
