package http

import (
	"tidy-planner/internal/settings"
	"tidy-planner/pkg/log"
)

type handler struct {
	l     log.Logger
	store settings.Manager
}

// New creates a new HTTP handler for intent settings.
func New(l log.Logger, store settings.Manager) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
