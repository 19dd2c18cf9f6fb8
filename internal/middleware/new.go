package middleware

import (
	"tidy-planner/pkg/log"
)

// Config tunes the request throttling applied by RateLimit.
type Config struct {
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive RequestsPerMin disables throttling.
func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return m
}
