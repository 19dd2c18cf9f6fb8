package enrich

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultMaxJitter   = 400 * time.Millisecond
)

// Policy decides how long to wait between rate-limited attempts. It does no I/O.
type Policy struct {
	MaxAttempts int
	MaxJitter   time.Duration
	// Rand returns a value in [0,1); rand.Float64 when nil.
	Rand func() float64
}

// DefaultPolicy is 3 attempts with up to 0.4s of jitter.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: defaultMaxAttempts, MaxJitter: defaultMaxJitter}
}

// BaseDelay is max(retryAfter, 2^attempt seconds) for a zero-based attempt.
func (p Policy) BaseDelay(attempt int, retryAfter time.Duration, hasRetryAfter bool) time.Duration {
	exp := time.Duration(math.Pow(2, float64(attempt)) * float64(time.Second))
	if hasRetryAfter && retryAfter > exp {
		return retryAfter
	}
	return exp
}

// Delay is BaseDelay plus uniform jitter in [0, MaxJitter].
func (p Policy) Delay(attempt int, retryAfter time.Duration, hasRetryAfter bool) time.Duration {
	r := p.Rand
	if r == nil {
		r = rand.Float64
	}
	jitter := time.Duration(r() * float64(p.MaxJitter))
	return p.BaseDelay(attempt, retryAfter, hasRetryAfter) + jitter
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}
