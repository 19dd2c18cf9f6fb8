package detection

import (
	"sync/atomic"
	"time"
)

const (
	defaultCooldown = 10 * time.Second
	minCooldown     = 5 * time.Second
)

// Cooldown remembers when remote detection may be attempted again after a 429.
type Cooldown struct {
	nextAllowed atomic.Int64
	now         func() time.Time
}

// NewCooldown returns a cooldown driven by now (time.Now when nil).
func NewCooldown(now func() time.Time) *Cooldown {
	if now == nil {
		now = time.Now
	}
	return &Cooldown{now: now}
}

// Remaining returns how long callers still have to wait, or zero.
func (c *Cooldown) Remaining() time.Duration {
	next := c.nextAllowed.Load()
	if next == 0 {
		return 0
	}
	if d := time.Unix(0, next).Sub(c.now()); d > 0 {
		return d
	}
	return 0
}

// Register starts a cooldown of max(retryAfter or 10s, 5s) and returns it.
func (c *Cooldown) Register(retryAfter time.Duration, hasRetryAfter bool) time.Duration {
	wait := defaultCooldown
	if hasRetryAfter {
		wait = retryAfter
	}
	if wait < minCooldown {
		wait = minCooldown
	}
	c.nextAllowed.Store(c.now().Add(wait).UnixNano())
	return wait
}
