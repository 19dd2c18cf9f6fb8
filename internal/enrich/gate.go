package enrich

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate admits one enrichment call at a time across the process.
type Gate struct {
	sem *semaphore.Weighted
}

// NewGate returns a one-permit gate.
func NewGate() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

// Acquire waits for the permit or for ctx to end.
func (g *Gate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release returns the permit.
func (g *Gate) Release() {
	g.sem.Release(1)
}
