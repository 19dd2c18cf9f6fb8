package enrich

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tidy-planner/internal/model"
	"tidy-planner/internal/remote"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

// Outcome is the terminal state of one enrichment run.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeSuccess
	OutcomeRateLimited
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	default:
		return "failed"
	}
}

// Sleeper waits for d or until ctx ends.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the production Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Result reports what enrichment produced. Tasks are only set on success.
type Result struct {
	Outcome   Outcome
	Tasks     []model.TidyTask
	RequestID string
	Attempts  int
	Err       error
}

// Orchestrator runs remote enrichment behind the process-wide gate with
// rate-limit aware retries.
type Orchestrator struct {
	l       log.Logger
	planner remote.Planner
	gate    *Gate
	policy  Policy
	sleep   Sleeper
}

// Options tune an Orchestrator; zero values select defaults.
type Options struct {
	Gate   *Gate
	Policy *Policy
	Sleep  Sleeper
}

// NewOrchestrator creates an orchestrator. Share one Gate across all orchestrators in a process.
func NewOrchestrator(l log.Logger, planner remote.Planner, opts Options) *Orchestrator {
	o := &Orchestrator{l: l, planner: planner, gate: opts.Gate, policy: DefaultPolicy(), sleep: opts.Sleep}
	if o.gate == nil {
		o.gate = NewGate()
	}
	if opts.Policy != nil {
		o.policy = *opts.Policy
	}
	if o.sleep == nil {
		o.sleep = SleepContext
	}
	return o
}

// Enrich calls the remote planner, retrying only on rate limiting. The
// returned error is non-nil only when ctx ended; every other failure is an
// OutcomeFailed result.
func (o *Orchestrator) Enrich(ctx context.Context, req remote.Request) (Result, error) {
	if err := o.gate.Acquire(ctx); err != nil {
		return Result{}, err
	}
	defer o.gate.Release()

	id := uuid.NewString()
	maxAttempts := o.policy.attempts()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		o.l.Infof(ctx, "enrich.Enrich: id=%s attempt=%d/%d", id, attempt+1, maxAttempts)

		res, err := o.planner.GenerateTasks(ctx, req)
		if err == nil {
			o.l.Infof(ctx, "enrich.Enrich: id=%s success request_id=%s attempt=%d", id, res.RequestID, attempt+1)
			return Result{Outcome: OutcomeSuccess, Tasks: res.Tasks, RequestID: res.RequestID, Attempts: attempt + 1}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}

		rl, ok := openai.AsRateLimit(err)
		if !ok {
			o.l.Errorf(ctx, "enrich.Enrich: id=%s attempt=%d failed: %v", id, attempt+1, err)
			return Result{Outcome: OutcomeFailed, Attempts: attempt + 1, Err: err}, nil
		}

		if attempt == maxAttempts-1 {
			break
		}
		delay := o.policy.Delay(attempt, rl.RetryAfter, rl.HasRetryAfter)
		o.l.Warnf(ctx, "enrich.Enrich: id=%s attempt=%d rate limited, retrying in %s", id, attempt+1, delay)
		if err := o.sleep(ctx, delay); err != nil {
			return Result{}, err
		}
	}

	// Only rate limiting reaches this point.
	o.l.Warnf(ctx, "enrich.Enrich: id=%s exhausted %d attempts while rate limited", id, maxAttempts)
	return Result{Outcome: OutcomeRateLimited, Attempts: maxAttempts, Err: openai.ErrRateLimited}, nil
}
