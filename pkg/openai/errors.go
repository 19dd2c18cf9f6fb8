package openai

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRateLimited is matched by every *RateLimitError
	ErrRateLimited = errors.New("openai: rate limited")

	// ErrInvalidResponse indicates no recognizable content could be parsed
	ErrInvalidResponse = errors.New("openai: invalid response")

	// ErrIncomplete indicates the output was cut off by max_output_tokens.
	// It matches ErrInvalidResponse too.
	ErrIncomplete error = &incompleteError{}

	// ErrNetwork is matched by every *StatusError
	ErrNetwork = errors.New("openai: network error")
)

type incompleteError struct{}

func (*incompleteError) Error() string {
	return "openai: response incomplete (max_output_tokens)"
}

func (*incompleteError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// RateLimitError is returned for HTTP 429.
type RateLimitError struct {
	RetryAfter    time.Duration
	HasRetryAfter bool
}

func (e *RateLimitError) Error() string {
	if e.HasRetryAfter {
		return fmt.Sprintf("openai: rate limited, retry after %s", e.RetryAfter)
	}
	return "openai: rate limited"
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// StatusError is returned for any other non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNetwork
}

// AsRateLimit extracts a *RateLimitError from err's chain.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}
