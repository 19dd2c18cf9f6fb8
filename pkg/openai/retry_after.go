package openai

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// MaxRetryAfter caps server-provided waits.
const MaxRetryAfter = time.Hour

// ParseRetryAfter reads a Retry-After value given either as delta seconds
// or as an HTTP-date. Dates in the past yield zero; longer waits are capped
// at MaxRetryAfter.
func ParseRetryAfter(header string, now time.Time) (time.Duration, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0, false
	}
	if secs, err := strconv.ParseFloat(header, 64); err == nil {
		switch {
		case math.IsNaN(secs) || math.IsInf(secs, 0):
			return 0, false
		case secs < 0:
			return 0, true
		case secs >= MaxRetryAfter.Seconds():
			return MaxRetryAfter, true
		}
		return time.Duration(secs * float64(time.Second)), true
	}
	when, err := http.ParseTime(header)
	if err != nil {
		return 0, false
	}
	if d := when.Sub(now); d > 0 {
		return min(d, MaxRetryAfter), true
	}
	return 0, true
}
