package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves goal dates and day offsets in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string, e.g. "Asia/Tokyo".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseGoal accepts an RFC3339 instant, a calendar date, or a relative
// phrase ("today", "tomorrow", "in 3 weeks", "next friday").
func (p *Parser) ParseGoal(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty goal date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateOnlyLayout, value, p.location); err == nil {
		return t, nil
	}

	relative := strings.ToLower(value)
	switch relative {
	case "today":
		return p.StartOfDay(now), nil
	case "tomorrow":
		return p.StartOfDay(now.AddDate(0, 0, 1)), nil
	}
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, now)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, now)
	}
	return time.Time{}, fmt.Errorf("unrecognized goal date %q", value)
}

func (p *Parser) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}
	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(now.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(relative string, now time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}
	daysUntil := int(target - now.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(now.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// AddDays shifts t by a signed number of calendar days, keeping its clock time.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// FormatISO renders t as an RFC3339 instant in UTC.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
