package datemath

import "time"

const (
	// DateOnlyLayout is the calendar-date form accepted for goal dates.
	DateOnlyLayout = "2006-01-02"

	// ISOLayout is the form of every task due_at value.
	ISOLayout = time.RFC3339
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
