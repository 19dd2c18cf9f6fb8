package datemath_test

import (
	"testing"
	"time"

	"tidy-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Tokyo"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseGoal(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339", value: "2024-06-01T09:00:00Z", want: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
		{name: "Date only", value: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Today", value: "today", want: startOfNow},
		{name: "Tomorrow", value: "Tomorrow", want: startOfNow.AddDate(0, 0, 1)},
		{name: "In 2 weeks", value: "in 2 weeks", want: startOfNow.AddDate(0, 0, 14)},
		{name: "In 1 month", value: "in 1 month", want: startOfNow.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", value: "next monday", want: startOfNow.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", value: "next wednesday", want: startOfNow.AddDate(0, 0, 7)},
		{name: "Invalid duration", value: "in a few days", wantErr: true},
		{name: "Invalid weekday", value: "next funday", wantErr: true},
		{name: "Unknown", value: "some random day", wantErr: true},
		{name: "Empty", value: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseGoal(tt.value, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGoal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseGoal() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	goal := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	got := datemath.AddDays(goal, -7)
	want := time.Date(2024, 2, 23, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddDays() got = %v, want %v", got, want)
	}
}

func TestFormatISO(t *testing.T) {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	got := datemath.FormatISO(time.Date(2024, 5, 1, 9, 0, 0, 0, tokyo))
	if got != "2024-05-01T00:00:00Z" {
		t.Errorf("FormatISO() got = %q", got)
	}
}
