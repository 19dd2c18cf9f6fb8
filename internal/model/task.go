package model

import "time"

// UserLocale is the resolved country/city pair for a region code.
type UserLocale struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// TaskSchedule is the due date computed for an exit tag.
type TaskSchedule struct {
	ExitTag    ExitTag
	DueDate    time.Time
	OffsetDays int
}

// TidyTask is the externally visible unit of work. Empty optional fields are absent.
type TidyTask struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category,omitempty"`
	Note         string   `json:"note,omitempty"`
	Tips         string   `json:"tips,omitempty"`
	Area         string   `json:"area,omitempty"`
	ExitTag      ExitTag  `json:"exit_tag,omitempty"`
	Priority     int      `json:"priority,omitempty"`
	EffortMin    int      `json:"effort_min,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Checklist    []string `json:"checklist,omitempty"`
	Links        []string `json:"links,omitempty"`
	URL          string   `json:"url,omitempty"`
	DueAt        string   `json:"due_at,omitempty"`
	PhotoAssetID string   `json:"photo_asset_id,omitempty"`
}

// IsValid reports whether the task carries both identity and title.
func (t TidyTask) IsValid() bool {
	return t.ID != "" && t.Title != ""
}

// DueDate parses DueAt; ok is false when absent or malformed.
func (t TidyTask) DueDate() (time.Time, bool) {
	if t.DueAt == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(time.RFC3339, t.DueAt)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// Plan is the root output of one planning run.
type Plan struct {
	Project string     `json:"project"`
	Locale  UserLocale `json:"locale"`
	Tasks   []TidyTask `json:"tasks"`
}

// SourceKind tags where a plan's content came from.
type SourceKind string

const (
	SourceLocal       SourceKind = "local"
	SourceRemote      SourceKind = "remote"
	SourceRateLimited SourceKind = "rate_limited"
)

// PlanSource is the provenance of a plan. RequestID is set only for SourceRemote.
type PlanSource struct {
	Kind      SourceKind `json:"kind"`
	RequestID string     `json:"request_id,omitempty"`
}

// LocalSource is the provenance of an unenriched plan.
func LocalSource() PlanSource { return PlanSource{Kind: SourceLocal} }

// RemoteSource is the provenance of a successfully enriched plan.
func RemoteSource(requestID string) PlanSource {
	return PlanSource{Kind: SourceRemote, RequestID: requestID}
}

// RateLimitedSource is the provenance of a local plan returned after enrichment gave up on 429s.
func RateLimitedSource() PlanSource { return PlanSource{Kind: SourceRateLimited} }

// PlanResult is a plan plus provenance and an optional user-facing notice.
type PlanResult struct {
	Plan   Plan       `json:"plan"`
	Source PlanSource `json:"source"`
	Notice string     `json:"notice,omitempty"`
}
