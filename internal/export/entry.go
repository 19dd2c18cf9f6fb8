package export

import (
	"net/url"
	"strings"
	"time"

	"tidy-planner/internal/model"
)

const (
	MaxLineRunes  = 280
	MaxEntryRunes = 160
	MaxTitleRunes = 120

	DefaultTitle = "Tidy task"
	AppHashtag   = "#TidyPlan"

	// UrgentPriority and above are alerted a day ahead.
	UrgentPriority = 4

	ChecklistHeading = "Checklist"
	LinksHeading     = "Links"
)

// Entry is a task rendered for an external store.
type Entry struct {
	TaskID  string
	Title   string
	Notes   string
	URL     string
	Due     time.Time
	AlertAt time.Time
}

// HasDue reports whether the task carried a parseable due date.
func (e Entry) HasDue() bool { return !e.Due.IsZero() }

// NewEntry renders t.
func NewEntry(t model.TidyTask) Entry {
	e := Entry{
		TaskID: t.ID,
		Title:  Title(t.Title),
		Notes:  Notes(t),
		URL:    FirstURL(t.Links),
	}
	if due, ok := t.DueDate(); ok {
		e.Due = due
		e.AlertAt = AlertAt(due, t.Priority)
	}
	return e
}

// Title trims and caps a task title.
func Title(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTitle
	}
	return truncate(s, MaxTitleRunes)
}

// AlertAt is one day before due for urgent tasks and the due instant otherwise.
func AlertAt(due time.Time, priority int) time.Time {
	if priority >= UrgentPriority {
		return due.AddDate(0, 0, -1)
	}
	return due
}

// Sections are the sanitized parts of a task body.
type Sections struct {
	Note      string
	Tips      string
	Checklist []string
	Links     []string
	Tags      []string
	PhotoID   string
}

// NewSections trims and caps every part of t. Tags always end with AppHashtag.
func NewSections(t model.TidyTask) Sections {
	s := Sections{
		Note:      line(t.Note),
		Tips:      line(t.Tips),
		Checklist: entries(t.Checklist),
		Links:     entries(t.Links),
		PhotoID:   strings.TrimSpace(t.PhotoAssetID),
	}
	if t.ExitTag.Valid() {
		s.Tags = append(s.Tags, "#"+string(t.ExitTag))
	}
	if c := strings.TrimSpace(t.Category); c != "" {
		s.Tags = append(s.Tags, "#"+strings.ReplaceAll(c, " ", "_"))
	}
	s.Tags = append(s.Tags, AppHashtag)
	return s
}

// Notes builds the body text: note, tips, checklist, links and a tag line,
// separated by blank lines. Empty sections are omitted.
func Notes(t model.TidyTask) string {
	s := NewSections(t)
	var parts []string
	if s.Note != "" {
		parts = append(parts, s.Note)
	}
	if s.Tips != "" {
		parts = append(parts, "💡 "+s.Tips)
	}
	if len(s.Checklist) > 0 {
		parts = append(parts, Bulleted(ChecklistHeading, "- ", s.Checklist))
	}
	if len(s.Links) > 0 {
		parts = append(parts, Bulleted(LinksHeading, "- ", s.Links))
	}
	parts = append(parts, strings.Join(s.Tags, " "))
	if s.PhotoID != "" {
		parts = append(parts, "📷 Photo ID: "+s.PhotoID)
	}
	return strings.Join(parts, "\n\n")
}

// AlertLine describes an alert that precedes the due date, or is empty.
func (e Entry) AlertLine() string {
	if !e.HasDue() || e.AlertAt.Equal(e.Due) {
		return ""
	}
	return "⏰ Remind on " + e.AlertAt.UTC().Format(time.DateOnly)
}

// FirstURL returns the first link that parses with a scheme.
func FirstURL(links []string) string {
	for _, l := range entries(links) {
		if u, err := url.Parse(l); err == nil && u.Scheme != "" {
			return l
		}
	}
	return ""
}

// Bulleted renders heading followed by one prefixed line per item.
func Bulleted(heading, prefix string, items []string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	for _, item := range items {
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString(item)
	}
	return sb.String()
}

func line(s string) string {
	return truncate(strings.TrimSpace(s), MaxLineRunes)
}

func entries(values []string) []string {
	cleaned := model.CleanList(values)
	for i, v := range cleaned {
		cleaned[i] = truncate(v, MaxEntryRunes)
	}
	return cleaned
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
