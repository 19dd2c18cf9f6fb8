package merge

import (
	"strings"

	"tidy-planner/internal/model"
)

// MaxTitleRunes caps remote titles.
const MaxTitleRunes = 80

// Merge overlays remote content onto locally scheduled tasks. Identity,
// exit tag, priority, effort, labels, url and due date always come from the
// local task. Remote tasks without a local counterpart are discarded and
// unmatched local tasks are appended unchanged. The result is never empty
// when local is not.
func Merge(remote, local []model.TidyTask) []model.TidyTask {
	byID := make(map[string]model.TidyTask, len(local))
	for _, t := range local {
		byID[t.ID] = t
	}

	merged := make([]model.TidyTask, 0, len(local))
	for _, r := range remote {
		l, ok := byID[r.ID]
		if !ok {
			continue
		}
		delete(byID, r.ID)
		merged = append(merged, overlay(l, r))
	}

	for _, l := range local {
		if _, ok := byID[l.ID]; ok {
			merged = append(merged, l)
			delete(byID, l.ID)
		}
	}

	if len(merged) == 0 {
		return local
	}
	return merged
}

func overlay(local, remote model.TidyTask) model.TidyTask {
	out := local
	out.Title = title(remote.Title, local.Title)
	out.Note = note(remote.Note, local.Note)
	out.Checklist = list(remote.Checklist, local.Checklist)
	out.Links = list(remote.Links, local.Links)
	if s := strings.TrimSpace(remote.Tips); s != "" {
		out.Tips = s
	}
	if s := strings.TrimSpace(remote.Category); s != "" {
		out.Category = s
	}
	return out
}

func title(remote, fallback string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return fallback
	}
	if r := []rune(remote); len(r) > MaxTitleRunes {
		return strings.TrimSpace(string(r[:MaxTitleRunes]))
	}
	return remote
}

// note drops whitespace-only remote notes, falling back to the local note.
func note(remote, local string) string {
	if s := strings.TrimSpace(remote); s != "" {
		return s
	}
	return strings.TrimSpace(local)
}

func list(remote, local []string) []string {
	if cleaned := model.CleanList(remote); len(cleaned) > 0 {
		return cleaned
	}
	return model.CleanList(local)
}
