package memos

import (
	"context"
	"slices"
	"strings"
	"time"

	"tidy-planner/internal/export"
	"tidy-planner/internal/model"
	"tidy-planner/pkg/log"
)

const defaultVisibility = "PRIVATE"

type sink struct {
	client *Client
	l      log.Logger
}

// New builds a Memos sink. Lists map to hashtags, so EnsureList never calls the API.
func New(l log.Logger, client *Client) export.Sink {
	return &sink{client: client, l: l}
}

func (s *sink) EnsureList(_ context.Context, name string) (string, error) {
	tag := ListTag(name)
	if tag == "" {
		return "", export.ErrEmptyListName
	}
	return tag, nil
}

func (s *sink) Import(ctx context.Context, tasks []model.TidyTask, listName string) (int, error) {
	listTag, err := s.EnsureList(ctx, listName)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	return export.ImportEach(ctx, s.l, tasks, func(ctx context.Context, t model.TidyTask, e export.Entry) error {
		_, err := s.client.CreateMemo(ctx, CreateMemoRequest{
			Content:    Markdown(e, export.NewSections(t), listTag),
			Visibility: defaultVisibility,
		})
		return err
	})
}

// ListTag turns a list name into a single hashtag.
func ListTag(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return ""
	}
	return "#" + name
}

// Markdown renders one memo: title, body, a task checklist and tags.
func Markdown(e export.Entry, s export.Sections, listTag string) string {
	parts := []string{"## " + e.Title}
	if s.Note != "" {
		parts = append(parts, s.Note)
	}
	if s.Tips != "" {
		parts = append(parts, "💡 "+s.Tips)
	}
	if len(s.Checklist) > 0 {
		parts = append(parts, export.Bulleted(export.ChecklistHeading, "- [ ] ", s.Checklist))
	}
	if len(s.Links) > 0 {
		parts = append(parts, export.Bulleted(export.LinksHeading, "- ", s.Links))
	}
	if e.HasDue() {
		due := "📅 Due " + e.Due.UTC().Format(time.DateOnly)
		if alert := e.AlertLine(); alert != "" {
			due += "\n" + alert
		}
		parts = append(parts, due)
	}
	if s.PhotoID != "" {
		parts = append(parts, "📷 Photo ID: "+s.PhotoID)
	}
	tags := s.Tags
	if !slices.Contains(tags, listTag) {
		tags = append(tags, listTag)
	}
	parts = append(parts, strings.Join(tags, " "))
	return strings.Join(parts, "\n\n")
}
