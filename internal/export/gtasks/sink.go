// Package gtasks exports plans into Google Tasks.
package gtasks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tidy-planner/internal/export"
	"tidy-planner/internal/model"
	pkgTasks "tidy-planner/pkg/gtasks"
	"tidy-planner/pkg/log"
)

const (
	listCacheSize     = 64
	DefaultListTTL    = 30 * time.Minute
	googleTasksPrefix = "gtasks"
)

// Client is the subset of the Google Tasks client the sink needs.
type Client interface {
	FindList(ctx context.Context, title string) (pkgTasks.TaskList, bool, error)
	CreateList(ctx context.Context, title string) (pkgTasks.TaskList, error)
	InsertTask(ctx context.Context, listID string, req pkgTasks.InsertTaskRequest) (*pkgTasks.Task, error)
}

type sink struct {
	client Client
	l      log.Logger

	mu    sync.Mutex
	lists *expirable.LRU[string, string]
}

// New builds a Google Tasks sink. List ids are cached for ttl.
func New(l log.Logger, client Client, ttl time.Duration) export.Sink {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &sink{
		client: client,
		l:      l,
		lists:  expirable.NewLRU[string, string](listCacheSize, nil, ttl),
	}
}

func (s *sink) EnsureList(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", export.ErrEmptyListName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.lists.Get(name); ok {
		return id, nil
	}

	list, found, err := s.client.FindList(ctx, name)
	if err != nil {
		return "", err
	}
	if !found {
		list, err = s.client.CreateList(ctx, name)
		if err != nil {
			return "", err
		}
		s.l.Infof(ctx, "%s: created list %q", googleTasksPrefix, name)
	}
	s.lists.Add(name, list.ID)
	return list.ID, nil
}

func (s *sink) Import(ctx context.Context, tasks []model.TidyTask, listName string) (int, error) {
	listID, err := s.EnsureList(ctx, listName)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	return export.ImportEach(ctx, s.l, tasks, func(ctx context.Context, _ model.TidyTask, e export.Entry) error {
		notes := e.Notes
		if alert := e.AlertLine(); alert != "" {
			notes += "\n\n" + alert
		}
		if e.URL != "" {
			notes += "\n\n" + e.URL
		}
		_, err := s.client.InsertTask(ctx, listID, pkgTasks.InsertTaskRequest{
			Title: e.Title,
			Notes: notes,
			Due:   e.Due,
		})
		return err
	})
}
