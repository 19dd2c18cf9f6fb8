package export

import (
	"context"

	"tidy-planner/internal/model"
)

// Sink writes tasks into an external reminders/task store.
type Sink interface {
	// EnsureList returns the id of the list called name, creating it when
	// missing. Calling it repeatedly with the same name yields the same id.
	EnsureList(ctx context.Context, name string) (string, error)
	// Import writes tasks into listName and returns how many were written.
	// A failure after some tasks were written is a *PartialFailureError.
	Import(ctx context.Context, tasks []model.TidyTask, listName string) (int, error)
}
