package gtasks

import (
	"net/http"
	"time"
)

const (
	defaultTokenPath = "token.json"
	listPageSize     = 100
)

// Config configures a Client.
type Config struct {
	// CredentialsJSON is a service account key or an installed-app OAuth client.
	CredentialsJSON []byte
	// TokenPath holds the OAuth token for installed-app credentials.
	TokenPath string
	// HTTPClient bypasses credential handling entirely. Used in tests.
	HTTPClient *http.Client
	// RequestsPerSecond paces API calls. Zero disables pacing.
	RequestsPerSecond float64
}

// TaskList is a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// InsertTaskRequest describes a task to create.
type InsertTaskRequest struct {
	Title string
	Notes string
	Due   time.Time // zero means no due date
}

// Task is a created Google Task.
type Task struct {
	ID       string
	Title    string
	WebLink  string
	Due      string
	ParentID string
}
