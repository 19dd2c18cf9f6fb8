package remote

import (
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/internal/prompt"
	"tidy-planner/internal/schedule"
	"tidy-planner/pkg/openai"
)

const (
	defaultMaxOutputTokens = 4000
	minOutputTokens        = 1200
	tokensPerTask          = 400
)

// Config configures the remote planner.
type Config struct {
	Client          openai.IOpenAI
	Model           string
	MaxOutputTokens int
	ReasoningEffort string
	Timeout         time.Duration
}

// Request is one enrichment call.
type Request struct {
	Prompts   prompt.Prompts
	Scheduler schedule.Scheduler
	// Timeout overrides Config.Timeout when positive.
	Timeout time.Duration
}

// Result holds the parsed tasks. RequestID is empty when the server sent none.
type Result struct {
	Tasks     []model.TidyTask
	RequestID string
	Dropped   int
}

type remoteTask struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	ExitTag          string   `json:"exitTag"`
	Checklist        []string `json:"checklist"`
	Tips             string   `json:"tips"`
	Links            []string `json:"links"`
	EstimatedMinutes int      `json:"estimatedMinutes"`
	Note             string   `json:"note"`
	DueDate          string   `json:"dueDate,omitempty"`
}

type remotePlan struct {
	Tasks []remoteTask `json:"tasks"`
}
