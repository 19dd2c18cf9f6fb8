package gtasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
	limiter *rate.Limiter
}

// New builds a Client from cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case len(cfg.CredentialsJSON) > 0:
		ts, err := tokenSource(ctx, cfg.CredentialsJSON, cfg.TokenPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	default:
		return nil, errors.New("gtasks: credentials or http client required")
	}

	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &Client{service: svc, limiter: limiter}, nil
}

// NewFromCredentialsFile reads the credentials at credentialsPath and builds a Client.
func NewFromCredentialsFile(ctx context.Context, credentialsPath string, cfg Config) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	cfg.CredentialsJSON = data
	return New(ctx, cfg)
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err == nil {
		return jwtConfig.TokenSource(ctx), nil
	}

	// Fallback: installed app credentials with a stored token
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{tasks.TasksScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s", tokenPath)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// FindList returns the first list whose title matches exactly.
func (c *Client) FindList(ctx context.Context, title string) (TaskList, bool, error) {
	var found TaskList
	errFound := errors.New("found")

	call := c.service.Tasklists.List().MaxResults(listPageSize)
	err := call.Pages(ctx, func(page *tasks.TaskLists) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		for _, l := range page.Items {
			if l.Title == title {
				found = TaskList{ID: l.Id, Title: l.Title}
				return errFound
			}
		}
		return nil
	})
	if errors.Is(err, errFound) {
		return found, true, nil
	}
	if err != nil {
		return TaskList{}, false, fmt.Errorf("failed to list task lists: %w", err)
	}
	return TaskList{}, false, nil
}

// CreateList creates a new task list.
func (c *Client) CreateList(ctx context.Context, title string) (TaskList, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return TaskList{}, err
	}
	created, err := c.service.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(ctx).Do()
	if err != nil {
		return TaskList{}, fmt.Errorf("failed to create task list: %w", err)
	}
	return TaskList{ID: created.Id, Title: created.Title}, nil
}

// InsertTask creates a task in listID.
func (c *Client) InsertTask(ctx context.Context, listID string, req InsertTaskRequest) (*Task, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if !req.Due.IsZero() {
		task.Due = req.Due.UTC().Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &Task{
		ID:       created.Id,
		Title:    created.Title,
		WebLink:  created.WebViewLink,
		Due:      created.Due,
		ParentID: created.Parent,
	}, nil
}
