package openai

import "context"

// IOpenAI is a Responses API client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateResponse posts req and returns the decoded envelope.
	// 429 replies surface as *RateLimitError, other non-2xx as *StatusError,
	// and truncated output as ErrIncomplete.
	CreateResponse(ctx context.Context, req *Request) (*Response, error)

	// Model returns the default model.
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
