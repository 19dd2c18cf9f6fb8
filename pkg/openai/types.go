package openai

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openaiImpl is the internal implementation of IOpenAI
type openaiImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is the body of a POST /responses call.
type Request struct {
	Model           string     `json:"model"`
	Input           []Message  `json:"input"`
	Text            *TextSpec  `json:"text,omitempty"`
	MaxOutputTokens int        `json:"max_output_tokens,omitempty"`
	Reasoning       *Reasoning `json:"reasoning,omitempty"`
}

// Message is one role-tagged input turn.
type Message struct {
	Role    string         `json:"role"`
	Content []InputContent `json:"content"`
}

// InputContent is a text or image part of a message.
type InputContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// TextSpec constrains the output format.
type TextSpec struct {
	Format Format `json:"format"`
}

// Format pins the output to a named JSON schema.
type Format struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
	Strict bool            `json:"strict,omitempty"`
}

// Reasoning sets the model's reasoning effort.
type Reasoning struct {
	Effort string `json:"effort"`
}

// Response is a decoded 2xx reply.
type Response struct {
	Envelope  Envelope
	RequestID string
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Content: []InputContent{{Type: InputText, Text: text}}}
}

// JSONSchemaFormat wraps a schema document as the request text format.
func JSONSchemaFormat(name string, schema json.RawMessage) *TextSpec {
	return &TextSpec{Format: Format{Type: FormatJSONSchema, Name: name, Schema: schema, Strict: true}}
}
