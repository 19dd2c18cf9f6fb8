package openai

import (
	"encoding/json"
	"fmt"
)

// ContentKind tags a response content item.
type ContentKind int

const (
	KindOther ContentKind = iota
	KindJSON
	KindText
	KindRefusal
	KindReasoning
	KindAnnotations
	KindInputText
)

var kindByType = map[string]ContentKind{
	"output_json": KindJSON,
	"output_text": KindText,
	"refusal":     KindRefusal,
	"reasoning":   KindReasoning,
	"annotations": KindAnnotations,
	"input_text":  KindInputText,
}

// Envelope is the Responses API reply. Content may arrive under either
// "response" or "output"; "response" wins when both are present.
type Envelope struct {
	ID                string             `json:"id,omitempty"`
	Status            string             `json:"status,omitempty"`
	IncompleteDetails *IncompleteDetails `json:"incomplete_details,omitempty"`
	Output            []Output           `json:"output,omitempty"`
	Response          []Output           `json:"response,omitempty"`
	Usage             *Usage             `json:"usage,omitempty"`
}

// IncompleteDetails explains a status of "incomplete".
type IncompleteDetails struct {
	Reason string `json:"reason,omitempty"`
}

// Usage reports token accounting.
type Usage struct {
	InputTokens  int `json:"input_tokens,omitempty"`
	OutputTokens int `json:"output_tokens,omitempty"`
	TotalTokens  int `json:"total_tokens,omitempty"`
}

// Output is one output item holding content parts.
type Output struct {
	ID      string    `json:"id,omitempty"`
	Type    string    `json:"type,omitempty"`
	Status  string    `json:"status,omitempty"`
	Role    string    `json:"role,omitempty"`
	Content []Content `json:"content"`
}

// Content is a tagged variant. Kind selects which payload field is meaningful:
// JSON for KindJSON, Text for KindText, Refusal for KindRefusal. RawType keeps
// the wire type string for every kind.
type Content struct {
	Kind    ContentKind
	RawType string
	Text    string
	JSON    json.RawMessage
	Refusal string
}

type wireContent struct {
	Type    string          `json:"type"`
	Text    *string         `json:"text,omitempty"`
	JSON    json.RawMessage `json:"json,omitempty"`
	Refusal json.RawMessage `json:"refusal,omitempty"`
}

// UnmarshalJSON decodes the wire shape into the tagged form.
func (c *Content) UnmarshalJSON(data []byte) error {
	var w wireContent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type == "" {
		return fmt.Errorf("openai: content item without type")
	}
	*c = Content{Kind: kindByType[w.Type], RawType: w.Type}
	if w.Text != nil {
		c.Text = *w.Text
	}
	switch c.Kind {
	case KindJSON:
		if len(w.JSON) > 0 && string(w.JSON) != "null" {
			c.JSON = w.JSON
		}
	case KindRefusal:
		c.Refusal = refusalText(w.Refusal, c.Text)
	}
	return nil
}

// MarshalJSON writes the wire shape back.
func (c Content) MarshalJSON() ([]byte, error) {
	w := wireContent{Type: c.RawType, JSON: c.JSON}
	if c.Text != "" {
		w.Text = &c.Text
	}
	if c.Kind == KindRefusal && c.Refusal != "" {
		w.Refusal, _ = json.Marshal(c.Refusal)
	}
	return json.Marshal(w)
}

// refusal arrives either as a bare string or as {code, reason}.
func refusalText(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Code   string `json:"code"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Reason != "" {
			return obj.Reason
		}
		return obj.Code
	}
	return fallback
}

// Outputs returns the populated output list.
func (e *Envelope) Outputs() []Output {
	if e.Response != nil {
		return e.Response
	}
	return e.Output
}

// IsIncompleteDueToMaxTokens reports output truncation.
func (e *Envelope) IsIncompleteDueToMaxTokens() bool {
	return e.Status == "incomplete" && e.IncompleteDetails != nil && e.IncompleteDetails.Reason == "max_output_tokens"
}
