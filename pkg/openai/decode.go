package openai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DecodeReport describes content that was seen but not used.
type DecodeReport struct {
	UnhandledTypes []string
	Refusals       []string
	TextSample     string
}

// Decode unmarshals the first usable payload into v. Inline JSON content is
// preferred; text content is tried only when no JSON content decodes.
func (e *Envelope) Decode(v any) (DecodeReport, error) {
	var report DecodeReport
	if e.IsIncompleteDueToMaxTokens() {
		return report, ErrIncomplete
	}

	var texts []string
	unhandled := map[string]struct{}{}
	for _, out := range e.Outputs() {
		for _, c := range out.Content {
			switch c.Kind {
			case KindJSON:
				if len(c.JSON) == 0 {
					continue
				}
				if err := json.Unmarshal(c.JSON, v); err == nil {
					return report, nil
				}
			case KindText:
				if c.Text != "" {
					texts = append(texts, c.Text)
				}
			case KindRefusal:
				report.Refusals = append(report.Refusals, c.Refusal)
			default:
				unhandled[c.RawType] = struct{}{}
			}
		}
	}

	for t := range unhandled {
		report.UnhandledTypes = append(report.UnhandledTypes, t)
	}
	sort.Strings(report.UnhandledTypes)

	for _, text := range texts {
		if err := json.Unmarshal([]byte(ExtractJSON(text)), v); err == nil {
			return report, nil
		}
	}
	if len(texts) > 0 {
		report.TextSample = truncate(texts[0], maxErrorBodySize)
	}
	return report, fmt.Errorf("%w: no decodable content", ErrInvalidResponse)
}

// ExtractJSON strips markdown code fences and surrounding prose, returning
// the span from the first '{' or '[' to the matching last '}' or ']'.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
