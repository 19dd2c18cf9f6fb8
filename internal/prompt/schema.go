package prompt

import (
	"encoding/json"

	"tidy-planner/internal/model"
)

// SchemaName is the json_schema format name sent with planning requests.
const SchemaName = "tidy_plan"

var taskFields = []string{"id", "title", "category", "exitTag", "checklist", "tips", "links", "estimatedMinutes", "note"}

// Schema returns a strict JSON schema that pins the tasks array to exactly
// itemCount entries.
func Schema(itemCount int) json.RawMessage {
	tags := make([]string, 0, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		tags = append(tags, string(tag))
	}
	stringArray := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}

	doc := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tasks": map[string]any{
				"type":     "array",
				"minItems": itemCount,
				"maxItems": itemCount,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"id":               map[string]any{"type": "string"},
						"title":            map[string]any{"type": "string"},
						"category":         map[string]any{"type": "string"},
						"exitTag":          map[string]any{"type": "string", "enum": tags},
						"checklist":        stringArray,
						"tips":             map[string]any{"type": "string"},
						"links":            stringArray,
						"estimatedMinutes": map[string]any{"type": "integer"},
						"note":             map[string]any{"type": "string"},
					},
					"required": taskFields,
				},
			},
		},
		"required": []string{"tasks"},
	}
	b, _ := json.Marshal(doc)
	return b
}
