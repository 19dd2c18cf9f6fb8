package openai

import "time"

const (
	// DefaultBaseURL is the default Responses API endpoint root
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when a request leaves Model empty
	DefaultModel = "gpt-5-mini"

	// DefaultTimeout bounds each HTTP round trip
	DefaultTimeout = 30 * time.Second

	// DefaultReasoningEffort keeps latency low for planning calls
	DefaultReasoningEffort = "low"

	responsesPath    = "/responses"
	maxErrorBodySize = 512
	requestIDHeader  = "X-Request-Id"
)

// Roles and content types used by the Responses API.
const (
	RoleSystem    = "system"
	RoleDeveloper = "developer"
	RoleUser      = "user"

	InputText  = "input_text"
	InputImage = "input_image"

	FormatJSONSchema = "json_schema"
)
