package omnigen

import "encoding/json"

// Tool is the wire-level declaration of a function the model may call.
// It carries no handler; executable tools live in the tool subpackage and
// produce this form via Definition().
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// Parameters is a JSON Schema object defining the function parameters.
	Parameters json.RawMessage
}

// ToolFormat identifies a provider-specific tool declaration shape.
type ToolFormat string

const (
	// ToolFormatOpenAI is the OpenAI function-calling shape:
	// {"type":"function","function":{"name":...,"description":...,"parameters":...}}.
	ToolFormatOpenAI ToolFormat = "openai"
	// ToolFormatBare is the flat shape: {"name":...,"description":...,"parameters":...}.
	ToolFormatBare ToolFormat = "bare"
	// ToolFormatAnthropic is the Anthropic shape:
	// {"name":...,"description":...,"input_schema":...}.
	ToolFormatAnthropic ToolFormat = "anthropic"
)

// Format renders the tool in the given provider-specific shape.
// An unrecognized format falls back to ToolFormatOpenAI.
func (t Tool) Format(format ToolFormat) map[string]any {
	params := any(map[string]any{"type": "object", "properties": map[string]any{}})
	if len(t.Parameters) > 0 {
		params = json.RawMessage(t.Parameters)
	}

	switch format {
	case ToolFormatBare:
		return map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"parameters":  params,
		}
	case ToolFormatAnthropic:
		return map[string]any{
			"name":         t.Name,
			"description":  t.Description,
			"input_schema": params,
		}
	default:
		return map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  params,
			},
		}
	}
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID is a unique identifier for this tool call (used to match results).
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON string containing the arguments to pass.
	Arguments string `json:"arguments"`
}

// ArgumentsMap decodes the call arguments into a map.
// An empty argument string decodes to an empty map.
func (c ToolCall) ArgumentsMap() (map[string]any, error) {
	if c.Arguments == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(c.Arguments), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// ToolResult represents the outcome of executing a tool call.
// Exactly one of Result and Error is set.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Result is the value returned by the tool on success.
	Result any `json:"result,omitempty"`
	// Error describes the failure when the tool did not succeed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the result represents an error.
func (r ToolResult) Failed() bool {
	return r.Error != ""
}

// Content renders the result as a string suitable for a conversation message.
// Errors render as-is; non-string results are JSON encoded.
func (r ToolResult) Content() string {
	if r.Error != "" {
		return r.Error
	}
	switch v := r.Result.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// ToolChoice controls how the model uses tools.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide when to use tools (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables tool use for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces the model to use a tool.
	ToolChoiceRequired ToolChoice = "required"
)
