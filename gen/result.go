package gen

import (
	ai "github.com/omnigen-ai/omnigen"
)

// Result is the terminal outcome of a generation run.
type Result struct {
	// Response is the provider's final response.
	Response *ai.Response

	// Messages is the full conversation, including assistant tool-call
	// messages and tool results appended during roundtrips.
	Messages []ai.Message

	// Roundtrips is the number of tool-execution cycles performed.
	// The provider was called Roundtrips+1 times.
	Roundtrips int

	// Usage is the total usage summed across every provider call.
	Usage ai.Usage

	// UsageByCall records each provider call's usage individually.
	UsageByCall []ai.Usage

	// ToolResults records every tool execution across all roundtrips.
	ToolResults []ai.ToolResult
}

// Text returns the final response content.
func (r *Result) Text() string {
	if r.Response == nil {
		return ""
	}
	return r.Response.Content
}

// HasToolCalls reports whether the final response still carries
// unresolved tool calls. This is the signal that the run terminated at
// the roundtrip cap or that no registered tool could handle the calls.
func (r *Result) HasToolCalls() bool {
	return r.Response != nil && r.Response.HasToolCalls()
}

// ObjectResult is the terminal outcome of an object generation run.
type ObjectResult struct {
	Result

	// Object is the parsed, schema-validated output.
	Object map[string]any
}
