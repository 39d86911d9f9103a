package tool

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/schema"
)

// Handler is a function that executes a tool call and returns a result.
// The context supports cancellation and timeout.
// The args map contains the decoded tool call arguments.
// Returns the result value, or an error if execution failed.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// TypedHandler is a function that executes a tool call with typed arguments.
// The args parameter is automatically unmarshaled from the tool call's JSON arguments.
type TypedHandler[T any] func(ctx context.Context, args T) (any, error)

// Tool describes a callable capability exposed to the model: a name, a
// description, a parameter schema, an optional return schema, and the
// handler that runs when the model invokes it.
//
// A tool without a handler is declaration-only: it can be advertised to
// the provider but cannot be executed locally.
type Tool struct {
	Name        string
	Description string
	Parameters  *schema.ObjectSchema
	// RawParameters carries a prebuilt JSON Schema document for tools whose
	// schema originates outside the schema package, such as tools imported
	// from an MCP server. It is used by Definition when Parameters is nil.
	// Raw-schema tools skip local argument validation.
	RawParameters json.RawMessage
	Returns       schema.Schema
	Handler       Handler
}

// Option configures a Tool during construction.
type Option func(*Tool)

// WithReturns sets the schema the handler's result is validated against.
func WithReturns(s schema.Schema) Option {
	return func(t *Tool) { t.Returns = s }
}

// WithHandler sets the tool's handler.
func WithHandler(h Handler) Option {
	return func(t *Tool) { t.Handler = h }
}

// New creates a tool with the given name, description, and parameter schema.
func New(name, description string, params *schema.ObjectSchema, opts ...Option) *Tool {
	t := &Tool{
		Name:        name,
		Description: description,
		Parameters:  params,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Callable reports whether the tool has a handler and can be executed locally.
func (t *Tool) Callable() bool {
	return t.Handler != nil
}

// Definition converts the tool to its wire-level definition for providers.
func (t *Tool) Definition() ai.Tool {
	var params json.RawMessage
	switch {
	case t.Parameters != nil:
		params, _ = json.Marshal(t.Parameters)
	case len(t.RawParameters) > 0:
		params = t.RawParameters
	default:
		params = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  params,
	}
}

// Execute decodes and validates the call's arguments, runs the handler,
// and validates the result against the Returns schema when one is set.
//
// Argument validation failures are reported as *ArgumentValidationError
// before the handler runs. Result validation failures are reported as
// *ReturnValidationError; the handler's side effects have already
// happened by then.
func (t *Tool) Execute(ctx context.Context, call ai.ToolCall) (any, error) {
	if t.Handler == nil {
		return nil, fmt.Errorf("tool: %s has no handler", t.Name)
	}

	args, err := call.ArgumentsMap()
	if err != nil {
		return nil, &ArgumentValidationError{
			Tool:   t.Name,
			Errors: []string{fmt.Sprintf("arguments are not valid JSON: %v", err)},
		}
	}

	if t.Parameters != nil {
		if res := t.Parameters.Validate(args); !res.Valid {
			return nil, &ArgumentValidationError{Tool: t.Name, Errors: res.Errors}
		}
	}

	result, err := t.Handler(ctx, args)
	if err != nil {
		return nil, err
	}

	if t.Returns != nil {
		if res := t.Returns.Validate(normalize(result)); !res.Valid {
			return nil, &ReturnValidationError{Tool: t.Name, Errors: res.Errors}
		}
	}
	return result, nil
}

// normalize round-trips a handler result through JSON so struct returns
// validate the same way their serialized form would.
func normalize(v any) any {
	switch v.(type) {
	case nil, string, bool, float64, int, int64, map[string]any, []any:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
