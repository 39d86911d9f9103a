package tool

import (
	"context"
	"encoding/json"

	ai "github.com/omnigen-ai/omnigen"
)

// Executor runs tool calls against a registry under a policy.
//
// Execution failures (handler errors, validation failures, policy
// violations) are captured in the returned ToolResult so the model can
// see them and recover. Only structural problems, such as an unknown
// tool name, surface as errors from Execute.
type Executor struct {
	registry *Registry
	policy   *Policy
}

// NewExecutor creates an executor over the given registry with a
// permit-everything policy.
func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry, policy: NewPolicy()}
}

// WithPolicy returns a copy of the executor using the given policy.
func (e *Executor) WithPolicy(p *Policy) *Executor {
	return &Executor{registry: e.registry, policy: p}
}

// Registry returns the executor's underlying registry.
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Execute runs a single tool call and returns its result.
//
// If the tool is not registered, Execute returns *ErrToolNotFound.
// Policy violations become failed results unless the policy is
// configured with FailOnViolation, in which case the *SecurityError is
// returned directly.
func (e *Executor) Execute(ctx context.Context, call ai.ToolCall) (ai.ToolResult, error) {
	t, ok := e.registry.Get(call.Name)
	if !ok {
		return ai.ToolResult{}, &ErrToolNotFound{Name: call.Name}
	}

	args, err := call.ArgumentsMap()
	if err != nil {
		return failedResult(call, &ArgumentValidationError{
			Tool:   call.Name,
			Errors: []string{"arguments are not valid JSON: " + err.Error()},
		}), nil
	}

	args, err = e.policy.Check(ctx, call.Name, args)
	if err != nil {
		if e.policy.failsHard() {
			return ai.ToolResult{}, err
		}
		return failedResult(call, err), nil
	}

	// Sanitized arguments replace the originals for the handler.
	if data, err := json.Marshal(args); err == nil {
		call.Arguments = string(data)
	}

	result, err := e.run(ctx, t, call)
	if err != nil {
		if sec, ok := err.(*SecurityError); ok && e.policy.failsHard() {
			return ai.ToolResult{}, sec
		}
		// Return error as tool result so model can potentially recover
		return failedResult(call, err), nil
	}

	return ai.ToolResult{
		ToolCallID: call.ID,
		Result:     result,
	}, nil
}

// run invokes the tool under the policy's timeout, if any.
func (e *Executor) run(ctx context.Context, t *Tool, call ai.ToolCall) (any, error) {
	timeout := e.policy.Timeout()
	if timeout <= 0 {
		return t.Execute(ctx, call)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := t.Execute(ctx, call)
		done <- outcome{result, err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &SecurityError{Tool: t.Name, Reason: ReasonTimeout}
		}
		return nil, ctx.Err()
	}
}

// ExecuteAll runs every call in order and returns one result per call,
// index-aligned with the input. It never aborts early: unknown tools
// and execution failures become failed results in place.
func (e *Executor) ExecuteAll(ctx context.Context, calls []ai.ToolCall) []ai.ToolResult {
	results := make([]ai.ToolResult, len(calls))
	for i, call := range calls {
		result, err := e.Execute(ctx, call)
		if err != nil {
			result = failedResult(call, err)
		}
		results[i] = result
	}
	return results
}

func failedResult(call ai.ToolCall, err error) ai.ToolResult {
	return ai.ToolResult{
		ToolCallID: call.ID,
		Error:      err.Error(),
	}
}
