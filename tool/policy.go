package tool

import (
	"context"
	"time"
)

// ConfirmFunc decides whether a tool call may proceed. It receives the
// tool name and the (already sanitized) arguments. Returning false
// blocks the call with ReasonConfirmationDenied.
type ConfirmFunc func(ctx context.Context, name string, args map[string]any) bool

// SanitizeFunc rewrites a tool call's arguments before confirmation and
// execution. It must return the arguments to use; returning the input
// unchanged is valid.
type SanitizeFunc func(name string, args map[string]any) map[string]any

// Policy controls which tool calls an Executor will run and under what
// limits. The zero value permits everything.
//
// Policies are immutable: every method returns a modified copy, so a
// policy can be shared across executors and goroutines safely.
//
//	p := tool.NewPolicy().
//	    Allow("search", "weather").
//	    Deny("delete_file").
//	    WithTimeout(10 * time.Second)
type Policy struct {
	allow           map[string]bool
	deny            map[string]bool
	confirm         ConfirmFunc
	sanitize        SanitizeFunc
	timeout         time.Duration
	failOnViolation bool
}

// NewPolicy creates a policy that permits every tool call.
func NewPolicy() *Policy {
	return &Policy{}
}

func (p *Policy) clone() *Policy {
	cp := *p
	if p.allow != nil {
		cp.allow = make(map[string]bool, len(p.allow))
		for k, v := range p.allow {
			cp.allow[k] = v
		}
	}
	if p.deny != nil {
		cp.deny = make(map[string]bool, len(p.deny))
		for k, v := range p.deny {
			cp.deny[k] = v
		}
	}
	return &cp
}

// Allow returns a copy of the policy with the named tools added to the
// allow list. Once an allow list exists, tools not on it are blocked.
func (p *Policy) Allow(names ...string) *Policy {
	cp := p.clone()
	if cp.allow == nil {
		cp.allow = make(map[string]bool, len(names))
	}
	for _, name := range names {
		cp.allow[name] = true
	}
	return cp
}

// Deny returns a copy of the policy with the named tools added to the
// deny list. Denied tools are blocked even when they appear on the
// allow list.
func (p *Policy) Deny(names ...string) *Policy {
	cp := p.clone()
	if cp.deny == nil {
		cp.deny = make(map[string]bool, len(names))
	}
	for _, name := range names {
		cp.deny[name] = true
	}
	return cp
}

// WithConfirm returns a copy of the policy that asks fn before every
// tool call that passes the allow and deny lists.
func (p *Policy) WithConfirm(fn ConfirmFunc) *Policy {
	cp := p.clone()
	cp.confirm = fn
	return cp
}

// WithSanitizer returns a copy of the policy that passes arguments
// through fn before confirmation and execution.
func (p *Policy) WithSanitizer(fn SanitizeFunc) *Policy {
	cp := p.clone()
	cp.sanitize = fn
	return cp
}

// WithTimeout returns a copy of the policy that bounds each tool call's
// execution time. A zero duration means no limit.
func (p *Policy) WithTimeout(d time.Duration) *Policy {
	cp := p.clone()
	cp.timeout = d
	return cp
}

// FailOnViolation returns a copy of the policy under which the Executor
// surfaces policy violations as errors instead of failed tool results.
func (p *Policy) FailOnViolation() *Policy {
	cp := p.clone()
	cp.failOnViolation = true
	return cp
}

// Timeout returns the policy's per-call execution limit, or zero when
// unbounded.
func (p *Policy) Timeout() time.Duration {
	if p == nil {
		return 0
	}
	return p.timeout
}

// Check evaluates the policy against a tool call and returns the
// sanitized arguments. Deny is checked first, then the allow list, then
// the confirmation hook. A returned *SecurityError names the reason.
func (p *Policy) Check(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	if p == nil {
		return args, nil
	}
	if p.deny[name] {
		return nil, &SecurityError{Tool: name, Reason: ReasonExplicitlyDenied}
	}
	if p.allow != nil && !p.allow[name] {
		return nil, &SecurityError{Tool: name, Reason: ReasonNotAllowed}
	}
	if p.sanitize != nil {
		args = p.sanitize(name, args)
	}
	if p.confirm != nil && !p.confirm(ctx, name, args) {
		return nil, &SecurityError{Tool: name, Reason: ReasonConfirmationDenied}
	}
	return args, nil
}

// failsHard reports whether violations should abort instead of being
// captured as failed results.
func (p *Policy) failsHard() bool {
	return p != nil && p.failOnViolation
}
