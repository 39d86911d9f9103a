package tool

import (
	"fmt"
	"strings"
)

// ErrToolNotFound is returned when a tool call references an unregistered tool.
type ErrToolNotFound struct {
	Name string
}

// Error returns a formatted error message including the tool name.
func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool: not found: %s", e.Name)
}

// ErrToolAlreadyRegistered is returned when registering a tool with a duplicate name.
type ErrToolAlreadyRegistered struct {
	Name string
}

// Error returns a formatted error message including the duplicate tool name.
func (e *ErrToolAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool: already registered: %s", e.Name)
}

// ArgumentValidationError is returned when a tool call's arguments fail
// validation against the tool's parameter schema. The handler is never
// invoked when this error occurs.
type ArgumentValidationError struct {
	Tool   string
	Errors []string
}

// Error returns a formatted message listing every validation failure.
func (e *ArgumentValidationError) Error() string {
	return fmt.Sprintf("tool: %s: invalid arguments: %s", e.Tool, strings.Join(e.Errors, "; "))
}

// ReturnValidationError is returned when a handler's result fails
// validation against the tool's return schema. The handler has already
// run when this error occurs.
type ReturnValidationError struct {
	Tool   string
	Errors []string
}

// Error returns a formatted message listing every validation failure.
func (e *ReturnValidationError) Error() string {
	return fmt.Sprintf("tool: %s: invalid result: %s", e.Tool, strings.Join(e.Errors, "; "))
}

// SecurityReason identifies why a policy check rejected a tool call.
type SecurityReason string

const (
	// ReasonNotAllowed means an allow list is in effect and the tool is not on it.
	ReasonNotAllowed SecurityReason = "not_allowed"
	// ReasonExplicitlyDenied means the tool is on the deny list.
	ReasonExplicitlyDenied SecurityReason = "explicitly_denied"
	// ReasonConfirmationDenied means the confirmation hook rejected the call.
	ReasonConfirmationDenied SecurityReason = "confirmation_denied"
	// ReasonTimeout means the call exceeded the policy's execution timeout.
	ReasonTimeout SecurityReason = "timeout"
)

// SecurityError is returned when a policy check or policy-imposed limit
// blocks a tool call.
type SecurityError struct {
	Tool   string
	Reason SecurityReason
}

// Error returns a formatted message including the tool name and reason.
func (e *SecurityError) Error() string {
	switch e.Reason {
	case ReasonNotAllowed:
		return fmt.Sprintf("tool: %s is not on the allow list", e.Tool)
	case ReasonExplicitlyDenied:
		return fmt.Sprintf("tool: %s is explicitly denied", e.Tool)
	case ReasonConfirmationDenied:
		return fmt.Sprintf("tool: %s call was not confirmed", e.Tool)
	case ReasonTimeout:
		return fmt.Sprintf("tool: %s timed out", e.Tool)
	}
	return fmt.Sprintf("tool: %s blocked by policy", e.Tool)
}
