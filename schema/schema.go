package schema

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind identifies a schema variant.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindBoolean  Kind = "boolean"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
	KindEnum     Kind = "enum"
	KindNullable Kind = "nullable"
	KindUnion    Kind = "union"
)

// Result is the outcome of validating a value against a schema.
// Errors is empty if and only if Valid is true.
type Result struct {
	Valid  bool
	Errors []string
}

// Err converts an invalid Result into a *ValidationError describing the
// failure, or nil when the Result is valid.
func (r Result) Err(value any) error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors, Value: value}
}

func ok() Result {
	return Result{Valid: true}
}

func fail(errs ...string) Result {
	return Result{Valid: false, Errors: errs}
}

// ValidationError reports a schema validation failure with the offending value.
type ValidationError struct {
	Errors []string
	Value  any
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "schema: " + e.Errors[0]
	}
	return fmt.Sprintf("schema: %d validation errors: %v", len(e.Errors), e.Errors)
}

// Schema is a typed validation and serialization rule for a value shape.
//
// Schemas are immutable: fluent mutators (Desc, Default, Optional, and the
// per-type constraints) return modified copies, so a schema instance can be
// reused safely across multiple object definitions.
type Schema interface {
	// Kind returns the schema variant.
	Kind() Kind

	// Validate checks a runtime value against the schema.
	// Validation is pure: the same value always yields the same Result.
	Validate(v any) Result

	// Wire serializes the schema to its JSON-Schema-like wire document.
	// Fields are present only when set; required is omitted when empty.
	Wire() map[string]any

	// optionalFlag reports whether the schema is marked optional when used
	// as an object property. Unexported to close the variant set.
	optionalFlag() bool
}

// marshalWire implements MarshalJSON for all schema variants.
func marshalWire(s Schema) ([]byte, error) {
	return json.Marshal(s.Wire())
}

// floatValue coerces the numeric Go types produced by JSON decoding and
// ordinary Go code into a float64. Returns false for non-numeric values.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// typeName describes a runtime value for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if _, isNum := floatValue(v); isNum {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}

// ptr returns a pointer to the value.
func ptr[T any](v T) *T {
	return &v
}
