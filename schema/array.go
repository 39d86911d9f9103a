package schema

import (
	"fmt"
	"reflect"
)

// Array creates an array schema with the given element schema.
func Array(items Schema) *ArraySchema {
	return &ArraySchema{items: items}
}

// ArraySchema validates sequential collections. Associative collections
// (maps) are rejected even when empty; an empty slice is always a valid
// empty list (subject to minItems).
type ArraySchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	items    Schema
	minItems *int
	maxItems *int
}

func (s *ArraySchema) clone() *ArraySchema {
	c := *s
	return &c
}

// Desc returns a copy with the description set.
func (s *ArraySchema) Desc(description string) *ArraySchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *ArraySchema) Default(value []any) *ArraySchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *ArraySchema) Optional() *ArraySchema {
	c := s.clone()
	c.optional = true
	return c
}

// MinItems returns a copy with a minimum length constraint.
func (s *ArraySchema) MinItems(n int) *ArraySchema {
	c := s.clone()
	c.minItems = ptr(n)
	return c
}

// MaxItems returns a copy with a maximum length constraint.
func (s *ArraySchema) MaxItems(n int) *ArraySchema {
	c := s.clone()
	c.maxItems = ptr(n)
	return c
}

// Items returns the element schema.
func (s *ArraySchema) Items() Schema { return s.items }

// Kind returns KindArray.
func (s *ArraySchema) Kind() Kind { return KindArray }

// Validate checks that v is a slice or array whose elements satisfy the
// element schema.
func (s *ArraySchema) Validate(v any) Result {
	if v == nil {
		return fail("expected array, got null")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fail(fmt.Sprintf("expected array, got %s", typeName(v)))
	}

	var errs []string
	length := rv.Len()
	if s.minItems != nil && length < *s.minItems {
		errs = append(errs, fmt.Sprintf("length %d is less than minItems %d", length, *s.minItems))
	}
	if s.maxItems != nil && length > *s.maxItems {
		errs = append(errs, fmt.Sprintf("length %d exceeds maxItems %d", length, *s.maxItems))
	}

	if s.items != nil {
		for i := 0; i < length; i++ {
			res := s.items.Validate(rv.Index(i).Interface())
			for _, e := range res.Errors {
				errs = append(errs, fmt.Sprintf("[%d]: %s", i, e))
			}
		}
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

// Wire serializes the schema to its wire document.
func (s *ArraySchema) Wire() map[string]any {
	w := map[string]any{"type": "array"}
	if s.items != nil {
		w["items"] = s.items.Wire()
	}
	if s.description != "" {
		w["description"] = s.description
	}
	if s.minItems != nil {
		w["minItems"] = *s.minItems
	}
	if s.maxItems != nil {
		w["maxItems"] = *s.maxItems
	}
	if s.hasDefault {
		w["default"] = s.def
	}
	return w
}

// MarshalJSON serializes the wire document.
func (s *ArraySchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *ArraySchema) optionalFlag() bool { return s.optional }
