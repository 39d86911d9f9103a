package schema

import "fmt"

// Bool creates a boolean schema.
func Bool() *BooleanSchema {
	return &BooleanSchema{}
}

// BooleanSchema validates boolean values. It carries no constraints.
type BooleanSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool
}

func (s *BooleanSchema) clone() *BooleanSchema {
	c := *s
	return &c
}

// Desc returns a copy with the description set.
func (s *BooleanSchema) Desc(description string) *BooleanSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *BooleanSchema) Default(value bool) *BooleanSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *BooleanSchema) Optional() *BooleanSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Kind returns KindBoolean.
func (s *BooleanSchema) Kind() Kind { return KindBoolean }

// Validate checks that v is a bool.
func (s *BooleanSchema) Validate(v any) Result {
	if _, isBool := v.(bool); !isBool {
		return fail(fmt.Sprintf("expected boolean, got %s", typeName(v)))
	}
	return ok()
}

// Wire serializes the schema to its wire document.
func (s *BooleanSchema) Wire() map[string]any {
	w := map[string]any{"type": "boolean"}
	if s.description != "" {
		w["description"] = s.description
	}
	if s.hasDefault {
		w["default"] = s.def
	}
	return w
}

// MarshalJSON serializes the wire document.
func (s *BooleanSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *BooleanSchema) optionalFlag() bool { return s.optional }
