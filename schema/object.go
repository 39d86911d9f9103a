package schema

import (
	"fmt"
	"sort"
)

// Object creates an object schema with no properties.
// Properties are added with Field; unknown keys are rejected unless
// AdditionalProperties(true) is set.
func Object() *ObjectSchema {
	return &ObjectSchema{}
}

// property pairs a name with its schema, preserving declaration order.
type property struct {
	name   string
	schema Schema
}

// ObjectSchema validates maps with declared, ordered properties.
type ObjectSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	properties []property
	additional *bool
}

func (s *ObjectSchema) clone() *ObjectSchema {
	c := *s
	c.properties = make([]property, len(s.properties))
	copy(c.properties, s.properties)
	return &c
}

// Desc returns a copy with the description set.
func (s *ObjectSchema) Desc(description string) *ObjectSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *ObjectSchema) Default(value map[string]any) *ObjectSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *ObjectSchema) Optional() *ObjectSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Field returns a copy with the named property added. A property whose
// schema is marked Optional may be absent; all others are required.
// Re-declaring an existing name replaces its schema in place.
func (s *ObjectSchema) Field(name string, sch Schema) *ObjectSchema {
	c := s.clone()
	for i, p := range c.properties {
		if p.name == name {
			c.properties[i].schema = sch
			return c
		}
	}
	c.properties = append(c.properties, property{name: name, schema: sch})
	return c
}

// AdditionalProperties returns a copy with the unknown-key policy set.
// The default (unset) rejects unknown keys.
func (s *ObjectSchema) AdditionalProperties(allowed bool) *ObjectSchema {
	c := s.clone()
	c.additional = ptr(allowed)
	return c
}

// PropertyNames returns the declared property names in declaration order.
func (s *ObjectSchema) PropertyNames() []string {
	names := make([]string, len(s.properties))
	for i, p := range s.properties {
		names[i] = p.name
	}
	return names
}

// Property returns the schema for the named property.
func (s *ObjectSchema) Property(name string) (Schema, bool) {
	for _, p := range s.properties {
		if p.name == name {
			return p.schema, true
		}
	}
	return nil, false
}

// Kind returns KindObject.
func (s *ObjectSchema) Kind() Kind { return KindObject }

// Validate checks that v is a map containing every required property,
// that each present property validates against its schema, and that no
// undeclared keys are present (unless additional properties are allowed).
func (s *ObjectSchema) Validate(v any) Result {
	obj, isMap := v.(map[string]any)
	if !isMap {
		return fail(fmt.Sprintf("expected object, got %s", typeName(v)))
	}

	var errs []string
	for _, p := range s.properties {
		value, present := obj[p.name]
		if !present {
			if !p.schema.optionalFlag() {
				errs = append(errs, fmt.Sprintf("missing property %q", p.name))
			}
			continue
		}
		res := p.schema.Validate(value)
		for _, e := range res.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", p.name, e))
		}
	}

	if s.additional == nil || !*s.additional {
		var unknown []string
		for key := range obj {
			if _, declared := s.Property(key); !declared {
				unknown = append(unknown, key)
			}
		}
		// Map iteration order is random; sort so repeated validation of
		// the same value yields an identical Result.
		sort.Strings(unknown)
		for _, key := range unknown {
			errs = append(errs, fmt.Sprintf("unknown property %q", key))
		}
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

// Wire serializes the schema to its wire document. Properties appear under
// "properties"; non-optional property names are listed in "required" in
// declaration order, omitted entirely when empty.
func (s *ObjectSchema) Wire() map[string]any {
	props := make(map[string]any, len(s.properties))
	var required []string
	for _, p := range s.properties {
		props[p.name] = p.schema.Wire()
		if !p.schema.optionalFlag() {
			required = append(required, p.name)
		}
	}

	w := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		w["required"] = required
	}
	if s.additional != nil {
		w["additionalProperties"] = *s.additional
	}
	if s.description != "" {
		w["description"] = s.description
	}
	if s.hasDefault {
		w["default"] = s.def
	}
	return w
}

// MarshalJSON serializes the wire document.
func (s *ObjectSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *ObjectSchema) optionalFlag() bool { return s.optional }
