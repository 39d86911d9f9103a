package schema

import "fmt"

// Enum creates a schema accepting a fixed set of scalar literals.
func Enum(values ...any) *EnumSchema {
	return &EnumSchema{values: values}
}

// EnumStrings creates an enum schema from string literals.
func EnumStrings(values ...string) *EnumSchema {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return &EnumSchema{values: vs}
}

// EnumSchema validates membership in a fixed set of scalar literals.
type EnumSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	values []any
}

func (s *EnumSchema) clone() *EnumSchema {
	c := *s
	c.values = make([]any, len(s.values))
	copy(c.values, s.values)
	return &c
}

// Desc returns a copy with the description set.
func (s *EnumSchema) Desc(description string) *EnumSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *EnumSchema) Default(value any) *EnumSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *EnumSchema) Optional() *EnumSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Values returns the legal literals.
func (s *EnumSchema) Values() []any {
	vs := make([]any, len(s.values))
	copy(vs, s.values)
	return vs
}

// Kind returns KindEnum.
func (s *EnumSchema) Kind() Kind { return KindEnum }

// Validate checks membership. Numeric literals compare by value, so an
// int literal 2 matches the float64(2) produced by JSON decoding.
func (s *EnumSchema) Validate(v any) Result {
	for _, candidate := range s.values {
		if scalarEqual(v, candidate) {
			return ok()
		}
	}
	return fail(fmt.Sprintf("value %v is not one of the allowed values %v", v, s.values))
}

func scalarEqual(a, b any) bool {
	if a == b {
		return true
	}
	af, aNum := floatValue(a)
	bf, bNum := floatValue(b)
	return aNum && bNum && af == bf
}

// Wire serializes the schema to its wire document. A "type" key is emitted
// when every literal shares one scalar type.
func (s *EnumSchema) Wire() map[string]any {
	w := map[string]any{"enum": s.Values()}
	if t := s.uniformType(); t != "" {
		w["type"] = t
	}
	if s.description != "" {
		w["description"] = s.description
	}
	if s.hasDefault {
		w["default"] = s.def
	}
	return w
}

func (s *EnumSchema) uniformType() string {
	uniform := ""
	for _, v := range s.values {
		var t string
		switch v.(type) {
		case string:
			t = "string"
		case bool:
			t = "boolean"
		default:
			if f, isNum := floatValue(v); isNum {
				if isIntegral(f) {
					t = "integer"
				} else {
					t = "number"
				}
			}
		}
		if t == "" {
			return ""
		}
		// Integer and number literals mix into "number".
		if uniform == "" {
			uniform = t
		} else if uniform != t {
			if (uniform == "integer" && t == "number") || (uniform == "number" && t == "integer") {
				uniform = "number"
			} else {
				return ""
			}
		}
	}
	return uniform
}

// MarshalJSON serializes the wire document.
func (s *EnumSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *EnumSchema) optionalFlag() bool { return s.optional }
