package schema

// Nullable wraps an inner schema so that null is always a valid value.
func Nullable(inner Schema) *NullableSchema {
	return &NullableSchema{inner: inner}
}

// NullableSchema accepts null in addition to whatever its inner schema
// accepts.
type NullableSchema struct {
	optional bool
	inner    Schema
}

func (s *NullableSchema) clone() *NullableSchema {
	c := *s
	return &c
}

// Optional returns a copy marked optional when used as an object property.
func (s *NullableSchema) Optional() *NullableSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Inner returns the wrapped schema.
func (s *NullableSchema) Inner() Schema { return s.inner }

// Kind returns KindNullable.
func (s *NullableSchema) Kind() Kind { return KindNullable }

// Validate short-circuits on nil; any other value is delegated to the
// inner schema.
func (s *NullableSchema) Validate(v any) Result {
	if v == nil {
		return ok()
	}
	return s.inner.Validate(v)
}

// Wire serializes the schema. When the inner schema declares a single
// scalar "type", null is folded into a type array (["string","null"]);
// otherwise the document wraps the inner schema in an anyOf with a null
// branch. Exactly one encoding applies per shape so downstream consumers
// see a consistent document.
func (s *NullableSchema) Wire() map[string]any {
	inner := s.inner.Wire()
	if t, hasType := inner["type"].(string); hasType && isScalarType(t) {
		out := make(map[string]any, len(inner))
		for k, v := range inner {
			out[k] = v
		}
		out["type"] = []string{t, "null"}
		return out
	}
	return map[string]any{
		"anyOf": []map[string]any{
			inner,
			{"type": "null"},
		},
	}
}

func isScalarType(t string) bool {
	switch t {
	case "string", "number", "integer", "boolean":
		return true
	default:
		return false
	}
}

// MarshalJSON serializes the wire document.
func (s *NullableSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *NullableSchema) optionalFlag() bool {
	return s.optional || s.inner.optionalFlag()
}
