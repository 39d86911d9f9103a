package schema

// Union creates a schema that accepts values valid under any of the
// candidate schemas. Candidates are tried in order and validation succeeds
// on the first match.
func Union(candidates ...Schema) *UnionSchema {
	return &UnionSchema{candidates: candidates}
}

// UnionSchema validates against an ordered list of candidate schemas.
type UnionSchema struct {
	description string
	optional    bool

	candidates []Schema
}

func (s *UnionSchema) clone() *UnionSchema {
	c := *s
	c.candidates = make([]Schema, len(s.candidates))
	copy(c.candidates, s.candidates)
	return &c
}

// Desc returns a copy with the description set.
func (s *UnionSchema) Desc(description string) *UnionSchema {
	c := s.clone()
	c.description = description
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *UnionSchema) Optional() *UnionSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Candidates returns the candidate schemas in order.
func (s *UnionSchema) Candidates() []Schema {
	cs := make([]Schema, len(s.candidates))
	copy(cs, s.candidates)
	return cs
}

// Kind returns KindUnion.
func (s *UnionSchema) Kind() Kind { return KindUnion }

// Validate tries the candidates in order and succeeds on the first match.
// When every candidate fails, a single generic error is returned; the
// per-candidate errors are not surfaced.
func (s *UnionSchema) Validate(v any) Result {
	for _, candidate := range s.candidates {
		if res := candidate.Validate(v); res.Valid {
			return ok()
		}
	}
	return fail("value does not match any schema in the union")
}

// Wire serializes the schema as an anyOf over the candidate documents.
func (s *UnionSchema) Wire() map[string]any {
	branches := make([]map[string]any, len(s.candidates))
	for i, candidate := range s.candidates {
		branches[i] = candidate.Wire()
	}
	w := map[string]any{"anyOf": branches}
	if s.description != "" {
		w["description"] = s.description
	}
	return w
}

// MarshalJSON serializes the wire document.
func (s *UnionSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *UnionSchema) optionalFlag() bool { return s.optional }
