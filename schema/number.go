package schema

import (
	"fmt"
	"math"
)

// Number creates a floating-point number schema.
func Number() *NumberSchema {
	return &NumberSchema{}
}

// NumberSchema validates numeric values with optional range and multiple-of
// constraints.
type NumberSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	minimum    *float64
	maximum    *float64
	multipleOf *float64
}

func (s *NumberSchema) clone() *NumberSchema {
	c := *s
	return &c
}

// Desc returns a copy with the description set.
func (s *NumberSchema) Desc(description string) *NumberSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *NumberSchema) Default(value float64) *NumberSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *NumberSchema) Optional() *NumberSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Min returns a copy with an inclusive minimum.
func (s *NumberSchema) Min(n float64) *NumberSchema {
	c := s.clone()
	c.minimum = ptr(n)
	return c
}

// Max returns a copy with an inclusive maximum.
func (s *NumberSchema) Max(n float64) *NumberSchema {
	c := s.clone()
	c.maximum = ptr(n)
	return c
}

// MultipleOf returns a copy requiring the value to be a multiple of n.
// The check uses floating-point remainder with exact comparison; values
// that are only approximately multiples (e.g. 0.3 vs 0.1) may be rejected.
func (s *NumberSchema) MultipleOf(n float64) *NumberSchema {
	c := s.clone()
	c.multipleOf = ptr(n)
	return c
}

// Kind returns KindNumber.
func (s *NumberSchema) Kind() Kind { return KindNumber }

// Validate checks that v is a number satisfying the constraints.
func (s *NumberSchema) Validate(v any) Result {
	f, isNum := floatValue(v)
	if !isNum {
		return fail(fmt.Sprintf("expected number, got %s", typeName(v)))
	}
	return validateNumeric(f, s.minimum, s.maximum, s.multipleOf)
}

// Wire serializes the schema to its wire document.
func (s *NumberSchema) Wire() map[string]any {
	w := map[string]any{"type": "number"}
	numericWire(w, s.description, s.def, s.hasDefault, s.minimum, s.maximum, s.multipleOf)
	return w
}

// MarshalJSON serializes the wire document.
func (s *NumberSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *NumberSchema) optionalFlag() bool { return s.optional }

// Int creates an integer schema. Integer schemas reject non-integral
// runtime values (e.g. 3.5), while integral floats (e.g. 3.0) are accepted
// since JSON decoding produces float64 for all numbers.
func Int() *IntegerSchema {
	return &IntegerSchema{}
}

// IntegerSchema validates integral numeric values.
type IntegerSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	minimum    *float64
	maximum    *float64
	multipleOf *float64
}

func (s *IntegerSchema) clone() *IntegerSchema {
	c := *s
	return &c
}

// Desc returns a copy with the description set.
func (s *IntegerSchema) Desc(description string) *IntegerSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *IntegerSchema) Default(value int) *IntegerSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *IntegerSchema) Optional() *IntegerSchema {
	c := s.clone()
	c.optional = true
	return c
}

// Min returns a copy with an inclusive minimum.
func (s *IntegerSchema) Min(n int) *IntegerSchema {
	c := s.clone()
	c.minimum = ptr(float64(n))
	return c
}

// Max returns a copy with an inclusive maximum.
func (s *IntegerSchema) Max(n int) *IntegerSchema {
	c := s.clone()
	c.maximum = ptr(float64(n))
	return c
}

// MultipleOf returns a copy requiring the value to be a multiple of n.
func (s *IntegerSchema) MultipleOf(n int) *IntegerSchema {
	c := s.clone()
	c.multipleOf = ptr(float64(n))
	return c
}

// Kind returns KindInteger.
func (s *IntegerSchema) Kind() Kind { return KindInteger }

// Validate checks that v is an integral number satisfying the constraints.
func (s *IntegerSchema) Validate(v any) Result {
	f, isNum := floatValue(v)
	if !isNum {
		return fail(fmt.Sprintf("expected integer, got %s", typeName(v)))
	}
	if !isIntegral(f) {
		return fail(fmt.Sprintf("expected integer, got non-integral number %v", v))
	}
	return validateNumeric(f, s.minimum, s.maximum, s.multipleOf)
}

// Wire serializes the schema to its wire document.
func (s *IntegerSchema) Wire() map[string]any {
	w := map[string]any{"type": "integer"}
	numericWire(w, s.description, s.def, s.hasDefault, s.minimum, s.maximum, s.multipleOf)
	return w
}

// MarshalJSON serializes the wire document.
func (s *IntegerSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *IntegerSchema) optionalFlag() bool { return s.optional }

// validateNumeric applies the shared range and multiple-of checks.
// The multipleOf comparison uses math.Mod with no epsilon.
func validateNumeric(f float64, minimum, maximum, multipleOf *float64) Result {
	var errs []string
	if minimum != nil && f < *minimum {
		errs = append(errs, fmt.Sprintf("%v is less than minimum %v", f, *minimum))
	}
	if maximum != nil && f > *maximum {
		errs = append(errs, fmt.Sprintf("%v exceeds maximum %v", f, *maximum))
	}
	if multipleOf != nil && *multipleOf != 0 && math.Mod(f, *multipleOf) != 0 {
		errs = append(errs, fmt.Sprintf("%v is not a multiple of %v", f, *multipleOf))
	}
	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

func numericWire(w map[string]any, description string, def any, hasDefault bool, minimum, maximum, multipleOf *float64) {
	if description != "" {
		w["description"] = description
	}
	if minimum != nil {
		w["minimum"] = *minimum
	}
	if maximum != nil {
		w["maximum"] = *maximum
	}
	if multipleOf != nil {
		w["multipleOf"] = *multipleOf
	}
	if hasDefault {
		w["default"] = def
	}
}
