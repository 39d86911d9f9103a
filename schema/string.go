package schema

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// String creates a string schema.
func String() *StringSchema {
	return &StringSchema{}
}

// StringSchema validates string values with optional length, pattern, and
// format constraints.
type StringSchema struct {
	description string
	def         any
	hasDefault  bool
	optional    bool

	minLength *int
	maxLength *int
	pattern   string
	format    string
}

func (s *StringSchema) clone() *StringSchema {
	c := *s
	return &c
}

// Desc returns a copy with the description set.
func (s *StringSchema) Desc(description string) *StringSchema {
	c := s.clone()
	c.description = description
	return c
}

// Default returns a copy with the default value set.
func (s *StringSchema) Default(value string) *StringSchema {
	c := s.clone()
	c.def = value
	c.hasDefault = true
	return c
}

// Optional returns a copy marked optional when used as an object property.
func (s *StringSchema) Optional() *StringSchema {
	c := s.clone()
	c.optional = true
	return c
}

// MinLength returns a copy with a minimum length constraint (in runes).
func (s *StringSchema) MinLength(n int) *StringSchema {
	c := s.clone()
	c.minLength = ptr(n)
	return c
}

// MaxLength returns a copy with a maximum length constraint (in runes).
func (s *StringSchema) MaxLength(n int) *StringSchema {
	c := s.clone()
	c.maxLength = ptr(n)
	return c
}

// Pattern returns a copy with a regex pattern constraint.
func (s *StringSchema) Pattern(pattern string) *StringSchema {
	c := s.clone()
	c.pattern = pattern
	return c
}

// Format returns a copy with a format annotation (e.g. "email", "date-time").
// Formats are serialized to the wire schema but not enforced by Validate.
func (s *StringSchema) Format(format string) *StringSchema {
	c := s.clone()
	c.format = format
	return c
}

// Kind returns KindString.
func (s *StringSchema) Kind() Kind { return KindString }

// Validate checks that v is a string satisfying the constraints.
func (s *StringSchema) Validate(v any) Result {
	str, isString := v.(string)
	if !isString {
		return fail(fmt.Sprintf("expected string, got %s", typeName(v)))
	}

	var errs []string
	length := utf8.RuneCountInString(str)
	if s.minLength != nil && length < *s.minLength {
		errs = append(errs, fmt.Sprintf("length %d is less than minimum %d", length, *s.minLength))
	}
	if s.maxLength != nil && length > *s.maxLength {
		errs = append(errs, fmt.Sprintf("length %d exceeds maximum %d", length, *s.maxLength))
	}
	if s.pattern != "" {
		re, err := regexp.Compile(s.pattern)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid pattern %q: %v", s.pattern, err))
		} else if !re.MatchString(str) {
			errs = append(errs, fmt.Sprintf("value does not match pattern %q", s.pattern))
		}
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

// Wire serializes the schema to its wire document.
func (s *StringSchema) Wire() map[string]any {
	w := map[string]any{"type": "string"}
	if s.description != "" {
		w["description"] = s.description
	}
	if s.minLength != nil {
		w["minLength"] = *s.minLength
	}
	if s.maxLength != nil {
		w["maxLength"] = *s.maxLength
	}
	if s.pattern != "" {
		w["pattern"] = s.pattern
	}
	if s.format != "" {
		w["format"] = s.format
	}
	if s.hasDefault {
		w["default"] = s.def
	}
	return w
}

// MarshalJSON serializes the wire document.
func (s *StringSchema) MarshalJSON() ([]byte, error) { return marshalWire(s) }

func (s *StringSchema) optionalFlag() bool { return s.optional }
