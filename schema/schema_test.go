package schema

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestStringValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		value   any
		valid   bool
		errPart string
	}{
		{name: "plain string", schema: String(), value: "hello", valid: true},
		{name: "wrong type", schema: String(), value: 42, valid: false, errPart: "expected string"},
		{name: "null rejected", schema: String(), value: nil, valid: false, errPart: "expected string, got null"},
		{name: "min length ok", schema: String().MinLength(3), value: "abc", valid: true},
		{name: "min length violated", schema: String().MinLength(4), value: "abc", valid: false, errPart: "minimum 4"},
		{name: "max length violated", schema: String().MaxLength(2), value: "abc", valid: false, errPart: "maximum 2"},
		{name: "pattern match", schema: String().Pattern(`^[a-z]+$`), value: "abc", valid: true},
		{name: "pattern mismatch", schema: String().Pattern(`^[a-z]+$`), value: "Abc1", valid: false, errPart: "pattern"},
		{name: "format not enforced", schema: String().Format("email"), value: "not-an-email", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.schema.Validate(tt.value)
			if res.Valid != tt.valid {
				t.Fatalf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, res.Valid, tt.valid, res.Errors)
			}
			if tt.valid && len(res.Errors) != 0 {
				t.Fatalf("valid result must have empty errors, got %v", res.Errors)
			}
			if !tt.valid {
				if len(res.Errors) == 0 {
					t.Fatal("invalid result must carry errors")
				}
				if tt.errPart != "" && !containsSubstring(res.Errors, tt.errPart) {
					t.Fatalf("errors %v do not mention %q", res.Errors, tt.errPart)
				}
			}
		})
	}
}

func TestNumericValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		value   any
		valid   bool
		errPart string
	}{
		{name: "number float", schema: Number(), value: 3.14, valid: true},
		{name: "number int value", schema: Number(), value: 3, valid: true},
		{name: "number wrong type", schema: Number(), value: "3", valid: false, errPart: "expected number"},
		{name: "min ok", schema: Number().Min(0), value: 0.0, valid: true},
		{name: "min violated", schema: Number().Min(1), value: 0.5, valid: false, errPart: "minimum"},
		{name: "max violated", schema: Number().Max(10), value: 11.0, valid: false, errPart: "maximum"},
		{name: "multiple of", schema: Number().MultipleOf(0.5), value: 1.5, valid: true},
		{name: "not multiple of", schema: Number().MultipleOf(2), value: 3.0, valid: false, errPart: "multiple"},
		{name: "integer accepts integral float", schema: Int(), value: float64(30), valid: true},
		{name: "integer rejects fraction", schema: Int(), value: 30.5, valid: false, errPart: "non-integral"},
		{name: "integer rejects string", schema: Int(), value: "30", valid: false, errPart: "expected integer"},
		{name: "integer range", schema: Int().Min(1).Max(14), value: 7, valid: true},
		{name: "integer below range", schema: Int().Min(1).Max(14), value: 0, valid: false, errPart: "minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.schema.Validate(tt.value)
			if res.Valid != tt.valid {
				t.Fatalf("Validate(%v) valid = %v, want %v (errors: %v)", tt.value, res.Valid, tt.valid, res.Errors)
			}
			if tt.errPart != "" && !tt.valid && !containsSubstring(res.Errors, tt.errPart) {
				t.Fatalf("errors %v do not mention %q", res.Errors, tt.errPart)
			}
		})
	}
}

func TestBooleanValidate(t *testing.T) {
	if res := Bool().Validate(true); !res.Valid {
		t.Fatalf("true should validate, got %v", res.Errors)
	}
	if res := Bool().Validate("true"); res.Valid {
		t.Fatal("string should not validate as boolean")
	}
}

func TestArrayValidate(t *testing.T) {
	items := Array(String())

	t.Run("empty slice is a valid empty list", func(t *testing.T) {
		if res := items.Validate([]any{}); !res.Valid {
			t.Fatalf("empty slice should validate, got %v", res.Errors)
		}
	})

	t.Run("typed slice accepted", func(t *testing.T) {
		if res := items.Validate([]string{"a", "b"}); !res.Valid {
			t.Fatalf("typed slice should validate, got %v", res.Errors)
		}
	})

	t.Run("map rejected even when empty", func(t *testing.T) {
		if res := items.Validate(map[string]any{}); res.Valid {
			t.Fatal("map should not validate as array")
		}
	})

	t.Run("element errors carry index", func(t *testing.T) {
		res := items.Validate([]any{"ok", 42})
		if res.Valid {
			t.Fatal("expected failure")
		}
		if !containsSubstring(res.Errors, "[1]") {
			t.Fatalf("errors %v do not identify the failing index", res.Errors)
		}
	})

	t.Run("minItems forbids empty", func(t *testing.T) {
		if res := items.MinItems(1).Validate([]any{}); res.Valid {
			t.Fatal("minItems 1 should reject empty array")
		}
	})

	t.Run("maxItems", func(t *testing.T) {
		if res := items.MaxItems(1).Validate([]any{"a", "b"}); res.Valid {
			t.Fatal("maxItems 1 should reject two elements")
		}
	})
}

func TestObjectValidate(t *testing.T) {
	person := Object().
		Field("name", String()).
		Field("age", Int())

	t.Run("valid value", func(t *testing.T) {
		res := person.Validate(map[string]any{"name": "Ann", "age": 30})
		if !res.Valid {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("missing required property mentions it", func(t *testing.T) {
		res := person.Validate(map[string]any{"name": "Ann"})
		if res.Valid {
			t.Fatal("expected failure for missing age")
		}
		if !containsSubstring(res.Errors, "age") {
			t.Fatalf("errors %v do not mention age", res.Errors)
		}
	})

	t.Run("unknown key rejected by default", func(t *testing.T) {
		res := person.Validate(map[string]any{"name": "Ann", "age": 30, "extra": 1})
		if res.Valid {
			t.Fatal("expected failure for unknown property")
		}
		if !containsSubstring(res.Errors, "extra") {
			t.Fatalf("errors %v do not mention extra", res.Errors)
		}
	})

	t.Run("additional properties allowed when opted in", func(t *testing.T) {
		open := person.AdditionalProperties(true)
		res := open.Validate(map[string]any{"name": "Ann", "age": 30, "extra": 1})
		if !res.Valid {
			t.Fatalf("expected valid with open object, got %v", res.Errors)
		}
	})

	t.Run("optional property may be absent", func(t *testing.T) {
		withNick := person.Field("nickname", String().Optional())
		res := withNick.Validate(map[string]any{"name": "Ann", "age": 30})
		if !res.Valid {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("nested errors are path prefixed", func(t *testing.T) {
		nested := Object().Field("user", person)
		res := nested.Validate(map[string]any{"user": map[string]any{"name": "Ann", "age": "old"}})
		if res.Valid {
			t.Fatal("expected failure")
		}
		if !containsSubstring(res.Errors, "user: age") {
			t.Fatalf("errors %v are not prefixed with the property path", res.Errors)
		}
	})

	t.Run("non-object rejected", func(t *testing.T) {
		if res := person.Validate([]any{}); res.Valid {
			t.Fatal("array should not validate as object")
		}
	})
}

func TestEnumValidate(t *testing.T) {
	unit := EnumStrings("celsius", "fahrenheit")
	if res := unit.Validate("celsius"); !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if res := unit.Validate("kelvin"); res.Valid {
		t.Fatal("kelvin is not a member")
	}

	// JSON decoding produces float64; int literals must still match.
	levels := Enum(1, 2, 3)
	if res := levels.Validate(float64(2)); !res.Valid {
		t.Fatalf("float64(2) should match int literal 2, got %v", res.Errors)
	}
}

func TestNullableValidate(t *testing.T) {
	ns := Nullable(String().MinLength(2))
	if res := ns.Validate(nil); !res.Valid {
		t.Fatalf("null must always validate, got %v", res.Errors)
	}
	if res := ns.Validate("ok"); !res.Valid {
		t.Fatalf("inner-valid value should pass, got %v", res.Errors)
	}
	if res := ns.Validate("x"); res.Valid {
		t.Fatal("inner constraint must still apply to non-null values")
	}
}

func TestUnionValidate(t *testing.T) {
	u := Union(String(), Int())

	if res := u.Validate("hello"); !res.Valid {
		t.Fatalf("string should match first candidate, got %v", res.Errors)
	}
	if res := u.Validate(7); !res.Valid {
		t.Fatalf("int should match second candidate, got %v", res.Errors)
	}

	res := u.Validate(true)
	if res.Valid {
		t.Fatal("bool matches no candidate")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("union failure must surface a single generic error, got %v", res.Errors)
	}
}

func TestValidateIdempotent(t *testing.T) {
	s := Object().
		Field("name", String()).
		Field("age", Int().Min(0))
	value := map[string]any{"name": "Ann", "age": -1, "extra": true}

	first := s.Validate(value)
	for i := 0; i < 50; i++ {
		again := s.Validate(value)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeat %d produced a different result:\nfirst: %v\nagain: %v", i, first.Errors, again.Errors)
		}
	}
}

func TestValidateUnknownKeysDeterministic(t *testing.T) {
	s := Object().Field("name", String())

	// Enough undeclared keys that random map iteration order would
	// almost certainly reorder the errors between runs.
	value := map[string]any{"name": "Ann"}
	for _, k := range []string{"x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8", "x9", "x10"} {
		value[k] = 1
	}

	first := s.Validate(value)
	if first.Valid {
		t.Fatal("undeclared keys must fail validation")
	}
	if len(first.Errors) != 10 {
		t.Fatalf("expected 10 errors, got %v", first.Errors)
	}
	if !sort.StringsAreSorted(first.Errors) {
		t.Fatalf("unknown-key errors must be sorted, got %v", first.Errors)
	}
	for i := 0; i < 200; i++ {
		again := s.Validate(value)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeat %d produced a different result:\nfirst: %v\nagain: %v", i, first.Errors, again.Errors)
		}
	}
}

func TestMutatorsReturnCopies(t *testing.T) {
	base := String()
	withMin := base.MinLength(5)

	if res := base.Validate("ok"); !res.Valid {
		t.Fatal("mutator leaked into the original schema")
	}
	if res := withMin.Validate("ok"); res.Valid {
		t.Fatal("derived schema missing its constraint")
	}

	obj := Object().Field("a", String())
	extended := obj.Field("b", Int())
	if got := len(obj.PropertyNames()); got != 1 {
		t.Fatalf("original object gained a property, has %d", got)
	}
	if got := len(extended.PropertyNames()); got != 2 {
		t.Fatalf("extended object should have 2 properties, has %d", got)
	}
}

func TestResultErr(t *testing.T) {
	res := String().Validate(42)
	err := res.Err(42)
	if err == nil {
		t.Fatal("invalid result must produce an error")
	}
	var ve *ValidationError
	if !asValidationError(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Value != 42 {
		t.Fatalf("offending value not carried: %v", ve.Value)
	}

	if err := ok().Err("anything"); err != nil {
		t.Fatalf("valid result must produce nil error, got %v", err)
	}
}

func asValidationError(err error, target **ValidationError) bool {
	ve, isVE := err.(*ValidationError)
	if isVE {
		*target = ve
	}
	return isVE
}

func containsSubstring(errs []string, part string) bool {
	for _, e := range errs {
		if strings.Contains(e, part) {
			return true
		}
	}
	return false
}

func TestPropertyOrderPreserved(t *testing.T) {
	obj := Object().
		Field("first", String()).
		Field("second", Int()).
		Field("third", Bool())

	want := []string{"first", "second", "third"}
	if got := obj.PropertyNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("property order = %v, want %v", got, want)
	}
}
