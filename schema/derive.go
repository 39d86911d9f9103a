package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// For derives an object schema from the struct type T by reflection.
// Field names come from json tags, declared types map to schema variants,
// and struct tags supply declarative metadata:
//
//	type Forecast struct {
//	    Location string   `json:"location" desc:"City name"`
//	    Unit     string   `json:"unit" enum:"celsius,fahrenheit" default:"celsius"`
//	    Days     int      `json:"days" min:"1" max:"14" optional:"true"`
//	    Windy    *bool    `json:"windy"`            // nullable, still required
//	    Tags     []string `json:"tags" maxItems:"10"`
//	}
//
// Pointer fields become Nullable schemas; a field is optional only when the
// explicit optional tag is present. Self-referential struct types and
// interface-typed elements fail with a descriptive error instead of
// recursing without bound or silently falling back.
func For[T any]() (*ObjectSchema, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("schema: cannot derive from nil interface type")
	}
	return ForType(t)
}

// MustFor is like For but panics on error.
func MustFor[T any]() *ObjectSchema {
	s, err := For[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// ForType derives an object schema from a struct reflect.Type.
func ForType(t reflect.Type) (*ObjectSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: cannot derive object schema from %s", t.Kind())
	}
	return deriveStruct(t, map[reflect.Type]bool{})
}

func deriveStruct(t reflect.Type, visiting map[reflect.Type]bool) (*ObjectSchema, error) {
	if visiting[t] {
		return nil, fmt.Errorf("schema: self-referential type %s cannot be derived", t)
	}
	visiting[t] = true
	defer delete(visiting, t)

	obj := Object()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		fieldSchema, err := deriveField(field, visiting)
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", name, err)
		}
		obj = obj.Field(name, fieldSchema)
	}
	return obj, nil
}

func deriveField(field reflect.StructField, visiting map[reflect.Type]bool) (Schema, error) {
	t := field.Type
	nullable := t.Kind() == reflect.Pointer
	if nullable {
		t = t.Elem()
	}

	base, err := deriveType(t, field, visiting)
	if err != nil {
		return nil, err
	}

	base, err = applyTags(base, field)
	if err != nil {
		return nil, err
	}

	if nullable {
		wrapped := Nullable(base)
		if field.Tag.Get("optional") == "true" {
			return wrapped.Optional(), nil
		}
		return wrapped, nil
	}
	return base, nil
}

func deriveType(t reflect.Type, field reflect.StructField, visiting map[reflect.Type]bool) (Schema, error) {
	if t == reflect.TypeOf(time.Time{}) {
		return String().Format("date-time"), nil
	}

	switch t.Kind() {
	case reflect.String:
		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			parts := strings.Split(enumTag, ",")
			values := make([]string, len(parts))
			for i, p := range parts {
				values[i] = strings.TrimSpace(p)
			}
			return EnumStrings(values...), nil
		}
		return String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(), nil

	case reflect.Float32, reflect.Float64:
		return Number(), nil

	case reflect.Bool:
		return Bool(), nil

	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		if elem.Kind() == reflect.Interface {
			return nil, fmt.Errorf("cannot derive element schema for %s: declare a concrete element type", t)
		}
		itemField := reflect.StructField{Type: elem}
		items, err := deriveType(derefType(elem), itemField, visiting)
		if err != nil {
			return nil, err
		}
		if elem.Kind() == reflect.Pointer {
			items = Nullable(items)
		}
		return Array(items), nil

	case reflect.Struct:
		return deriveStruct(t, visiting)

	case reflect.Map:
		// Maps become open objects with no declared properties.
		return Object().AdditionalProperties(true), nil

	case reflect.Interface:
		return nil, fmt.Errorf("cannot derive schema for interface type %s", t)

	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// applyTags layers declarative struct-tag metadata over the base schema.
func applyTags(s Schema, field reflect.StructField) (Schema, error) {
	desc := field.Tag.Get("desc")
	optional := field.Tag.Get("optional") == "true"

	switch sch := s.(type) {
	case *StringSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if format := field.Tag.Get("format"); format != "" {
			sch = sch.Format(format)
		}
		if pattern := field.Tag.Get("pattern"); pattern != "" {
			sch = sch.Pattern(pattern)
		}
		if n, set, err := intTag(field, "minLen"); err != nil {
			return nil, err
		} else if set {
			sch = sch.MinLength(n)
		}
		if n, set, err := intTag(field, "maxLen"); err != nil {
			return nil, err
		} else if set {
			sch = sch.MaxLength(n)
		}
		if def := field.Tag.Get("default"); def != "" {
			sch = sch.Default(def)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *IntegerSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if n, set, err := intTag(field, "min"); err != nil {
			return nil, err
		} else if set {
			sch = sch.Min(n)
		}
		if n, set, err := intTag(field, "max"); err != nil {
			return nil, err
		} else if set {
			sch = sch.Max(n)
		}
		if def := field.Tag.Get("default"); def != "" {
			n, err := strconv.Atoi(def)
			if err != nil {
				return nil, fmt.Errorf("invalid default %q for integer field: %w", def, err)
			}
			sch = sch.Default(n)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *NumberSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if f, set, err := floatTag(field, "min"); err != nil {
			return nil, err
		} else if set {
			sch = sch.Min(f)
		}
		if f, set, err := floatTag(field, "max"); err != nil {
			return nil, err
		} else if set {
			sch = sch.Max(f)
		}
		if def := field.Tag.Get("default"); def != "" {
			f, err := strconv.ParseFloat(def, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid default %q for number field: %w", def, err)
			}
			sch = sch.Default(f)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *BooleanSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if def := field.Tag.Get("default"); def != "" {
			b, err := strconv.ParseBool(def)
			if err != nil {
				return nil, fmt.Errorf("invalid default %q for boolean field: %w", def, err)
			}
			sch = sch.Default(b)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *ArraySchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if n, set, err := intTag(field, "minItems"); err != nil {
			return nil, err
		} else if set {
			sch = sch.MinItems(n)
		}
		if n, set, err := intTag(field, "maxItems"); err != nil {
			return nil, err
		} else if set {
			sch = sch.MaxItems(n)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *ObjectSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	case *EnumSchema:
		if desc != "" {
			sch = sch.Desc(desc)
		}
		if def := field.Tag.Get("default"); def != "" {
			sch = sch.Default(def)
		}
		if optional {
			sch = sch.Optional()
		}
		return sch, nil

	default:
		return s, nil
	}
}

func intTag(field reflect.StructField, key string) (int, bool, error) {
	raw := field.Tag.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s tag %q: %w", key, raw, err)
	}
	return n, true, nil
}

func floatTag(field reflect.StructField, key string) (float64, bool, error) {
	raw := field.Tag.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s tag %q: %w", key, raw, err)
	}
	return f, true, nil
}
