// Package schema provides a small type system for describing value shapes:
// each schema validates runtime values and serializes itself to a JSON
// Schema-like wire document for AI tool parameters and structured output.
//
// # Building Schemas
//
// Create schemas with the type constructors and chain constraint methods.
// Every mutator returns a modified copy, so schemas can be shared freely:
//
//	params := schema.Object().
//		Field("location", schema.String().Desc("City name")).
//		Field("unit", schema.EnumStrings("celsius", "fahrenheit").Optional()).
//		Field("days", schema.Int().Min(1).Max(14).Default(7).Optional())
//
// # Validation
//
// Validate checks a runtime value (typically the result of json.Unmarshal)
// and returns every violation found:
//
//	res := params.Validate(map[string]any{"location": "Oslo"})
//	if !res.Valid {
//	    log.Println(res.Errors)
//	}
//
// Object properties are required unless their schema is marked Optional;
// unknown keys are rejected unless AdditionalProperties(true) is set.
//
// # Wire Serialization
//
// Wire returns the JSON Schema document; MarshalJSON emits it directly.
// Nullable schemas fold null into a type array when the inner schema has a
// single scalar type, and wrap in anyOf otherwise.
//
// # Deriving From Structs
//
// For[T] derives an object schema from a struct type by reflection, reading
// metadata from struct tags (desc, enum, min, max, format, optional, ...):
//
//	type SearchArgs struct {
//	    Query string `json:"query" desc:"Search query"`
//	    Limit int    `json:"limit" min:"1" max:"100" optional:"true"`
//	}
//	params := schema.MustFor[SearchArgs]()
package schema
