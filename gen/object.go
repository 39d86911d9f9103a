package gen

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/schema"
)

// GenerateObject runs the generation loop requesting structured output
// conforming to s, then parses and validates the final content.
//
// Validation failures surface as *schema.ValidationError. Tool
// roundtrips behave exactly as in GenerateText.
func (g *Generator) GenerateObject(ctx context.Context, messages []ai.Message, s schema.Schema, opts ...ai.Option) (*ObjectResult, error) {
	rs, err := responseSchema(s)
	if err != nil {
		return nil, err
	}
	opts = append(opts, ai.WithResponseSchema(rs))

	result, err := g.run(ctx, messages, func(ctx context.Context, msgs []ai.Message) (*ai.Response, error) {
		return g.withRetry(ctx, func() (*ai.Response, error) {
			return g.provider.GenerateObject(ctx, msgs, g.requestOptions(opts)...)
		})
	})
	if err != nil {
		return nil, err
	}

	object, err := parseObject(result.Response.Content, s)
	if err != nil {
		return nil, err
	}
	return &ObjectResult{Result: *result, Object: object}, nil
}

// TypedResult is the terminal outcome of a typed object generation run.
type TypedResult[T any] struct {
	Result

	// Value is the parsed, schema-validated output.
	Value T
}

// ObjectTyped generates structured output validated against a schema
// derived from T and unmarshals it into a T.
//
//	type Forecast struct {
//	    City string `json:"city"`
//	    High int    `json:"high" desc:"High temperature in celsius"`
//	}
//
//	forecast, err := gen.ObjectTyped[Forecast](ctx, g, messages)
func ObjectTyped[T any](ctx context.Context, g *Generator, messages []ai.Message, opts ...ai.Option) (*TypedResult[T], error) {
	s, err := schema.For[T]()
	if err != nil {
		return nil, err
	}

	result, err := g.GenerateObject(ctx, messages, s, opts...)
	if err != nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal([]byte(result.Response.Content), &value); err != nil {
		return nil, fmt.Errorf("gen: unmarshal object result: %w", err)
	}
	return &TypedResult[T]{Result: result.Result, Value: value}, nil
}

// responseSchema serializes s into the wire-level structured-output request.
func responseSchema(s schema.Schema) (ai.ResponseSchema, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return ai.ResponseSchema{}, fmt.Errorf("gen: serialize response schema: %w", err)
	}
	return ai.ResponseSchema{Name: "output", Schema: raw, Strict: true}, nil
}

// parseObject decodes content as JSON and validates it against s.
func parseObject(content string, s schema.Schema) (map[string]any, error) {
	var value any
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return nil, fmt.Errorf("gen: object output is not valid JSON: %w", err)
	}
	if err := s.Validate(value).Err(value); err != nil {
		return nil, err
	}
	object, _ := value.(map[string]any)
	return object, nil
}
