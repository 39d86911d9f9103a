package omnigen

import "encoding/json"

// ResponseSchema describes the structured-output contract for object
// generation. Schema is a JSON Schema document (see the schema subpackage).
type ResponseSchema struct {
	// Name identifies the schema to the provider.
	Name string
	// Schema is the JSON Schema document the output must conform to.
	Schema json.RawMessage
	// Strict requests provider-side strict conformance where supported.
	Strict bool
}

// Options contains configuration for a generation request.
type Options struct {
	Model       string
	System      string
	MaxTokens   int
	Temperature *float64
	Tools       []Tool
	ToolChoice  ToolChoice
	// ResponseSchema is set for GenerateObject and StreamObject requests.
	ResponseSchema *ResponseSchema
}

// Option is a functional option for configuring generation requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithSystem sets the system prompt for the request.
func WithSystem(system string) Option {
	return func(o *Options) {
		o.System = system
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTools declares the tools available to the model for this request.
func WithTools(tools []Tool) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithToolChoice controls how the model selects tools.
func WithToolChoice(choice ToolChoice) Option {
	return func(o *Options) {
		o.ToolChoice = choice
	}
}

// WithResponseSchema requests structured output conforming to the schema.
func WithResponseSchema(rs ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = &rs
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
