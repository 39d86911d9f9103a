package model

import ai "github.com/omnigen-ai/omnigen"

// Pricing contains pricing per million tokens (USD) for chat models.
// Fields are zero if not applicable to a specific provider's model.
type Pricing struct {
	// InputPerMillion is the standard input token pricing.
	InputPerMillion float64
	// OutputPerMillion is the standard output token pricing.
	OutputPerMillion float64
	// CachedInputPerMillion is for cached input tokens (OpenAI only).
	// Check HasCachedPricing before using.
	CachedInputPerMillion float64
}

// HasCachedPricing returns true if the model supports cached input pricing.
func (p Pricing) HasCachedPricing() bool {
	return p.CachedInputPerMillion > 0
}

// Cost estimates the USD cost of a run from its token usage.
func (p Pricing) Cost(u ai.Usage) float64 {
	return float64(u.PromptTokens)/1_000_000*p.InputPerMillion +
		float64(u.CompletionTokens)/1_000_000*p.OutputPerMillion
}
