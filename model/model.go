// Package model provides typed model constants with pricing information
// for the supported providers.
//
// Use a model with ai.WithModel:
//
//	resp, err := g.GenerateText(ctx, messages, ai.WithModel(model.GPT4o.String()))
//
// and estimate the cost of a finished run from its usage:
//
//	cost := model.ClaudeSonnet45.Pricing().Cost(result.Usage)
package model

// Vendor identifies which provider a model belongs to.
type Vendor string

const (
	VendorAnthropic Vendor = "anthropic"
	VendorOpenAI    Vendor = "openai"
)

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id      string
	vendor  Vendor
	pricing Pricing
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Vendor returns which provider this model belongs to.
func (m ChatModel) Vendor() Vendor { return m.vendor }

// Pricing returns the pricing for this model.
func (m ChatModel) Pricing() Pricing { return m.pricing }

// Anthropic Claude models
// Pricing last verified: December 14, 2025
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", vendor: VendorAnthropic, pricing: Pricing{InputPerMillion: 5.00, OutputPerMillion: 25.00}}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", vendor: VendorAnthropic, pricing: Pricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", vendor: VendorAnthropic, pricing: Pricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}}

	// Pinned versions (use for production stability)
	ClaudeSonnet45_20250929 = ChatModel{id: "claude-sonnet-4-5-20250929", vendor: VendorAnthropic, pricing: Pricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT and O-series models
// Pricing last verified: December 14, 2025
var (
	GPT4o     = ChatModel{id: "gpt-4o", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 2.50, OutputPerMillion: 10.00, CachedInputPerMillion: 1.25}}
	GPT4oMini = ChatModel{id: "gpt-4o-mini", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.60, CachedInputPerMillion: 0.075}}
	GPT41     = ChatModel{id: "gpt-4.1", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 2.00, OutputPerMillion: 8.00, CachedInputPerMillion: 0.50}}
	GPT41Mini = ChatModel{id: "gpt-4.1-mini", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 0.40, OutputPerMillion: 1.60, CachedInputPerMillion: 0.10}}
	O3        = ChatModel{id: "o3", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 2.00, OutputPerMillion: 16.00, CachedInputPerMillion: 0.50}}
	O4Mini    = ChatModel{id: "o4-mini", vendor: VendorOpenAI, pricing: Pricing{InputPerMillion: 1.10, OutputPerMillion: 4.40, CachedInputPerMillion: 0.275}}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT4o
)

// catalog holds every declared model for lookup by identifier.
var catalog = []ChatModel{
	ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45, ClaudeSonnet45_20250929,
	GPT4o, GPT4oMini, GPT41, GPT41Mini, O3, O4Mini,
}

// Find looks up a model by its API identifier.
func Find(id string) (ChatModel, bool) {
	for _, m := range catalog {
		if m.id == id {
			return m, true
		}
	}
	return ChatModel{}, false
}
