// Package openai adapts the official OpenAI SDK to the omnigen
// Provider interface.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	ai "github.com/omnigen-ai/omnigen"
)

// DefaultModel is used when no model is set on the client or request.
const DefaultModel = "gpt-4o"

// Client wraps the OpenAI SDK to implement ai.Provider.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		client := openai.NewClient(option.WithBaseURL(baseURL))
		c.client = &client
	}
}

// GenerateText sends a conversation and returns a complete response.
func (c *Client) GenerateText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)

	params, err := c.buildParams(messages, options)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	choice := resp.Choices[0]
	return &ai.Response{
		Content:      choice.Message.Content,
		FinishReason: convertFinishReason(string(choice.FinishReason)),
		Usage: ai.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		ToolCalls: extractToolCalls(choice.Message.ToolCalls),
	}, nil
}

// GenerateObject requests structured output. The response schema must
// be set via ai.WithResponseSchema.
func (c *Client) GenerateObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return c.GenerateText(ctx, messages, opts...)
}

// StreamText sends a conversation and returns a channel of streaming events.
func (c *Client) StreamText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)

	params, err := c.buildParams(messages, options)
	if err != nil {
		return nil, err
	}
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)
		var acc openai.ChatCompletionAccumulator

		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				ch <- ai.StreamEvent{
					Delta: chunk.Choices[0].Delta.Content,
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamEvent{Err: wrapError(err)}
			return
		}

		// Send final event with complete response
		completion := acc.Choices[0]
		ch <- ai.StreamEvent{
			Done: true,
			Response: &ai.Response{
				Content:      completion.Message.Content,
				FinishReason: convertFinishReason(string(completion.FinishReason)),
				Usage: ai.Usage{
					PromptTokens:     int(acc.Usage.PromptTokens),
					CompletionTokens: int(acc.Usage.CompletionTokens),
					TotalTokens:      int(acc.Usage.TotalTokens),
				},
				ToolCalls: extractToolCalls(completion.Message.ToolCalls),
			},
		}
	}()

	return ch, nil
}

// StreamObject streams structured output. Partial JSON arrives as text
// deltas; the terminal event carries the complete document.
func (c *Client) StreamObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return c.StreamText(ctx, messages, opts...)
}

func (c *Client) buildParams(messages []ai.Message, options *ai.Options) (openai.ChatCompletionNewParams, error) {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	converted, err := convertMessages(messages, options.System)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: converted,
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}
	if options.ResponseSchema != nil {
		params.ResponseFormat = buildSchemaFormat(options.ResponseSchema)
	}
	return params, nil
}

func convertFinishReason(reason string) ai.FinishReason {
	switch reason {
	case "stop":
		return ai.FinishStop
	case "length":
		return ai.FinishLength
	case "tool_calls", "function_call":
		return ai.FinishToolCalls
	case "content_filter":
		return ai.FinishContentFilter
	default:
		return ai.FinishStop
	}
}

var _ ai.Provider = (*Client)(nil)
