// Package anthropic adapts the official Anthropic SDK to the omnigen
// Provider interface. Structured output is implemented with a forced
// synthetic tool, since the Messages API has no native JSON schema mode.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	ai "github.com/omnigen-ai/omnigen"
)

// DefaultModel is used when no model is set on the client or request.
const DefaultModel = "claude-sonnet-4-5"

// defaultMaxTokens applies when the request sets none; the Messages API
// requires an explicit limit.
const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK to implement ai.Provider.
type Client struct {
	client *anthropic.Client
	model  string
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// GenerateText sends a conversation and returns a complete response.
func (c *Client) GenerateText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	return convertResponse(resp.Content, resp.StopReason, resp.Usage, options.ResponseSchema != nil), nil
}

// GenerateObject requests structured output. The response schema must
// be set via ai.WithResponseSchema.
func (c *Client) GenerateObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return c.GenerateText(ctx, messages, opts...)
}

// StreamText sends a conversation and returns a channel of streaming events.
func (c *Client) StreamText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	stream := c.client.Messages.NewStreaming(ctx, params)
	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)
		var acc anthropic.Message

		for stream.Next() {
			event := stream.Current()
			acc.Accumulate(event)

			if event.Type == "content_block_delta" {
				delta := event.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" {
					ch <- ai.StreamEvent{
						Delta: textDelta.Text,
					}
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamEvent{Err: wrapError(err)}
			return
		}

		ch <- ai.StreamEvent{
			Done:     true,
			Response: convertResponse(acc.Content, acc.StopReason, acc.Usage, options.ResponseSchema != nil),
		}
	}()

	return ch, nil
}

// StreamObject streams structured output. The synthetic JSON tool's
// input arrives only on the terminal event.
func (c *Client) StreamObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return c.StreamText(ctx, messages, opts...)
}

func (c *Client) buildParams(messages []ai.Message, options *ai.Options) anthropic.MessageNewParams {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages, options.System)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	if options.ResponseSchema != nil {
		jsonTool, jsonToolChoice := buildJSONTool(options.ResponseSchema)
		params.Tools = append(convertTools(options.Tools), jsonTool)
		params.ToolChoice = jsonToolChoice
	} else if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" && options.ToolChoice != ai.ToolChoiceNone {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}

	return params
}

// convertResponse flattens content blocks into text, tool calls, and,
// in structured-output mode, the synthetic JSON tool's input.
func convertResponse(content []anthropic.ContentBlockUnion, stopReason anthropic.StopReason, usage anthropic.Usage, jsonMode bool) *ai.Response {
	text := ""
	var toolCalls []ai.ToolCall
	for _, block := range content {
		switch block.Type {
		case "text":
			text += block.Text
		case "tool_use":
			if jsonMode && block.Name == jsonResponseToolName {
				text = string(block.Input)
				continue
			}
			toolCalls = append(toolCalls, ai.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}

	finish := convertStopReason(stopReason)
	if jsonMode && finish == ai.FinishToolCalls && len(toolCalls) == 0 {
		// The forced JSON tool is an implementation detail, not a tool call.
		finish = ai.FinishStop
	}

	return &ai.Response{
		Content:      text,
		FinishReason: finish,
		Usage: ai.Usage{
			PromptTokens:     int(usage.InputTokens),
			CompletionTokens: int(usage.OutputTokens),
			TotalTokens:      int(usage.InputTokens + usage.OutputTokens),
		},
		ToolCalls: toolCalls,
	}
}

func convertStopReason(reason anthropic.StopReason) ai.FinishReason {
	switch reason {
	case anthropic.StopReasonMaxTokens:
		return ai.FinishLength
	case anthropic.StopReasonToolUse:
		return ai.FinishToolCalls
	case anthropic.StopReasonRefusal:
		return ai.FinishContentFilter
	default:
		return ai.FinishStop
	}
}

var _ ai.Provider = (*Client)(nil)
