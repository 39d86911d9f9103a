// Package compat implements ai.Provider over the plain HTTP surface of any
// OpenAI-compatible chat completions endpoint (vLLM, llama.cpp, Together,
// Groq, OpenRouter and friends). It speaks the wire format directly with
// net/http so no vendor SDK is required.
package compat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/stream"
)

const defaultPath = "/v1/chat/completions"

// Client is an OpenAI-compatible chat completions provider.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	path       string
	headers    map[string]string
	httpClient *http.Client
}

var _ ai.Provider = (*Client)(nil)

// ClientOption configures the compat client.
type ClientOption func(*Client)

// WithModel sets the default model for requests that don't specify one.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithPath overrides the chat completions path (default /v1/chat/completions).
func WithPath(path string) ClientOption {
	return func(c *Client) {
		c.path = path
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a header sent on every request. Useful for gateways that
// require extra routing headers alongside the Authorization bearer.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a provider for an OpenAI-compatible endpoint.
// baseURL is the server root, e.g. "http://localhost:8000".
func New(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		path:       defaultPath,
		headers:    make(map[string]string),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GenerateText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}

	req, err := c.buildRequest(messages, ai.ApplyOptions(opts...), false)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wresp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wresp); err != nil {
		return nil, ai.NewPermanentError("compat: decoding response", resp.StatusCode, err)
	}
	if len(wresp.Choices) == 0 {
		return nil, ai.NewPermanentError("compat: response contained no choices", resp.StatusCode, nil)
	}

	choice := wresp.Choices[0]
	return &ai.Response{
		Content:      choice.Message.Content,
		FinishReason: convertFinishReason(choice.FinishReason),
		Usage:        convertUsage(wresp.Usage),
		ToolCalls:    extractToolCalls(choice.Message.ToolCalls),
	}, nil
}

// GenerateObject relies on the endpoint's json_schema response format,
// which the request builder sets from Options.ResponseSchema.
func (c *Client) GenerateObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return c.GenerateText(ctx, messages, opts...)
}

func (c *Client) StreamText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}

	req, err := c.buildRequest(messages, ai.ApplyOptions(opts...), true)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req, "text/event-stream")
	if err != nil {
		return nil, err
	}

	events := make(chan ai.StreamEvent)
	go c.consume(resp.Body, events)
	return events, nil
}

// StreamObject streams structured output. Partial JSON arrives as text
// deltas; the stream subpackage assembles the final object.
func (c *Client) StreamObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return c.StreamText(ctx, messages, opts...)
}

// consume drains one SSE response body, forwarding content deltas and
// accumulating tool calls and usage for the terminal event.
func (c *Client) consume(body io.ReadCloser, events chan<- ai.StreamEvent) {
	defer close(events)
	defer body.Close()

	dec := stream.NewDecoder(body)

	var (
		content      strings.Builder
		calls        []wireToolCall
		usage        ai.Usage
		finishReason string
	)

	for {
		frame, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			events <- ai.StreamEvent{Err: err}
			return
		}

		var chunk chatChunk
		if err := json.Unmarshal(frame, &chunk); err != nil {
			events <- ai.StreamEvent{Err: &stream.Error{Kind: stream.ErrMalformedFrame, Frame: string(frame), Err: err}}
			return
		}

		if chunk.Usage != nil {
			usage = convertUsage(chunk.Usage)
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		choice := chunk.Choices[0]
		if choice.FinishReason != "" {
			finishReason = choice.FinishReason
		}
		calls = accumulateToolCalls(calls, choice.Delta.ToolCalls)

		if choice.Delta.Content != "" {
			content.WriteString(choice.Delta.Content)
			events <- ai.StreamEvent{Delta: choice.Delta.Content}
		}
	}

	events <- ai.StreamEvent{
		Done: true,
		Response: &ai.Response{
			Content:      content.String(),
			FinishReason: convertFinishReason(finishReason),
			Usage:        usage,
			ToolCalls:    extractToolCalls(calls),
		},
	}
}

// accumulateToolCalls merges streamed tool call fragments by index. The
// first fragment carries the id and name, later ones append argument text.
func accumulateToolCalls(calls, deltas []wireToolCall) []wireToolCall {
	for _, d := range deltas {
		for d.Index >= len(calls) {
			calls = append(calls, wireToolCall{Index: len(calls)})
		}
		tc := &calls[d.Index]
		if d.ID != "" {
			tc.ID = d.ID
		}
		if d.Function.Name != "" {
			tc.Function.Name = d.Function.Name
		}
		tc.Function.Arguments += d.Function.Arguments
	}
	return calls
}

func (c *Client) buildRequest(messages []ai.Message, options *ai.Options, streaming bool) (*chatRequest, error) {
	model := options.Model
	if model == "" {
		model = c.model
	}
	if model == "" {
		return nil, ai.NewUserInputError("compat: model is required", 0, nil)
	}

	req := &chatRequest{
		Model:       model,
		Messages:    convertMessages(messages, options.System),
		MaxTokens:   options.MaxTokens,
		Temperature: options.Temperature,
		Tools:       convertTools(options.Tools),
		ToolChoice:  convertToolChoice(options.ToolChoice),
		Stream:      streaming,
	}
	if streaming {
		req.StreamOptions = &wireStreamOpts{IncludeUsage: true}
	}
	if rs := options.ResponseSchema; rs != nil {
		name := rs.Name
		if name == "" {
			name = "response_schema"
		}
		req.ResponseFormat = &wireRespFormat{
			Type: "json_schema",
			JSONSchema: &wireJSONSchema{
				Name:   name,
				Strict: rs.Strict,
				Schema: rs.Schema,
			},
		}
	}
	return req, nil
}

// do posts the request and returns the response with a 2xx status. Non-2xx
// responses are drained and categorized into the root error taxonomy.
func (c *Client) do(ctx context.Context, req *chatRequest, accept string) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("compat: encoding request: %w", err)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("compat: building request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", accept)
	if c.apiKey != "" {
		hreq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range c.headers {
		hreq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(hreq)
	if err != nil {
		return nil, ai.NewTransientError("compat: request failed", 0, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, wrapStatusError(resp)
	}
	return resp, nil
}
