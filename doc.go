// Package omnigen provides a unified Go SDK for text and structured-output
// generation across AI providers.
//
// The root package contains the shared value types: messages, tool
// declarations, responses, usage accounting, streaming events, and the
// [Provider] interface that vendor adapters implement. Higher-level behavior
// lives in subpackages:
//
//   - schema: validating schema values with JSON Schema wire serialization
//     and reflection-driven derivation from Go structs.
//   - tool: executable tools, the registry, the security policy, and the
//     executor.
//   - stream: the SSE frame decoder and the chunk accumulation engine.
//   - gen: the generation orchestrator that ties providers, schemas, and
//     tool execution together in a bounded roundtrip loop.
//   - provider/openai, provider/anthropic, provider/compat: Provider
//     implementations.
//   - mcp: Model Context Protocol integration for remote tools.
//   - event: lifecycle events emitted during generation runs.
//   - retry: backoff policies for transient provider failures.
//   - model: the model catalog with per-token pricing.
//   - store: conversation persistence over pluggable backends.
//
// # Quick Start
//
//	reg := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather", weatherHandler),
//	)
//	g := gen.New(openai.New(apiKey), gen.WithRegistry(reg))
//	result, err := g.GenerateText(ctx, []omnigen.Message{
//	    omnigen.NewUserMessage("What's the weather in Oslo?"),
//	})
package omnigen
