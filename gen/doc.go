// Package gen orchestrates generation requests: it drives the provider,
// detects tool calls in responses, executes them through a tool.Executor,
// resubmits the grown conversation, and accumulates usage across every
// provider call.
//
// # Basic Usage
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather", weatherFn),
//	)
//
//	g := gen.New(provider,
//	    gen.WithRegistry(registry),
//	    gen.WithMaxRoundtrips(3),
//	)
//
//	result, err := g.GenerateText(ctx, []ai.Message{
//	    ai.NewUserMessage("What's the weather in Oslo?"),
//	})
//
// The roundtrip loop is bounded: when the cap is reached while the
// model still requests tools, the last response is returned unchanged
// and result.HasToolCalls() reports true. A requested tool with no
// registered handler produces a "tool not found" result message and
// the conversation continues.
//
// # Structured Output
//
//	s := schema.Object().
//	    Field("city", schema.String()).
//	    Field("high", schema.Int())
//
//	result, err := g.GenerateObject(ctx, messages, s)
//
// Or derive the schema from a struct:
//
//	forecast, err := gen.ObjectTyped[Forecast](ctx, g, messages)
//
// # Streaming
//
// StreamText and StreamObject return pull-based chunk sequences that
// span tool roundtrips and end with exactly one terminal chunk:
//
//	ts := g.StreamText(ctx, messages)
//	for {
//	    chunk, err := ts.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package gen
