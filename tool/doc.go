// Package tool provides tool infrastructure for the omnigen library.
//
// This package includes:
//   - Tool and Handler types describing callable capabilities
//   - Registry for concurrent-safe tool management
//   - Policy for allow/deny lists, confirmation, sanitization, and timeouts
//   - Executor, which runs tool calls under a policy
//
// # Basic Usage
//
// Define tool arguments as a struct with tags, then use Func to derive
// the parameter schema automatically:
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name"`
//	    Unit     string `json:"unit" desc:"Temperature unit" enum:"celsius,fahrenheit" optional:"true"`
//	}
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather",
//	        func(ctx context.Context, args WeatherArgs) (any, error) {
//	            return fmt.Sprintf(`{"temp": 72, "location": %q}`, args.Location), nil
//	        }),
//	)
//
// Tools can also be built explicitly with schema builders:
//
//	t := tool.New("get_weather", "Get current weather",
//	    schema.Object().
//	        Field("location", schema.String().Desc("City name")),
//	    tool.WithHandler(handler),
//	)
//
// # Execution
//
// An Executor validates arguments against the tool's parameter schema
// before invoking the handler, and validates the result against the
// return schema afterwards when one is set. Failures are captured in
// the ToolResult rather than aborting, so the model can observe the
// failure and retry:
//
//	exec := tool.NewExecutor(registry).WithPolicy(
//	    tool.NewPolicy().Deny("delete_file").WithTimeout(10 * time.Second),
//	)
//	results := exec.ExecuteAll(ctx, response.ToolCalls)
package tool
