package main

import (
	"context"
	"fmt"
	"os"
	"time"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/gen"
	"github.com/omnigen-ai/omnigen/tool"
)

type weatherArgs struct {
	City string `json:"city" description:"City name"`
}

type diceArgs struct {
	Sides int `json:"sides" description:"Number of sides on the die"`
}

func demoTools(ctx context.Context, p ai.Provider) {
	registry := tool.NewRegistry().Add(
		tool.Func("get_weather", "Get the current weather for a city",
			func(ctx context.Context, args weatherArgs) (any, error) {
				return fmt.Sprintf("%s: 18 degrees, partly cloudy", args.City), nil
			}),
		tool.Func("roll_die", "Roll a die with the given number of sides",
			func(ctx context.Context, args diceArgs) (any, error) {
				// Chosen by fair dice roll
				return 4, nil
			}),
	)

	policy := tool.NewPolicy().
		Allow("get_weather", "roll_die").
		WithTimeout(10 * time.Second)

	executor := tool.NewExecutor(registry).WithPolicy(policy)

	g := gen.New(p,
		gen.WithExecutor(executor),
		gen.WithMaxRoundtrips(3),
	)

	messages := []ai.Message{
		ai.NewUserMessage("What's the weather in Oslo? Also roll a six-sided die for me."),
	}
	fmt.Printf("\nUser: %s\n", messages[0].Content)

	result, err := g.GenerateText(ctx, messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for _, tr := range result.ToolResults {
		fmt.Printf("  [tool %s] %s\n", tr.ToolCallID, tr.Content())
	}
	fmt.Printf("\nAssistant: %s\n", result.Text())
	fmt.Printf("[%d roundtrips, %d tokens total]\n", result.Roundtrips, result.Usage.TotalTokens)
}
