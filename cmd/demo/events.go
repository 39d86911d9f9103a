package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/event"
	"github.com/omnigen-ai/omnigen/gen"
	"github.com/omnigen-ai/omnigen/tool"
)

func demoEvents(ctx context.Context, p ai.Provider) {
	events := event.NewChannel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range events {
			switch ev.Type {
			case event.RunStart:
				fmt.Println("  [event] run started")
			case event.RoundtripStart:
				fmt.Printf("  [event] roundtrip %d started\n", ev.Roundtrip)
			case event.ToolCallStart:
				fmt.Printf("  [event] calling tool %s\n", ev.ToolCall.Name)
			case event.ToolCallResult:
				fmt.Printf("  [event] tool result: %s\n", ev.ToolResult.Content())
			case event.RunEnd:
				fmt.Println("  [event] run finished")
			case event.RunError:
				fmt.Printf("  [event] run error: %v\n", ev.Error)
			}
		}
	}()

	registry := tool.NewRegistry().Add(
		tool.Func("lookup_fact", "Look up a fact about a topic",
			func(ctx context.Context, args struct {
				Topic string `json:"topic"`
			}) (any, error) {
				return "The Eiffel Tower is 330 meters tall.", nil
			}),
	)

	g := gen.New(p,
		gen.WithRegistry(registry),
		gen.WithEvents(events),
	)

	messages := []ai.Message{
		ai.NewUserMessage("How tall is the Eiffel Tower? Use the lookup tool."),
	}
	fmt.Printf("\nUser: %s\n\n", messages[0].Content)

	result, err := g.GenerateText(ctx, messages)
	close(events)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("\nAssistant: %s\n", result.Text())
}
