package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/provider/anthropic"
	"github.com/omnigen-ai/omnigen/provider/compat"
	"github.com/omnigen-ai/omnigen/provider/openai"
)

var reader = bufio.NewReader(os.Stdin)

// Demo represents a single demo with its metadata.
type Demo struct {
	Name        string
	Description string
	Run         func(ctx context.Context, p ai.Provider)
}

var demos = []Demo{
	{"Generate", "Single-shot text generation", demoGenerate},
	{"Stream", "Streaming text generation", demoStream},
	{"Tools", "Tool-calling roundtrips with a policy", demoTools},
	{"Structured", "Schema-constrained object generation", demoStructured},
	{"Typed", "Structured output decoded into a Go struct", demoTyped},
	{"Events", "Lifecycle events emitted during a run", demoEvents},
	{"Chat", "Multi-turn chat with persisted history", demoChat},
}

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("omnigen demo")
	fmt.Println()

	p, label := selectProvider()
	if p == nil {
		fmt.Println("No provider configured. Set ANTHROPIC_API_KEY, OPENAI_API_KEY,")
		fmt.Println("or OPENAI_COMPAT_BASE_URL (with OPENAI_COMPAT_MODEL).")
		return
	}
	fmt.Printf("Using %s\n\n", label)

	for {
		fmt.Println("Demos:")
		for i, d := range demos {
			fmt.Printf("  [%d] %-12s %s\n", i+1, d.Name, d.Description)
		}
		fmt.Println("  [q] Quit")
		fmt.Print("\nSelect: ")

		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(answer)
		if answer == "q" || answer == "quit" {
			return
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(demos) {
			fmt.Println("Invalid selection.")
			continue
		}

		demos[n-1].Run(ctx, p)
		fmt.Println()
	}
}

// selectProvider picks the first configured provider from the environment.
func selectProvider() (ai.Provider, string) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return anthropic.New(key), "Anthropic (" + anthropic.DefaultModel + ")"
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return openai.New(key), "OpenAI (" + openai.DefaultModel + ")"
	}
	if base := os.Getenv("OPENAI_COMPAT_BASE_URL"); base != "" {
		model := os.Getenv("OPENAI_COMPAT_MODEL")
		client := compat.New(base, os.Getenv("OPENAI_COMPAT_API_KEY"), compat.WithModel(model))
		return client, "OpenAI-compatible (" + base + ")"
	}
	return nil, ""
}
