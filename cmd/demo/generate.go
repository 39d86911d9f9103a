package main

import (
	"context"
	"fmt"
	"io"
	"os"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/gen"
	"github.com/omnigen-ai/omnigen/model"
	"github.com/omnigen-ai/omnigen/provider/anthropic"
	"github.com/omnigen-ai/omnigen/provider/openai"
)

func demoGenerate(ctx context.Context, p ai.Provider) {
	messages := []ai.Message{
		ai.NewUserMessage("What is the capital of France? Reply in one sentence."),
	}

	fmt.Printf("\nUser: %s\n", messages[0].Content)

	g := gen.New(p)
	result, err := g.GenerateText(ctx, messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("\nAssistant: %s\n", result.Text())
	fmt.Printf("[Tokens: %d in, %d out]\n",
		result.Usage.PromptTokens, result.Usage.CompletionTokens)
	if m, ok := model.Find(modelID()); ok {
		fmt.Printf("[Estimated cost: $%.6f]\n", m.Pricing().Cost(result.Usage))
	}
}

// modelID reports which default model the selected provider uses.
func modelID() string {
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		return anthropic.DefaultModel
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		return openai.DefaultModel
	}
	return os.Getenv("OPENAI_COMPAT_MODEL")
}

func demoStream(ctx context.Context, p ai.Provider) {
	messages := []ai.Message{
		ai.NewUserMessage("Say hello in 3 different languages, one per line."),
	}

	g := gen.New(p)
	s := g.StreamText(ctx, messages)

	fmt.Print("\nAssistant:\n")
	for {
		chunk, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nStream error: %v\n", err)
			return
		}

		fmt.Print(chunk.Delta)
		if chunk.Complete && chunk.Usage != nil {
			fmt.Printf("\n[Tokens: %d in, %d out]\n",
				chunk.Usage.PromptTokens, chunk.Usage.CompletionTokens)
		}
	}
}
