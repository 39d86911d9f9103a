package main

import (
	"context"
	"fmt"
	"os"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/gen"
	"github.com/omnigen-ai/omnigen/schema"
)

func demoStructured(ctx context.Context, p ai.Provider) {
	recipe := schema.Object().
		Field("name", schema.String().Desc("Recipe name")).
		Field("minutes", schema.Int().Min(1).Desc("Preparation time")).
		Field("ingredients", schema.Array(schema.String()))

	messages := []ai.Message{
		ai.NewUserMessage("Give me a simple pancake recipe."),
	}
	fmt.Printf("\nUser: %s\n", messages[0].Content)

	g := gen.New(p)
	result, err := g.GenerateObject(ctx, messages, recipe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("\nName: %v\n", result.Object["name"])
	fmt.Printf("Minutes: %v\n", result.Object["minutes"])
	fmt.Printf("Ingredients: %v\n", result.Object["ingredients"])
}

type movieReview struct {
	Title   string `json:"title" description:"Movie title"`
	Rating  int    `json:"rating" description:"Rating from 1 to 10"`
	Summary string `json:"summary" description:"One-sentence summary"`
}

func demoTyped(ctx context.Context, p ai.Provider) {
	messages := []ai.Message{
		ai.NewUserMessage("Review the movie Alien (1979)."),
	}
	fmt.Printf("\nUser: %s\n", messages[0].Content)

	g := gen.New(p)
	result, err := gen.ObjectTyped[movieReview](ctx, g, messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	review := result.Value
	fmt.Printf("\n%s: %d/10\n%s\n", review.Title, review.Rating, review.Summary)
}
