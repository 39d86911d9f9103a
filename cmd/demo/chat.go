package main

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/gen"
	"github.com/omnigen-ai/omnigen/store"
)

const chatConversationID = "demo-chat"

// demoChat runs a multi-turn chat where the history survives across
// turns through a conversation store. Type "reset" to discard the
// history and "done" to return to the menu.
func demoChat(ctx context.Context, p ai.Provider) {
	conversations := store.NewConversations(store.NewMemoryAdapter())
	g := gen.New(p)

	fmt.Println("Chat session. Type \"reset\" to clear history, \"done\" to exit.")

	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "done":
			return
		case "reset":
			if err := conversations.Delete(ctx, chatConversationID); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("History cleared.")
			continue
		}

		history, _, err := conversations.Load(ctx, chatConversationID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if len(history) == 0 {
			history = []ai.Message{ai.NewSystemMessage("You are a helpful, concise assistant.")}
		}
		history = append(history, ai.NewUserMessage(line))

		result, err := g.GenerateText(ctx, history)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Println(result.Text())

		// Result.Messages carries tool-call turns too, so persist it
		// rather than the input history.
		saved := append(result.Messages, ai.NewAssistantMessage(result.Text()))
		if err := conversations.Save(ctx, chatConversationID, saved); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}
