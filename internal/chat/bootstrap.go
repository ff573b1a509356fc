package chat

import (
	"context"
	"fmt"

	"chat-demo-backend/internal/dto"
)

// DefaultConversationName is the conversation shared by all terminal clients
const DefaultConversationName = "ngrok"

type ConversationStore interface {
	ListConversations(ctx context.Context, limit int) ([]dto.Conversation, error)
	CreateConversation(ctx context.Context, name string) (dto.Conversation, error)
}

// FindOrCreateConversation returns the first conversation named exactly name, creating it when absent.
// The lookup and the create are separate requests: two clients starting together may both create one.
func FindOrCreateConversation(ctx context.Context, store ConversationStore, name string) (dto.Conversation, error) {
	conversations, err := store.ListConversations(ctx, 0)
	if err != nil {
		return dto.Conversation{}, fmt.Errorf("list conversations: %w", err)
	}
	for _, c := range conversations {
		if c.Name != nil && *c.Name == name {
			return c, nil
		}
	}

	created, err := store.CreateConversation(ctx, name)
	if err != nil {
		return dto.Conversation{}, fmt.Errorf("create conversation %q: %w", name, err)
	}
	return created, nil
}
