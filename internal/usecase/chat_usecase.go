package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ChatInput is one user message to the assistant.
type ChatInput struct {
	// ConversationID keys the rolling history. Empty starts a new conversation.
	ConversationID string
	Message        string
	// Personality selects the reply voice ("friendly" or "roast").
	Personality string
	// UserID is set when a session exists; it lets the assistant answer
	// order-status questions from the caller's own orders.
	UserID *uuid.UUID
}

// ChatOutput is the assistant's reply. Text is always non-empty; the
// assistant never surfaces an error to the caller.
type ChatOutput struct {
	ConversationID   string
	Text             string
	SuggestedReplies []string
	// Action optionally tells the frontend to navigate ("order", "support").
	Action string
}

// ChatUsecase defines the interface for the chat assistant.
type ChatUsecase interface {
	Respond(ctx context.Context, input ChatInput) (*ChatOutput, error)
}
