package service

import "context"

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn in an assistant conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatModel defines the interface for a language-model backend. The
// assistant falls back to its rule table when the model is unavailable or
// errors out, so implementations may simply return an error when no API key
// is configured.
type ChatModel interface {
	// Available reports whether the backend is configured.
	Available() bool

	// Complete generates the assistant's reply to the conversation. The
	// system prompt is supplied by the caller.
	Complete(ctx context.Context, systemPrompt string, history []ChatMessage) (string, error)
}

// ChatHistoryStore defines the interface for per-conversation history.
// Histories are capped and expire after a period of inactivity.
type ChatHistoryStore interface {
	// Load returns the stored history for a conversation, oldest first.
	// A missing conversation yields an empty slice, not an error.
	Load(ctx context.Context, conversationID string) ([]ChatMessage, error)

	// Append adds messages to a conversation and refreshes its expiry.
	Append(ctx context.Context, conversationID string, messages ...ChatMessage) error
}
