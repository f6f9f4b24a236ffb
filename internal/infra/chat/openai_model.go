// Package chat provides the assistant's language-model backend and
// conversation history stores.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"sagedo/config"
	"sagedo/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// openAIModel backs the assistant with the OpenAI chat completion API.
// A nil client means no API key was configured.
type openAIModel struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIModel builds the chat model from config. Without an API key the
// model reports itself unavailable and the assistant runs on its rule table.
func NewOpenAIModel(cfg *config.Config, logger *slog.Logger) service.ChatModel {
	m := &openAIModel{logger: logger, model: cfg.Assistant.Model}
	if m.model == "" {
		m.model = defaultModel
	}

	if cfg.Assistant.APIKey == "" {
		logger.Warn("Assistant API key not configured, LLM replies disabled")

		return m
	}

	m.client = openai.NewClient(cfg.Assistant.APIKey)

	return m
}

func (m *openAIModel) Available() bool {
	return m.client != nil
}

func (m *openAIModel) Complete(ctx context.Context, systemPrompt string, history []service.ChatMessage) (string, error) {
	if m.client == nil {
		return "", errors.New("chat model not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    toOpenAIRole(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion: blank reply")
	}

	return reply, nil
}

func toOpenAIRole(role service.ChatRole) string {
	if role == service.ChatRoleAssistant {
		return openai.ChatMessageRoleAssistant
	}

	return openai.ChatMessageRoleUser
}
