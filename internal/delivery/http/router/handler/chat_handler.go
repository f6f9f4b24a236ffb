package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/response"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the assistant handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

type chatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message" validate:"required"`
	Personality    string `json:"personality"`
}

// Chat answers one assistant message. A session is optional; with one the
// assistant can answer order-status questions.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ChatInput{
		ConversationID: req.ConversationID,
		Message:        req.Message,
		Personality:    req.Personality,
	}

	if snapshot := middleware.CurrentUser(c); snapshot != nil && snapshot.ID != uuid.Nil {
		id := snapshot.ID
		input.UserID = &id
	}

	output, err := h.uc.Respond(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"conversationId":   output.ConversationID,
		"text":             output.Text,
		"suggestedReplies": output.SuggestedReplies,
		"action":           output.Action,
	}, "")
}
