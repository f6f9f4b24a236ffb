package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	deliverycontext "sagedo/internal/delivery/context"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/domain/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const assistantSystemPrompt = "You are Bruno, the senior personal assistant at SAGE DO, an Indian " +
	"online services marketplace. You are professional, empathetic, efficient and slightly witty. " +
	"Answer briefly, suggest relevant SAGE DO services when appropriate, and never invent order data."

// chatService implements the ChatUsecase interface. Replies come from the
// LLM when one is configured and from the keyword table otherwise; the table
// is also the fallback for every LLM failure, so the caller always gets text.
type chatService struct {
	model     service.ChatModel
	history   service.ChatHistoryStore
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Model     service.ChatModel `optional:"true"`
	History   service.ChatHistoryStore
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		model:     params.Model,
		history:   params.History,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Respond answers one user message. It never returns an error to the
// delivery layer for assistant failures; the keyword table is the floor.
func (srv *chatService) Respond(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message is required")
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	reply := srv.reply(ctx, conversationID, input)
	reply.ConversationID = conversationID

	if err := srv.history.Append(ctx, conversationID,
		service.ChatMessage{Role: service.ChatRoleUser, Content: input.Message},
		service.ChatMessage{Role: service.ChatRoleAssistant, Content: reply.Text},
	); err != nil {
		// History is best-effort; the reply still goes out.
		srv.log(ctx).Warn("Failed to persist chat history", slog.Any("error", err))
	}

	return reply, nil
}

func (srv *chatService) reply(ctx context.Context, conversationID string, input usecase.ChatInput) *usecase.ChatOutput {
	if srv.model != nil && srv.model.Available() {
		if out, err := srv.llmReply(ctx, conversationID, input.Message); err == nil {
			return out
		} else {
			srv.log(ctx).Warn("LLM reply failed, using keyword table", slog.Any("error", err))
		}
	}

	if input.Personality == "roast" {
		return srv.roastReply(input.Message)
	}

	return srv.standardReply(ctx, input)
}

func (srv *chatService) llmReply(ctx context.Context, conversationID, message string) (*usecase.ChatOutput, error) {
	history, err := srv.history.Load(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	history = append(history, service.ChatMessage{Role: service.ChatRoleUser, Content: message})

	text, err := srv.model.Complete(ctx, assistantSystemPrompt, history)
	if err != nil {
		return nil, errors.Wrap(err, "llm completion failed")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("llm returned empty reply")
	}

	return &usecase.ChatOutput{
		Text:             text,
		SuggestedReplies: []string{"Browse Services", "Check My Orders", "Contact Support"},
	}, nil
}

var websiteRoasts = []string{
	"Aha! I see what you did there. It's... 'retro'. Let's modernize this before your customers think it's 2005.",
	"The design is 'unique', but is it selling? A quick UI polish could probably double your conversions.",
	"I love the effort! But that load time gave me enough time to make chai. Let's speed it up?",
	"It works, but does it WOW? 'Good enough' isn't enough. Let's make it world-class.",
	"Your content is solid, but the layout is hiding your best offers. Let's bring them to the spotlight.",
}

// roastReply is the "savage consultant" voice.
func (srv *chatService) roastReply(message string) *usecase.ChatOutput {
	lower := strings.ToLower(message)

	if containsAny(lower, "http", "www", ".com", ".in") {
		roast := websiteRoasts[rand.Intn(len(websiteRoasts))]

		return &usecase.ChatOutput{
			Text:             roast + "\n\n(Want a pro review? Check 'Web Dev' in Services)",
			SuggestedReplies: []string{"Improve My Website", "View Web Services", "Analyze Again"},
		}
	}

	if containsAny(lower, "hello", "hi") {
		return &usecase.ChatOutput{
			Text:             "Namaste! Ready to stop playing safe and start dominating your market? Let's get to work.",
			SuggestedReplies: []string{"Critique My Strategy", "Grow My Business"},
		}
	}

	return &usecase.ChatOutput{
		Text: "I'm in 'Real Talk' mode. Show me your work (link or idea) and I'll tell you how to make " +
			"it 10x better. No sugar coating, just growth.",
		SuggestedReplies: []string{"Critique My Business", "Show Top Services"},
	}
}

// standardReply is the polite keyword-matched assistant.
func (srv *chatService) standardReply(ctx context.Context, input usecase.ChatInput) *usecase.ChatOutput {
	lower := strings.ToLower(input.Message)

	switch {
	case containsAny(lower, "hi", "hello", "hey", "namaste"):
		return &usecase.ChatOutput{
			Text:             "Namaste! I'm Bruno. How can I assist you with your business or studies today?",
			SuggestedReplies: []string{"Browse Services", "Check My Orders", "Contact Support"},
		}

	case containsAny(lower, "price", "cost", "how much"):
		return &usecase.ChatOutput{
			Text: "Our services start from just ₹199! We have 40+ services.\n\n" +
				"• Business Ads: ₹199\n• Website Content: ₹499\n• PPT Design: ₹299\n\n" +
				"Would you like to see the full menu?",
			SuggestedReplies: []string{"View All Services", "View Business Pack", "View Student Pack"},
			Action:           "navigate_services",
		}

	case containsAny(lower, "delivery", "how long", "time"):
		return &usecase.ChatOutput{
			Text: "Speed is our superpower!\nMost orders are delivered within 24-48 hours.\n\n" +
				"For complex projects (like full websites) it might take 72 hours. " +
				"You can track everything in your Dashboard.",
			SuggestedReplies: []string{"Track My Order", "Place Order"},
		}

	case containsAny(lower, "human", "support", "talk", "number"):
		return &usecase.ChatOutput{
			Text: "I can connect you to my human boss!\n\nYou can chat directly with our Support Team " +
				"on WhatsApp. We usually reply in under 10 minutes.",
			SuggestedReplies: []string{"Open WhatsApp", "Email Support"},
			Action:           "open_whatsapp",
		}

	case containsAny(lower, "status", "order", "track"):
		return srv.orderStatusReply(ctx, input.UserID)

	case containsAny(lower, "founder", "owner", "mukul"):
		return &usecase.ChatOutput{
			Text: "That's my boss! Mr. Mukul Dhiman founded SAGE DO to make premium services " +
				"accessible to everyone in India.",
			SuggestedReplies: []string{"Read About Us", "View Services"},
		}

	default:
		return &usecase.ChatOutput{
			Text: "I'm still learning!\nI didn't quite catch that. Could you try asking about " +
				"'Services', 'Pricing', or 'Order Status'?\n\nOr just say 'Support' to talk to a human.",
			SuggestedReplies: []string{"Services", "Support", "Pricing"},
		}
	}
}

// orderStatusReply answers the order intent from the caller's own orders.
func (srv *chatService) orderStatusReply(ctx context.Context, userID *uuid.UUID) *usecase.ChatOutput {
	if userID == nil {
		return &usecase.ChatOutput{
			Text:             "I need to know who you are first! Please login so I can check your order status.",
			SuggestedReplies: []string{"Login Now"},
			Action:           "navigate_login",
		}
	}

	orders, err := srv.orderRepo.FindByUserID(ctx, *userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load orders for chat status", slog.Any("userID", *userID), slog.Any("error", err))

		return &usecase.ChatOutput{
			Text:             "I couldn't reach your order file just now. Please check your Dashboard or try again in a moment.",
			SuggestedReplies: []string{"View Dashboard", "Contact Support"},
		}
	}

	if len(orders) == 0 {
		return &usecase.ChatOutput{
			Text:             "I checked your file, and you don't have any active orders yet. Want to start one?",
			SuggestedReplies: []string{"Browse Services"},
			Action:           "navigate_services",
		}
	}

	recent := orders[0]

	return &usecase.ChatOutput{
		Text: fmt.Sprintf("Your Status Report:\n\nOrder: %s\nStatus: %s\nDate: %s\n\nNeed help with this?",
			recent.ServiceName,
			strings.ToUpper(string(recent.Status)),
			recent.CreatedAt.Format("02 Jan 2006")),
		SuggestedReplies: []string{"Contact Support", "View Dashboard"},
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}

	return false
}
