package usecase

import (
	"context"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines a customer order submission.
type CreateOrderInput struct {
	// UserID is set when a session exists; nil orders go through the lazy
	// guest-account path keyed by CustomerEmail.
	UserID             *uuid.UUID
	CustomerName       string
	CustomerEmail      string
	ServiceName        string
	Requirements       string
	FileURLs           []string
	DeliveryPreference entity.DeliveryPreference
	// RedeemGoldenTicket requests the one-time free order. It only takes
	// effect when the named service is golden-eligible and the user still
	// holds an unused ticket.
	RedeemGoldenTicket bool
}

// UpdateOrderStatusInput defines an admin status mutation.
type UpdateOrderStatusInput struct {
	OrderID          uuid.UUID
	Status           entity.OrderStatus
	DeliveryNotes    string
	DeliveryFileURLs []string
}

// OrderUsecase defines the interface for the order lifecycle.
type OrderUsecase interface {
	// Create places an order in the pending state and fires the
	// confirmation email best-effort.
	Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetByID fetches a single order.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser lists a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll lists every order, newest first. Back-office use.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus advances an order to the immediate next status only.
	// Landing on delivered stamps DeliveredAt and fires the delivery email.
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*entity.Order, error)
}
