package usecase

import (
	"context"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput requests a gateway order for an existing order.
type CreatePaymentInput struct {
	// Amount is in the currency's smallest unit (paise).
	Amount  int64
	OrderID uuid.UUID
}

// CreatePaymentOutput is the gateway reference the checkout frontend needs.
type CreatePaymentOutput struct {
	GatewayOrderID string
	Amount         int64
	Currency       string
	KeyID          string
}

// VerifyPaymentInput carries the checkout callback payload.
type VerifyPaymentInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	OrderID          uuid.UUID
}

// VerifyPaymentOutput reports the verification result. Success false is a
// normal response, not an error; the order is left untouched.
type VerifyPaymentOutput struct {
	Success bool
	Order   *entity.Order
}

// PaymentUsecase defines the interface for the payment gateway bridge.
type PaymentUsecase interface {
	// CreateGatewayOrder registers a gateway order. Errors with
	// GATEWAY_UNAVAILABLE when no credentials are configured.
	CreateGatewayOrder(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error)

	// Verify checks the callback signature. On success the order moves to
	// processing, records the payment and fires the payment email.
	Verify(ctx context.Context, input VerifyPaymentInput) (*VerifyPaymentOutput, error)
}
