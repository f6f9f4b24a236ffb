package service

import "context"

// GatewayOrder is an order registered with the payment gateway. Amounts are
// in the currency's smallest unit (paise for INR).
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentGateway defines the interface for the external payment provider.
type PaymentGateway interface {
	// Available reports whether gateway credentials are configured. When
	// false the other methods must not be called.
	Available() bool

	// KeyID returns the public key identifier the frontend checkout needs.
	KeyID() string

	// CreateOrder registers a gateway order for the given amount.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)

	// VerifySignature checks the checkout callback signature against the
	// gateway order and payment IDs. Comparison is constant-time.
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}
