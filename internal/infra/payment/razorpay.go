// Package payment implements the payment gateway port against Razorpay.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"sagedo/config"
	"sagedo/internal/domain/service"

	"github.com/pkg/errors"
	razorpay "github.com/razorpay/razorpay-go"
)

// razorpayGateway wraps the Razorpay SDK. A nil client means the gateway was
// never configured and Available() reports false.
type razorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	logger    *slog.Logger
}

// NewRazorpayGateway builds the gateway from config. Missing credentials are
// not an error; the service keeps running with payments disabled.
func NewRazorpayGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	gw := &razorpayGateway{logger: logger}
	if cfg.Razorpay == nil || cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		logger.Warn("Razorpay credentials not configured, payment gateway disabled")

		return gw
	}

	gw.keyID = cfg.Razorpay.KeyID
	gw.keySecret = cfg.Razorpay.KeySecret
	gw.client = razorpay.NewClient(gw.keyID, gw.keySecret)

	return gw
}

func (g *razorpayGateway) Available() bool {
	return g.client != nil
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder registers an order with Razorpay. Amount is in the currency's
// smallest unit.
func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (*service.GatewayOrder, error) {
	if g.client == nil {
		return nil, errors.New("razorpay client not configured")
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "razorpay order create")
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("razorpay order create: missing order id in response")
	}

	g.logger.Info("Razorpay order created",
		slog.String("gatewayOrderID", id),
		slog.Int64("amount", amount),
		slog.String("receipt", receipt))

	return &service.GatewayOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the checkout callback signature. Razorpay signs
// "<order_id>|<payment_id>" with the key secret using HMAC-SHA256.
func (g *razorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if g.keySecret == "" {
		return false
	}

	return verifyCheckoutSignature(g.keySecret, gatewayOrderID, paymentID, signature)
}

func verifyCheckoutSignature(secret, gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
