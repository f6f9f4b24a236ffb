package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/response"
	"sagedo/internal/domain/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the payment gateway bridge handlers.
type PaymentHandler struct {
	uc      usecase.PaymentUsecase
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, gateway service.PaymentGateway, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:      uc,
		gateway: gateway,
		logger:  logger,
	}
}

// Config tells the checkout frontend whether payments are enabled and which
// public key to use.
func (h *PaymentHandler) Config(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"available": h.gateway.Available(),
		"keyId":     h.gateway.KeyID(),
	}, "")
}

type createPaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	// Amount is in the currency's smallest unit (paise).
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreateOrder registers a gateway order for checkout.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	output, err := h.uc.CreateGatewayOrder(c.Request().Context(), usecase.CreatePaymentInput{
		OrderID: orderID,
		Amount:  req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"gatewayOrderId": output.GatewayOrderID,
		"amount":         output.Amount,
		"currency":       output.Currency,
		"keyId":          output.KeyID,
	}, "Payment order created")
}

type verifyPaymentRequest struct {
	OrderID          string `json:"orderId" validate:"required"`
	GatewayOrderID   string `json:"razorpayOrderId" validate:"required"`
	GatewayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	Signature        string `json:"razorpaySignature" validate:"required"`
}

// Verify checks the checkout callback signature and records the payment.
// A failed signature is a normal 200 response with success false.
func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	output, err := h.uc.Verify(c.Request().Context(), usecase.VerifyPaymentInput{
		OrderID:          orderID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{"verified": output.Success}
	if output.Order != nil {
		data["order"] = toOrderView(output.Order)
	}

	message := "Payment verified"
	if !output.Success {
		message = "Payment verification failed"
	}

	return response.Success(c, http.StatusOK, data, message)
}
