package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/response"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TokenHandler holds dependencies for the loyalty ledger handlers.
type TokenHandler struct {
	uc     usecase.TokenUsecase
	logger *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler, injected by Fx.
func NewTokenHandler(uc usecase.TokenUsecase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		uc:     uc,
		logger: logger,
	}
}

type earnTokensRequest struct {
	Type string `json:"type" validate:"required"`
	// Amount defaults to the configured reward for the claim type.
	Amount        int    `json:"amount" validate:"gte=0"`
	Description   string `json:"description"`
	ReferralEmail string `json:"referralEmail"`
}

// Earn claims a reward for the caller. Eligibility rules run in the usecase.
func (h *TokenHandler) Earn(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}

	var req earnTokensRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	tx, err := h.uc.Earn(c.Request().Context(), usecase.EarnTokensInput{
		UserID:        snapshot.ID,
		Type:          entity.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		ReferralEmail: req.ReferralEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     tx.ID,
		"type":   string(tx.Type),
		"amount": tx.Amount,
	}, "Tokens earned")
}

// Transactions lists the caller's ledger, newest first.
func (h *TokenHandler) Transactions(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}

	transactions, err := h.uc.Transactions(c.Request().Context(), snapshot.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionViews(transactions), "")
}
