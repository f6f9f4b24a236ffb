package usecase

import (
	"context"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// EarnTokensInput defines a reward claim.
type EarnTokensInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      int
	Description string
	// ReferralEmail is required for referral claims and ignored otherwise.
	ReferralEmail string
}

// TokenUsecase defines the interface for the token ledger.
type TokenUsecase interface {
	// Earn validates the claim's eligibility rules, appends a ledger entry
	// and bumps the user's balance in one transaction.
	Earn(ctx context.Context, input EarnTokensInput) (*entity.TokenTransaction, error)

	// Transactions lists the user's ledger, newest first.
	Transactions(ctx context.Context, userID uuid.UUID) ([]*entity.TokenTransaction, error)
}
