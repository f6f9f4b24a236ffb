package repository

import (
	"context"
	"time"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTransactionRepository defines the operations for the token ledger.
// The ledger is append-only; entries are never updated or deleted except
// when the owning account is removed.
type TokenTransactionRepository interface {
	// Create appends a ledger entry.
	Create(ctx context.Context, tx *entity.TokenTransaction) error

	// FindByUserID lists a user's ledger entries, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TokenTransaction, error)

	// FindLastByType returns the user's most recent entry of the given type,
	// or nil when none exists. Used for once-per-day and once-ever checks.
	FindLastByType(ctx context.Context, userID uuid.UUID, txType entity.TransactionType) (*entity.TokenTransaction, error)

	// ExistsByTypeAndDescription reports whether the user already has an
	// entry of the given type whose description contains the substring.
	// Referral dedup relies on the referred email being embedded there.
	ExistsByTypeAndDescription(ctx context.Context, userID uuid.UUID, txType entity.TransactionType, substring string) (bool, error)

	// DeleteByUserID removes a user's entire ledger. Account deletion only.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// SumEarnedSince totals positive amounts created at or after the cutoff.
	// Back-office statistics.
	SumEarnedSince(ctx context.Context, since time.Time) (int64, error)
}
