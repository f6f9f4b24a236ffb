package repository

import (
	"context"

	"sagedo/internal/domain/entity"
)

// UsedEmailRepository defines the operations for the signup-bonus email ledger.
type UsedEmailRepository interface {
	// Exists reports whether the normalized email has already claimed a bonus.
	Exists(ctx context.Context, normalizedEmail string) (bool, error)

	// Create records a claimed email. Inserting an already-recorded
	// normalized email is not an error.
	Create(ctx context.Context, usedEmail *entity.UsedEmail) error
}
