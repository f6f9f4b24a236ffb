// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves a user linked to the given Google account.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// FindByVerificationToken retrieves a user by their pending email verification token.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// FindByResetToken retrieves a user by their password reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Orders and the used-email ledger are not touched.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of user rows.
	Count(ctx context.Context) (int64, error)

	// CountCreatedSince returns the number of users created at or after the cutoff.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)

	// SumLoginCount totals the login counters across all users.
	SumLoginCount(ctx context.Context) (int64, error)

	// FindRecent lists the most recently created users.
	FindRecent(ctx context.Context, limit int) ([]*entity.User, error)
}
