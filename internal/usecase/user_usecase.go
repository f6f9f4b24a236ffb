// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the ID token from Google Sign-In.
type GoogleLoginInput struct {
	IDToken string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// UserUsecase defines the interface for identity and account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account. The welcome bonus flags are granted only
	// when the normalized form of the email has never claimed them before.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login authenticates by email and password. The configured back-office
	// credentials resolve to a synthetic admin identity that has no user row.
	Login(ctx context.Context, input LoginInput) (*entity.User, error)

	// GoogleLogin verifies a Google ID token and logs in, creating the
	// account on first sight. New accounts pass the same bonus gate as
	// Register.
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*entity.User, error)

	// VerifyEmail marks the account holding this verification token as verified.
	VerifyEmail(ctx context.Context, token string) error

	// RequestPasswordReset issues a reset token and emails it. It succeeds
	// whether or not the email belongs to an account.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword sets a new password for the account holding a live reset token.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// GetUser fetches the persisted user. Unlike the session snapshot this
	// always reflects the database.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the user and their token ledger. Orders and the
	// used-email ledger are retained.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
