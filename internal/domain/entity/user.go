// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. A row exists for every registered
// customer and for every guest who has placed an order; the back-office
// admin identity is synthetic and never stored here.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string // Empty for guest accounts and OAuth-only accounts.
	Name         string
	GoogleID     string
	IsAdmin      bool
	IsGuest      bool // Lazily provisioned when a sessionless order comes in.

	// Reward state. TokenBalance is denormalized from the transaction
	// ledger and must only change through a TokenTransaction insert.
	TokenBalance    int
	HasGoldenTicket bool
	HasWelcomeBonus bool

	// Verification and recovery state.
	IsEmailVerified   bool
	VerificationToken string
	ResetToken        string
	ResetTokenExpiry  *time.Time

	// Login telemetry.
	LoginCount  int
	LastLoginAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionSnapshot is the denormalized view of a user stored in the cookie
// session. It is captured at login and is NOT re-read from the database on
// every request, so it can drift until the next login.
type SessionSnapshot struct {
	ID              uuid.UUID
	Email           string
	Name            string
	IsAdmin         bool
	TokenBalance    int
	HasGoldenTicket bool
	HasWelcomeBonus bool
}

// Snapshot captures the session view of the user.
func (u *User) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		IsAdmin:         u.IsAdmin,
		TokenBalance:    u.TokenBalance,
		HasGoldenTicket: u.HasGoldenTicket,
		HasWelcomeBonus: u.HasWelcomeBonus,
	}
}
