package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a token ledger entry.
type TransactionType string

const (
	TransactionWelcome    TransactionType = "welcome"
	TransactionDailyLogin TransactionType = "daily_login"
	TransactionReferral   TransactionType = "referral"
	TransactionSurvey     TransactionType = "survey"
	TransactionSpend      TransactionType = "spend"
)

// Valid reports whether t names a known ledger entry type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionWelcome, TransactionDailyLogin, TransactionReferral,
		TransactionSurvey, TransactionSpend:
		return true
	}

	return false
}

// TokenTransaction is one line in a user's token ledger. Amount is positive
// for earnings and negative for spends; the ledger is append-only and the
// user's balance is kept in sync inside the same database transaction.
type TokenTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Type   TransactionType
	Amount int
	// Description carries human-readable context; referral entries embed
	// the referred email so repeat referrals can be detected.
	Description string
	CreatedAt   time.Time
}
