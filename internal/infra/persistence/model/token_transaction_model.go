package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenTransactionModel mirrors the append-only 'token_transactions' table.
type TokenTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Type        string    `gorm:"type:varchar(20);index;not null"`
	Amount      int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenTransactionModel) TableName() string {
	return "token_transactions"
}
