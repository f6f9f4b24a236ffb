package model

import (
	"time"

	"github.com/google/uuid"
)

// UsedEmailModel mirrors the 'used_emails' table. Rows are never deleted,
// not even when the account that claimed them is.
type UsedEmailModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	NormalizedEmail string    `gorm:"type:varchar(255);unique;not null"`
	OriginalEmail   string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UsedEmailModel) TableName() string {
	return "used_emails"
}
