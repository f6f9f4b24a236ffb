// Package model holds the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Guest accounts created for
// sessionless orders live here too, flagged with is_guest.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash      string    `gorm:"type:varchar(255)"`
	Name              string    `gorm:"type:varchar(100)"`
	GoogleID          string    `gorm:"type:varchar(255);index"`
	IsAdmin           bool      `gorm:"not null;default:false"`
	IsGuest           bool      `gorm:"not null;default:false"`
	TokenBalance      int       `gorm:"not null;default:0"`
	HasGoldenTicket   bool      `gorm:"not null;default:false"`
	HasWelcomeBonus   bool      `gorm:"not null;default:false"`
	IsEmailVerified   bool      `gorm:"not null;default:false"`
	VerificationToken string    `gorm:"type:varchar(255);index"`
	ResetToken        string    `gorm:"type:varchar(255);index"`
	ResetTokenExpiry  *time.Time
	LoginCount        int `gorm:"not null;default:0"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
