package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderModel mirrors the 'orders' table. UserID is indexed but carries no
// foreign key constraint: orders outlive deleted accounts.
type OrderModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID             uuid.UUID      `gorm:"type:uuid;index;not null"`
	ServiceName        string         `gorm:"type:varchar(255);not null"`
	CustomerEmail      string         `gorm:"type:varchar(255);index;not null"`
	CustomerName       string         `gorm:"type:varchar(100)"`
	Requirements       string         `gorm:"type:text"`
	FileURLs           pq.StringArray `gorm:"type:text[]"`
	Status             string         `gorm:"type:varchar(20);index;not null"`
	AmountPaid         int            `gorm:"not null;default:0"`
	PaymentID          string         `gorm:"type:varchar(255)"`
	PaymentStatus      string         `gorm:"type:varchar(20);not null"`
	DeliveryPreference string         `gorm:"type:varchar(20);not null"`
	DeliveryFileURLs   pq.StringArray `gorm:"type:text[]"`
	DeliveryNotes      string         `gorm:"type:text"`
	DeliveredAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
