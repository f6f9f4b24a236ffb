package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table. Orders reference services by
// name, so the name is unique.
type ServiceModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"type:varchar(255);unique;not null"`
	Description      string    `gorm:"type:text"`
	Price            int       `gorm:"not null"`
	Category         string    `gorm:"type:varchar(50);index;not null"`
	ImageURL         string    `gorm:"type:varchar(512)"`
	IsGoldenEligible bool      `gorm:"not null;default:false"`
	DeliveryTime     string    `gorm:"type:varchar(50)"`
	ClickCount       int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
