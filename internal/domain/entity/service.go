package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory is the fixed set of catalog categories.
type ServiceCategory string

const (
	CategoryBusiness     ServiceCategory = "Business"
	CategoryStudent      ServiceCategory = "Student"
	CategoryProfessional ServiceCategory = "Professional"
	CategoryPersonal     ServiceCategory = "Personal"
)

// Service is an immutable catalog item. The order workflow never mutates it;
// orders reference services by name only, so bespoke requests stay possible.
type Service struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int // Rupees.
	Category    ServiceCategory
	ImageURL    string
	// IsGoldenEligible marks services a Golden Ticket can make free.
	IsGoldenEligible bool
	DeliveryTime     string // e.g. "24 hours", "2-3 days".
	ClickCount       int
	CreatedAt        time.Time
}
