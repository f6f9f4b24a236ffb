package usecase

import (
	"context"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveServiceInput defines an admin catalog mutation.
type SaveServiceInput struct {
	Name             string
	Description      string
	Price            int
	Category         entity.ServiceCategory
	ImageURL         string
	IsGoldenEligible bool
	DeliveryTime     string
}

// CatalogUsecase defines the interface for the service catalog.
type CatalogUsecase interface {
	// List returns the whole catalog, optionally filtered by category.
	List(ctx context.Context, category entity.ServiceCategory) ([]*entity.Service, error)

	// Get fetches a single catalog entry.
	Get(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// RecordClick bumps an entry's popularity counter.
	RecordClick(ctx context.Context, id uuid.UUID) error

	// Create adds a catalog entry. Back-office use.
	Create(ctx context.Context, input SaveServiceInput) (*entity.Service, error)

	// Update replaces a catalog entry's fields. Back-office use.
	Update(ctx context.Context, id uuid.UUID, input SaveServiceInput) (*entity.Service, error)

	// Delete removes a catalog entry. Back-office use.
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed installs the default catalog when the table is empty.
	Seed(ctx context.Context) error
}
