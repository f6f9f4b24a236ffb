package repository

import (
	"context"
	"errors"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a catalog entry does not exist.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the operations for the service catalog.
type ServiceRepository interface {
	// FindByID retrieves a single catalog entry.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByName retrieves a catalog entry by its exact name. Orders
	// reference services by name, not by id.
	FindByName(ctx context.Context, name string) (*entity.Service, error)

	// FindAll lists the whole catalog ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Service, error)

	// FindByCategory lists catalog entries within one category.
	FindByCategory(ctx context.Context, category entity.ServiceCategory) ([]*entity.Service, error)

	// Create persists a new catalog entry.
	Create(ctx context.Context, service *entity.Service) error

	// Update modifies an existing catalog entry.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a catalog entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementClickCount bumps the popularity counter for an entry.
	IncrementClickCount(ctx context.Context, id uuid.UUID) error

	// Count returns the catalog size. Used to decide whether to seed.
	Count(ctx context.Context) (int64, error)
}
