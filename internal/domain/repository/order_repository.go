package repository

import (
	"context"
	"errors"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUserID lists a user's orders, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll lists every order, newest first. Back-office use.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// CountByStatus returns order counts grouped by status.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)
}
