package usecase

import (
	"context"

	"sagedo/internal/domain/entity"
)

// AdminStats aggregates the back-office dashboard numbers.
type AdminStats struct {
	TotalUsers     int64
	SignupsToday   int64
	TotalLogins    int64
	OrdersByStatus map[entity.OrderStatus]int64
	TokensEarned   int64
	RecentUsers    []*entity.User
}

// AdminUsecase defines the interface for back-office aggregates.
type AdminUsecase interface {
	// Stats computes the dashboard numbers in a single snapshot.
	Stats(ctx context.Context) (*AdminStats, error)
}
