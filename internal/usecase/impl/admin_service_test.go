package impl

import (
	"context"
	"testing"
	"time"

	"sagedo/internal/domain/entity"
	mockRepo "sagedo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Stats(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	service := NewAdminService(AdminServiceParams{
		UserRepo:  mockUserRepo,
		OrderRepo: mockOrderRepo,
		TokenRepo: mockTokenRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	recent := []*entity.User{{ID: uuid.New(), Email: "ravi@example.com"}}
	byStatus := map[entity.OrderStatus]int64{
		entity.OrderStatusPending:   3,
		entity.OrderStatusDelivered: 12,
	}

	mockUserRepo.EXPECT().Count(ctx).Return(42, nil)
	mockUserRepo.EXPECT().
		CountCreatedSince(ctx, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, since time.Time) {
			// The window starts at local midnight.
			assert.Equal(t, 0, since.Hour())
			assert.Equal(t, 0, since.Minute())
		}).
		Return(5, nil)
	mockUserRepo.EXPECT().SumLoginCount(ctx).Return(180, nil)
	mockOrderRepo.EXPECT().CountByStatus(ctx).Return(byStatus, nil)
	mockTokenRepo.EXPECT().SumEarnedSince(ctx, time.Time{}).Return(2400, nil)
	mockUserRepo.EXPECT().FindRecent(ctx, 10).Return(recent, nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.SignupsToday)
	assert.Equal(t, int64(180), stats.TotalLogins)
	assert.Equal(t, byStatus, stats.OrdersByStatus)
	assert.Equal(t, int64(2400), stats.TokensEarned)
	assert.Equal(t, recent, stats.RecentUsers)
}

func TestAdminService_Stats_RepoError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockTokenRepo := mockRepo.NewMockTokenTransactionRepository(t)
	service := NewAdminService(AdminServiceParams{
		UserRepo:  mockUserRepo,
		OrderRepo: mockOrderRepo,
		TokenRepo: mockTokenRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().Count(ctx).Return(0, errors.New("connection refused"))

	_, err := service.Stats(ctx)
	require.Error(t, err)
}
