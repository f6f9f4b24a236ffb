package impl

import (
	"context"
	"testing"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	mockRepo "sagedo/internal/mocks/repository"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(txManager *mockRepo.MockTransactionManager, orderRepo *mockRepo.MockOrderRepository) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})
}

func TestOrderService_Create_GuestAccount(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "guest@example.com").
		Return(nil, repository.ErrUserNotFound)

	var guestID uuid.UUID
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			guestID = user.ID
			assert.True(t, user.IsGuest)
			assert.Equal(t, "guest@example.com", user.Email)
		}).
		Return(nil)
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := service.Create(ctx, usecase.CreateOrderInput{
		CustomerName:  "Guest",
		CustomerEmail: "guest@example.com",
		ServiceName:   "Resume Writing (CV)",
		Requirements:  "Two page CV",
	})
	require.NoError(t, err)
	assert.Equal(t, guestID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.DeliveryPlatform, order.DeliveryPreference)
}

func TestOrderService_Create_ReusesExistingGuest(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	guest := &entity.User{ID: uuid.New(), Email: "guest@example.com", IsGuest: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockUserRepo.EXPECT().FindByEmail(ctx, "guest@example.com").Return(guest, nil)
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := service.Create(ctx, usecase.CreateOrderInput{
		CustomerEmail: "guest@example.com",
		ServiceName:   "Assignment Writing",
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, order.UserID)
}

func TestOrderService_Create_SessionUser(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := service.Create(ctx, usecase.CreateOrderInput{
		UserID:             &userID,
		CustomerEmail:      "ravi@example.com",
		ServiceName:        "College Project PPT",
		DeliveryPreference: entity.DeliveryEmail,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.DeliveryEmail, order.DeliveryPreference)
}

func TestOrderService_Create_MissingFields(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	_, err := service.Create(context.Background(), usecase.CreateOrderInput{
		ServiceName: "Assignment Writing",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Create_GoldenTicket(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ravi@example.com", HasGoldenTicket: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)

	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockServiceRepo.EXPECT().
		FindByName(ctx, "Assignment Writing").
		Return(&entity.Service{ID: uuid.New(), Name: "Assignment Writing", IsGoldenEligible: true}, nil)
	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.False(t, updated.HasGoldenTicket)
		}).
		Return(nil)
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := service.Create(ctx, usecase.CreateOrderInput{
		UserID:             &user.ID,
		CustomerEmail:      "ravi@example.com",
		ServiceName:        "Assignment Writing",
		RedeemGoldenTicket: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, order.AmountPaid)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_Create_GoldenTicketWithoutSession(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	guest := &entity.User{ID: uuid.New(), Email: "guest@example.com", IsGuest: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockUserRepo.EXPECT().FindByEmail(ctx, "guest@example.com").Return(guest, nil)

	_, err := service.Create(ctx, usecase.CreateOrderInput{
		CustomerEmail:      "guest@example.com",
		ServiceName:        "Assignment Writing",
		RedeemGoldenTicket: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Create_GoldenTicketNotEligibleService(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), HasGoldenTicket: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockServiceRepo.EXPECT().
		FindByName(ctx, "Business Website (5 Pages)").
		Return(&entity.Service{ID: uuid.New(), Name: "Business Website (5 Pages)", IsGoldenEligible: false}, nil)

	_, err := service.Create(ctx, usecase.CreateOrderInput{
		UserID:             &user.ID,
		CustomerEmail:      "ravi@example.com",
		ServiceName:        "Business Website (5 Pages)",
		RedeemGoldenTicket: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Create_GoldenTicketUnknownService(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), HasGoldenTicket: true}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
	mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	mockServiceRepo.EXPECT().
		FindByName(ctx, "Custom Thing").
		Return(nil, repository.ErrServiceNotFound)

	_, err := service.Create(ctx, usecase.CreateOrderInput{
		UserID:             &user.ID,
		CustomerEmail:      "ravi@example.com",
		ServiceName:        "Custom Thing",
		RedeemGoldenTicket: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateStatus_Advance(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	updated, err := service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusProcessing,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
	assert.Nil(t, updated.DeliveredAt)
}

func TestOrderService_UpdateStatus_Delivered(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusFinalizing,
		CustomerEmail: "ravi@example.com",
	}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	updated, err := service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID:          order.ID,
		Status:           entity.OrderStatusDelivered,
		DeliveryNotes:    "Final files attached",
		DeliveryFileURLs: []string{"/api/uploads/final.zip"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
	assert.Equal(t, "Final files attached", updated.DeliveryNotes)
	assert.Equal(t, []string{"/api/uploads/final.zip"}, updated.DeliveryFileURLs)
}

func TestOrderService_UpdateStatus_SkipRejected(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusFinalizing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateStatus_RegressionRejected(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusDelivered}

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusProcessing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	_, err := service.UpdateStatus(context.Background(), usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  "cancelled",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetByID(ctx, orderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListByUser(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(mockTxManager, mockOrderRepo)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, ServiceName: "Resume Writing (CV)"},
	}

	mockOrderRepo.EXPECT().FindByUserID(ctx, userID).Return(orders, nil)

	got, err := service.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
