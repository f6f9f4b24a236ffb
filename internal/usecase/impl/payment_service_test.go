package impl

import (
	"context"
	"testing"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	domainservice "sagedo/internal/domain/service"
	mockRepo "sagedo/internal/mocks/repository"
	mockSvc "sagedo/internal/mocks/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentService(
	txManager *mockRepo.MockTransactionManager,
	orderRepo *mockRepo.MockOrderRepository,
	gateway *mockSvc.MockPaymentGateway,
) usecase.PaymentUsecase {
	return NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Logger:    newDiscardLogger(),
	})
}

func TestPaymentService_CreateGatewayOrder_GatewayUnavailable(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	mockGateway.EXPECT().Available().Return(false)

	_, err := service.CreateGatewayOrder(context.Background(), usecase.CreatePaymentInput{
		OrderID: uuid.New(),
		Amount:  49900,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGatewayUnavailable))
}

func TestPaymentService_CreateGatewayOrder_NonPositiveAmount(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	mockGateway.EXPECT().Available().Return(true)

	_, err := service.CreateGatewayOrder(context.Background(), usecase.CreatePaymentInput{
		OrderID: uuid.New(),
		Amount:  0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_CreateGatewayOrder_Success(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	mockGateway.EXPECT().Available().Return(true)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockGateway.EXPECT().
		CreateOrder(ctx, int64(49900), "INR", order.ID.String()).
		Return(&domainservice.GatewayOrder{
			ID:       "order_Nx71a",
			Amount:   49900,
			Currency: "INR",
		}, nil)
	mockOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, updated *entity.Order) {
			assert.Equal(t, 49900, updated.AmountPaid)
			assert.Equal(t, entity.PaymentStatusPending, updated.PaymentStatus)
		}).
		Return(nil)
	mockGateway.EXPECT().KeyID().Return("rzp_test_key")

	out, err := service.CreateGatewayOrder(ctx, usecase.CreatePaymentInput{
		OrderID: order.ID,
		Amount:  49900,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_Nx71a", out.GatewayOrderID)
	assert.Equal(t, int64(49900), out.Amount)
	assert.Equal(t, "INR", out.Currency)
	assert.Equal(t, "rzp_test_key", out.KeyID)
}

func TestPaymentService_CreateGatewayOrder_OrderNotFound(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	ctx := context.Background()
	orderID := uuid.New()

	mockGateway.EXPECT().Available().Return(true)
	mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.CreateGatewayOrder(ctx, usecase.CreatePaymentInput{
		OrderID: orderID,
		Amount:  49900,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestPaymentService_Verify_BadSignature(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	mockGateway.EXPECT().Available().Return(true)
	mockGateway.EXPECT().
		VerifySignature("order_Nx71a", "pay_abc", "tampered").
		Return(false)

	// The order is never touched on a failed verification.
	out, err := service.Verify(context.Background(), usecase.VerifyPaymentInput{
		OrderID:          uuid.New(),
		GatewayOrderID:   "order_Nx71a",
		GatewayPaymentID: "pay_abc",
		Signature:        "tampered",
	})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Nil(t, out.Order)
}

func TestPaymentService_Verify_Success(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		CustomerEmail: "ravi@example.com",
	}

	mockGateway.EXPECT().Available().Return(true)
	mockGateway.EXPECT().
		VerifySignature("order_Nx71a", "pay_abc", "good-signature").
		Return(true)

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	out, err := service.Verify(ctx, usecase.VerifyPaymentInput{
		OrderID:          order.ID,
		GatewayOrderID:   "order_Nx71a",
		GatewayPaymentID: "pay_abc",
		Signature:        "good-signature",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "pay_abc", out.Order.PaymentID)
	assert.Equal(t, entity.PaymentStatusPaid, out.Order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusProcessing, out.Order.Status)
}

func TestPaymentService_Verify_DoesNotRegressAdvancedOrder(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := newPaymentService(mockTxManager, mockOrderRepo, mockGateway)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusFinalizing,
		PaymentStatus: entity.PaymentStatusPending,
	}

	mockGateway.EXPECT().Available().Return(true)
	mockGateway.EXPECT().
		VerifySignature("order_Nx71a", "pay_abc", "good-signature").
		Return(true)

	expectTransaction(mockTxManager, mockFactory)
	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	out, err := service.Verify(ctx, usecase.VerifyPaymentInput{
		OrderID:          order.ID,
		GatewayOrderID:   "order_Nx71a",
		GatewayPaymentID: "pay_abc",
		Signature:        "good-signature",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	// Payment is recorded but the workflow status is left where the team put it.
	assert.Equal(t, entity.OrderStatusFinalizing, out.Order.Status)
	assert.Equal(t, entity.PaymentStatusPaid, out.Order.PaymentStatus)
}
