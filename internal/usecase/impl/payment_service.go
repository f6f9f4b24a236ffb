package impl

import (
	"context"
	"log/slog"

	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/domain/service"
	"sagedo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	mailer    service.Mailer
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Mailer    service.Mailer `optional:"true"`
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGatewayOrder registers a gateway order for an existing order. A
// missing gateway credential is surfaced as a clear 503, never as an opaque
// SDK error.
func (srv *paymentService) CreateGatewayOrder(ctx context.Context, input usecase.CreatePaymentInput) (*usecase.CreatePaymentOutput, error) {
	if !srv.gateway.Available() {
		srv.log(ctx).Error("Payment order requested without gateway credentials")

		return nil, errors.Wrap(domainerrors.ErrGatewayUnavailable, "gateway credentials absent")
	}
	if input.Amount <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must be positive")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order for payment")
	}

	gatewayOrder, err := srv.gateway.CreateOrder(ctx, input.Amount, "INR", order.ID.String())
	if err != nil {
		srv.log(ctx).Error("Gateway order creation failed",
			slog.Any("orderID", order.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create gateway order")
	}

	// Remember what the customer is about to pay, in minor units. The
	// payment status stays pending until the signature verifies.
	order.AmountPaid = int(input.Amount)
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to record pending payment amount")
	}

	srv.log(ctx).Info("Gateway order created",
		slog.Any("orderID", order.ID),
		slog.String("gatewayOrderID", gatewayOrder.ID),
		slog.Int64("amount", gatewayOrder.Amount))

	return &usecase.CreatePaymentOutput{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		KeyID:          srv.gateway.KeyID(),
	}, nil
}

// Verify checks the checkout callback signature. A bad signature is a normal
// negative response and leaves the order untouched; a good one records the
// payment and moves a pending order to processing.
func (srv *paymentService) Verify(ctx context.Context, input usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	if !srv.gateway.Available() {
		return nil, errors.Wrap(domainerrors.ErrGatewayUnavailable, "gateway credentials absent")
	}

	if !srv.gateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		srv.log(ctx).Warn("Payment signature verification failed",
			slog.Any("orderID", input.OrderID),
			slog.String("gatewayOrderID", input.GatewayOrderID))

		return &usecase.VerifyPaymentOutput{Success: false}, nil
	}

	var paidOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, findErr := orderRepo.FindByID(ctx, input.OrderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(findErr, "failed to find order for payment verification")
		}

		order.PaymentID = input.GatewayPaymentID
		order.PaymentStatus = entity.PaymentStatusPaid
		if order.Status.CanAdvanceTo(entity.OrderStatusProcessing) {
			order.Status = entity.OrderStatusProcessing
		}

		if updateErr := orderRepo.Update(ctx, order); updateErr != nil {
			return errors.Wrap(updateErr, "failed to record payment")
		}

		paidOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record verified payment",
			slog.Any("orderID", input.OrderID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment verification transaction")
	}

	sendMailAsync(srv.log(ctx), srv.mailer, paymentReceivedMail(paidOrder))

	srv.log(ctx).Info("Payment verified",
		slog.Any("orderID", paidOrder.ID),
		slog.String("paymentID", paidOrder.PaymentID))

	return &usecase.VerifyPaymentOutput{Success: true, Order: paidOrder}, nil
}
