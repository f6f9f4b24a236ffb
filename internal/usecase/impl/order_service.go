package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/domain/service"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	mailer    service.Mailer
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Mailer    service.Mailer `optional:"true"`
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order in the pending state. Sessionless submissions get a
// lazily created guest account keyed by customer email, so repeat guest
// orders from the same mailbox land on one account.
func (srv *orderService) Create(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.CustomerEmail == "" || input.ServiceName == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "customer email and service name are required")
	}

	preference := input.DeliveryPreference
	if preference == "" {
		preference = entity.DeliveryPlatform
	}

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		orderRepo := repoFactory.NewOrderRepository()

		userID, resolveErr := srv.resolveOrderUser(ctx, userRepo, input)
		if resolveErr != nil {
			return resolveErr
		}

		order := &entity.Order{
			ID:                 uuid.New(),
			UserID:             userID,
			ServiceName:        input.ServiceName,
			CustomerEmail:      input.CustomerEmail,
			CustomerName:       input.CustomerName,
			Requirements:       input.Requirements,
			FileURLs:           input.FileURLs,
			Status:             entity.OrderStatusPending,
			PaymentStatus:      entity.PaymentStatusPending,
			DeliveryPreference: preference,
		}

		if input.RedeemGoldenTicket {
			if redeemErr := srv.redeemGoldenTicket(ctx, repoFactory, input, order); redeemErr != nil {
				return redeemErr
			}
		}

		if createErr := orderRepo.Create(ctx, order); createErr != nil {
			return errors.Wrap(createErr, "failed to create order")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed",
			slog.String("service", input.ServiceName),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	sendMailAsync(srv.log(ctx), srv.mailer, orderConfirmationMail(createdOrder))

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", createdOrder.ID),
		slog.String("service", createdOrder.ServiceName),
		slog.Bool("golden", createdOrder.PaymentStatus == entity.PaymentStatusPaid))

	return createdOrder, nil
}

// resolveOrderUser returns the owning user id, creating a guest account when
// no session user is supplied. The email, not the synthesized id, is the
// guest deduplication key.
func (srv *orderService) resolveOrderUser(ctx context.Context, userRepo repository.UserRepository, input usecase.CreateOrderInput) (uuid.UUID, error) {
	if input.UserID != nil {
		return *input.UserID, nil
	}

	guest, err := userRepo.FindByEmail(ctx, input.CustomerEmail)
	if err == nil {
		return guest.ID, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to look up guest account")
	}

	newGuest := &entity.User{
		ID:      uuid.New(),
		Email:   input.CustomerEmail,
		Name:    input.CustomerName,
		IsGuest: true,
	}
	if err := userRepo.Create(ctx, newGuest); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create guest account")
	}

	srv.log(ctx).Info("Guest account created", slog.Any("userID", newGuest.ID))

	return newGuest.ID, nil
}

// redeemGoldenTicket makes the order free when the named service is
// golden-eligible and the session user still holds an unused ticket. The
// ticket is consumed in the same transaction as the order insert.
func (srv *orderService) redeemGoldenTicket(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input usecase.CreateOrderInput,
	order *entity.Order,
) error {
	if input.UserID == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "golden ticket requires a signed-in account")
	}

	userRepo := repoFactory.NewUserRepository()
	serviceRepo := repoFactory.NewServiceRepository()

	user, err := userRepo.FindByID(ctx, *input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "golden ticket holder not found")
		}

		return errors.Wrap(err, "failed to load golden ticket holder")
	}
	if !user.HasGoldenTicket {
		return errors.Wrap(domainerrors.ErrValidationFailed, "no unused golden ticket on this account")
	}

	catalogService, err := serviceRepo.FindByName(ctx, input.ServiceName)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "golden ticket only applies to catalog services")
		}

		return errors.Wrap(err, "failed to look up service for golden ticket")
	}
	if !catalogService.IsGoldenEligible {
		return errors.Wrap(domainerrors.ErrValidationFailed, "service is not golden eligible")
	}

	user.HasGoldenTicket = false
	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to consume golden ticket")
	}

	order.AmountPaid = 0
	order.PaymentStatus = entity.PaymentStatusPaid

	return nil
}

// GetByID fetches a single order.
func (srv *orderService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// ListByUser lists a user's orders, newest first.
func (srv *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}

// ListAll lists every order, newest first.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateStatus advances an order one step along
// pending -> processing -> finalizing -> delivered. Any other target,
// including a regression or a skip, is rejected.
func (srv *orderService) UpdateStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.Valid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "unknown status %q", input.Status)
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, findErr := orderRepo.FindByID(ctx, input.OrderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(findErr, "failed to find order for status update")
		}

		if !order.Status.CanAdvanceTo(input.Status) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition,
				"cannot move %s to %s", order.Status, input.Status)
		}

		order.Status = input.Status
		if input.DeliveryNotes != "" {
			order.DeliveryNotes = input.DeliveryNotes
		}
		if len(input.DeliveryFileURLs) > 0 {
			order.DeliveryFileURLs = input.DeliveryFileURLs
		}
		if input.Status == entity.OrderStatusDelivered {
			now := time.Now()
			order.DeliveredAt = &now
		}

		if updateErr := orderRepo.Update(ctx, order); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update failed",
			slog.Any("orderID", input.OrderID),
			slog.String("target", string(input.Status)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	if updated.Status == entity.OrderStatusDelivered {
		sendMailAsync(srv.log(ctx), srv.mailer, orderDeliveredMail(updated))
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", updated.ID),
		slog.String("status", string(updated.Status)))

	return updated, nil
}
