package postgres

import (
	"context"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUserID lists a user's orders, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindAll lists every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update modifies an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromOrderDomain(order))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CountByStatus returns order counts grouped by status.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Total
	}

	return counts, nil
}

func toOrderDomainSlice(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:                 data.ID,
		UserID:             data.UserID,
		ServiceName:        data.ServiceName,
		CustomerEmail:      data.CustomerEmail,
		CustomerName:       data.CustomerName,
		Requirements:       data.Requirements,
		FileURLs:           []string(data.FileURLs),
		Status:             entity.OrderStatus(data.Status),
		AmountPaid:         data.AmountPaid,
		PaymentID:          data.PaymentID,
		PaymentStatus:      entity.PaymentStatus(data.PaymentStatus),
		DeliveryPreference: entity.DeliveryPreference(data.DeliveryPreference),
		DeliveryFileURLs:   []string(data.DeliveryFileURLs),
		DeliveryNotes:      data.DeliveryNotes,
		DeliveredAt:        data.DeliveredAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		ServiceName:        data.ServiceName,
		CustomerEmail:      data.CustomerEmail,
		CustomerName:       data.CustomerName,
		Requirements:       data.Requirements,
		FileURLs:           data.FileURLs,
		Status:             string(data.Status),
		AmountPaid:         data.AmountPaid,
		PaymentID:          data.PaymentID,
		PaymentStatus:      string(data.PaymentStatus),
		DeliveryPreference: string(data.DeliveryPreference),
		DeliveryFileURLs:   data.DeliveryFileURLs,
		DeliveryNotes:      data.DeliveryNotes,
		DeliveredAt:        data.DeliveredAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
