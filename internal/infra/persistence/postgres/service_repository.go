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

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// FindByID retrieves a single catalog entry.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// FindByName retrieves a catalog entry by its exact name.
func (repo *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by name")
	}

	return toServiceDomain(&serviceM), nil
}

// FindAll lists the whole catalog ordered by creation time.
func (repo *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return toServiceDomainSlice(serviceModels), nil
}

// FindByCategory lists catalog entries within one category.
func (repo *serviceRepository) FindByCategory(ctx context.Context, category entity.ServiceCategory) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("created_at ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by category")
	}

	return toServiceDomainSlice(serviceModels), nil
}

// Create persists a new catalog entry.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "service name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.CreatedAt = serviceM.CreatedAt

	return nil
}

// Update modifies an existing catalog entry.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromServiceDomain(service))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a catalog entry.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// IncrementClickCount bumps the popularity counter atomically.
func (repo *serviceRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment click count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Count returns the catalog size.
func (repo *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

func toServiceDomainSlice(models []*model.ServiceModel) []*entity.Service {
	services := make([]*entity.Service, 0, len(models))
	for _, serviceM := range models {
		services = append(services, toServiceDomain(serviceM))
	}

	return services
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		Category:         entity.ServiceCategory(data.Category),
		ImageURL:         data.ImageURL,
		IsGoldenEligible: data.IsGoldenEligible,
		DeliveryTime:     data.DeliveryTime,
		ClickCount:       data.ClickCount,
		CreatedAt:        data.CreatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		Category:         string(data.Category),
		ImageURL:         data.ImageURL,
		IsGoldenEligible: data.IsGoldenEligible,
		DeliveryTime:     data.DeliveryTime,
		ClickCount:       data.ClickCount,
		CreatedAt:        data.CreatedAt,
	}
}
