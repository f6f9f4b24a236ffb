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

func newCatalogService(serviceRepo *mockRepo.MockServiceRepository) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		ServiceRepo: serviceRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestCatalogService_List_All(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	catalog := []*entity.Service{
		{ID: uuid.New(), Name: "Assignment Writing"},
		{ID: uuid.New(), Name: "Resume Writing (CV)"},
	}

	mockServiceRepo.EXPECT().FindAll(ctx).Return(catalog, nil)

	services, err := service.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, catalog, services)
}

func TestCatalogService_List_ByCategory(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	students := []*entity.Service{
		{ID: uuid.New(), Name: "Assignment Writing", Category: entity.CategoryStudent},
	}

	mockServiceRepo.EXPECT().
		FindByCategory(ctx, entity.CategoryStudent).
		Return(students, nil)

	services, err := service.List(ctx, entity.CategoryStudent)
	require.NoError(t, err)
	assert.Equal(t, students, services)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

	_, err := service.Get(ctx, serviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestCatalogService_RecordClick(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockServiceRepo.EXPECT().IncrementClickCount(ctx, serviceID).Return(nil)

	err := service.RecordClick(ctx, serviceID)
	require.NoError(t, err)
}

func TestCatalogService_Create(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Service")).
		Return(nil)

	created, err := service.Create(ctx, usecase.SaveServiceInput{
		Name:             "Poster Design",
		Description:      "Event and promo posters",
		Price:            399,
		Category:         entity.CategoryBusiness,
		IsGoldenEligible: true,
		DeliveryTime:     "24h",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Poster Design", created.Name)
	assert.True(t, created.IsGoldenEligible)
}

func TestCatalogService_Create_Invalid(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	_, err := service.Create(context.Background(), usecase.SaveServiceInput{
		Name:  "",
		Price: 399,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_Update(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	existing := &entity.Service{
		ID:    uuid.New(),
		Name:  "Poster Design",
		Price: 399,
	}

	mockServiceRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	mockServiceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Service")).
		Return(nil)

	updated, err := service.Update(ctx, existing.ID, usecase.SaveServiceInput{
		Name:         "Poster Design Pro",
		Price:        599,
		Category:     entity.CategoryBusiness,
		DeliveryTime: "48h",
	})
	require.NoError(t, err)
	assert.Equal(t, "Poster Design Pro", updated.Name)
	assert.Equal(t, 599, updated.Price)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockServiceRepo.EXPECT().Delete(ctx, serviceID).Return(repository.ErrServiceNotFound)

	err := service.Delete(ctx, serviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestCatalogService_Seed_EmptyTable(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()
	seeded := 0

	mockServiceRepo.EXPECT().Count(ctx).Return(0, nil)
	mockServiceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, svc *entity.Service) {
			seeded++
			assert.NotEmpty(t, svc.Name)
		}).
		Return(nil)

	err := service.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog()), seeded)
}

func TestCatalogService_Seed_NonEmptyTableLeftAlone(t *testing.T) {
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	service := newCatalogService(mockServiceRepo)

	ctx := context.Background()

	mockServiceRepo.EXPECT().Count(ctx).Return(8, nil)

	err := service.Seed(ctx)
	require.NoError(t, err)
}
