package impl

import (
	"context"
	"log/slog"

	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/repository"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the catalog, optionally filtered by category.
func (srv *catalogService) List(ctx context.Context, category entity.ServiceCategory) ([]*entity.Service, error) {
	if category != "" {
		services, err := srv.serviceRepo.FindByCategory(ctx, category)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list services by category")
		}

		return services, nil
	}

	services, err := srv.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// Get fetches a single catalog entry.
func (srv *catalogService) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return svc, nil
}

// RecordClick bumps the popularity counter. Lost clicks are acceptable, the
// counter feeds sorting only.
func (srv *catalogService) RecordClick(ctx context.Context, id uuid.UUID) error {
	if err := srv.serviceRepo.IncrementClickCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return errors.Wrap(err, "failed to record service click")
	}

	return nil
}

// Create adds a catalog entry.
func (srv *catalogService) Create(ctx context.Context, input usecase.SaveServiceInput) (*entity.Service, error) {
	if input.Name == "" || input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "service needs a name and a non-negative price")
	}

	svc := &entity.Service{
		ID:               uuid.New(),
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		Category:         input.Category,
		ImageURL:         input.ImageURL,
		IsGoldenEligible: input.IsGoldenEligible,
		DeliveryTime:     input.DeliveryTime,
	}
	if err := srv.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created", slog.Any("serviceID", svc.ID), slog.String("name", svc.Name))

	return svc, nil
}

// Update replaces a catalog entry's fields.
func (srv *catalogService) Update(ctx context.Context, id uuid.UUID, input usecase.SaveServiceInput) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find service for update")
	}

	svc.Name = input.Name
	svc.Description = input.Description
	svc.Price = input.Price
	svc.Category = input.Category
	svc.ImageURL = input.ImageURL
	svc.IsGoldenEligible = input.IsGoldenEligible
	svc.DeliveryTime = input.DeliveryTime

	if err := srv.serviceRepo.Update(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return svc, nil
}

// Delete removes a catalog entry.
func (srv *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return errors.Wrap(err, "failed to delete service")
	}

	return nil
}

// Seed installs the default catalog when the table is empty. Called once at
// startup; a non-empty table is left alone.
func (srv *catalogService) Seed(ctx context.Context) error {
	count, err := srv.serviceRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count services before seeding")
	}
	if count > 0 {
		return nil
	}

	srv.log(ctx).Info("Seeding default service catalog")

	for _, seed := range defaultCatalog() {
		if err := srv.serviceRepo.Create(ctx, seed); err != nil {
			return errors.Wrapf(err, "failed to seed service %q", seed.Name)
		}
	}

	return nil
}

// defaultCatalog is the launch catalog. Prices are in rupees.
func defaultCatalog() []*entity.Service {
	return []*entity.Service{
		{
			ID:               uuid.New(),
			Name:             "Business Logo & Branding",
			Description:      "Professional Logo, Visiting Cards & Letterhead",
			Price:            9999,
			Category:         entity.CategoryBusiness,
			IsGoldenEligible: true,
			DeliveryTime:     "3-4 Days",
		},
		{
			ID:           uuid.New(),
			Name:         "Business Website (5 Pages)",
			Description:  "Full Website for your Company",
			Price:        14999,
			Category:     entity.CategoryBusiness,
			DeliveryTime: "7 Days",
		},
		{
			ID:               uuid.New(),
			Name:             "Google & Insta Ads Setup",
			Description:      "Run Ads to get more Customers",
			Price:            7999,
			Category:         entity.CategoryBusiness,
			IsGoldenEligible: true,
			DeliveryTime:     "2 Days",
		},
		{
			ID:               uuid.New(),
			Name:             "Assignment Writing",
			Description:      "Handwritten or Typed Assignments",
			Price:            499,
			Category:         entity.CategoryStudent,
			IsGoldenEligible: true,
			DeliveryTime:     "24h",
		},
		{
			ID:               uuid.New(),
			Name:             "College Project PPT",
			Description:      "PowerPoint Presentation for Projects",
			Price:            699,
			Category:         entity.CategoryStudent,
			IsGoldenEligible: true,
			DeliveryTime:     "24h",
		},
		{
			ID:               uuid.New(),
			Name:             "Resume Writing (CV)",
			Description:      "Professional CV to get Hired",
			Price:            2499,
			Category:         entity.CategoryProfessional,
			IsGoldenEligible: true,
			DeliveryTime:     "2 Days",
		},
		{
			ID:               uuid.New(),
			Name:             "LinkedIn Profile Makeover",
			Description:      "Rank High on LinkedIn",
			Price:            1999,
			Category:         entity.CategoryProfessional,
			IsGoldenEligible: true,
			DeliveryTime:     "2 Days",
		},
		{
			ID:               uuid.New(),
			Name:             "Viral Reel Script",
			Description:      "Scripts for Instagram/YouTube",
			Price:            299,
			Category:         entity.CategoryPersonal,
			IsGoldenEligible: true,
			DeliveryTime:     "24h",
		},
	}
}
