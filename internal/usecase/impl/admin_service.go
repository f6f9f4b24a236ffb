package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sagedo/internal/delivery/context"
	"sagedo/internal/domain/repository"
	"sagedo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentSignupLimit = 10

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	tokenRepo repository.TokenTransactionRepository
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	TokenRepo repository.TokenTransactionRepository
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		tokenRepo: params.TokenRepo,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats computes the back-office dashboard numbers. The reads are
// independent queries, not one snapshot; slight skew between them is fine
// for a dashboard.
func (srv *adminService) Stats(ctx context.Context) (*usecase.AdminStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	signupsToday, err := srv.userRepo.CountCreatedSince(ctx, startOfDay)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's signups")
	}

	totalLogins, err := srv.userRepo.SumLoginCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum login counts")
	}

	ordersByStatus, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	tokensEarned, err := srv.tokenRepo.SumEarnedSince(ctx, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum earned tokens")
	}

	recentUsers, err := srv.userRepo.FindRecent(ctx, recentSignupLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent signups")
	}

	srv.log(ctx).Debug("Admin stats computed",
		slog.Int64("totalUsers", totalUsers),
		slog.Int64("signupsToday", signupsToday))

	return &usecase.AdminStats{
		TotalUsers:     totalUsers,
		SignupsToday:   signupsToday,
		TotalLogins:    totalLogins,
		OrdersByStatus: ordersByStatus,
		TokensEarned:   tokensEarned,
		RecentUsers:    recentUsers,
	}, nil
}
