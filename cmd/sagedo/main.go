package main

import (
	"context"
	"log/slog"
	"os"

	"sagedo/config"
	"sagedo/internal/delivery"
	"sagedo/internal/delivery/http"
	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/router/handler"
	"sagedo/internal/domain/service"
	"sagedo/internal/infra/auth"
	"sagedo/internal/infra/auth/google"
	"sagedo/internal/infra/chat"
	logs "sagedo/internal/infra/log"
	"sagedo/internal/infra/mail"
	"sagedo/internal/infra/payment"
	"sagedo/internal/infra/persistence/postgres"
	"sagedo/internal/infra/storage"
	"sagedo/internal/usecase"
	"sagedo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewServiceRepository,
			postgres.NewOrderRepository,
			postgres.NewTokenTransactionRepository,
			postgres.NewUsedEmailRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newGoogleAuthService,
			payment.NewRazorpayGateway,
			mail.NewMailer,
			storage.New,
			chat.NewOpenAIModel,
			chat.NewHistoryStore,
		),
	)
}

// newGoogleAuthService creates the Google sign-in verifier when configured.
// Google sign-in is optional.
func newGoogleAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil
	}

	return google.NewAuthService(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTokenService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewCatalogService,
			impl.NewAdminService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewTokenHandler,
			handler.NewAdminHandler,
			handler.NewChatHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog installs the default catalog on an empty database. Runs as a
// start hook so the schema migration has already happened.
func seedCatalog(lc fx.Lifecycle, catalog usecase.CatalogUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := catalog.Seed(ctx); err != nil {
				logger.Error("Failed to seed catalog", slog.Any("error", err))

				return err
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
