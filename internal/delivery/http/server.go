package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"sagedo/config"
	"sagedo/internal/delivery"
	deliverymiddleware "sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/router"
	"sagedo/internal/delivery/http/validator"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"github.com/wader/gormstore/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	shutdownTimeout        = 30 * time.Second
	defaultSessionMaxAge   = 7 * 24 * time.Hour
	sessionCleanupInterval = time.Hour

	// Leaves headroom above the per-file upload cap for multipart overhead.
	bodyLimit = "120M"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	DB           *gorm.DB
	ErrorHandler *deliverymiddleware.ErrorMiddleware
	RequestID    *deliverymiddleware.RequestIDMiddleware
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg         *config.Config
	logger      *slog.Logger
	server      *echo.Echo
	cleanupQuit chan struct{}
}

// NewServer wires the echo server: middleware chain, session store backed by
// postgres, request validation and all routes.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = validator.New()
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.Use(middleware.BodyLimit(bodyLimit))
	echoServer.Use(params.RequestID.Process)
	echoServer.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError

	store, cleanupQuit := newSessionStore(params.Config, params.DB)
	echoServer.Use(session.Middleware(store))

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:         params.Config,
		logger:      params.Logger,
		server:      echoServer,
		cleanupQuit: cleanupQuit,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// newSessionStore builds the postgres-backed cookie session store. Expired
// sessions are swept in the background until the quit channel closes.
func newSessionStore(cfg *config.Config, db *gorm.DB) (*gormstore.Store, chan struct{}) {
	store := gormstore.New(db, []byte(cfg.Session.Secret))

	maxAge := cfg.Session.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}

	store.SessionOpts = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	quit := make(chan struct{})
	go store.PeriodicCleanup(sessionCleanupInterval, quit)

	return store, quit
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	close(s.cleanupQuit)
	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
