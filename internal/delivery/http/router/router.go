// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	OrderHandler      *handler.OrderHandler
	PaymentHandler    *handler.PaymentHandler
	TokenHandler      *handler.TokenHandler
	AdminHandler      *handler.AdminHandler
	ChatHandler       *handler.ChatHandler
	UploadHandler     *handler.UploadHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/google", r.params.AuthHandler.GoogleLogin)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/verify-email", r.params.AuthHandler.VerifyEmail)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)
	}

	userGroup := api.Group("/user")
	userGroup.Use(r.params.SessionMiddleware.RequireSession)
	{
		userGroup.GET("", r.params.AuthHandler.Me)
		userGroup.DELETE("", r.params.AuthHandler.DeleteAccount)
		userGroup.GET("/orders", r.params.OrderHandler.MyOrders)
		userGroup.POST("/tokens/earn", r.params.TokenHandler.Earn)
		userGroup.GET("/tokens/transactions", r.params.TokenHandler.Transactions)
	}

	// Catalog is public; orders can be placed without a session through the
	// guest path.
	servicesGroup := api.Group("/services")
	{
		servicesGroup.GET("", r.params.CatalogHandler.List)
		servicesGroup.GET("/:id", r.params.CatalogHandler.Get)
		servicesGroup.POST("/:id/click", r.params.CatalogHandler.Click)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.params.OrderHandler.Create)
		ordersGroup.GET("/:id", r.params.OrderHandler.Get, r.params.SessionMiddleware.RequireSession)
	}

	paymentGroup := api.Group("/payment")
	{
		paymentGroup.GET("/config", r.params.PaymentHandler.Config)
		paymentGroup.POST("/create-order", r.params.PaymentHandler.CreateOrder)
		paymentGroup.POST("/verify", r.params.PaymentHandler.Verify)
	}

	api.POST("/chat", r.params.ChatHandler.Chat)

	api.POST("/uploads", r.params.UploadHandler.Upload)
	api.GET("/uploads/:key", r.params.UploadHandler.Serve)

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.params.SessionMiddleware.RequireAdmin)
	{
		adminGroup.GET("/stats", r.params.AdminHandler.Stats)
		adminGroup.GET("/orders", r.params.OrderHandler.ListAll)
		adminGroup.PATCH("/orders/:id/status", r.params.OrderHandler.UpdateStatus)
		adminGroup.POST("/services", r.params.CatalogHandler.Create)
		adminGroup.PUT("/services/:id", r.params.CatalogHandler.Update)
		adminGroup.DELETE("/services/:id", r.params.CatalogHandler.Delete)
	}
}
