package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/middleware"
	"sagedo/internal/delivery/http/response"
	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	CustomerName       string   `json:"customerName" validate:"required"`
	CustomerEmail      string   `json:"customerEmail" validate:"required,email"`
	ServiceName        string   `json:"serviceName" validate:"required"`
	Requirements       string   `json:"requirements"`
	FileURLs           []string `json:"fileUrls"`
	DeliveryPreference string   `json:"deliveryPreference"`
	RedeemGoldenTicket bool     `json:"redeemGoldenTicket"`
}

// Create places an order. Works with or without a session; anonymous orders
// go through the guest-account path.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateOrderInput{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		ServiceName:        req.ServiceName,
		Requirements:       req.Requirements,
		FileURLs:           req.FileURLs,
		DeliveryPreference: entity.DeliveryPreference(req.DeliveryPreference),
		RedeemGoldenTicket: req.RedeemGoldenTicket,
	}

	if snapshot := middleware.CurrentUser(c); snapshot != nil && snapshot.ID != uuid.Nil {
		id := snapshot.ID
		input.UserID = &id
	}

	order, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// MyOrders lists the caller's orders, newest first.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}

	orders, err := h.uc.ListByUser(c.Request().Context(), snapshot.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// Get returns a single order. Callers only see their own orders unless they
// hold the admin flag.
func (h *OrderHandler) Get(c echo.Context) error {
	snapshot := middleware.CurrentUser(c)
	if snapshot == nil {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if !snapshot.IsAdmin && order.UserID != snapshot.ID {
		return domainerrors.ErrForbidden
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// ListAll lists every order. Admin only.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

type updateOrderStatusRequest struct {
	Status           string   `json:"status" validate:"required"`
	DeliveryNotes    string   `json:"deliveryNotes"`
	DeliveryFileURLs []string `json:"deliveryFileUrls"`
}

// UpdateStatus advances an order to its next status. Admin only.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		OrderID:          id,
		Status:           entity.OrderStatus(req.Status),
		DeliveryNotes:    req.DeliveryNotes,
		DeliveryFileURLs: req.DeliveryFileURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated")
}
