package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/response"
	"sagedo/internal/domain/entity"
	"sagedo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the service catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the catalog, optionally filtered by the category query param.
func (h *CatalogHandler) List(c echo.Context) error {
	category := entity.ServiceCategory(c.QueryParam("category"))

	services, err := h.uc.List(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceViews(services), "")
}

// Get returns a single catalog entry.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service id")
	}

	svc, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceView(svc), "")
}

// Click bumps a catalog entry's popularity counter.
func (h *CatalogHandler) Click(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service id")
	}

	if err := h.uc.RecordClick(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type saveServiceRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Price            int    `json:"price" validate:"gte=0"`
	Category         string `json:"category" validate:"required"`
	ImageURL         string `json:"imageUrl"`
	IsGoldenEligible bool   `json:"isGoldenEligible"`
	DeliveryTime     string `json:"deliveryTime"`
}

func (r *saveServiceRequest) toInput() usecase.SaveServiceInput {
	return usecase.SaveServiceInput{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		Category:         entity.ServiceCategory(r.Category),
		ImageURL:         r.ImageURL,
		IsGoldenEligible: r.IsGoldenEligible,
		DeliveryTime:     r.DeliveryTime,
	}
}

// Create adds a catalog entry. Admin only.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req saveServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toServiceView(svc), "Service created")
}

// Update replaces a catalog entry's fields. Admin only.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service id")
	}

	var req saveServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceView(svc), "Service updated")
}

// Delete removes a catalog entry. Admin only.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted")
}
