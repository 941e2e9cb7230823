package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleCategoryHandler handles HTTP requests for pricing categories.
type VehicleCategoryHandler struct {
	service ports.VehicleCategoryService
}

func NewVehicleCategoryHandler(service ports.VehicleCategoryService) *VehicleCategoryHandler {
	return &VehicleCategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name   string `json:"name" validate:"required"`
	TypeID string `json:"typeId" validate:"required"`
}

type updateCategoryRequest struct {
	Name   string `json:"name"`
	TypeID string `json:"typeId"`
}

// List handles GET /category.
func (h *VehicleCategoryHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	categories, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return respondError(c, http.StatusNotFound, "no category data found")
	}

	return respondList(c, "categories retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, categories)
}

// Get handles GET /category/:id.
func (h *VehicleCategoryHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "category not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "category retrieved", view)
}

// Create handles POST /category (admin only).
func (h *VehicleCategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	cat, err := h.service.Create(c.Request().Context(), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return respondError(c, http.StatusBadRequest, "category name already exists")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusBadRequest, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return respondData(c, http.StatusCreated, "category created", cat)
}

// Update handles PATCH /category/:id (admin only).
func (h *VehicleCategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	cat, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "category not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "update").Inc()
	return respondData(c, http.StatusOK, "category updated", cat)
}

// Delete handles DELETE /category/:id (admin only).
func (h *VehicleCategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "category not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return respondData(c, http.StatusOK, "category deleted", nil)
}
