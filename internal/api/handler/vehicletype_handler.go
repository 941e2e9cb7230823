package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleTypeHandler handles HTTP requests for vehicle types.
type VehicleTypeHandler struct {
	service ports.VehicleTypeService
}

func NewVehicleTypeHandler(service ports.VehicleTypeService) *VehicleTypeHandler {
	return &VehicleTypeHandler{service: service}
}

type createTypeRequest struct {
	Name    string `json:"name" validate:"required"`
	BrandID string `json:"brandId" validate:"required"`
}

type updateTypeRequest struct {
	Name    string `json:"name"`
	BrandID string `json:"brandId"`
}

// List handles GET /types.
func (h *VehicleTypeHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	types, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		return respondError(c, http.StatusNotFound, "no type data found")
	}

	return respondList(c, "types retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, types)
}

// Get handles GET /types/:id.
func (h *VehicleTypeHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "type not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "type retrieved", view)
}

// Create handles POST /types (admin only).
func (h *VehicleTypeHandler) Create(c echo.Context) error {
	var req createTypeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Create(c.Request().Context(), req.Name, req.BrandID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return respondError(c, http.StatusBadRequest, "type name already exists")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusBadRequest, "brand id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type", "create").Inc()
	return respondData(c, http.StatusCreated, "type created", t)
}

// Update handles PATCH /types/:id (admin only).
func (h *VehicleTypeHandler) Update(c echo.Context) error {
	var req updateTypeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	t, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.BrandID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "type not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "brand id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type", "update").Inc()
	return respondData(c, http.StatusOK, "type updated", t)
}

// Delete handles DELETE /types/:id (admin only).
func (h *VehicleTypeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "type not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("type", "delete").Inc()
	return respondData(c, http.StatusOK, "type deleted", nil)
}
