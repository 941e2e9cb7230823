package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleModelHandler handles HTTP requests for vehicle models.
type VehicleModelHandler struct {
	service ports.VehicleModelService
}

func NewVehicleModelHandler(service ports.VehicleModelService) *VehicleModelHandler {
	return &VehicleModelHandler{service: service}
}

type createModelRequest struct {
	Name   string `json:"name" validate:"required"`
	TypeID string `json:"typeId" validate:"required"`
}

type updateModelRequest struct {
	Name   string `json:"name"`
	TypeID string `json:"typeId"`
}

// List handles GET /models.
func (h *VehicleModelHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	models, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(models) == 0 {
		return respondError(c, http.StatusNotFound, "no model data found")
	}

	return respondList(c, "models retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, models)
}

// Get handles GET /models/:id.
func (h *VehicleModelHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "model not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "model retrieved", view)
}

// Create handles POST /models (admin only).
func (h *VehicleModelHandler) Create(c echo.Context) error {
	var req createModelRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Create(c.Request().Context(), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return respondError(c, http.StatusBadRequest, "model name already exists for this type")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusBadRequest, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("model", "create").Inc()
	return respondData(c, http.StatusCreated, "model created", m)
}

// Update handles PATCH /models/:id (admin only).
func (h *VehicleModelHandler) Update(c echo.Context) error {
	var req updateModelRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	m, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "model not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("model", "update").Inc()
	return respondData(c, http.StatusOK, "model updated", m)
}

// Delete handles DELETE /models/:id (admin only).
func (h *VehicleModelHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "model not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("model", "delete").Inc()
	return respondData(c, http.StatusOK, "model deleted", nil)
}
