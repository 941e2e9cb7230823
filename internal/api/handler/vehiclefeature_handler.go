package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleFeatureHandler handles HTTP requests for vehicle features.
type VehicleFeatureHandler struct {
	service ports.VehicleFeatureService
}

func NewVehicleFeatureHandler(service ports.VehicleFeatureService) *VehicleFeatureHandler {
	return &VehicleFeatureHandler{service: service}
}

type createFeatureRequest struct {
	Name   string `json:"name" validate:"required"`
	TypeID string `json:"typeId" validate:"required"`
}

type updateFeatureRequest struct {
	Name   string `json:"name"`
	TypeID string `json:"typeId"`
}

// List handles GET /feature.
func (h *VehicleFeatureHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	features, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(features) == 0 {
		return respondError(c, http.StatusNotFound, "no feature data found")
	}

	return respondList(c, "features retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, features)
}

// Get handles GET /feature/:id.
func (h *VehicleFeatureHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "feature not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "feature retrieved", view)
}

// Create handles POST /feature (admin only).
func (h *VehicleFeatureHandler) Create(c echo.Context) error {
	var req createFeatureRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	f, err := h.service.Create(c.Request().Context(), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return respondError(c, http.StatusBadRequest, "feature name already exists")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusBadRequest, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("feature", "create").Inc()
	return respondData(c, http.StatusCreated, "feature created", f)
}

// Update handles PATCH /feature/:id (admin only).
func (h *VehicleFeatureHandler) Update(c echo.Context) error {
	var req updateFeatureRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	f, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.TypeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "feature not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "type id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("feature", "update").Inc()
	return respondData(c, http.StatusOK, "feature updated", f)
}

// Delete handles DELETE /feature/:id (admin only).
func (h *VehicleFeatureHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "feature not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("feature", "delete").Inc()
	return respondData(c, http.StatusOK, "feature deleted", nil)
}
