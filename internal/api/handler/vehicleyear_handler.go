package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleYearHandler handles HTTP requests for production years.
type VehicleYearHandler struct {
	service ports.VehicleYearService
}

func NewVehicleYearHandler(service ports.VehicleYearService) *VehicleYearHandler {
	return &VehicleYearHandler{service: service}
}

type yearRequest struct {
	Year string `json:"year" validate:"required"`
}

// List handles GET /years.
func (h *VehicleYearHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	years, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(years) == 0 {
		return respondError(c, http.StatusNotFound, "no year data found")
	}

	return respondList(c, "years retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, years)
}

// Get handles GET /years/:id.
func (h *VehicleYearHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	year, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "year not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "year retrieved", year)
}

// Create handles POST /years (admin only).
func (h *VehicleYearHandler) Create(c echo.Context) error {
	var req yearRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	year, err := h.service.Create(c.Request().Context(), req.Year)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return respondError(c, http.StatusBadRequest, "year already exists")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("year", "create").Inc()
	return respondData(c, http.StatusCreated, "year created", year)
}

// Update handles PATCH /years/:id (admin only).
func (h *VehicleYearHandler) Update(c echo.Context) error {
	var req yearRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	year, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Year)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "year not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("year", "update").Inc()
	return respondData(c, http.StatusOK, "year updated", year)
}

// Delete handles DELETE /years/:id (admin only).
func (h *VehicleYearHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "year not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("year", "delete").Inc()
	return respondData(c, http.StatusOK, "year deleted", nil)
}
