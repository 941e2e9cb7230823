package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// BrandHandler handles HTTP requests for vehicle brands.
type BrandHandler struct {
	service ports.BrandService
}

func NewBrandHandler(service ports.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

type createBrandRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateBrandRequest struct {
	Name string `json:"name" validate:"required"`
}

// List handles GET /brands.
//
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Page size (default 10)"
// @Param        skip   query     int  false  "Rows to skip (default 0)"
// @Success      200    {object}  envelope
// @Failure      404    {object}  envelope
// @Router       /brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	brands, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(brands) == 0 {
		return respondError(c, http.StatusNotFound, "no brand data found")
	}

	return respondList(c, "brands retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, brands)
}

// Get handles GET /brands/:id.
func (h *BrandHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	brand, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "brand not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "brand retrieved", brand)
}

// Create handles POST /brands (admin only).
func (h *BrandHandler) Create(c echo.Context) error {
	var req createBrandRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	brand, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return respondError(c, http.StatusBadRequest, "brand name already exists")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("brand", "create").Inc()
	return respondData(c, http.StatusCreated, "brand created", brand)
}

// Update handles PATCH /brands/:id (admin only).
func (h *BrandHandler) Update(c echo.Context) error {
	var req updateBrandRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	brand, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "brand not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("brand", "update").Inc()
	return respondData(c, http.StatusOK, "brand updated", brand)
}

// Delete handles DELETE /brands/:id (admin only).
func (h *BrandHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "brand not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("brand", "delete").Inc()
	return respondData(c, http.StatusOK, "brand deleted", nil)
}
