package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// SpecificationHandler handles HTTP requests for model specifications.
type SpecificationHandler struct {
	service ports.SpecificationService
}

func NewSpecificationHandler(service ports.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{service: service}
}

type createSpecRequest struct {
	Key     string `json:"key" validate:"required"`
	Value   string `json:"value" validate:"required"`
	ModelID string `json:"modelId" validate:"required"`
}

type updateSpecRequest struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	ModelID string `json:"modelId"`
}

// List handles GET /spek.
func (h *SpecificationHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	specs, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return respondError(c, http.StatusNotFound, "no specification data found")
	}

	return respondList(c, "specifications retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, specs)
}

// Get handles GET /spek/:id.
func (h *SpecificationHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "specification not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "specification retrieved", view)
}

// Create handles POST /spek (admin only).
func (h *SpecificationHandler) Create(c echo.Context) error {
	var req createSpecRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	sp, err := h.service.Create(c.Request().Context(), req.Key, req.Value, req.ModelID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return respondError(c, http.StatusBadRequest, "specification key already exists")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusBadRequest, "model id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("spec", "create").Inc()
	return respondData(c, http.StatusCreated, "specification created", sp)
}

// Update handles PATCH /spek/:id (admin only).
func (h *SpecificationHandler) Update(c echo.Context) error {
	var req updateSpecRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	sp, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Key, req.Value, req.ModelID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "specification not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "model id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("spec", "update").Inc()
	return respondData(c, http.StatusOK, "specification updated", sp)
}

// Delete handles DELETE /spek/:id (admin only).
func (h *SpecificationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "specification not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("spec", "delete").Inc()
	return respondData(c, http.StatusOK, "specification deleted", nil)
}
