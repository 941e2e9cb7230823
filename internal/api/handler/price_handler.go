package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// PriceHandler handles HTTP requests for the price list, the join of the
// catalog dimensions.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

type createPriceRequest struct {
	YearID     string `json:"yearId" validate:"required"`
	ModelID    string `json:"modelId" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
	FeatureID  string `json:"featureId" validate:"required"`
	SpecID     string `json:"spekId" validate:"required"`
}

type updatePriceRequest struct {
	YearID     string `json:"yearId"`
	ModelID    string `json:"modelId"`
	CategoryID string `json:"categoryId"`
	FeatureID  string `json:"featureId"`
	SpecID     string `json:"spekId"`
}

// List handles GET /price.
//
// @Summary      List price entries
// @Description  Returns a page of the price list with referenced names resolved.
// @Tags         price
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Page size (default 10)"
// @Param        skip   query     int  false  "Rows to skip (default 0)"
// @Success      200    {object}  envelope
// @Failure      404    {object}  envelope
// @Router       /price [get]
func (h *PriceHandler) List(c echo.Context) error {
	limit, skip, err := pagination(c)
	if err != nil {
		return err
	}

	prices, total, err := h.service.List(c.Request().Context(), limit, skip)
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return respondError(c, http.StatusNotFound, "no price data found")
	}

	return respondList(c, "prices retrieved", ListMetadata{Total: total, Limit: limit, Skip: skip}, prices)
}

// Get handles GET /price/:id.
func (h *PriceHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respondError(c, http.StatusBadRequest, "id must be a non-empty string")
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "price not found")
		}
		return err
	}
	return respondData(c, http.StatusOK, "price retrieved", view)
}

// Create handles POST /price (admin only).
func (h *PriceHandler) Create(c echo.Context) error {
	var req createPriceRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), ports.PriceInput{
		YearID:     req.YearID,
		ModelID:    req.ModelID,
		CategoryID: req.CategoryID,
		FeatureID:  req.FeatureID,
		SpecID:     req.SpecID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReference) {
			return respondError(c, http.StatusBadRequest, "year, model, category, feature or spek id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("price", "create").Inc()
	return respondData(c, http.StatusCreated, "price created", entry)
}

// Update handles PATCH /price/:id (admin only).
func (h *PriceHandler) Update(c echo.Context) error {
	var req updatePriceRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PriceInput{
		YearID:     req.YearID,
		ModelID:    req.ModelID,
		CategoryID: req.CategoryID,
		FeatureID:  req.FeatureID,
		SpecID:     req.SpecID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "price not found")
		case errors.Is(err, domain.ErrUnknownReference):
			return respondError(c, http.StatusNotFound, "year, model, category, feature or spek id not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("price", "update").Inc()
	return respondData(c, http.StatusOK, "price updated", entry)
}

// Delete handles DELETE /price/:id (admin only).
func (h *PriceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "price not found")
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("price", "delete").Inc()
	return respondData(c, http.StatusOK, "price deleted", nil)
}
