package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// PriceService implements CRUD over the price list. List pages are served
// through an optional read cache; any mutation invalidates it.
type PriceService struct {
	prices     ports.PriceRepository
	years      ports.VehicleYearRepository
	models     ports.VehicleModelRepository
	categories ports.VehicleCategoryRepository
	features   ports.VehicleFeatureRepository
	specs      ports.SpecificationRepository
	cache      ports.PriceCache
	logger     zerolog.Logger
}

// NewPriceService wires the price list against the five referenced
// repositories. cache may be nil.
func NewPriceService(
	prices ports.PriceRepository,
	years ports.VehicleYearRepository,
	models ports.VehicleModelRepository,
	categories ports.VehicleCategoryRepository,
	features ports.VehicleFeatureRepository,
	specs ports.SpecificationRepository,
	cache ports.PriceCache,
	logger zerolog.Logger,
) *PriceService {
	return &PriceService{
		prices:     prices,
		years:      years,
		models:     models,
		categories: categories,
		features:   features,
		specs:      specs,
		cache:      cache,
		logger:     logger,
	}
}

func (s *PriceService) List(ctx context.Context, limit, skip int64) ([]ports.PriceView, int64, error) {
	if s.cache != nil {
		if views, total, ok := s.cache.GetPage(ctx, limit, skip); ok {
			s.logger.Debug().Int64("limit", limit).Int64("skip", skip).Msg("price page served from cache")
			return views, total, nil
		}
	}

	entries, total, err := s.prices.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ports.PriceView, 0, len(entries))
	for _, p := range entries {
		views = append(views, s.view(ctx, &p))
	}

	if s.cache != nil && len(views) > 0 {
		s.cache.SetPage(ctx, limit, skip, views, total)
	}
	return views, total, nil
}

func (s *PriceService) Get(ctx context.Context, id string) (*ports.PriceView, error) {
	p, err := s.prices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, p)
	return &view, nil
}

func (s *PriceService) Create(ctx context.Context, input ports.PriceInput) (*domain.PriceEntry, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	p := &domain.PriceEntry{
		ID:         newID(),
		YearID:     input.YearID,
		ModelID:    input.ModelID,
		CategoryID: input.CategoryID,
		FeatureID:  input.FeatureID,
		SpecID:     input.SpecID,
	}
	if err := s.prices.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *PriceService) Update(ctx context.Context, id string, input ports.PriceInput) (*domain.PriceEntry, error) {
	p, err := s.prices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only supplied references are re-checked; absent fields keep their
	// stored values.
	if err := s.checkSuppliedReferences(ctx, input); err != nil {
		return nil, err
	}

	if input.YearID != "" {
		p.YearID = input.YearID
	}
	if input.ModelID != "" {
		p.ModelID = input.ModelID
	}
	if input.CategoryID != "" {
		p.CategoryID = input.CategoryID
	}
	if input.FeatureID != "" {
		p.FeatureID = input.FeatureID
	}
	if input.SpecID != "" {
		p.SpecID = input.SpecID
	}

	if err := s.prices.Replace(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *PriceService) Delete(ctx context.Context, id string) error {
	if _, err := s.prices.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.prices.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// checkReferences requires all five referenced records to exist.
func (s *PriceService) checkReferences(ctx context.Context, input ports.PriceInput) error {
	checks := []func(context.Context) error{
		func(ctx context.Context) error { _, err := s.years.FindByID(ctx, input.YearID); return err },
		func(ctx context.Context) error { _, err := s.models.FindByID(ctx, input.ModelID); return err },
		func(ctx context.Context) error { _, err := s.categories.FindByID(ctx, input.CategoryID); return err },
		func(ctx context.Context) error { _, err := s.features.FindByID(ctx, input.FeatureID); return err },
		func(ctx context.Context) error { _, err := s.specs.FindByID(ctx, input.SpecID); return err },
	}
	for _, check := range checks {
		if err := check(ctx); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnknownReference
			}
			return err
		}
	}
	return nil
}

// checkSuppliedReferences validates only the references present in input.
func (s *PriceService) checkSuppliedReferences(ctx context.Context, input ports.PriceInput) error {
	type ref struct {
		id   string
		find func(context.Context, string) error
	}
	refs := []ref{
		{input.YearID, func(ctx context.Context, id string) error { _, err := s.years.FindByID(ctx, id); return err }},
		{input.ModelID, func(ctx context.Context, id string) error { _, err := s.models.FindByID(ctx, id); return err }},
		{input.CategoryID, func(ctx context.Context, id string) error { _, err := s.categories.FindByID(ctx, id); return err }},
		{input.FeatureID, func(ctx context.Context, id string) error { _, err := s.features.FindByID(ctx, id); return err }},
		{input.SpecID, func(ctx context.Context, id string) error { _, err := s.specs.FindByID(ctx, id); return err }},
	}
	for _, r := range refs {
		if r.id == "" {
			continue
		}
		if err := r.find(ctx, r.id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnknownReference
			}
			return err
		}
	}
	return nil
}

// view assembles the denormalised projection for a price entry. Dangling
// references render as empty fields rather than failing the page.
func (s *PriceService) view(ctx context.Context, p *domain.PriceEntry) ports.PriceView {
	view := ports.PriceView{ID: p.ID}
	if y, err := s.years.FindByID(ctx, p.YearID); err == nil {
		view.Year = y.Year
	}
	if m, err := s.models.FindByID(ctx, p.ModelID); err == nil {
		view.Model = m.Name
	}
	if cat, err := s.categories.FindByID(ctx, p.CategoryID); err == nil {
		view.Category = cat.Name
	}
	if f, err := s.features.FindByID(ctx, p.FeatureID); err == nil {
		view.Feature = f.Name
	}
	if sp, err := s.specs.FindByID(ctx, p.SpecID); err == nil {
		view.Spec = ports.SpecKV{Key: sp.Key, Value: sp.Value}
	}
	return view
}

func (s *PriceService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
