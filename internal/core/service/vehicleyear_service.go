package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleYearService implements CRUD over production years.
type VehicleYearService struct {
	years ports.VehicleYearRepository
}

func NewVehicleYearService(years ports.VehicleYearRepository) *VehicleYearService {
	return &VehicleYearService{years: years}
}

func (s *VehicleYearService) List(ctx context.Context, limit, skip int64) ([]domain.VehicleYear, int64, error) {
	return s.years.List(ctx, limit, skip)
}

func (s *VehicleYearService) Get(ctx context.Context, id string) (*domain.VehicleYear, error) {
	return s.years.FindByID(ctx, id)
}

func (s *VehicleYearService) Create(ctx context.Context, year string) (*domain.VehicleYear, error) {
	if _, err := s.years.FindByYear(ctx, year); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	y := &domain.VehicleYear{ID: newID(), Year: year}
	if err := s.years.Create(ctx, y); err != nil {
		return nil, err
	}
	return y, nil
}

func (s *VehicleYearService) Update(ctx context.Context, id, year string) (*domain.VehicleYear, error) {
	y, err := s.years.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if year != "" {
		y.Year = year
	}
	if err := s.years.Replace(ctx, y); err != nil {
		return nil, err
	}
	return y, nil
}

func (s *VehicleYearService) Delete(ctx context.Context, id string) error {
	if _, err := s.years.FindByID(ctx, id); err != nil {
		return err
	}
	return s.years.Delete(ctx, id)
}
