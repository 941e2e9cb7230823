package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// BrandService implements CRUD over vehicle brands.
type BrandService struct {
	brands ports.BrandRepository
}

func NewBrandService(brands ports.BrandRepository) *BrandService {
	return &BrandService{brands: brands}
}

func (s *BrandService) List(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
	return s.brands.List(ctx, limit, skip)
}

func (s *BrandService) Get(ctx context.Context, id string) (*domain.Brand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *BrandService) Create(ctx context.Context, name string) (*domain.Brand, error) {
	if _, err := s.brands.FindByName(ctx, name); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	brand := &domain.Brand{ID: newID(), Name: name}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, id, name string) (*domain.Brand, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		brand.Name = name
	}
	if err := s.brands.Replace(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}
	return s.brands.Delete(ctx, id)
}
