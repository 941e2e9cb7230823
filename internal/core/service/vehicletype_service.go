package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleTypeService implements CRUD over vehicle types. List and Get views
// embed the owning brand's name.
type VehicleTypeService struct {
	types  ports.VehicleTypeRepository
	brands ports.BrandRepository
}

func NewVehicleTypeService(types ports.VehicleTypeRepository, brands ports.BrandRepository) *VehicleTypeService {
	return &VehicleTypeService{types: types, brands: brands}
}

func (s *VehicleTypeService) List(ctx context.Context, limit, skip int64) ([]ports.TypeView, int64, error) {
	types, total, err := s.types.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	// Resolve brand names once per distinct id within the page.
	names := map[string]string{}
	views := make([]ports.TypeView, 0, len(types))
	for _, t := range types {
		brand, ok := names[t.BrandID]
		if !ok {
			brand = s.brandName(ctx, t.BrandID)
			names[t.BrandID] = brand
		}
		views = append(views, ports.TypeView{ID: t.ID, Name: t.Name, Brand: brand})
	}
	return views, total, nil
}

func (s *VehicleTypeService) Get(ctx context.Context, id string) (*ports.TypeView, error) {
	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.TypeView{ID: t.ID, Name: t.Name, Brand: s.brandName(ctx, t.BrandID)}, nil
}

func (s *VehicleTypeService) Create(ctx context.Context, name, brandID string) (*domain.VehicleType, error) {
	if _, err := s.types.FindByName(ctx, name); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.brands.FindByID(ctx, brandID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}

	t := &domain.VehicleType{ID: newID(), Name: name, BrandID: brandID}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *VehicleTypeService) Update(ctx context.Context, id, name, brandID string) (*domain.VehicleType, error) {
	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if brandID != "" {
		if _, err := s.brands.FindByID(ctx, brandID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownReference
			}
			return nil, err
		}
		t.BrandID = brandID
	}
	if name != "" {
		t.Name = name
	}

	if err := s.types.Replace(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *VehicleTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.types.FindByID(ctx, id); err != nil {
		return err
	}
	return s.types.Delete(ctx, id)
}

// brandName resolves a brand id to its display name; a dangling reference
// renders as an empty string rather than failing the whole page.
func (s *VehicleTypeService) brandName(ctx context.Context, id string) string {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return ""
	}
	return brand.Name
}
