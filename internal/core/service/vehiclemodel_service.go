package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleModelService implements CRUD over vehicle models. Views embed the
// owning type and, through it, the brand.
type VehicleModelService struct {
	models ports.VehicleModelRepository
	types  ports.VehicleTypeRepository
	brands ports.BrandRepository
}

func NewVehicleModelService(models ports.VehicleModelRepository, types ports.VehicleTypeRepository, brands ports.BrandRepository) *VehicleModelService {
	return &VehicleModelService{models: models, types: types, brands: brands}
}

func (s *VehicleModelService) List(ctx context.Context, limit, skip int64) ([]ports.ModelView, int64, error) {
	models, total, err := s.models.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ports.ModelView, 0, len(models))
	for _, m := range models {
		typeName, brandName := s.lineage(ctx, m.TypeID)
		views = append(views, ports.ModelView{ID: m.ID, Name: m.Name, Type: typeName, Brand: brandName})
	}
	return views, total, nil
}

func (s *VehicleModelService) Get(ctx context.Context, id string) (*ports.ModelView, error) {
	m, err := s.models.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	typeName, brandName := s.lineage(ctx, m.TypeID)
	return &ports.ModelView{ID: m.ID, Name: m.Name, Type: typeName, Brand: brandName}, nil
}

func (s *VehicleModelService) Create(ctx context.Context, name, typeID string) (*domain.VehicleModel, error) {
	if _, err := s.models.FindByName(ctx, name, typeID); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.types.FindByID(ctx, typeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}

	m := &domain.VehicleModel{ID: newID(), Name: name, TypeID: typeID}
	if err := s.models.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *VehicleModelService) Update(ctx context.Context, id, name, typeID string) (*domain.VehicleModel, error) {
	m, err := s.models.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if typeID != "" {
		if _, err := s.types.FindByID(ctx, typeID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownReference
			}
			return nil, err
		}
		m.TypeID = typeID
	}
	if name != "" {
		m.Name = name
	}

	if err := s.models.Replace(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *VehicleModelService) Delete(ctx context.Context, id string) error {
	if _, err := s.models.FindByID(ctx, id); err != nil {
		return err
	}
	return s.models.Delete(ctx, id)
}

// lineage resolves a type id to its name and its brand's name. Dangling
// references render as empty strings.
func (s *VehicleModelService) lineage(ctx context.Context, typeID string) (typeName, brandName string) {
	t, err := s.types.FindByID(ctx, typeID)
	if err != nil {
		return "", ""
	}
	brand, err := s.brands.FindByID(ctx, t.BrandID)
	if err != nil {
		return t.Name, ""
	}
	return t.Name, brand.Name
}
