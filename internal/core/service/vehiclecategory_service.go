package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleCategoryService implements CRUD over pricing categories. Views embed
// the owning type's name.
type VehicleCategoryService struct {
	categories ports.VehicleCategoryRepository
	types      ports.VehicleTypeRepository
}

func NewVehicleCategoryService(categories ports.VehicleCategoryRepository, types ports.VehicleTypeRepository) *VehicleCategoryService {
	return &VehicleCategoryService{categories: categories, types: types}
}

func (s *VehicleCategoryService) List(ctx context.Context, limit, skip int64) ([]ports.CategoryView, int64, error) {
	categories, total, err := s.categories.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	names := map[string]string{}
	views := make([]ports.CategoryView, 0, len(categories))
	for _, cat := range categories {
		typeName, ok := names[cat.TypeID]
		if !ok {
			typeName = s.typeName(ctx, cat.TypeID)
			names[cat.TypeID] = typeName
		}
		views = append(views, ports.CategoryView{ID: cat.ID, Name: cat.Name, Type: typeName})
	}
	return views, total, nil
}

func (s *VehicleCategoryService) Get(ctx context.Context, id string) (*ports.CategoryView, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.CategoryView{ID: cat.ID, Name: cat.Name, Type: s.typeName(ctx, cat.TypeID)}, nil
}

func (s *VehicleCategoryService) Create(ctx context.Context, name, typeID string) (*domain.VehicleCategory, error) {
	if _, err := s.categories.FindByName(ctx, name); err == nil {
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

	cat := &domain.VehicleCategory{ID: newID(), Name: name, TypeID: typeID}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *VehicleCategoryService) Update(ctx context.Context, id, name, typeID string) (*domain.VehicleCategory, error) {
	cat, err := s.categories.FindByID(ctx, id)
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
		cat.TypeID = typeID
	}
	if name != "" {
		cat.Name = name
	}

	if err := s.categories.Replace(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *VehicleCategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

func (s *VehicleCategoryService) typeName(ctx context.Context, id string) string {
	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return ""
	}
	return t.Name
}
