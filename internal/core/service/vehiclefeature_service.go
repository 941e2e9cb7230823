package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// VehicleFeatureService implements CRUD over vehicle features. Views embed
// the owning type's name.
type VehicleFeatureService struct {
	features ports.VehicleFeatureRepository
	types    ports.VehicleTypeRepository
}

func NewVehicleFeatureService(features ports.VehicleFeatureRepository, types ports.VehicleTypeRepository) *VehicleFeatureService {
	return &VehicleFeatureService{features: features, types: types}
}

func (s *VehicleFeatureService) List(ctx context.Context, limit, skip int64) ([]ports.FeatureView, int64, error) {
	features, total, err := s.features.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	names := map[string]string{}
	views := make([]ports.FeatureView, 0, len(features))
	for _, f := range features {
		typeName, ok := names[f.TypeID]
		if !ok {
			typeName = s.typeName(ctx, f.TypeID)
			names[f.TypeID] = typeName
		}
		views = append(views, ports.FeatureView{ID: f.ID, Name: f.Name, Type: typeName})
	}
	return views, total, nil
}

func (s *VehicleFeatureService) Get(ctx context.Context, id string) (*ports.FeatureView, error) {
	f, err := s.features.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.FeatureView{ID: f.ID, Name: f.Name, Type: s.typeName(ctx, f.TypeID)}, nil
}

func (s *VehicleFeatureService) Create(ctx context.Context, name, typeID string) (*domain.VehicleFeature, error) {
	if _, err := s.features.FindByName(ctx, name); err == nil {
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

	f := &domain.VehicleFeature{ID: newID(), Name: name, TypeID: typeID}
	if err := s.features.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *VehicleFeatureService) Update(ctx context.Context, id, name, typeID string) (*domain.VehicleFeature, error) {
	f, err := s.features.FindByID(ctx, id)
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
		f.TypeID = typeID
	}
	if name != "" {
		f.Name = name
	}

	if err := s.features.Replace(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *VehicleFeatureService) Delete(ctx context.Context, id string) error {
	if _, err := s.features.FindByID(ctx, id); err != nil {
		return err
	}
	return s.features.Delete(ctx, id)
}

func (s *VehicleFeatureService) typeName(ctx context.Context, id string) string {
	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return ""
	}
	return t.Name
}
