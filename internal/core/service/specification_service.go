package service

import (
	"context"
	"errors"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// SpecificationService implements CRUD over model specifications. Views embed
// the owning model's name.
type SpecificationService struct {
	specs  ports.SpecificationRepository
	models ports.VehicleModelRepository
}

func NewSpecificationService(specs ports.SpecificationRepository, models ports.VehicleModelRepository) *SpecificationService {
	return &SpecificationService{specs: specs, models: models}
}

func (s *SpecificationService) List(ctx context.Context, limit, skip int64) ([]ports.SpecView, int64, error) {
	specs, total, err := s.specs.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	names := map[string]string{}
	views := make([]ports.SpecView, 0, len(specs))
	for _, sp := range specs {
		modelName, ok := names[sp.ModelID]
		if !ok {
			modelName = s.modelName(ctx, sp.ModelID)
			names[sp.ModelID] = modelName
		}
		views = append(views, ports.SpecView{ID: sp.ID, Key: sp.Key, Value: sp.Value, Model: modelName})
	}
	return views, total, nil
}

func (s *SpecificationService) Get(ctx context.Context, id string) (*ports.SpecView, error) {
	sp, err := s.specs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.SpecView{ID: sp.ID, Key: sp.Key, Value: sp.Value, Model: s.modelName(ctx, sp.ModelID)}, nil
}

func (s *SpecificationService) Create(ctx context.Context, key, value, modelID string) (*domain.Specification, error) {
	if _, err := s.specs.FindByKey(ctx, key); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.models.FindByID(ctx, modelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}

	sp := &domain.Specification{ID: newID(), Key: key, Value: value, ModelID: modelID}
	if err := s.specs.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *SpecificationService) Update(ctx context.Context, id, key, value, modelID string) (*domain.Specification, error) {
	sp, err := s.specs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if modelID != "" {
		if _, err := s.models.FindByID(ctx, modelID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownReference
			}
			return nil, err
		}
		sp.ModelID = modelID
	}
	if key != "" {
		sp.Key = key
	}
	if value != "" {
		sp.Value = value
	}

	if err := s.specs.Replace(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *SpecificationService) Delete(ctx context.Context, id string) error {
	if _, err := s.specs.FindByID(ctx, id); err != nil {
		return err
	}
	return s.specs.Delete(ctx, id)
}

func (s *SpecificationService) modelName(ctx context.Context, id string) string {
	m, err := s.models.FindByID(ctx, id)
	if err != nil {
		return ""
	}
	return m.Name
}
