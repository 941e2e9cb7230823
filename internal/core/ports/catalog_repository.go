package ports

import (
	"context"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// Catalog repositories are point-lookup stores keyed by entity identifiers.
// List returns one page ordered by id plus the total count across all pages.
// Replace overwrites the full document; Delete and Replace return
// domain.ErrNotFound when no record matches.

type BrandRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	FindByName(ctx context.Context, name string) (*domain.Brand, error)
	Create(ctx context.Context, b *domain.Brand) error
	Replace(ctx context.Context, b *domain.Brand) error
	Delete(ctx context.Context, id string) error
}

type VehicleTypeRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleType, int64, error)
	FindByID(ctx context.Context, id string) (*domain.VehicleType, error)
	FindByName(ctx context.Context, name string) (*domain.VehicleType, error)
	Create(ctx context.Context, t *domain.VehicleType) error
	Replace(ctx context.Context, t *domain.VehicleType) error
	Delete(ctx context.Context, id string) error
}

type VehicleModelRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleModel, int64, error)
	FindByID(ctx context.Context, id string) (*domain.VehicleModel, error)
	// FindByName scopes the name lookup to a type: the same model name may
	// exist under different types.
	FindByName(ctx context.Context, name, typeID string) (*domain.VehicleModel, error)
	Create(ctx context.Context, m *domain.VehicleModel) error
	Replace(ctx context.Context, m *domain.VehicleModel) error
	Delete(ctx context.Context, id string) error
}

type VehicleYearRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleYear, int64, error)
	FindByID(ctx context.Context, id string) (*domain.VehicleYear, error)
	FindByYear(ctx context.Context, year string) (*domain.VehicleYear, error)
	Create(ctx context.Context, y *domain.VehicleYear) error
	Replace(ctx context.Context, y *domain.VehicleYear) error
	Delete(ctx context.Context, id string) error
}

type VehicleCategoryRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleCategory, int64, error)
	FindByID(ctx context.Context, id string) (*domain.VehicleCategory, error)
	FindByName(ctx context.Context, name string) (*domain.VehicleCategory, error)
	Create(ctx context.Context, cat *domain.VehicleCategory) error
	Replace(ctx context.Context, cat *domain.VehicleCategory) error
	Delete(ctx context.Context, id string) error
}

type VehicleFeatureRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleFeature, int64, error)
	FindByID(ctx context.Context, id string) (*domain.VehicleFeature, error)
	FindByName(ctx context.Context, name string) (*domain.VehicleFeature, error)
	Create(ctx context.Context, f *domain.VehicleFeature) error
	Replace(ctx context.Context, f *domain.VehicleFeature) error
	Delete(ctx context.Context, id string) error
}

type SpecificationRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.Specification, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Specification, error)
	FindByKey(ctx context.Context, key string) (*domain.Specification, error)
	Create(ctx context.Context, s *domain.Specification) error
	Replace(ctx context.Context, s *domain.Specification) error
	Delete(ctx context.Context, id string) error
}

type PriceRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.PriceEntry, int64, error)
	FindByID(ctx context.Context, id string) (*domain.PriceEntry, error)
	Create(ctx context.Context, p *domain.PriceEntry) error
	Replace(ctx context.Context, p *domain.PriceEntry) error
	Delete(ctx context.Context, id string) error
}
