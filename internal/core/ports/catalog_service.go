package ports

import (
	"context"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// List views embed the display names of referenced records, mirroring what
// the administrative front end renders in its tables.

type TypeView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

type ModelView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type FeatureView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type SpecView struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Model string `json:"model"`
}

// SpecKV is the specification projection embedded in a price view.
type SpecKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type PriceView struct {
	ID       string `json:"id"`
	Year     string `json:"year"`
	Model    string `json:"model"`
	Category string `json:"category"`
	Feature  string `json:"feature"`
	Spec     SpecKV `json:"spek"`
}

type BrandService interface {
	List(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error)
	Get(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, name string) (*domain.Brand, error)
	// Update replaces the name; an empty name keeps the stored one.
	Update(ctx context.Context, id, name string) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

type VehicleTypeService interface {
	List(ctx context.Context, limit, skip int64) ([]TypeView, int64, error)
	Get(ctx context.Context, id string) (*TypeView, error)
	Create(ctx context.Context, name, brandID string) (*domain.VehicleType, error)
	Update(ctx context.Context, id, name, brandID string) (*domain.VehicleType, error)
	Delete(ctx context.Context, id string) error
}

type VehicleModelService interface {
	List(ctx context.Context, limit, skip int64) ([]ModelView, int64, error)
	Get(ctx context.Context, id string) (*ModelView, error)
	Create(ctx context.Context, name, typeID string) (*domain.VehicleModel, error)
	Update(ctx context.Context, id, name, typeID string) (*domain.VehicleModel, error)
	Delete(ctx context.Context, id string) error
}

type VehicleYearService interface {
	List(ctx context.Context, limit, skip int64) ([]domain.VehicleYear, int64, error)
	Get(ctx context.Context, id string) (*domain.VehicleYear, error)
	Create(ctx context.Context, year string) (*domain.VehicleYear, error)
	Update(ctx context.Context, id, year string) (*domain.VehicleYear, error)
	Delete(ctx context.Context, id string) error
}

type VehicleCategoryService interface {
	List(ctx context.Context, limit, skip int64) ([]CategoryView, int64, error)
	Get(ctx context.Context, id string) (*CategoryView, error)
	Create(ctx context.Context, name, typeID string) (*domain.VehicleCategory, error)
	Update(ctx context.Context, id, name, typeID string) (*domain.VehicleCategory, error)
	Delete(ctx context.Context, id string) error
}

type VehicleFeatureService interface {
	List(ctx context.Context, limit, skip int64) ([]FeatureView, int64, error)
	Get(ctx context.Context, id string) (*FeatureView, error)
	Create(ctx context.Context, name, typeID string) (*domain.VehicleFeature, error)
	Update(ctx context.Context, id, name, typeID string) (*domain.VehicleFeature, error)
	Delete(ctx context.Context, id string) error
}

type SpecificationService interface {
	List(ctx context.Context, limit, skip int64) ([]SpecView, int64, error)
	Get(ctx context.Context, id string) (*SpecView, error)
	Create(ctx context.Context, key, value, modelID string) (*domain.Specification, error)
	Update(ctx context.Context, id, key, value, modelID string) (*domain.Specification, error)
	Delete(ctx context.Context, id string) error
}

// PriceInput carries the references for a price entry. On update, empty
// fields keep their stored values.
type PriceInput struct {
	YearID     string
	ModelID    string
	CategoryID string
	FeatureID  string
	SpecID     string
}

type PriceService interface {
	List(ctx context.Context, limit, skip int64) ([]PriceView, int64, error)
	Get(ctx context.Context, id string) (*PriceView, error)
	Create(ctx context.Context, input PriceInput) (*domain.PriceEntry, error)
	Update(ctx context.Context, id string, input PriceInput) (*domain.PriceEntry, error)
	Delete(ctx context.Context, id string) error
}

// PriceCache is a read cache for price list pages. Implementations must fail
// soft: a cache error degrades to the repository, never to a request error.
type PriceCache interface {
	GetPage(ctx context.Context, limit, skip int64) ([]PriceView, int64, bool)
	SetPage(ctx context.Context, limit, skip int64, views []PriceView, total int64)
	Invalidate(ctx context.Context)
}
