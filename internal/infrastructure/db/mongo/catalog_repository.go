package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// One repository per catalog entity, all thin wrappers over the shared
// collection primitives. Collection names mirror the original schema.

type BrandRepository struct {
	c collection[domain.Brand]
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{c: collection[domain.Brand]{col: db.Collection("vehicle_brands")}}
}

func (r *BrandRepository) List(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	return r.c.findByID(ctx, id)
}

func (r *BrandRepository) FindByName(ctx context.Context, name string) (*domain.Brand, error) {
	return r.c.findOne(ctx, bson.M{"name": name})
}

func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	return r.c.insert(ctx, b)
}

func (r *BrandRepository) Replace(ctx context.Context, b *domain.Brand) error {
	return r.c.replace(ctx, b.ID, b)
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type VehicleTypeRepository struct {
	c collection[domain.VehicleType]
}

func NewVehicleTypeRepository(db *mongo.Database) *VehicleTypeRepository {
	return &VehicleTypeRepository{c: collection[domain.VehicleType]{col: db.Collection("vehicle_types")}}
}

func (r *VehicleTypeRepository) List(ctx context.Context, limit, skip int64) ([]domain.VehicleType, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *VehicleTypeRepository) FindByID(ctx context.Context, id string) (*domain.VehicleType, error) {
	return r.c.findByID(ctx, id)
}

func (r *VehicleTypeRepository) FindByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	return r.c.findOne(ctx, bson.M{"name": name})
}

func (r *VehicleTypeRepository) Create(ctx context.Context, t *domain.VehicleType) error {
	return r.c.insert(ctx, t)
}

func (r *VehicleTypeRepository) Replace(ctx context.Context, t *domain.VehicleType) error {
	return r.c.replace(ctx, t.ID, t)
}

func (r *VehicleTypeRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type VehicleModelRepository struct {
	c collection[domain.VehicleModel]
}

func NewVehicleModelRepository(db *mongo.Database) *VehicleModelRepository {
	return &VehicleModelRepository{c: collection[domain.VehicleModel]{col: db.Collection("vehicle_models")}}
}

func (r *VehicleModelRepository) List(ctx context.Context, limit, skip int64) ([]domain.VehicleModel, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *VehicleModelRepository) FindByID(ctx context.Context, id string) (*domain.VehicleModel, error) {
	return r.c.findByID(ctx, id)
}

func (r *VehicleModelRepository) FindByName(ctx context.Context, name, typeID string) (*domain.VehicleModel, error) {
	return r.c.findOne(ctx, bson.M{"name": name, "type_id": typeID})
}

func (r *VehicleModelRepository) Create(ctx context.Context, m *domain.VehicleModel) error {
	return r.c.insert(ctx, m)
}

func (r *VehicleModelRepository) Replace(ctx context.Context, m *domain.VehicleModel) error {
	return r.c.replace(ctx, m.ID, m)
}

func (r *VehicleModelRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type VehicleYearRepository struct {
	c collection[domain.VehicleYear]
}

func NewVehicleYearRepository(db *mongo.Database) *VehicleYearRepository {
	return &VehicleYearRepository{c: collection[domain.VehicleYear]{col: db.Collection("vehicle_years")}}
}

func (r *VehicleYearRepository) List(ctx context.Context, limit, skip int64) ([]domain.VehicleYear, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *VehicleYearRepository) FindByID(ctx context.Context, id string) (*domain.VehicleYear, error) {
	return r.c.findByID(ctx, id)
}

func (r *VehicleYearRepository) FindByYear(ctx context.Context, year string) (*domain.VehicleYear, error) {
	return r.c.findOne(ctx, bson.M{"year": year})
}

func (r *VehicleYearRepository) Create(ctx context.Context, y *domain.VehicleYear) error {
	return r.c.insert(ctx, y)
}

func (r *VehicleYearRepository) Replace(ctx context.Context, y *domain.VehicleYear) error {
	return r.c.replace(ctx, y.ID, y)
}

func (r *VehicleYearRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type VehicleCategoryRepository struct {
	c collection[domain.VehicleCategory]
}

func NewVehicleCategoryRepository(db *mongo.Database) *VehicleCategoryRepository {
	return &VehicleCategoryRepository{c: collection[domain.VehicleCategory]{col: db.Collection("vehicle_categories")}}
}

func (r *VehicleCategoryRepository) List(ctx context.Context, limit, skip int64) ([]domain.VehicleCategory, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *VehicleCategoryRepository) FindByID(ctx context.Context, id string) (*domain.VehicleCategory, error) {
	return r.c.findByID(ctx, id)
}

func (r *VehicleCategoryRepository) FindByName(ctx context.Context, name string) (*domain.VehicleCategory, error) {
	return r.c.findOne(ctx, bson.M{"name": name})
}

func (r *VehicleCategoryRepository) Create(ctx context.Context, cat *domain.VehicleCategory) error {
	return r.c.insert(ctx, cat)
}

func (r *VehicleCategoryRepository) Replace(ctx context.Context, cat *domain.VehicleCategory) error {
	return r.c.replace(ctx, cat.ID, cat)
}

func (r *VehicleCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type VehicleFeatureRepository struct {
	c collection[domain.VehicleFeature]
}

func NewVehicleFeatureRepository(db *mongo.Database) *VehicleFeatureRepository {
	return &VehicleFeatureRepository{c: collection[domain.VehicleFeature]{col: db.Collection("vehicle_features")}}
}

func (r *VehicleFeatureRepository) List(ctx context.Context, limit, skip int64) ([]domain.VehicleFeature, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *VehicleFeatureRepository) FindByID(ctx context.Context, id string) (*domain.VehicleFeature, error) {
	return r.c.findByID(ctx, id)
}

func (r *VehicleFeatureRepository) FindByName(ctx context.Context, name string) (*domain.VehicleFeature, error) {
	return r.c.findOne(ctx, bson.M{"name": name})
}

func (r *VehicleFeatureRepository) Create(ctx context.Context, f *domain.VehicleFeature) error {
	return r.c.insert(ctx, f)
}

func (r *VehicleFeatureRepository) Replace(ctx context.Context, f *domain.VehicleFeature) error {
	return r.c.replace(ctx, f.ID, f)
}

func (r *VehicleFeatureRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type SpecificationRepository struct {
	c collection[domain.Specification]
}

func NewSpecificationRepository(db *mongo.Database) *SpecificationRepository {
	return &SpecificationRepository{c: collection[domain.Specification]{col: db.Collection("vehicle_specifications")}}
}

func (r *SpecificationRepository) List(ctx context.Context, limit, skip int64) ([]domain.Specification, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *SpecificationRepository) FindByID(ctx context.Context, id string) (*domain.Specification, error) {
	return r.c.findByID(ctx, id)
}

func (r *SpecificationRepository) FindByKey(ctx context.Context, key string) (*domain.Specification, error) {
	return r.c.findOne(ctx, bson.M{"key": key})
}

func (r *SpecificationRepository) Create(ctx context.Context, s *domain.Specification) error {
	return r.c.insert(ctx, s)
}

func (r *SpecificationRepository) Replace(ctx context.Context, s *domain.Specification) error {
	return r.c.replace(ctx, s.ID, s)
}

func (r *SpecificationRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type PriceRepository struct {
	c collection[domain.PriceEntry]
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{c: collection[domain.PriceEntry]{col: db.Collection("price_list")}}
}

func (r *PriceRepository) List(ctx context.Context, limit, skip int64) ([]domain.PriceEntry, int64, error) {
	return r.c.list(ctx, limit, skip)
}

func (r *PriceRepository) FindByID(ctx context.Context, id string) (*domain.PriceEntry, error) {
	return r.c.findByID(ctx, id)
}

func (r *PriceRepository) Create(ctx context.Context, p *domain.PriceEntry) error {
	return r.c.insert(ctx, p)
}

func (r *PriceRepository) Replace(ctx context.Context, p *domain.PriceEntry) error {
	return r.c.replace(ctx, p.ID, p)
}

func (r *PriceRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
