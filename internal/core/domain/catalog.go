package domain

import "errors"

// Catalog errors shared by every entity. Handlers translate them into
// entity-specific response messages.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEntry   = errors.New("record already exists")
	ErrUnknownReference = errors.New("referenced record not found")
)

// Brand is a vehicle manufacturer.
type Brand struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// VehicleType is a body style or line belonging to a brand.
type VehicleType struct {
	ID      string `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name"`
	BrandID string `json:"brandId" bson:"brand_id"`
}

// VehicleModel is a concrete model within a type.
type VehicleModel struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	TypeID string `json:"typeId" bson:"type_id"`
}

// VehicleYear is a production year entry.
type VehicleYear struct {
	ID   string `json:"id" bson:"_id"`
	Year string `json:"year" bson:"year"`
}

// VehicleCategory groups vehicles of a type for pricing purposes.
type VehicleCategory struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	TypeID string `json:"typeId" bson:"type_id"`
}

// VehicleFeature is an option or trim feature attached to a type.
type VehicleFeature struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	TypeID string `json:"typeId" bson:"type_id"`
}

// Specification is a key/value technical datum for a model.
type Specification struct {
	ID      string `json:"id" bson:"_id"`
	Key     string `json:"key" bson:"key"`
	Value   string `json:"value" bson:"value"`
	ModelID string `json:"modelId" bson:"model_id"`
}

// PriceEntry joins a year, model, category, feature and specification into a
// single price list row. Every referenced record must exist when the entry is
// created.
type PriceEntry struct {
	ID         string `json:"id" bson:"_id"`
	YearID     string `json:"yearId" bson:"year_id"`
	ModelID    string `json:"modelId" bson:"model_id"`
	CategoryID string `json:"categoryId" bson:"category_id"`
	FeatureID  string `json:"featureId" bson:"feature_id"`
	SpecID     string `json:"spekId" bson:"spec_id"`
}
