package service

import (
	"context"
	"testing"

	"github.com/otokita/catalog-api/internal/core/domain"
)

type stubTypeRepo struct {
	types map[string]*domain.VehicleType
}

func newStubTypeRepo() *stubTypeRepo {
	return &stubTypeRepo{types: make(map[string]*domain.VehicleType)}
}

func (r *stubTypeRepo) List(_ context.Context, _, _ int64) ([]domain.VehicleType, int64, error) {
	out := make([]domain.VehicleType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTypeRepo) FindByID(_ context.Context, id string) (*domain.VehicleType, error) {
	if t, ok := r.types[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubTypeRepo) FindByName(_ context.Context, name string) (*domain.VehicleType, error) {
	for _, t := range r.types {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubTypeRepo) Create(_ context.Context, t *domain.VehicleType) error {
	clone := *t
	r.types[t.ID] = &clone
	return nil
}

func (r *stubTypeRepo) Replace(_ context.Context, t *domain.VehicleType) error {
	if _, ok := r.types[t.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *t
	r.types[t.ID] = &clone
	return nil
}

func (r *stubTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.types[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.types, id)
	return nil
}

func typeFixture() (*stubTypeRepo, *stubBrandRepo, *VehicleTypeService) {
	brands := newStubBrandRepo()
	brands.brands["b1"] = &domain.Brand{ID: "b1", Name: "Toyota"}
	types := newStubTypeRepo()
	return types, brands, NewVehicleTypeService(types, brands)
}

func TestVehicleTypeService_Create_UnknownBrand(t *testing.T) {
	types, _, svc := typeFixture()

	if _, err := svc.Create(context.Background(), "SUV", "missing"); err != domain.ErrUnknownReference {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
	if len(types.types) != 0 {
		t.Fatalf("rejected create must not write")
	}
}

func TestVehicleTypeService_Create_Duplicate(t *testing.T) {
	_, _, svc := typeFixture()

	if _, err := svc.Create(context.Background(), "SUV", "b1"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "SUV", "b1"); err != domain.ErrDuplicateEntry {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestVehicleTypeService_Get_EmbedsBrandName(t *testing.T) {
	_, _, svc := typeFixture()

	created, err := svc.Create(context.Background(), "SUV", "b1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	view, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.Name != "SUV" || view.Brand != "Toyota" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestVehicleTypeService_Get_DanglingBrand(t *testing.T) {
	_, brands, svc := typeFixture()

	created, err := svc.Create(context.Background(), "SUV", "b1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	delete(brands.brands, "b1")

	// A dangling brand reference renders empty rather than erroring.
	view, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.Brand != "" {
		t.Fatalf("expected empty brand, got %q", view.Brand)
	}
}

func TestVehicleTypeService_Update_Partial(t *testing.T) {
	_, brands, svc := typeFixture()
	brands.brands["b2"] = &domain.Brand{ID: "b2", Name: "Honda"}

	created, err := svc.Create(context.Background(), "SUV", "b1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, "", "b2")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "SUV" {
		t.Fatalf("absent name must be preserved, got %s", updated.Name)
	}
	if updated.BrandID != "b2" {
		t.Fatalf("brand not updated: %s", updated.BrandID)
	}
}

func TestVehicleTypeService_Update_UnknownBrand(t *testing.T) {
	_, _, svc := typeFixture()

	created, err := svc.Create(context.Background(), "SUV", "b1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, "MPV", "missing"); err != domain.ErrUnknownReference {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}
