package service

import (
	"context"
	"testing"

	"github.com/otokita/catalog-api/internal/core/domain"
)

type stubBrandRepo struct {
	brands map[string]*domain.Brand
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[string]*domain.Brand)}
}

func (r *stubBrandRepo) List(_ context.Context, _, _ int64) ([]domain.Brand, int64, error) {
	out := make([]domain.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id string) (*domain.Brand, error) {
	if b, ok := r.brands[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubBrandRepo) FindByName(_ context.Context, name string) (*domain.Brand, error) {
	for _, b := range r.brands {
		if b.Name == name {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubBrandRepo) Create(_ context.Context, b *domain.Brand) error {
	clone := *b
	r.brands[b.ID] = &clone
	return nil
}

func (r *stubBrandRepo) Replace(_ context.Context, b *domain.Brand) error {
	if _, ok := r.brands[b.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *b
	r.brands[b.ID] = &clone
	return nil
}

func (r *stubBrandRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.brands[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.brands, id)
	return nil
}

func TestBrandService_Create_Success(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	brand, err := svc.Create(context.Background(), "Toyota")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if brand.ID == "" {
		t.Fatalf("expected generated id")
	}
	if brand.Name != "Toyota" {
		t.Fatalf("unexpected name: %s", brand.Name)
	}
}

func TestBrandService_Create_Duplicate(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	if _, err := svc.Create(context.Background(), "Honda"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Honda"); err != domain.ErrDuplicateEntry {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	if len(repo.brands) != 1 {
		t.Fatalf("duplicate create must not write, got %d records", len(repo.brands))
	}
}

func TestBrandService_Update_KeepsNameWhenEmpty(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	created, err := svc.Create(context.Background(), "Suzuki")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Suzuki" {
		t.Fatalf("empty name must keep the stored one, got %s", updated.Name)
	}

	updated, err = svc.Update(context.Background(), created.ID, "Daihatsu")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Daihatsu" {
		t.Fatalf("expected renamed brand, got %s", updated.Name)
	}
}

func TestBrandService_Update_NotFound(t *testing.T) {
	svc := NewBrandService(newStubBrandRepo())

	if _, err := svc.Update(context.Background(), "missing", "X"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBrandService_Delete(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	created, err := svc.Create(context.Background(), "Mazda")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
