package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/core/domain"
)

type stubBrandService struct {
	listFn   func(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error)
	getFn    func(ctx context.Context, id string) (*domain.Brand, error)
	createFn func(ctx context.Context, name string) (*domain.Brand, error)
	updateFn func(ctx context.Context, id, name string) (*domain.Brand, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubBrandService) List(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
	return s.listFn(ctx, limit, skip)
}

func (s *stubBrandService) Get(ctx context.Context, id string) (*domain.Brand, error) {
	return s.getFn(ctx, id)
}

func (s *stubBrandService) Create(ctx context.Context, name string) (*domain.Brand, error) {
	return s.createFn(ctx, name)
}

func (s *stubBrandService) Update(ctx context.Context, id, name string) (*domain.Brand, error) {
	return s.updateFn(ctx, id, name)
}

func (s *stubBrandService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestBrandHandler_List_Success(t *testing.T) {
	stub := &stubBrandService{
		listFn: func(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
			if limit != 5 || skip != 10 {
				t.Fatalf("pagination not forwarded: limit=%d skip=%d", limit, skip)
			}
			return []domain.Brand{{ID: "b1", Name: "Toyota"}}, 23, nil
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/brands?limit=5&skip=10", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	meta, ok := resp["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("expected metadata: %+v", resp)
	}
	if meta["total"] != float64(23) || meta["limit"] != float64(5) || meta["skip"] != float64(10) {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestBrandHandler_List_EmptyPage(t *testing.T) {
	stub := &stubBrandService{
		listFn: func(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
			return nil, 0, nil
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/brands", "")
	_ = handler.List(c)

	// A page past the end of the data reads as not found.
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBrandHandler_List_DefaultPagination(t *testing.T) {
	stub := &stubBrandService{
		listFn: func(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
			if limit != 10 || skip != 0 {
				t.Fatalf("expected defaults 10/0, got %d/%d", limit, skip)
			}
			return []domain.Brand{{ID: "b1", Name: "Toyota"}}, 1, nil
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/brands", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBrandHandler_List_BadPagination(t *testing.T) {
	stub := &stubBrandService{
		listFn: func(ctx context.Context, limit, skip int64) ([]domain.Brand, int64, error) {
			t.Fatalf("should not be called")
			return nil, 0, nil
		},
	}
	handler := NewBrandHandler(stub)

	for _, query := range []string{"?limit=abc", "?skip=-1", "?limit=-5"} {
		e := echo.New()
		e.Validator = NewValidator()
		req := httptest.NewRequest(http.MethodGet, "/brands"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.List(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestBrandHandler_Get_NotFound(t *testing.T) {
	stub := &stubBrandService{
		getFn: func(ctx context.Context, id string) (*domain.Brand, error) {
			return nil, domain.ErrNotFound
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/brands/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBrandHandler_Create_Success(t *testing.T) {
	stub := &stubBrandService{
		createFn: func(ctx context.Context, name string) (*domain.Brand, error) {
			return &domain.Brand{ID: "b1", Name: name}, nil
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/brands", `{"name":"Toyota"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBrandHandler_Create_Duplicate(t *testing.T) {
	stub := &stubBrandService{
		createFn: func(ctx context.Context, name string) (*domain.Brand, error) {
			return nil, domain.ErrDuplicateEntry
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/brands", `{"name":"Toyota"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBrandHandler_Create_MissingName(t *testing.T) {
	stub := &stubBrandService{
		createFn: func(ctx context.Context, name string) (*domain.Brand, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/brands", `{}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBrandHandler_Update_NotFound(t *testing.T) {
	stub := &stubBrandService{
		updateFn: func(ctx context.Context, id, name string) (*domain.Brand, error) {
			return nil, domain.ErrNotFound
		},
	}
	handler := NewBrandHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/brands/missing", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBrandHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubBrandService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewBrandHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/brands/b1", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "b1" {
		t.Fatalf("expected delete of b1, got %q", deleted)
	}
}
