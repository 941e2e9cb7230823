package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/otokita/catalog-api/internal/core/domain"
)

type stubTokenAuthority struct {
	claims map[string]*domain.TokenClaims
}

func (a *stubTokenAuthority) Issue(user *domain.User) (string, error) {
	token := "token-" + user.ID
	a.claims[token] = &domain.TokenClaims{UserID: user.ID, Username: user.Username, Role: user.Role}
	return token, nil
}

func (a *stubTokenAuthority) Verify(token string) (*domain.TokenClaims, error) {
	if claims, ok := a.claims[token]; ok {
		return claims, nil
	}
	return nil, domain.ErrTokenInvalid
}

func (a *stubTokenAuthority) TTLSeconds() int { return 3600 }

type stubUserStore struct {
	users map[string]*domain.User
}

func (r *stubUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func authFixture(t *testing.T) (*stubTokenAuthority, *stubUserStore, string, *domain.User) {
	t.Helper()
	user := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin}
	tokens := &stubTokenAuthority{claims: make(map[string]*domain.TokenClaims)}
	users := &stubUserStore{users: map[string]*domain.User{user.ID: user}}

	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	return tokens, users, token, user
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens, users, token, user := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens, users)(func(c echo.Context) error {
		called = true
		got, ok := CurrentUser(c)
		if !ok {
			t.Fatalf("user not attached to context")
		}
		if got.ID != user.ID || got.Role != domain.RoleAdmin {
			t.Fatalf("unexpected user in context: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens, users, _, _ := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	e := echo.New()
	tokens, users, token, _ := authFixture(t)

	for _, header := range []string{"Token " + token, token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(tokens, users)(func(c echo.Context) error {
			t.Fatalf("header %q: should not reach next", header)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens, users, _, _ := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	e := echo.New()
	tokens, users, token, user := authFixture(t)
	// The account vanishes while the token is still unexpired.
	delete(users.users, user.ID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
