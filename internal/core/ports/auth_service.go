package ports

import (
	"context"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// LoginResult carries everything the login response needs.
type LoginResult struct {
	User *domain.User
	// Token is the signed session token.
	Token string
	// ExpiresIn is the token lifetime in seconds; it always matches the
	// expiry embedded in the token itself.
	ExpiresIn int
}

// AuthService implements credential verification and registration.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenAuthority issues and verifies stateless session tokens. Verify is pure
// computation; it never consults storage.
type TokenAuthority interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
	// TTL is the lifetime applied to issued tokens.
	TTLSeconds() int
}
