package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/otokita/catalog-api/internal/core/domain"
)

const defaultTokenTTL = 3 * time.Hour

// sessionClaims is the wire shape of a session token. The role travels as
// "jabatan" to match the rest of the API surface.
type sessionClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"jabatan"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies HS256-signed session tokens. It holds no
// mutable state; a single instance is shared by all requests.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenAuthority(secret string, ttl time.Duration) *TokenAuthority {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenAuthority{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's id, username and role, expiring
// ttl from now.
func (a *TokenAuthority) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

// Verify checks signature and expiry and returns the embedded claims. It is
// pure computation: malformed, tampered and expired tokens all map to
// domain.ErrTokenInvalid.
func (a *TokenAuthority) Verify(token string) (*domain.TokenClaims, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}

// TTLSeconds reports the issue lifetime, for the login response's expiresIn
// hint.
func (a *TokenAuthority) TTLSeconds() int {
	return int(a.ttl.Seconds())
}
