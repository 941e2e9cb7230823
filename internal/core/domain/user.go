package domain

import "errors"

// Role is the closed set of account roles. Anything outside these two
// constants is rejected at the edges, so an invalid role is unrepresentable
// past the handler layer.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// failed password comparison, so login responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User models an authenticated actor. The role is serialised as "jabatan",
// the field name the administrative front end expects.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         Role   `json:"jabatan" bson:"jabatan"`
}

// TokenClaims are the identity facts embedded in a session token.
type TokenClaims struct {
	UserID   string
	Username string
	Role     Role
}
