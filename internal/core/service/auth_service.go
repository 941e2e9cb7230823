package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/core/ports"
)

// AuthService implements credential verification and registration.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenAuthority
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenAuthority) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies a username/password pair and issues a session token.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials;
// the bcrypt comparison is constant-time.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.tokens.TTLSeconds(),
	}, nil
}

// Register creates an account with the non-privileged role. Admin accounts
// are provisioned out-of-band by the seeder; there is no self-service path to
// the admin role.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           newID(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
