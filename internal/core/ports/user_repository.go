package ports

import (
	"context"

	"github.com/otokita/catalog-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Username uniqueness
// is enforced by the implementation (unique index), not assumed.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
