package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/otokita/catalog-api/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists user accounts. EnsureIndexes installs a unique
// index on username, so duplicate usernames are rejected by the store even
// under concurrent registration.
type UserRepository struct {
	c collection[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: collection[domain.User]{col: db.Collection(userCollection)}}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := r.c.findOne(ctx, bson.M{"username": username})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := r.c.findByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.c.insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

// Upsert inserts or refreshes an account by username. Used by the seeder to
// provision the out-of-band admin account.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"password_hash": user.PasswordHash,
		"jabatan":       user.Role,
	}, "$setOnInsert": bson.M{"_id": user.ID}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.c.col.UpdateOne(ctx, bson.M{"username": user.Username}, update, opts); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique username index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.c.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
