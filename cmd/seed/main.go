package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/otokita/catalog-api/internal/core/domain"
	"github.com/otokita/catalog-api/internal/infrastructure/config"
	mongodb "github.com/otokita/catalog-api/internal/infrastructure/db/mongo"
	"github.com/otokita/catalog-api/pkg/logger"
)

// seedAccounts are the initial credentials. Admin is the only way to obtain
// the admin role, since registration always yields a regular user.
var seedAccounts = []struct {
	username string
	password string
	role     domain.Role
}{
	{username: "Admin", password: "Admin123", role: domain.RoleAdmin},
	{username: "Test", password: "Test123", role: domain.RoleUser},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration load failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("username", acc.username).Msg("password hash failed")
		}

		user := &domain.User{
			ID:           uuid.NewString(),
			Username:     acc.username,
			PasswordHash: string(hash),
			Role:         acc.role,
		}
		if err := users.Upsert(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", acc.username).Msg("seed upsert failed")
		}
		log.Info().Str("username", acc.username).Str("role", string(acc.role)).Msg("account seeded")
	}
}
