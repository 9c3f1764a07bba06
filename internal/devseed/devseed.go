// Package devseed creates a known set of identities for local
// development. It is only invoked in dev mode and never in production.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusgate/campusgate/internal/adapters/password"
	"github.com/campusgate/campusgate/internal/data"
	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

// Config groups the dependencies needed for development seeding.
type Config struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// devPassword is the shared password for all seeded dev accounts.
const devPassword = "campusgate-dev"

// Seed inserts one identity per role. Identities that already exist are
// left untouched, so seeding is safe to run on every dev start.
func Seed(ctx context.Context, cfg Config) error {
	if cfg.DB == nil {
		return errors.New("db is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Low cost keeps dev startup fast; never use this for real accounts.
	hasher := password.New(password.DefaultCost - 2)
	hash, err := hasher.Hash(devPassword)
	if err != nil {
		return fmt.Errorf("hash dev password: %w", err)
	}

	repo := data.NewIdentityRepo(cfg.DB)
	seeds := []domainauth.Identity{
		{Email: "student@campusgate.local", DisplayName: "Dev Student", Role: domainauth.RoleStudent},
		{Email: "teacher@campusgate.local", DisplayName: "Dev Teacher", Role: domainauth.RoleTeacher},
		{Email: "admin@campusgate.local", DisplayName: "Dev Admin", Role: domainauth.RoleAdmin},
	}

	for _, seed := range seeds {
		seed.PasswordHash = hash
		created, createErr := repo.Create(ctx, seed)
		if createErr != nil {
			if errors.Is(createErr, data.ErrEmailExists) {
				continue
			}
			return fmt.Errorf("seed %s: %w", seed.Email, createErr)
		}
		logger.InfoContext(ctx, "seeded dev identity",
			"email", created.Email, "role", string(created.Role))
	}

	return nil
}
