package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campusgate/campusgate/config"
	"github.com/campusgate/campusgate/internal/adapters/password"
	redisadapter "github.com/campusgate/campusgate/internal/adapters/redis"
	"github.com/campusgate/campusgate/internal/data"
	"github.com/campusgate/campusgate/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// AuthComponents bundles the wired auth service with its guard and the
// identity repository used by admin surfaces.
type AuthComponents struct {
	Service    *service.AuthService
	Guard      *service.AccessGuard
	Identities *data.IdentityRepo
}

// BuildAuthService wires the credential store, password verifier, and
// session store into an auth service. Returns nil if a required backing
// store is missing.
func BuildAuthService(cfg AuthConfig) *AuthComponents {
	if cfg.DB == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: database not configured")
		}
		return nil
	}
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured")
		}
		return nil
	}

	identities := data.NewIdentityRepo(cfg.DB)
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, cfg.Auth.SessionKeyPrefix)

	svc := service.NewAuthService(service.AuthServiceOptions{
		Credentials: identities,
		Sessions:    sessionStore,
		Verifier:    password.New(cfg.Auth.BcryptCost),
		SessionTTL:  cfg.Auth.SessionTTL,
		Logger:      cfg.Logger,
	})

	return &AuthComponents{
		Service:    svc,
		Guard:      service.NewAccessGuard(cfg.Auth.LoginPath),
		Identities: identities,
	}
}
