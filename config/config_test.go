package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func loadConfig(t *testing.T) *AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadConfig(t)

	if cfg.Auth.SessionTTL != 8*time.Hour {
		t.Errorf("SessionTTL = %v, want 8h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.LoginPath != "/auth/login" {
		t.Errorf("LoginPath = %q, want /auth/login", cfg.Auth.LoginPath)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want 5432", cfg.Postgres.Port)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("RunMigrationsOnStart should default to true")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_NAME", "campusgate_test")
	t.Setenv("REDIS_URI", "redis.internal:6380")

	cfg := loadConfig(t)

	if cfg.Auth.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.Auth.SessionTTL)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("HTTP.Addr = %q, want :9999", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Name != "campusgate_test" {
		t.Errorf("Postgres.Name = %q, want campusgate_test", cfg.Postgres.Name)
	}
	if cfg.Redis.URI != "redis.internal:6380" {
		t.Errorf("Redis.URI = %q, want redis.internal:6380", cfg.Redis.URI)
	}
}

func TestSanitizeClampsValues(t *testing.T) {
	tests := []struct {
		name string
		cost string
		want int
	}{
		{"too low", "4", 12},
		{"too high", "40", 31},
		{"in range", "14", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			cfg := loadConfig(t)
			if cfg.Auth.BcryptCost != tt.want {
				t.Errorf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, tt.want)
			}
		})
	}

	t.Run("negative TTL falls back", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "-1h")
		cfg := loadConfig(t)
		if cfg.Auth.SessionTTL != 8*time.Hour {
			t.Errorf("SessionTTL = %v, want 8h", cfg.Auth.SessionTTL)
		}
	})

	t.Run("relative login path falls back", func(t *testing.T) {
		t.Setenv("AUTH_LOGIN_PATH", "login")
		cfg := loadConfig(t)
		if cfg.Auth.LoginPath != "/auth/login" {
			t.Errorf("LoginPath = %q, want /auth/login", cfg.Auth.LoginPath)
		}
	})
}

func TestDetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := loadConfig(t)
	if !cfg.IsDev {
		t.Error("IsDev should be true when NODE_ENV=development")
	}
}
