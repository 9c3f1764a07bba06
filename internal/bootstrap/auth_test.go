package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/campusgate/campusgate/config"
)

func TestBuildAuthServiceReturnsNilWithoutBackingStores(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  AuthConfig
	}{
		{
			name: "no database",
			cfg: AuthConfig{
				Auth:   config.AuthConfig{LoginPath: "/auth/login"},
				Logger: logger,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if components := BuildAuthService(tt.cfg); components != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", components)
			}
		})
	}
}
