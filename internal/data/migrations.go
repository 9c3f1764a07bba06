package data

import (
	"context"
	"database/sql"

	"github.com/campusgate/campusgate/internal/migrate"
)

// RunMigrations applies embedded schema migrations. Safe to call on every start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}
