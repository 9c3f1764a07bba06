package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusgate/campusgate/internal/data/pgxutil"
	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	apperrors "github.com/campusgate/campusgate/internal/errors"
	"github.com/campusgate/campusgate/internal/ports"
)

// IdentityRepo provides access to stored identities. It implements
// ports.CredentialStore for the auth service and adds the write and
// list operations used by provisioning tooling.
type IdentityRepo struct {
	DB *sql.DB
}

// NewIdentityRepo creates a new IdentityRepo.
func NewIdentityRepo(db *sql.DB) *IdentityRepo {
	return &IdentityRepo{DB: db}
}

// identityRow mirrors the identities table for pgx struct scanning.
// The domain type stays free of persistence tags.
type identityRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	DisplayName  string `db:"display_name"`
	Role         string `db:"role"`
}

func (r identityRow) toDomain() domainauth.Identity {
	return domainauth.Identity{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		DisplayName:  r.DisplayName,
		Role:         domainauth.Role(r.Role),
	}
}

const identityColumns = `id, email, password_hash, display_name, role`

// FindByEmailAndRole looks up an identity by email (case-insensitive) and
// role. Both must match; an email registered under a different role is
// reported as ports.ErrIdentityNotFound, indistinguishable from absence.
func (r *IdentityRepo) FindByEmailAndRole(ctx context.Context, email string, role domainauth.Role) (domainauth.Identity, error) {
	var row identityRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+identityColumns+` FROM identities WHERE lower(email) = lower($1) AND role = $2`,
			email, string(role))
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[identityRow])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domainauth.Identity{}, ports.ErrIdentityNotFound
	}
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("find identity by email and role: %w", err)
	}
	return row.toDomain(), nil
}

// Create inserts a new identity and returns it with the generated ID.
// The email is stored as given; uniqueness is enforced case-insensitively.
func (r *IdentityRepo) Create(ctx context.Context, ident domainauth.Identity) (domainauth.Identity, error) {
	if !ident.Role.Valid() {
		return domainauth.Identity{}, fmt.Errorf("invalid role: %q", ident.Role)
	}
	if strings.TrimSpace(ident.Email) == "" {
		return domainauth.Identity{}, errors.New("email is required")
	}

	var row identityRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`INSERT INTO identities (email, password_hash, display_name, role)
			 VALUES ($1, $2, $3, $4)
			 RETURNING `+identityColumns,
			ident.Email, ident.PasswordHash, ident.DisplayName, string(ident.Role))
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[identityRow])
		return err
	})
	if err != nil {
		return domainauth.Identity{}, mapIdentityWriteErr(err)
	}
	return row.toDomain(), nil
}

// List returns identities ordered by email, for admin tooling.
func (r *IdentityRepo) List(ctx context.Context, limit, offset int) ([]domainauth.Identity, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []identityRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+identityColumns+` FROM identities ORDER BY lower(email) LIMIT $1 OFFSET $2`,
			limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[identityRow])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}

	out := make([]domainauth.Identity, 0, len(rowsOut))
	for _, row := range rowsOut {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Delete removes an identity by ID. Existing sessions are not revoked;
// they lapse at their natural expiry.
func (r *IdentityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM identities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete identity rows affected: %w", err)
	}
	if n == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

func mapIdentityWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrEmailExists
	}
	// Other database failures get the shared taxonomy (timeout, validation, internal).
	return apperrors.MapDBError(fmt.Errorf("create identity: %w", err))
}
