package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	"github.com/campusgate/campusgate/internal/ports"
	"github.com/campusgate/campusgate/internal/testutil"
)

func createIdentity(t *testing.T, repo *IdentityRepo, email string, role domainauth.Role) domainauth.Identity {
	t.Helper()
	created, err := repo.Create(context.Background(), domainauth.Identity{
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		DisplayName:  "Test User",
		Role:         role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

func TestIdentityRepo_CreateAndFind(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		created := createIdentity(t, repo, "ada@school.example", domainauth.RoleStudent)

		found, err := repo.FindByEmailAndRole(ctx, "ada@school.example", domainauth.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})
}

func TestIdentityRepo_FindIsCaseInsensitiveOnEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		createIdentity(t, repo, "Grace@School.Example", domainauth.RoleTeacher)

		found, err := repo.FindByEmailAndRole(ctx, "grace@school.example", domainauth.RoleTeacher)
		require.NoError(t, err)
		assert.Equal(t, "Grace@School.Example", found.Email)
	})
}

func TestIdentityRepo_RoleIsPartOfLookupKey(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		createIdentity(t, repo, "ada@school.example", domainauth.RoleStudent)

		// Same email under a different role is an absence.
		_, err := repo.FindByEmailAndRole(ctx, "ada@school.example", domainauth.RoleTeacher)
		assert.True(t, errors.Is(err, ports.ErrIdentityNotFound))
	})
}

func TestIdentityRepo_UnknownEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)

		_, err := repo.FindByEmailAndRole(context.Background(), "nobody@school.example", domainauth.RoleAdmin)
		assert.True(t, errors.Is(err, ports.ErrIdentityNotFound))
	})
}

func TestIdentityRepo_DuplicateEmailRejected(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		createIdentity(t, repo, "ada@school.example", domainauth.RoleStudent)

		// Uniqueness is case-insensitive and role-independent.
		_, err := repo.Create(ctx, domainauth.Identity{
			Email:        "ADA@school.example",
			PasswordHash: "hash",
			DisplayName:  "Impostor",
			Role:         domainauth.RoleTeacher,
		})
		assert.True(t, errors.Is(err, ErrEmailExists))
	})
}

func TestIdentityRepo_CreateValidatesInput(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, domainauth.Identity{Email: "x@y.z", Role: "principal"})
		assert.Error(t, err)

		_, err = repo.Create(ctx, domainauth.Identity{Email: "  ", Role: domainauth.RoleStudent})
		assert.Error(t, err)
	})
}

func TestIdentityRepo_List(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		createIdentity(t, repo, "charlie@school.example", domainauth.RoleStudent)
		createIdentity(t, repo, "alice@school.example", domainauth.RoleTeacher)
		createIdentity(t, repo, "bob@school.example", domainauth.RoleAdmin)

		all, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		// Ordered by email.
		assert.Equal(t, "alice@school.example", all[0].Email)
		assert.Equal(t, "bob@school.example", all[1].Email)
		assert.Equal(t, "charlie@school.example", all[2].Email)

		page, err := repo.List(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "bob@school.example", page[0].Email)
	})
}

func TestIdentityRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIdentityRepo(db)
		ctx := context.Background()

		created := createIdentity(t, repo, "ada@school.example", domainauth.RoleStudent)

		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err := repo.FindByEmailAndRole(ctx, created.Email, created.Role)
		assert.True(t, errors.Is(err, ports.ErrIdentityNotFound))

		assert.True(t, errors.Is(repo.Delete(ctx, created.ID), ErrIdentityNotFound))
	})
}
