package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

// ErrIdentityNotFound is returned by CredentialStore lookups when no
// identity matches. Callers must not surface it verbatim to end users;
// the service folds it into a uniform invalid-credentials result.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrSessionNotFound is returned by SessionStore.Get when no session
// exists for the given ID. Any other error means the store itself
// failed and must be surfaced, not treated as a missing session.
var ErrSessionNotFound = errors.New("session not found")

// CredentialStore looks up stored identities. The role is part of the
// lookup key: a matching email with a different role is an absence, not
// a distinguishable failure.
type CredentialStore interface {
	FindByEmailAndRole(ctx context.Context, email string, role domainauth.Role) (domainauth.Identity, error)
}

// PasswordVerifier compares a plaintext credential against a stored hash.
// A mismatch is a legitimate false result, never an error. Implementations
// must use a constant-time comparison and never log either input.
type PasswordVerifier interface {
	Verify(hash, plaintext string) bool
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
