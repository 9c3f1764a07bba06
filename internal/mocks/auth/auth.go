package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"strings"
	"sync"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	"github.com/campusgate/campusgate/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore  = (*MemoryCredentialStore)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
	_ ports.PasswordVerifier = (*StaticVerifier)(nil)
)

// MemoryCredentialStore holds a fixed roster of identities keyed by
// lowercased email plus role. FindErr, when set, makes every lookup
// fail, which simulates an unreachable backing store.
type MemoryCredentialStore struct {
	mu         sync.RWMutex
	identities map[string]domainauth.Identity
	Lookups    int
	FindErr    error
}

// NewMemoryCredentialStore creates an empty in-memory credential store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{
		identities: make(map[string]domainauth.Identity),
	}
}

func credentialKey(email string, role domainauth.Role) string {
	return strings.ToLower(email) + "|" + string(role)
}

// Add registers an identity under its email and role.
func (m *MemoryCredentialStore) Add(ident domainauth.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities[credentialKey(ident.Email, ident.Role)] = ident
}

func (m *MemoryCredentialStore) FindByEmailAndRole(_ context.Context, email string, role domainauth.Role) (domainauth.Identity, error) {
	m.mu.Lock()
	m.Lookups++
	err := m.FindErr
	m.mu.Unlock()
	if err != nil {
		return domainauth.Identity{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	ident, ok := m.identities[credentialKey(email, role)]
	if !ok {
		return domainauth.Identity{}, ports.ErrIdentityNotFound
	}
	return ident, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
// SaveErr, GetErr, and DeleteErr force the corresponding operation to
// fail when set.
type MemorySessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]domainauth.Session
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are currently stored.
func (m *MemorySessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StaticVerifier treats the stored hash as the plaintext itself, so
// tests can wire identities without running bcrypt. When AlwaysFail is
// set, every verification fails.
type StaticVerifier struct {
	AlwaysFail bool
}

func (v *StaticVerifier) Verify(hash, plaintext string) bool {
	if v.AlwaysFail {
		return false
	}
	return hash == plaintext
}
