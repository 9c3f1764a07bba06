// Package service contains application services that orchestrate domain
// logic across ports. Services hold no transport or storage specifics.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	apperrors "github.com/campusgate/campusgate/internal/errors"
	"github.com/campusgate/campusgate/internal/ports"
)

// User-facing messages. MsgInvalidCredentials is deliberately identical
// for unknown email, wrong password, and wrong role so a response never
// reveals which part of the credential triple failed.
const (
	MsgMissingFields      = "all fields are required"
	MsgInvalidCredentials = "invalid email, password, or role"
	MsgAuthUnavailable    = "authentication is temporarily unavailable, please try again"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Sessions    ports.SessionStore
	Verifier    ports.PasswordVerifier
	SessionTTL  time.Duration
	Logger      *slog.Logger
}

// AuthService orchestrates credential verification and session lifecycle.
type AuthService struct {
	credentials ports.CredentialStore
	sessions    ports.SessionStore
	verifier    ports.PasswordVerifier
	sessionTTL  time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// DefaultSessionTTL is used when AuthServiceOptions leaves SessionTTL unset.
const DefaultSessionTTL = 8 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		credentials: opts.Credentials,
		sessions:    opts.Sessions,
		verifier:    opts.Verifier,
		sessionTTL:  ttl,
		logger:      logger.With("component", "auth_service"),
		now:         time.Now,
	}
}

// LoginInput groups the credential triple submitted at login.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// LoginResult contains the session created by a successful login.
type LoginResult struct {
	Session domainauth.Session
}

// Login validates the credential triple and creates a session.
//
// Failures map onto three distinguishable error codes:
// missing_fields when any input is blank (checked before touching any
// store), invalid_credentials for unknown email, wrong password, or
// wrong role (always the same message), and unavailable when the
// credential store itself cannot answer.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	roleRaw := strings.TrimSpace(input.Role)
	if email == "" || input.Password == "" || roleRaw == "" {
		return nil, apperrors.MissingFields(MsgMissingFields)
	}

	role, err := domainauth.ParseRole(roleRaw)
	if err != nil {
		// An out-of-set role can never match a stored identity. Folding
		// it into the uniform message keeps responses symmetric.
		return nil, apperrors.InvalidCredentials(MsgInvalidCredentials)
	}

	identity, err := s.credentials.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, ports.ErrIdentityNotFound) {
			return nil, apperrors.InvalidCredentials(MsgInvalidCredentials)
		}
		s.logger.ErrorContext(ctx, "credential store lookup failed", "err", err)
		return nil, apperrors.Unavailable(MsgAuthUnavailable, err)
	}

	if !s.verifier.Verify(identity.PasswordHash, input.Password) {
		return nil, apperrors.InvalidCredentials(MsgInvalidCredentials)
	}

	session := domainauth.Session{
		ID:          generateSessionID(),
		IdentityID:  identity.ID,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		ExpiresAt:   s.now().Add(s.sessionTTL),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		s.logger.ErrorContext(ctx, "session save failed", "err", saveErr)
		return nil, apperrors.Unavailable(MsgAuthUnavailable, saveErr)
	}

	s.logger.InfoContext(ctx, "login succeeded",
		"identity_id", identity.ID, "role", string(identity.Role))

	return &LoginResult{Session: session}, nil
}

// GetSession resolves a session token to its live session. A missing
// or expired session yields (nil, nil): the caller sees an anonymous
// request, not a failure. Expired records found in the store are
// deleted opportunistically.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "session store lookup failed", "err", err)
		return nil, apperrors.Unavailable(MsgAuthUnavailable, err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			s.logger.WarnContext(ctx, "expired session cleanup failed", "err", deleteErr)
		}
		return nil, nil
	}

	return &session, nil
}

// Logout removes a session. Unknown or already-removed sessions are a
// success; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// generateSessionID creates a cryptographically secure random session token.
func generateSessionID() string {
	// UUIDs are URL-safe and carry 122 bits of entropy.
	return uuid.New().String()
}
