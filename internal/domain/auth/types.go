package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"
)

// Role represents a platform authorization role.
// Keep string form for easy persistence and cookies.
// The set is closed and flat: no role implies another.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role, in no particular order of privilege.
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleAdmin}
}

// ParseRole converts a string into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("invalid role: %q (valid options: student, teacher, admin)", s)
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// Identity represents a stored user account with one fixed role.
// Records are created by an out-of-band provisioning step; the auth
// core only ever reads them.
type Identity struct {
	ID           string
	Email        string // unique, matched case-insensitively
	PasswordHash string // bcrypt, opaque to everything but the verifier
	DisplayName  string
	Role         Role
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session token (random URL-safe string). Role and
// DisplayName are copied from the Identity at login time and never
// re-derived for the lifetime of the session.
type Session struct {
	ID          string    `json:"id"`
	IdentityID  string    `json:"identity_id"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

// AccessDecision is the transient result of an access check. When
// Allowed is false, RedirectTarget names where the caller should send
// the client and Reason carries the user-facing message.
type AccessDecision struct {
	Allowed        bool
	RedirectTarget string
	Reason         string
}
