package service

import (
	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

// Guard messages surfaced to users alongside a redirect.
const (
	MsgLoginRequired = "please log in to continue"
	MsgAccessDenied  = "access denied"
)

// AccessGuard decides whether a session may reach a protected area.
// Role checks are exact membership: no role implies another, so an
// admin is denied from a teacher-only area unless admin is listed.
type AccessGuard struct {
	loginPath string
}

// NewAccessGuard constructs an AccessGuard that redirects unauthenticated
// requests to loginPath.
func NewAccessGuard(loginPath string) *AccessGuard {
	if loginPath == "" {
		loginPath = "/auth/login"
	}
	return &AccessGuard{loginPath: loginPath}
}

// LoginPath returns the configured login redirect target.
func (g *AccessGuard) LoginPath() string { return g.loginPath }

// Check evaluates a session against the set of roles allowed for an
// area. A nil session (anonymous or expired) is sent to the login page;
// an authenticated session with the wrong role is denied in place. An
// empty allowed set means any authenticated session passes.
func (g *AccessGuard) Check(session *domainauth.Session, allowed ...domainauth.Role) domainauth.AccessDecision {
	if session == nil {
		return domainauth.AccessDecision{
			Allowed:        false,
			RedirectTarget: g.loginPath,
			Reason:         MsgLoginRequired,
		}
	}

	if len(allowed) == 0 {
		return domainauth.AccessDecision{Allowed: true}
	}

	for _, role := range allowed {
		if session.Role == role {
			return domainauth.AccessDecision{Allowed: true}
		}
	}

	return domainauth.AccessDecision{
		Allowed:        false,
		RedirectTarget: g.loginPath,
		Reason:         MsgAccessDenied,
	}
}
