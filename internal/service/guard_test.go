package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

func sessionWithRole(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "tok-1",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAccessGuard_NilSessionRedirectsToLogin(t *testing.T) {
	guard := NewAccessGuard("/auth/login")

	decision := guard.Check(nil, domainauth.RoleStudent)

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/auth/login", decision.RedirectTarget)
	assert.Equal(t, MsgLoginRequired, decision.Reason)
}

func TestAccessGuard_DefaultLoginPath(t *testing.T) {
	guard := NewAccessGuard("")
	decision := guard.Check(nil)
	assert.Equal(t, "/auth/login", decision.RedirectTarget)
}

func TestAccessGuard_RoleMembership(t *testing.T) {
	guard := NewAccessGuard("/auth/login")

	tests := []struct {
		name    string
		role    domainauth.Role
		allowed []domainauth.Role
		want    bool
	}{
		{"student in student area", domainauth.RoleStudent, []domainauth.Role{domainauth.RoleStudent}, true},
		{"teacher in teacher area", domainauth.RoleTeacher, []domainauth.Role{domainauth.RoleTeacher}, true},
		{"student in teacher area", domainauth.RoleStudent, []domainauth.Role{domainauth.RoleTeacher}, false},
		// Roles are flat: admin carries no teacher privileges.
		{"admin in teacher area", domainauth.RoleAdmin, []domainauth.Role{domainauth.RoleTeacher}, false},
		{"teacher in admin area", domainauth.RoleTeacher, []domainauth.Role{domainauth.RoleAdmin}, false},
		{"admin in admin area", domainauth.RoleAdmin, []domainauth.Role{domainauth.RoleAdmin}, true},
		{"teacher in shared area", domainauth.RoleTeacher, []domainauth.Role{domainauth.RoleTeacher, domainauth.RoleAdmin}, true},
		{"student in shared area", domainauth.RoleStudent, []domainauth.Role{domainauth.RoleTeacher, domainauth.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Check(sessionWithRole(tt.role), tt.allowed...)
			assert.Equal(t, tt.want, decision.Allowed)
			if !tt.want {
				assert.Equal(t, MsgAccessDenied, decision.Reason)
				assert.Equal(t, "/auth/login", decision.RedirectTarget)
			} else {
				assert.Empty(t, decision.Reason)
			}
		})
	}
}

func TestAccessGuard_EmptyAllowedSetMeansAnyAuthenticated(t *testing.T) {
	guard := NewAccessGuard("/auth/login")

	for _, role := range domainauth.Roles() {
		decision := guard.Check(sessionWithRole(role))
		assert.True(t, decision.Allowed, "role %s", role)
	}
}
