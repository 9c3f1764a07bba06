package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"student", RoleStudent, false},
		{"teacher", RoleTeacher, false},
		{"admin", RoleAdmin, false},
		{"  Admin  ", RoleAdmin, false},
		{"TEACHER", RoleTeacher, false},
		{"", "", true},
		{"principal", "", true},
		{"superadmin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, role.Valid(), "role %s", role)
	}
	assert.False(t, Role("principal").Valid())
	assert.False(t, Role("").Valid())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	live := Session{ExpiresAt: now.Add(time.Minute)}
	dead := Session{ExpiresAt: now.Add(-time.Minute)}

	assert.False(t, live.Expired(now))
	assert.True(t, dead.Expired(now))
	// Boundary: a session is live at its exact expiry instant.
	assert.False(t, Session{ExpiresAt: now}.Expired(now))
}
