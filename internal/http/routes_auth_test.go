package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestLoginFormRendersNotice(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/auth/login?notice=please+log+in+to+continue&redirect_uri=/portal/admin", nil, "text/html")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "please log in to continue")
	assert.Contains(t, body, `value="/portal/admin"`)
	// The role picker offers the full closed set.
	for _, role := range domainauth.Roles() {
		assert.Contains(t, body, string(role))
	}
}

func TestApiMe_ReturnsSessionView(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "grace@school.example", "pw", domainauth.RoleTeacher)
	cookie := env.login(t, "grace@school.example", "pw", domainauth.RoleTeacher)

	rec := env.get("/api/me", cookie, "application/json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"grace"`)
	assert.Contains(t, rec.Body.String(), `"role":"teacher"`)
	// Hashes never appear in API responses.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAdminIdentitiesList(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "root@school.example", "pw", domainauth.RoleAdmin)
	cookie := env.login(t, "root@school.example", "pw", domainauth.RoleAdmin)

	rec := env.get("/api/admin/identities", cookie, "application/json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "identities")
}
