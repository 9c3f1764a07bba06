package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	mocks "github.com/campusgate/campusgate/internal/mocks/auth"
	"github.com/campusgate/campusgate/internal/service"
)

// testEnv bundles a router with the stores behind it so tests can seed
// identities and inspect sessions directly.
type testEnv struct {
	router   http.Handler
	creds    *mocks.MemoryCredentialStore
	sessions *mocks.MemorySessionStore
	svc      *service.AuthService
}

type staticLister struct {
	identities []domainauth.Identity
	err        error
}

func (l *staticLister) List(context.Context, int, int) ([]domainauth.Identity, error) {
	return l.identities, l.err
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	creds := mocks.NewMemoryCredentialStore()
	sessions := mocks.NewMemorySessionStore()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Credentials: creds,
		Sessions:    sessions,
		Verifier:    &mocks.StaticVerifier{},
		SessionTTL:  time.Hour,
	})

	router := NewRouter(RouterServices{
		Auth:       svc,
		Guard:      service.NewAccessGuard("/auth/login"),
		Identities: &staticLister{},
	})

	return &testEnv{router: router, creds: creds, sessions: sessions, svc: svc}
}

func (e *testEnv) seed(t *testing.T, email, password string, role domainauth.Role) domainauth.Identity {
	t.Helper()
	ident := domainauth.Identity{
		ID:           "id-" + string(role) + "-" + email,
		Email:        email,
		PasswordHash: password, // StaticVerifier compares hash to plaintext
		DisplayName:  strings.Split(email, "@")[0],
		Role:         role,
	}
	e.creds.Add(ident)
	return ident
}

// login performs a form login and returns the session cookie.
func (e *testEnv) login(t *testing.T, email, password string, role domainauth.Role) *http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	form.Set("role", string(role))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "login should succeed: %s", rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set on login")
	return nil
}

func (e *testEnv) get(path string, cookie *http.Cookie, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
