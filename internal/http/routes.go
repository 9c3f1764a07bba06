package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	"github.com/campusgate/campusgate/internal/service"
)

// IdentityLister lists stored identities for the admin API.
type IdentityLister interface {
	List(ctx context.Context, limit, offset int) ([]domainauth.Identity, error)
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Guard        *service.AccessGuard
	Identities   IdentityLister
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	guard := services.Guard
	if guard == nil {
		guard = service.NewAccessGuard("/auth/login")
	}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	ac := AccessControl{Svc: services.Auth, Guard: guard}
	portal := &PortalHandlers{LoginPath: guard.LoginPath()}

	registerAuthRoutes(mux, authHandlers, portal)
	registerPortalRoutes(mux, portal, ac)
	registerAPIRoutes(mux, ac, services.Identities)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.Handle("GET /{$}", ac.OptionalAuth()(http.HandlerFunc(portal.Index)))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, portal *PortalHandlers) {
	mux.HandleFunc("GET /auth/login", portal.LoginForm)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

func registerPortalRoutes(mux *http.ServeMux, h *PortalHandlers, ac AccessControl) {
	studentOnly := ac.RequireRoles(domainauth.RoleStudent)
	teacherOnly := ac.RequireRoles(domainauth.RoleTeacher)
	adminOnly := ac.RequireRoles(domainauth.RoleAdmin)
	staffOnly := ac.RequireRoles(domainauth.RoleTeacher, domainauth.RoleAdmin)

	mux.Handle("GET /portal/student", studentOnly(http.HandlerFunc(h.StudentHome)))
	mux.Handle("GET /portal/teacher", teacherOnly(http.HandlerFunc(h.TeacherHome)))
	mux.Handle("GET /portal/admin", adminOnly(http.HandlerFunc(h.AdminHome)))
	mux.Handle("GET /portal/staff", staffOnly(http.HandlerFunc(h.StaffHome)))
}

func registerAPIRoutes(mux *http.ServeMux, ac AccessControl, identities IdentityLister) {
	anyAuth := ac.RequireAuth()
	adminOnly := ac.RequireRoles(domainauth.RoleAdmin)

	mux.Handle("GET /api/me", anyAuth(http.HandlerFunc(handleMe)))
	if identities != nil {
		h := &IdentityAdminHandlers{Identities: identities}
		mux.Handle("GET /api/admin/identities", adminOnly(http.HandlerFunc(h.List)))
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMe returns the authenticated caller's session view.
func handleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		// RequireAuth guarantees a session; reaching here is a wiring bug.
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "session_missing", Err: errSessionMissing})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"id":           session.IdentityID,
		"display_name": session.DisplayName,
		"role":         session.Role,
		"expires_at":   session.ExpiresAt,
	})
}

type wiringError string

func (e wiringError) Error() string { return string(e) }

const errSessionMissing = wiringError("session missing from context")
