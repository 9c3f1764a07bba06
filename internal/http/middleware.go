package httpx

// Package httpx wires the auth service and access guard into net/http
// handlers and middleware.

import (
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
	apperrors "github.com/campusgate/campusgate/internal/errors"
	"github.com/campusgate/campusgate/internal/service"
)

// SessionCookieName is the cookie that carries the opaque session token.
const SessionCookieName = "session_id"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AccessControl groups the pieces middleware needs to resolve and judge sessions.
type AccessControl struct {
	Svc   AuthServiceInterface
	Guard *service.AccessGuard
}

// RequireAuth returns a middleware that lets any authenticated session
// through. Anonymous requests get 401 JSON or a login redirect
// depending on the caller type.
func (ac AccessControl) RequireAuth() func(http.Handler) http.Handler {
	return ac.RequireRoles()
}

// RequireRoles returns a middleware that admits only sessions whose role
// is in the allowed set. With no roles given, any authenticated session
// passes. Denials are rendered per caller type: API requests get 401/403
// JSON, browser requests get a 303 redirect carrying the denial reason.
func (ac AccessControl) RequireRoles(allowed ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := ac.resolveSession(w, r)
			if !ok {
				return
			}

			decision := ac.Guard.Check(session, allowed...)
			if !decision.Allowed {
				writeDenial(w, r, session, decision)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns a middleware that attaches the session to the
// context when one exists but never blocks the request.
func (ac AccessControl) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessionFromRequest(r, ac.Svc)
			if err == nil && session != nil {
				r = r.WithContext(SetSessionInContext(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveSession looks up the request's session. A session store outage
// is reported as 503 immediately; a missing or expired session resolves
// to nil, which the guard turns into a denial.
func (ac AccessControl) resolveSession(w http.ResponseWriter, r *http.Request) (*domainauth.Session, bool) {
	session, err := sessionFromRequest(r, ac.Svc)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: string(apperrors.GetCode(err)),
			Err:     err,
		})
		return nil, false
	}
	return session, true
}

// sessionFromRequest reads the session cookie and resolves it through
// the auth service. No cookie means no session, not an error.
func sessionFromRequest(r *http.Request, svc AuthServiceInterface) (*domainauth.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil
	}
	return svc.GetSession(r.Context(), cookie.Value)
}

// writeDenial renders an AccessDecision that denied the request.
func writeDenial(w http.ResponseWriter, r *http.Request, session *domainauth.Session, decision domainauth.AccessDecision) {
	if isBrowserRequest(r) {
		target := denialRedirectURL(r, decision)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	code := http.StatusUnauthorized
	errCode := "authentication_required"
	if session != nil {
		code = http.StatusForbidden
		errCode = "insufficient_permissions"
	}
	WriteError(w, ErrorParams{
		Code:    code,
		ErrCode: errCode,
		Err:     decisionError{reason: decision.Reason},
	})
}

type decisionError struct{ reason string }

func (e decisionError) Error() string { return e.reason }

// denialRedirectURL builds the redirect for a denied browser request,
// carrying the denial reason and the originally requested path.
func denialRedirectURL(r *http.Request, decision domainauth.AccessDecision) string {
	target := decision.RedirectTarget
	if target == "" {
		target = "/"
	}
	u := url.URL{Path: target}
	q := url.Values{}
	if decision.Reason != "" {
		q.Set("notice", decision.Reason)
	}
	if redirect := safeRedirectPath(r.URL.RequestURI()); redirect != "/" {
		q.Set("redirect_uri", redirect)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// isBrowserRequest reports whether a request should get redirects and
// HTML rather than JSON. API routes are never browser requests; for the
// rest, the Accept header decides.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
