package httpx

import (
	"fmt"
	"html"
	"net/http"

	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

// PortalHandlers serves the minimal HTML pages behind the role-gated
// areas. The pages exist to exercise the access-control flow; anything
// richer belongs to a frontend.
type PortalHandlers struct {
	LoginPath string
}

// Index is the landing page. It greets an authenticated visitor by name
// and offers the login form to everyone else.
func (h *PortalHandlers) Index(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeHTML(w, http.StatusOK, `<p>Welcome to CampusGate. <a href="`+html.EscapeString(h.LoginPath)+`">Log in</a></p>`)
		return
	}
	writeHTML(w, http.StatusOK, fmt.Sprintf(
		`<p>Hello, %s (%s). <a href="/portal/%s">Your portal</a></p>`,
		html.EscapeString(session.DisplayName),
		html.EscapeString(string(session.Role)),
		html.EscapeString(string(session.Role)),
	))
}

// LoginForm renders the credential form. A notice query parameter set
// by a denial redirect is shown above the form.
func (h *PortalHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	notice := r.URL.Query().Get("notice")
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	body := ""
	if notice != "" {
		body += `<p class="notice">` + html.EscapeString(notice) + `</p>`
	}
	body += `<form method="post" action="/auth/login">` +
		`<input type="hidden" name="redirect_uri" value="` + html.EscapeString(redirectURI) + `">` +
		`<input name="email" type="email" placeholder="Email">` +
		`<input name="password" type="password" placeholder="Password">` +
		roleSelect() +
		`<button type="submit">Log in</button>` +
		`</form>`
	writeHTML(w, http.StatusOK, body)
}

func roleSelect() string {
	s := `<select name="role">`
	for _, role := range domainauth.Roles() {
		v := html.EscapeString(string(role))
		s += `<option value="` + v + `">` + v + `</option>`
	}
	return s + `</select>`
}

// StudentHome is the student-only area.
func (h *PortalHandlers) StudentHome(w http.ResponseWriter, r *http.Request) {
	h.portalPage(w, r, "Student portal")
}

// TeacherHome is the teacher-only area.
func (h *PortalHandlers) TeacherHome(w http.ResponseWriter, r *http.Request) {
	h.portalPage(w, r, "Teacher portal")
}

// AdminHome is the admin-only area.
func (h *PortalHandlers) AdminHome(w http.ResponseWriter, r *http.Request) {
	h.portalPage(w, r, "Admin portal")
}

// StaffHome is shared by teachers and admins.
func (h *PortalHandlers) StaffHome(w http.ResponseWriter, r *http.Request) {
	h.portalPage(w, r, "Staff room")
}

func (h *PortalHandlers) portalPage(w http.ResponseWriter, r *http.Request, title string) {
	session, _ := GetSessionFromContext(r.Context())
	name := ""
	if session != nil {
		name = session.DisplayName
	}
	writeHTML(w, http.StatusOK, fmt.Sprintf(
		`<h1>%s</h1><p>Signed in as %s</p>`,
		html.EscapeString(title), html.EscapeString(name)))
}

func writeHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte("<!DOCTYPE html><html><body>" + body + "</body></html>"))
}
