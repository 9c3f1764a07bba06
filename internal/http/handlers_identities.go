package httpx

import (
	"net/http"
	"strconv"
)

// IdentityAdminHandlers exposes read-only identity listing to admins.
type IdentityAdminHandlers struct {
	Identities IdentityLister
}

// identityView is the wire form of an identity. Password hashes never
// leave the data layer through this API.
type identityView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// List handles GET /api/admin/identities?limit=&offset=.
func (h *IdentityAdminHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	identities, err := h.Identities.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	views := make([]identityView, 0, len(identities))
	for _, ident := range identities {
		views = append(views, identityView{
			ID:          ident.ID,
			Email:       ident.Email,
			DisplayName: ident.DisplayName,
			Role:        string(ident.Role),
		})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"identities": views})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
