package http

import (
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/user/auth"
)

// Whoami returns the identity of the currently logged-in user, or a guest
// marker for anonymous requests.
func (handler *UserHttpHandler) Whoami(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	type whoamiResponse struct {
		LoggedIn bool    `json:"logged_in"`
		Username *string `json:"username,omitempty"`
		UUID     *string `json:"uuid,omitempty"`
	}

	if claims == nil {
		httpjson.WriteSuccessJson(w, whoamiResponse{LoggedIn: false})
		return
	}

	httpjson.WriteSuccessJson(w, whoamiResponse{
		LoggedIn: true,
		Username: &claims.Username,
		UUID:     &claims.UUID,
	})
}
