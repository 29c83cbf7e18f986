package http

import (
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
)

// PublicUser is the listing shape. Emails stay off it; only the account
// owner's own endpoints return them.
type PublicUser struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

func (handler *UserHttpHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := handler.userSrvc.ListUsers(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	res := make([]PublicUser, 0, len(users))
	for _, u := range users {
		res = append(res, PublicUser{UUID: u.UUID.String(), Username: u.Username})
	}
	httpjson.WriteSuccessJson(w, res)
}
