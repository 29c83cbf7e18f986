package http

import (
	"encoding/json"
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/user"
)

func (handler *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username  string  `json:"username"`
		Email     string  `json:"email"`
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Password  string  `json:"password"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := handler.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username:  request.Username,
		Email:     request.Email,
		Firstname: request.Firstname,
		Lastname:  request.Lastname,
		Password:  request.Password,
	})

	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := User{
		UUID:      created.UUID.String(),
		Username:  created.Username,
		Email:     created.Email,
		Firstname: created.Firstname,
		Lastname:  created.Lastname,
	}

	httpjson.WriteSuccessJson(w, response)
}
