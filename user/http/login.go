package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/user/auth"
)

func (handler *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	loggedIn, err := handler.userSrvc.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	token, err := auth.GenerateJWT(
		loggedIn.Username,
		loggedIn.Email, loggedIn.UUID,
		loggedIn.Firstname, loggedIn.Lastname,
		handler.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, token)
}
