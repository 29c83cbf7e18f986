package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/praksis-io/backend/user"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (handler *UserHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/users", handler.Register)
	r.Get("/users", handler.ListUsers)
	r.Post("/login", handler.Login)
	r.Get("/whoami", handler.Whoami)
}
