package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/praksis-io/backend/cohort"
	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/user"
	"github.com/praksis-io/backend/user/auth"
)

type CohortHttpHandler struct {
	deps   cohort.Deps
	JwtKey []byte
}

func NewCohortHttpHandler(deps cohort.Deps, jwtKey []byte) *CohortHttpHandler {
	return &CohortHttpHandler{
		deps:   deps,
		JwtKey: jwtKey,
	}
}

func (handler *CohortHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/cohort", handler.GetCohort)
	r.Get("/cohort/sees", handler.GetSees)
}

type CohortUser struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

func mapUsers(users []user.User) []CohortUser {
	res := make([]CohortUser, 0, len(users))
	for _, u := range users {
		res = append(res, CohortUser{UUID: u.UUID.String(), Username: u.Username})
	}
	return res
}

func (handler *CohortHttpHandler) subject(r *http.Request) (uuid.UUID, bool) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (handler *CohortHttpHandler) GetCohort(w http.ResponseWriter, r *http.Request) {
	subject, ok := handler.subject(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	c := cohort.For(subject, handler.deps)
	ctx := r.Context()

	members, err := c.Members(ctx)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	managers, err := c.Managers(ctx)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	users, err := c.Users(ctx)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type cohortResponse struct {
		Members  []CohortUser `json:"members"`
		Managers []CohortUser `json:"managers"`
		Users    []CohortUser `json:"users"`
	}
	httpjson.WriteSuccessJson(w, cohortResponse{
		Members:  mapUsers(members),
		Managers: mapUsers(managers),
		Users:    mapUsers(users),
	})
}

func (handler *CohortHttpHandler) GetSees(w http.ResponseWriter, r *http.Request) {
	subject, ok := handler.subject(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	language := r.URL.Query().Get("language")
	slug := r.URL.Query().Get("slug")
	if language == "" || slug == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sees, err := cohort.For(subject, handler.deps).Sees(r.Context(),
		curriculum.Exercise{Language: language, Slug: slug})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type seesResponse struct {
		Sees []CohortUser `json:"sees"`
	}
	httpjson.WriteSuccessJson(w, seesResponse{Sees: mapUsers(sees)})
}
