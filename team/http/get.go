package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
)

func (handler *TeamHttpHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	found, err := handler.teamSrvc.GetBySlug(r.Context(), slug)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeam(found))
}
