package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
)

func (handler *TeamHttpHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	type addMemberRequest struct {
		MemberUUID string `json:"member_uuid"`
	}

	if _, ok := subjectUUID(r); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	slug := chi.URLParam(r, "slug")

	var request addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	member, err := uuid.Parse(request.MemberUUID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := handler.teamSrvc.AddMember(r.Context(), slug, member)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeam(updated))
}

func (handler *TeamHttpHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := subjectUUID(r); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	slug := chi.URLParam(r, "slug")
	member, err := uuid.Parse(chi.URLParam(r, "memberUuid"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := handler.teamSrvc.RemoveMember(r.Context(), slug, member)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeam(updated))
}
