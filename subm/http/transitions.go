package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
)

func (handler *SubmHttpHandler) Hibernate(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, handler.submSrvc.Hibernate)
}

func (handler *SubmHttpHandler) Complete(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, handler.submSrvc.Complete)
}

// transition applies a state change to one of the caller's own submissions.
func (handler *SubmHttpHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID) error,
) {
	author, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := submUUIDParam(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	found, err := handler.submSrvc.GetSubm(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	if found.AuthorUUID != author {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if err := apply(r.Context(), id); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	updated, err := handler.submSrvc.GetSubm(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapSubm(updated))
}

func (handler *SubmHttpHandler) Mute(w http.ResponseWriter, r *http.Request) {
	handler.muteChange(w, r, handler.submSrvc.Mute)
}

func (handler *SubmHttpHandler) Unmute(w http.ResponseWriter, r *http.Request) {
	handler.muteChange(w, r, handler.submSrvc.Unmute)
}

// muteChange toggles the caller's entry on a submission's mute list. Any
// authenticated user may mute a submission for themselves.
func (handler *SubmHttpHandler) muteChange(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID, by uuid.UUID) error,
) {
	viewer, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := submUUIDParam(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), id, viewer); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct{}{})
}
