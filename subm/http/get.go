package http

import (
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
)

func (handler *SubmHttpHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	if _, ok := subjectUUID(r); !ok {
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

	httpjson.WriteSuccessJson(w, mapSubm(found))
}

func (handler *SubmHttpHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	author, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	subms, err := handler.submSrvc.ListForAuthor(r.Context(), author)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := make([]Submission, 0, len(subms))
	for i := range subms {
		response = append(response, mapSubm(&subms[i]))
	}
	httpjson.WriteSuccessJson(w, response)
}
