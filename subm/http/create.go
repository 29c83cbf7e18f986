package http

import (
	"encoding/json"
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/subm"
)

func (handler *SubmHttpHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	type createSubmissionRequest struct {
		Path string `json:"path"`
		Code string `json:"code"`
	}

	author, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := handler.submSrvc.CreateAttempt(r.Context(), subm.CreateAttemptParams{
		Author: author,
		Code:   request.Code,
		Path:   request.Path,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type createSubmissionResponse struct {
		Submission Submission `json:"submission"`
		Duplicate  bool       `json:"duplicate"`
	}
	httpjson.WriteSuccessJson(w, createSubmissionResponse{
		Submission: mapSubm(result.Submission),
		Duplicate:  result.Duplicate,
	})
}
