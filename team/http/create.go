package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/team"
)

func (handler *TeamHttpHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	type createTeamRequest struct {
		Slug        string   `json:"slug"`
		MemberUUIDs []string `json:"member_uuids"`
	}

	creator, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	members := make([]uuid.UUID, 0, len(request.MemberUUIDs))
	for _, raw := range request.MemberUUIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		members = append(members, id)
	}

	created, err := handler.teamSrvc.CreateTeam(r.Context(), team.CreateTeamParams{
		Slug:        request.Slug,
		CreatorUUID: creator,
		MemberUUIDs: members,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTeam(created))
}
