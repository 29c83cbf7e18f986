package http

import (
	"net/http"

	"github.com/praksis-io/backend/httpjson"
	"github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/team"
)

// ListTeams returns the authenticated user's teams, split into the ones
// they manage and the ones they belong to.
func (handler *TeamHttpHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectUUID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	ctx := r.Context()

	created, err := handler.teamSrvc.TeamsCreatedBy(ctx, subject)
	if err != nil {
		httpjson.HandleError(logger.FromContext(ctx), w, err)
		return
	}
	memberOf, err := handler.teamSrvc.TeamsWithMember(ctx, subject)
	if err != nil {
		httpjson.HandleError(logger.FromContext(ctx), w, err)
		return
	}

	type listResponse struct {
		Created  []Team `json:"created"`
		MemberOf []Team `json:"member_of"`
	}
	httpjson.WriteSuccessJson(w, listResponse{
		Created:  mapTeams(created),
		MemberOf: mapTeams(memberOf),
	})
}

func mapTeams(teams []team.Team) []Team {
	res := make([]Team, 0, len(teams))
	for i := range teams {
		res = append(res, mapTeam(&teams[i]))
	}
	return res
}
