package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/praksis-io/backend/team"
	"github.com/praksis-io/backend/user/auth"
)

type TeamHttpHandler struct {
	teamSrvc *team.TeamSrvc
	JwtKey   []byte
}

func NewTeamHttpHandler(teamSrvc *team.TeamSrvc, jwtKey []byte) *TeamHttpHandler {
	return &TeamHttpHandler{
		teamSrvc: teamSrvc,
		JwtKey:   jwtKey,
	}
}

func (handler *TeamHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/teams", handler.CreateTeam)
	r.Get("/teams", handler.ListTeams)
	r.Get("/teams/{slug}", handler.GetTeam)
	r.Post("/teams/{slug}/members", handler.AddMember)
	r.Delete("/teams/{slug}/members/{memberUuid}", handler.RemoveMember)
}

type Team struct {
	UUID        string   `json:"uuid"`
	Slug        string   `json:"slug"`
	CreatorUUID string   `json:"creator_uuid"`
	MemberUUIDs []string `json:"member_uuids"`
}

func mapTeam(t *team.Team) Team {
	members := make([]string, 0, len(t.MemberUUIDs))
	for _, m := range t.MemberUUIDs {
		members = append(members, m.String())
	}
	return Team{
		UUID:        t.UUID.String(),
		Slug:        t.Slug,
		CreatorUUID: t.CreatorUUID.String(),
		MemberUUIDs: members,
	}
}

// subjectUUID extracts the authenticated user's uuid from the JWT claims.
func subjectUUID(r *http.Request) (uuid.UUID, bool) {
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
