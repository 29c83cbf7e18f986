package team_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praksis-io/backend/team"
	teamhttp "github.com/praksis-io/backend/team/http"
	"github.com/praksis-io/backend/user/auth"
)

const testJwtKey = "test"

func setupTeamHttpHandler(t *testing.T) (http.Handler, *team.TeamSrvc) {
	t.Helper()
	teamSrvc := team.NewTeamService(team.NewInMemTeamRepo())
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware([]byte(testJwtKey)))
	teamhttp.NewTeamHttpHandler(teamSrvc, []byte(testJwtKey)).RegisterRoutes(router)
	return router, teamSrvc
}

func bearerToken(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateJWT("alice", "alice@example.com", id, nil, nil, []byte(testJwtKey))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestListTeamsHttp(t *testing.T) {
	handler, teamSrvc := setupTeamHttpHandler(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		Slug:        "rubyists",
		CreatorUUID: alice,
		MemberUUIDs: []uuid.UUID{bob},
	})
	require.NoError(t, err)
	_, err = teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		Slug:        "pythonists",
		CreatorUUID: bob,
		MemberUUIDs: []uuid.UUID{alice},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set("Authorization", bearerToken(t, alice))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var response struct {
		Status string `json:"status"`
		Data   struct {
			Created []struct {
				Slug string `json:"slug"`
			} `json:"created"`
			MemberOf []struct {
				Slug string `json:"slug"`
			} `json:"member_of"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	require.Len(t, response.Data.Created, 1)
	assert.Equal(t, "rubyists", response.Data.Created[0].Slug)
	require.Len(t, response.Data.MemberOf, 1)
	assert.Equal(t, "pythonists", response.Data.MemberOf[0].Slug)
}

func TestListTeamsRequiresAuth(t *testing.T) {
	handler, _ := setupTeamHttpHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
