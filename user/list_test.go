package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	for _, username := range []string{"alice", "bob"} {
		w := registerUser(t, userHandler, map[string]interface{}{
			"username": username,
			"email":    username + "@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var response struct {
		Status string `json:"status"`
		Data   []struct {
			UUID     string `json:"uuid"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	require.Len(t, response.Data, 2)

	usernames := []string{response.Data[0].Username, response.Data[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)
	for _, u := range response.Data {
		assert.NotEmpty(t, u.UUID)
		assert.Empty(t, u.Email, "listing must not expose emails")
	}
}
