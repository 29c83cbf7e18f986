package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praksis-io/backend/user/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}

	w := registerUser(t, userHandler, userData)
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	loginData := map[string]interface{}{
		"username": "testuser",
		"password": "password123",
	}

	w = loginUser(t, userHandler, loginData)
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.Equal(t, "success", responseWrapper.Status)
	require.NotEmpty(t, responseWrapper.Data, "Expected a JWT token in response")

	claims, err := auth.ValidateJWT(responseWrapper.Data, []byte(testJwtKey))
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.NotEmpty(t, claims.UUID)
}

func TestLoginHttpWrongPassword(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	w := registerUser(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = loginUser(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"password": "wrongpassword",
	})
	assertErrorInHttpResponse(t, w, "invalid_credentials")
}

func TestLoginHttpUnknownUser(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	w := loginUser(t, userHandler, map[string]interface{}{
		"username": "ghost",
		"password": "password123",
	})
	assertErrorInHttpResponse(t, w, "invalid_credentials")
}

func TestWhoamiHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	w := registerUser(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = loginUser(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResponse struct {
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResponse))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+loginResponse.Data)
	w = httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var whoamiResponse struct {
		Data struct {
			LoggedIn bool    `json:"logged_in"`
			Username *string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &whoamiResponse))
	assert.True(t, whoamiResponse.Data.LoggedIn)
	require.NotNil(t, whoamiResponse.Data.Username)
	assert.Equal(t, "testuser", *whoamiResponse.Data.Username)
}

func TestWhoamiHttpAnonymous(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var whoamiResponse struct {
		Data struct {
			LoggedIn bool `json:"logged_in"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &whoamiResponse))
	assert.False(t, whoamiResponse.Data.LoggedIn)
}
