package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praksis-io/backend/curriculum"
)

func TestListTracksHttp(t *testing.T) {
	curric := curriculum.New()
	curric.Add(curriculum.NewStaticTrack("ruby", []string{"one", "two"}))
	curric.Add(curriculum.NewStaticTrack("python", []string{"one"}))

	router := chi.NewRouter()
	NewCurriculumHttpHandler(curric).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tracks", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status string          `json:"status"`
		Data   []TrackResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "python", response.Data[0].Language)
	assert.Equal(t, []string{"one"}, response.Data[0].Slugs)
	assert.Equal(t, "ruby", response.Data[1].Language)
	assert.Equal(t, []string{"one", "two"}, response.Data[1].Slugs)
}
