package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/httpjson"
)

type CurriculumHttpHandler struct {
	curric *curriculum.Curriculum
}

func NewCurriculumHttpHandler(curric *curriculum.Curriculum) *CurriculumHttpHandler {
	return &CurriculumHttpHandler{curric: curric}
}

func (handler *CurriculumHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/tracks", handler.ListTracks)
}

type TrackResponse struct {
	Language string   `json:"language"`
	Slugs    []string `json:"slugs"`
}

// ListTracks returns the registered tracks sorted by language. The listing
// is public; clients use it to know which exercises can be submitted.
func (handler *CurriculumHttpHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks := handler.curric.Tracks()

	res := make([]TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		res = append(res, TrackResponse{Language: t.Language(), Slugs: t.Slugs()})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Language < res[j].Language
	})

	httpjson.WriteSuccessJson(w, res)
}
