package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/praksis-io/backend/subm"
	"github.com/praksis-io/backend/user/auth"
)

type SubmHttpHandler struct {
	submSrvc *subm.SubmSrvc
	JwtKey   []byte
}

func NewSubmHttpHandler(submSrvc *subm.SubmSrvc, jwtKey []byte) *SubmHttpHandler {
	return &SubmHttpHandler{
		submSrvc: submSrvc,
		JwtKey:   jwtKey,
	}
}

func (handler *SubmHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/submissions", handler.CreateSubmission)
	r.Get("/submissions", handler.ListSubmissions)
	r.Get("/submissions/{submUuid}", handler.GetSubmission)
	r.Post("/submissions/{submUuid}/hibernate", handler.Hibernate)
	r.Post("/submissions/{submUuid}/complete", handler.Complete)
	r.Post("/submissions/{submUuid}/mute", handler.Mute)
	r.Post("/submissions/{submUuid}/unmute", handler.Unmute)
}

type Submission struct {
	UUID      string    `json:"uuid"`
	Language  string    `json:"language"`
	Slug      string    `json:"slug"`
	Code      string    `json:"code"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

func mapSubm(s *subm.Submission) Submission {
	return Submission{
		UUID:      s.UUID.String(),
		Language:  s.Language,
		Slug:      s.Slug,
		Code:      s.Code,
		State:     string(s.State),
		CreatedAt: s.CreatedAt,
	}
}

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

func submUUIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "submUuid"))
}
