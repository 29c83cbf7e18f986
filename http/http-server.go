package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/praksis-io/backend/cohort"
	cohorthttp "github.com/praksis-io/backend/cohort/http"
	"github.com/praksis-io/backend/curriculum"
	curriculumhttp "github.com/praksis-io/backend/curriculum/http"
	applogger "github.com/praksis-io/backend/logger"
	"github.com/praksis-io/backend/subm"
	submhttp "github.com/praksis-io/backend/subm/http"
	"github.com/praksis-io/backend/team"
	teamhttp "github.com/praksis-io/backend/team/http"
	"github.com/praksis-io/backend/user"
	"github.com/praksis-io/backend/user/auth"
	userhttp "github.com/praksis-io/backend/user/http"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	submSrvc *subm.SubmSrvc,
	teamSrvc *team.TeamSrvc,
	curric *curriculum.Curriculum,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("praksis", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger))
	router.Use(applogger.Middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://praksis.io", "https://www.praksis.io"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	userhttp.NewUserHttpHandler(userSrvc, jwtKey).RegisterRoutes(router)
	curriculumhttp.NewCurriculumHttpHandler(curric).RegisterRoutes(router)
	submhttp.NewSubmHttpHandler(submSrvc, jwtKey).RegisterRoutes(router)
	teamhttp.NewTeamHttpHandler(teamSrvc, jwtKey).RegisterRoutes(router)
	cohorthttp.NewCohortHttpHandler(cohort.Deps{
		Teams: teamSrvc,
		Users: userSrvc,
		Subms: submSrvc,
	}, jwtKey).RegisterRoutes(router)

	return &HttpServer{router: router}
}

func (httpserver *HttpServer) Router() *chi.Mux {
	return httpserver.router
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}
