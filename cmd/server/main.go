package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/praksis-io/backend/conf"
	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/http"
	"github.com/praksis-io/backend/subm"
	"github.com/praksis-io/backend/team"
	"github.com/praksis-io/backend/user"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	var userRepo user.UserRepo
	var submRepo subm.SubmRepo
	var teamRepo team.TeamRepo
	if os.Getenv("POSTGRES_HOST") != "" {
		if err := conf.MigrateUp("migrate"); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		userRepo = user.NewPgUserRepo(pool)
		submRepo = subm.NewPgSubmRepo(pool)
		teamRepo = team.NewPgTeamRepo(pool)
	} else {
		slog.Warn("POSTGRES_HOST not set, using in-memory repositories")
		userRepo = user.NewInMemUserRepo()
		submRepo = subm.NewInMemSubmRepo()
		teamRepo = team.NewInMemTeamRepo()
	}

	curric := curriculum.New()
	curric.Add(curriculum.RubyTrack())
	curric.Add(curriculum.PythonTrack())
	curric.Add(curriculum.OcamlTrack())
	if dir := os.Getenv("TRACKS_DIR"); dir != "" {
		if err := loadTracksFromDir(curric, dir); err != nil {
			slog.Error("failed to load track files", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	userSrvc := user.NewUserService(userRepo)
	submSrvc := subm.NewSubmSrvc(submRepo, curric, userSrvc)
	teamSrvc := team.NewTeamService(teamRepo)

	httpServer := http.NewHttpServer(userSrvc, submSrvc, teamSrvc, curric, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
