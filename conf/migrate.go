package conf

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// GetPgUrlFromEnv builds a pgx migration URL from the same POSTGRES_* env
// vars as GetPgConnStrFromEnv.
func GetPgUrlFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	pw := os.Getenv("POSTGRES_PW")
	user := os.Getenv("POSTGRES_USER")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		user, pw, host, port, db, ssl)
}

// MigrateUp applies all pending migrations from dir. A database already at
// the latest version is not an error.
func MigrateUp(dir string) error {
	m, err := migrate.New("file://"+dir, GetPgUrlFromEnv())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
