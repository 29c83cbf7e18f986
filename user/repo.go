package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRow is the stored shape of a user, credentials included. The service
// converts rows to User values before handing them to callers.
type UserRow struct {
	UUID      uuid.UUID
	Firstname string
	Lastname  string
	Username  string
	Email     string
	BcryptPwd string
	Completed map[string][]string
	WorkingOn map[string]string
	CreatedAt time.Time
}

type UserRepo interface {
	Insert(ctx context.Context, row UserRow) error
	SelectAll(ctx context.Context) ([]UserRow, error)

	// GetByUsername and GetByUUID return ErrUserNotFound when no row matches.
	GetByUsername(ctx context.Context, username string) (UserRow, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (UserRow, error)

	SetWorkingOn(ctx context.Context, id uuid.UUID, language, slug string) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed map[string][]string) error
}
