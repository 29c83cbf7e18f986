package team

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TeamRow struct {
	UUID        uuid.UUID
	Slug        string
	CreatorUUID uuid.UUID
	MemberUUIDs []uuid.UUID
	CreatedAt   time.Time
}

type TeamRepo interface {
	Insert(ctx context.Context, row TeamRow) error
	GetBySlug(ctx context.Context, slug string) (*TeamRow, error)
	AddMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error
	RemoveMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error
	TeamsWithMember(ctx context.Context, memberUUID uuid.UUID) ([]TeamRow, error)
	TeamsCreatedBy(ctx context.Context, creatorUUID uuid.UUID) ([]TeamRow, error)
}
