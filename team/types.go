package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	UUID        uuid.UUID
	Slug        string
	CreatorUUID uuid.UUID
	MemberUUIDs []uuid.UUID
	CreatedAt   time.Time
}

// HasMember reports whether id belongs to the team roster. The creator
// is a manager, not a member, unless explicitly added.
func (t *Team) HasMember(id uuid.UUID) bool {
	for _, m := range t.MemberUUIDs {
		if m == id {
			return true
		}
	}
	return false
}

type CreateTeamParams struct {
	Slug        string
	CreatorUUID uuid.UUID
	MemberUUIDs []uuid.UUID
}
