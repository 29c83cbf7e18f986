package team

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemTeamRepo struct {
	mu    sync.Mutex
	teams map[uuid.UUID]TeamRow
	order []uuid.UUID
}

func NewInMemTeamRepo() TeamRepo {
	return &inMemTeamRepo{teams: map[uuid.UUID]TeamRow{}}
}

func (r *inMemTeamRepo) Insert(ctx context.Context, row TeamRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[row.UUID] = cloneTeamRow(row)
	r.order = append(r.order, row.UUID)
	return nil
}

func (r *inMemTeamRepo) GetBySlug(ctx context.Context, slug string) (*TeamRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		row := r.teams[id]
		if row.Slug == slug {
			clone := cloneTeamRow(row)
			return &clone, nil
		}
	}
	return nil, ErrTeamNotFound()
}

func (r *inMemTeamRepo) AddMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.teams[teamUUID]
	if !ok {
		return ErrTeamNotFound()
	}
	for _, m := range row.MemberUUIDs {
		if m == memberUUID {
			return nil
		}
	}
	row.MemberUUIDs = append(row.MemberUUIDs, memberUUID)
	r.teams[teamUUID] = row
	return nil
}

func (r *inMemTeamRepo) RemoveMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.teams[teamUUID]
	if !ok {
		return ErrTeamNotFound()
	}
	kept := row.MemberUUIDs[:0]
	for _, m := range row.MemberUUIDs {
		if m != memberUUID {
			kept = append(kept, m)
		}
	}
	row.MemberUUIDs = kept
	r.teams[teamUUID] = row
	return nil
}

func (r *inMemTeamRepo) TeamsWithMember(ctx context.Context, memberUUID uuid.UUID) ([]TeamRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []TeamRow{}
	for _, id := range r.order {
		row := r.teams[id]
		for _, m := range row.MemberUUIDs {
			if m == memberUUID {
				res = append(res, cloneTeamRow(row))
				break
			}
		}
	}
	return res, nil
}

func (r *inMemTeamRepo) TeamsCreatedBy(ctx context.Context, creatorUUID uuid.UUID) ([]TeamRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []TeamRow{}
	for _, id := range r.order {
		row := r.teams[id]
		if row.CreatorUUID == creatorUUID {
			res = append(res, cloneTeamRow(row))
		}
	}
	return res, nil
}

func cloneTeamRow(row TeamRow) TeamRow {
	clone := row
	clone.MemberUUIDs = append([]uuid.UUID{}, row.MemberUUIDs...)
	return clone
}
