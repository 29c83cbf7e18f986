// Package cohort computes the social neighbourhood of a user: the peers on
// their teams, the managers who created those teams, and the subset of both
// allowed to see the user's work on a given exercise.
package cohort

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/team"
	"github.com/praksis-io/backend/user"
)

type TeamDirectory interface {
	TeamsWithMember(ctx context.Context, id uuid.UUID) ([]team.Team, error)
}

type UserDirectory interface {
	GetByUUID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type SubmissionLookup interface {
	HasSubmission(ctx context.Context, author uuid.UUID, language, slug string) (bool, error)
}

type Deps struct {
	Teams TeamDirectory
	Users UserDirectory
	Subms SubmissionLookup
}

// Cohort is a view over the subject's teams. It holds no state of its own;
// every accessor reads the directories afresh so results always reflect the
// current rosters.
type Cohort struct {
	subject uuid.UUID
	deps    Deps
}

func For(subject uuid.UUID, deps Deps) *Cohort {
	return &Cohort{subject: subject, deps: deps}
}

// Members returns the other members across every team the subject belongs
// to, deduplicated and sorted by username. The subject is never included.
func (c *Cohort) Members(ctx context.Context) ([]user.User, error) {
	teams, err := c.deps.Teams.TeamsWithMember(ctx, c.subject)
	if err != nil {
		return nil, err
	}
	ids := map[uuid.UUID]bool{}
	for _, t := range teams {
		for _, m := range t.MemberUUIDs {
			if m != c.subject {
				ids[m] = true
			}
		}
	}
	return c.resolve(ctx, ids)
}

// Managers returns the creators of every team the subject belongs to,
// deduplicated and sorted by username. The subject is excluded even when
// the subject created one of its own teams.
func (c *Cohort) Managers(ctx context.Context) ([]user.User, error) {
	teams, err := c.deps.Teams.TeamsWithMember(ctx, c.subject)
	if err != nil {
		return nil, err
	}
	ids := map[uuid.UUID]bool{}
	for _, t := range teams {
		if t.CreatorUUID != c.subject {
			ids[t.CreatorUUID] = true
		}
	}
	return c.resolve(ctx, ids)
}

// Users returns the union of Members and Managers.
func (c *Cohort) Users(ctx context.Context) ([]user.User, error) {
	members, err := c.Members(ctx)
	if err != nil {
		return nil, err
	}
	managers, err := c.Managers(ctx)
	if err != nil {
		return nil, err
	}
	ids := map[uuid.UUID]bool{}
	union := []user.User{}
	for _, u := range append(members, managers...) {
		if !ids[u.UUID] {
			ids[u.UUID] = true
			union = append(union, u)
		}
	}
	sortByUsername(union)
	return union, nil
}

// Sees returns the cohort users allowed to see the subject's work on ex.
// Managers are always included. Peers are included only when they have
// completed the exercise themselves, either through a stored submission or
// through the legacy completed record.
func (c *Cohort) Sees(ctx context.Context, ex curriculum.Exercise) ([]user.User, error) {
	managers, err := c.Managers(ctx)
	if err != nil {
		return nil, err
	}
	members, err := c.Members(ctx)
	if err != nil {
		return nil, err
	}

	ids := map[uuid.UUID]bool{}
	visible := []user.User{}
	for _, u := range managers {
		ids[u.UUID] = true
		visible = append(visible, u)
	}
	for _, u := range members {
		if ids[u.UUID] {
			continue
		}
		completed, err := c.hasCompleted(ctx, u, ex)
		if err != nil {
			return nil, err
		}
		if completed {
			ids[u.UUID] = true
			visible = append(visible, u)
		}
	}
	sortByUsername(visible)
	return visible, nil
}

func (c *Cohort) hasCompleted(ctx context.Context, u user.User, ex curriculum.Exercise) (bool, error) {
	if u.HasCompletedLegacy(ex.Language, ex.Slug) {
		return true, nil
	}
	return c.deps.Subms.HasSubmission(ctx, u.UUID, ex.Language, ex.Slug)
}

func (c *Cohort) resolve(ctx context.Context, ids map[uuid.UUID]bool) ([]user.User, error) {
	users := make([]user.User, 0, len(ids))
	for id := range ids {
		u, err := c.deps.Users.GetByUUID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	sortByUsername(users)
	return users, nil
}

func sortByUsername(users []user.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
}
