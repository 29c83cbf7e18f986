package team

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/praksis-io/backend/srvcerror"
)

type TeamSrvc struct {
	logger *slog.Logger
	repo   TeamRepo
}

func NewTeamService(repo TeamRepo) *TeamSrvc {
	return &TeamSrvc{
		logger: slog.Default().With("module", "team"),
		repo:   repo,
	}
}

func (s *TeamSrvc) CreateTeam(ctx context.Context, p CreateTeamParams) (*Team, error) {
	if len(p.Slug) < 2 || len(p.Slug) > 64 {
		return nil, newErrTeamSlugInvalid()
	}

	_, err := s.repo.GetBySlug(ctx, p.Slug)
	if err == nil {
		return nil, newErrTeamSlugExists()
	}
	if !srvcerror.IsCode(err, ErrCodeTeamNotFound) {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := TeamRow{
		UUID:        uuid.New(),
		Slug:        p.Slug,
		CreatorUUID: p.CreatorUUID,
		MemberUUIDs: dedupUUIDs(p.MemberUUIDs),
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	s.logger.Info("team created", "slug", p.Slug, "creator", p.CreatorUUID)
	team := rowToTeam(row)
	return &team, nil
}

func (s *TeamSrvc) GetBySlug(ctx context.Context, slug string) (*Team, error) {
	row, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	team := rowToTeam(*row)
	return &team, nil
}

func (s *TeamSrvc) AddMember(ctx context.Context, slug string, memberUUID uuid.UUID) (*Team, error) {
	row, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	for _, m := range row.MemberUUIDs {
		if m == memberUUID {
			return nil, newErrAlreadyMember(slug)
		}
	}
	if err := s.repo.AddMember(ctx, row.UUID, memberUUID); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	s.logger.Info("team member added", "slug", slug, "member", memberUUID)
	return s.GetBySlug(ctx, slug)
}

func (s *TeamSrvc) RemoveMember(ctx context.Context, slug string, memberUUID uuid.UUID) (*Team, error) {
	row, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveMember(ctx, row.UUID, memberUUID); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	s.logger.Info("team member removed", "slug", slug, "member", memberUUID)
	return s.GetBySlug(ctx, slug)
}

// TeamsWithMember returns the teams where id is on the roster.
func (s *TeamSrvc) TeamsWithMember(ctx context.Context, id uuid.UUID) ([]Team, error) {
	rows, err := s.repo.TeamsWithMember(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return rowsToTeams(rows), nil
}

// TeamsCreatedBy returns the teams that id manages.
func (s *TeamSrvc) TeamsCreatedBy(ctx context.Context, id uuid.UUID) ([]Team, error) {
	rows, err := s.repo.TeamsCreatedBy(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return rowsToTeams(rows), nil
}

func dedupUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	res := []uuid.UUID{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			res = append(res, id)
		}
	}
	return res
}

func rowToTeam(row TeamRow) Team {
	return Team{
		UUID:        row.UUID,
		Slug:        row.Slug,
		CreatorUUID: row.CreatorUUID,
		MemberUUIDs: append([]uuid.UUID{}, row.MemberUUIDs...),
		CreatedAt:   row.CreatedAt,
	}
}

func rowsToTeams(rows []TeamRow) []Team {
	teams := make([]Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, rowToTeam(row))
	}
	return teams
}
