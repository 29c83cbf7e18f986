package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgTeamRepo struct {
	pool *pgxpool.Pool
}

func NewPgTeamRepo(pool *pgxpool.Pool) TeamRepo {
	return &pgTeamRepo{pool: pool}
}

const teamColumns = `uuid, slug, creator_uuid, created_at`

func (r *pgTeamRepo) Insert(ctx context.Context, row TeamRow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO teams (`+teamColumns+`)
		VALUES ($1, $2, $3, $4)
	`, row.UUID, row.Slug, row.CreatorUUID, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	for _, m := range row.MemberUUIDs {
		if err := r.AddMember(ctx, row.UUID, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *pgTeamRepo) GetBySlug(ctx context.Context, slug string) (*TeamRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+teamColumns+` FROM teams WHERE slug = $1
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("query team by slug: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrTeamNotFound()
	}
	row, err := scanTeam(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.loadMembers(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *pgTeamRepo) AddMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO team_members (team_uuid, member_uuid)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, teamUUID, memberUUID)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (r *pgTeamRepo) RemoveMember(ctx context.Context, teamUUID uuid.UUID, memberUUID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM team_members WHERE team_uuid = $1 AND member_uuid = $2
	`, teamUUID, memberUUID)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

func (r *pgTeamRepo) TeamsWithMember(ctx context.Context, memberUUID uuid.UUID) ([]TeamRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.uuid, t.slug, t.creator_uuid, t.created_at
		FROM teams t
		JOIN team_members tm ON tm.team_uuid = t.uuid
		WHERE tm.member_uuid = $1
		ORDER BY t.created_at
	`, memberUUID)
	if err != nil {
		return nil, fmt.Errorf("query teams with member: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *pgTeamRepo) TeamsCreatedBy(ctx context.Context, creatorUUID uuid.UUID) ([]TeamRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+teamColumns+` FROM teams
		WHERE creator_uuid = $1
		ORDER BY created_at
	`, creatorUUID)
	if err != nil {
		return nil, fmt.Errorf("query teams created by: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *pgTeamRepo) collect(ctx context.Context, rows pgx.Rows) ([]TeamRow, error) {
	defer rows.Close()
	teams := []TeamRow{}
	for rows.Next() {
		row, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team rows: %w", err)
	}
	rows.Close()

	for i := range teams {
		if err := r.loadMembers(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *pgTeamRepo) loadMembers(ctx context.Context, row *TeamRow) error {
	rows, err := r.pool.Query(ctx, `
		SELECT member_uuid FROM team_members WHERE team_uuid = $1
	`, row.UUID)
	if err != nil {
		return fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	row.MemberUUIDs = []uuid.UUID{}
	for rows.Next() {
		var m uuid.UUID
		if err := rows.Scan(&m); err != nil {
			return fmt.Errorf("scan team member: %w", err)
		}
		row.MemberUUIDs = append(row.MemberUUIDs, m)
	}
	return rows.Err()
}

func scanTeam(rows pgx.Rows) (*TeamRow, error) {
	row := &TeamRow{}
	err := rows.Scan(&row.UUID, &row.Slug, &row.CreatorUUID, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan team row: %w", err)
	}
	return row, nil
}
