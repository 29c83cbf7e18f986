package subm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgSubmRepo struct {
	pool *pgxpool.Pool
}

func NewPgSubmRepo(pool *pgxpool.Pool) *pgSubmRepo {
	return &pgSubmRepo{pool: pool}
}

const submColumns = `uuid, author_uuid, language, slug, code, state, muted_by, created_at`

func (r *pgSubmRepo) Store(ctx context.Context, subm Submission) error {
	mutedBy, err := marshalMutedBy(subm.MutedBy)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO submissions (`+submColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		subm.UUID,
		subm.AuthorUUID,
		subm.Language,
		subm.Slug,
		subm.Code,
		string(subm.State),
		mutedBy,
		subm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *pgSubmRepo) Get(ctx context.Context, id uuid.UUID) (Submission, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+submColumns+`
		FROM submissions
		WHERE uuid = $1
	`, id)

	subm, err := scanSubm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, ErrSubmissionNotFound()
		}
		return Submission{}, err
	}
	return subm, nil
}

func (r *pgSubmRepo) LatestForKey(ctx context.Context, author uuid.UUID, language, slug string) (*Submission, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+submColumns+`
		FROM submissions
		WHERE author_uuid = $1 AND language = $2 AND slug = $3
		ORDER BY created_at DESC
		LIMIT 1
	`, author, language, slug)

	subm, err := scanSubm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &subm, nil
}

func (r *pgSubmRepo) ListForAuthor(ctx context.Context, author uuid.UUID) ([]Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+submColumns+`
		FROM submissions
		WHERE author_uuid = $1
		ORDER BY created_at ASC
	`, author)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		subm, err := scanSubm(rows)
		if err != nil {
			return nil, err
		}
		subms = append(subms, subm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}

	return subms, nil
}

// StoreSuperseding supersedes the key's current submission and inserts next
// in a single transaction. The partial unique index on current submissions
// backs the guarantee under concurrency: when a racing insert wins the index
// check first, the losing transaction retries and supersedes the winner.
func (r *pgSubmRepo) StoreSuperseding(ctx context.Context, next Submission) error {
	mutedBy, err := marshalMutedBy(next.MutedBy)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err := r.storeSupersedingTx(ctx, next, mutedBy)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && attempt < 2 { // unique_violation
			continue
		}
		return err
	}
}

func (r *pgSubmRepo) storeSupersedingTx(ctx context.Context, next Submission, mutedBy []byte) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE submissions
		SET state = $1, muted_by = '[]'
		WHERE author_uuid = $2 AND language = $3 AND slug = $4
			AND state IN ($5, $6)
	`,
		string(StateSuperseded),
		next.AuthorUUID,
		next.Language,
		next.Slug,
		string(StatePending),
		string(StateHibernating),
	)
	if err != nil {
		return fmt.Errorf("failed to supersede current submission: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO submissions (`+submColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		next.UUID,
		next.AuthorUUID,
		next.Language,
		next.Slug,
		next.Code,
		string(next.State),
		mutedBy,
		next.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

func (r *pgSubmRepo) SetState(ctx context.Context, id uuid.UUID, state State) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submissions SET state = $1 WHERE uuid = $2
	`, string(state), id)
	if err != nil {
		return fmt.Errorf("failed to update submission state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound()
	}
	return nil
}

func (r *pgSubmRepo) AddMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return r.updateMutedBy(ctx, id, func(s *Submission) { s.Mute(by) })
}

func (r *pgSubmRepo) RemoveMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return r.updateMutedBy(ctx, id, func(s *Submission) { s.Unmute(by) })
}

// updateMutedBy holds a row lock across the read-modify-write so concurrent
// mute toggles on one submission cannot drop each other's entry.
func (r *pgSubmRepo) updateMutedBy(ctx context.Context, id uuid.UUID, change func(*Submission)) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var raw []byte
	err = tx.QueryRow(ctx, `
		SELECT muted_by FROM submissions WHERE uuid = $1 FOR UPDATE
	`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSubmissionNotFound()
		}
		return fmt.Errorf("failed to select muted_by: %w", err)
	}

	var subm Submission
	if err := json.Unmarshal(raw, &subm.MutedBy); err != nil {
		return fmt.Errorf("failed to unmarshal muted_by: %w", err)
	}
	change(&subm)

	encoded, err := marshalMutedBy(subm.MutedBy)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE submissions SET muted_by = $1 WHERE uuid = $2
	`, encoded, id)
	if err != nil {
		return fmt.Errorf("failed to update muted_by: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

func (r *pgSubmRepo) ExistsForKey(ctx context.Context, author uuid.UUID, language, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM submissions
			WHERE author_uuid = $1 AND language = $2 AND slug = $3
		)
	`, author, language, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query submission existence: %w", err)
	}
	return exists, nil
}

func marshalMutedBy(mutedBy []uuid.UUID) ([]byte, error) {
	if mutedBy == nil {
		mutedBy = []uuid.UUID{}
	}
	encoded, err := json.Marshal(mutedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal muted_by: %w", err)
	}
	return encoded, nil
}

func scanSubm(row pgx.Row) (Submission, error) {
	var subm Submission
	var state string
	var mutedBy []byte
	err := row.Scan(
		&subm.UUID,
		&subm.AuthorUUID,
		&subm.Language,
		&subm.Slug,
		&subm.Code,
		&state,
		&mutedBy,
		&subm.CreatedAt,
	)
	if err != nil {
		return Submission{}, err
	}

	subm.State = State(state)
	if err := json.Unmarshal(mutedBy, &subm.MutedBy); err != nil {
		return Submission{}, fmt.Errorf("failed to unmarshal muted_by: %w", err)
	}

	return subm, nil
}
