package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgUserRepo struct {
	pool *pgxpool.Pool
}

func NewPgUserRepo(pool *pgxpool.Pool) *pgUserRepo {
	return &pgUserRepo{pool: pool}
}

const userColumns = `uuid, firstname, lastname, username, email, bcrypt_pwd, completed, working_on, created_at`

func (r *pgUserRepo) Insert(ctx context.Context, row UserRow) error {
	completed, workingOn, err := marshalUserJson(row)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		row.UUID,
		row.Firstname,
		row.Lastname,
		row.Username,
		row.Email,
		row.BcryptPwd,
		completed,
		workingOn,
		row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *pgUserRepo) SelectAll(ctx context.Context) ([]UserRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []UserRow
	for rows.Next() {
		row, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (UserRow, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *pgUserRepo) GetByUUID(ctx context.Context, id uuid.UUID) (UserRow, error) {
	return r.getOne(ctx, `WHERE uuid = $1`, id)
}

func (r *pgUserRepo) getOne(ctx context.Context, where string, arg any) (UserRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users `+where, arg)
	if err != nil {
		return UserRow{}, fmt.Errorf("failed to query user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return UserRow{}, fmt.Errorf("failed to query user: %w", err)
		}
		return UserRow{}, ErrUserNotFound()
	}

	return scanUserRow(rows)
}

func (r *pgUserRepo) SetWorkingOn(ctx context.Context, id uuid.UUID, language, slug string) error {
	row, err := r.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if row.WorkingOn == nil {
		row.WorkingOn = map[string]string{}
	}
	row.WorkingOn[language] = slug

	workingOn, err := json.Marshal(row.WorkingOn)
	if err != nil {
		return fmt.Errorf("failed to marshal working_on: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE users SET working_on = $1 WHERE uuid = $2
	`, workingOn, id)
	if err != nil {
		return fmt.Errorf("failed to update working_on: %w", err)
	}
	return nil
}

func (r *pgUserRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed map[string][]string) error {
	encoded, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to marshal completed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET completed = $1 WHERE uuid = $2
	`, encoded, id)
	if err != nil {
		return fmt.Errorf("failed to update completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound()
	}
	return nil
}

func marshalUserJson(row UserRow) (completed []byte, workingOn []byte, err error) {
	if row.Completed == nil {
		row.Completed = map[string][]string{}
	}
	if row.WorkingOn == nil {
		row.WorkingOn = map[string]string{}
	}

	completed, err = json.Marshal(row.Completed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal completed: %w", err)
	}
	workingOn, err = json.Marshal(row.WorkingOn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal working_on: %w", err)
	}
	return completed, workingOn, nil
}

func scanUserRow(rows pgx.Rows) (UserRow, error) {
	var row UserRow
	var completed, workingOn []byte
	err := rows.Scan(
		&row.UUID,
		&row.Firstname,
		&row.Lastname,
		&row.Username,
		&row.Email,
		&row.BcryptPwd,
		&completed,
		&workingOn,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserRow{}, ErrUserNotFound()
		}
		return UserRow{}, fmt.Errorf("failed to scan user: %w", err)
	}

	if err := json.Unmarshal(completed, &row.Completed); err != nil {
		return UserRow{}, fmt.Errorf("failed to unmarshal completed: %w", err)
	}
	if err := json.Unmarshal(workingOn, &row.WorkingOn); err != nil {
		return UserRow{}, fmt.Errorf("failed to unmarshal working_on: %w", err)
	}

	return row, nil
}
