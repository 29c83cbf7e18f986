package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemUserRepo struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]UserRow
}

func NewInMemUserRepo() *inMemUserRepo {
	return &inMemUserRepo{
		rows: make(map[uuid.UUID]UserRow),
	}
}

func (r *inMemUserRepo) Insert(ctx context.Context, row UserRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[row.UUID] = cloneRow(row)
	return nil
}

func (r *inMemUserRepo) SelectAll(ctx context.Context) ([]UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]UserRow, 0, len(r.rows))
	for _, row := range r.rows {
		rows = append(rows, cloneRow(row))
	}
	return rows, nil
}

func (r *inMemUserRepo) GetByUsername(ctx context.Context, username string) (UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.Username == username {
			return cloneRow(row), nil
		}
	}
	return UserRow{}, ErrUserNotFound()
}

func (r *inMemUserRepo) GetByUUID(ctx context.Context, id uuid.UUID) (UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[id]; ok {
		return cloneRow(row), nil
	}
	return UserRow{}, ErrUserNotFound()
}

func (r *inMemUserRepo) SetWorkingOn(ctx context.Context, id uuid.UUID, language, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return ErrUserNotFound()
	}
	if row.WorkingOn == nil {
		row.WorkingOn = map[string]string{}
	}
	row.WorkingOn[language] = slug
	r.rows[id] = row
	return nil
}

func (r *inMemUserRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed map[string][]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return ErrUserNotFound()
	}
	row.Completed = cloneCompleted(completed)
	r.rows[id] = row
	return nil
}

func cloneRow(row UserRow) UserRow {
	row.Completed = cloneCompleted(row.Completed)
	workingOn := make(map[string]string, len(row.WorkingOn))
	for k, v := range row.WorkingOn {
		workingOn[k] = v
	}
	row.WorkingOn = workingOn
	return row
}

func cloneCompleted(completed map[string][]string) map[string][]string {
	cloned := make(map[string][]string, len(completed))
	for lang, slugs := range completed {
		cloned[lang] = append([]string(nil), slugs...)
	}
	return cloned
}
