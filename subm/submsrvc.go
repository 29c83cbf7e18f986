package subm

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/praksis-io/backend/curriculum"
)

type SubmSrvc struct {
	logger *slog.Logger

	repo   SubmRepo
	curric *curriculum.Curriculum
	users  UserDirectory
}

func NewSubmSrvc(repo SubmRepo, curric *curriculum.Curriculum, users UserDirectory) *SubmSrvc {
	return &SubmSrvc{
		logger: slog.Default().With("module", "subm"),
		repo:   repo,
		curric: curric,
		users:  users,
	}
}

type CreateAttemptParams struct {
	Author uuid.UUID
	Code   string
	Path   string
}

type CreateAttemptResult struct {
	Submission *Submission
	Duplicate  bool
}

// CreateAttempt runs the whole attempt flow: resolve, dedupe, save. On a
// duplicate the returned submission is the already stored one.
func (s *SubmSrvc) CreateAttempt(ctx context.Context, p CreateAttemptParams) (CreateAttemptResult, error) {
	attempt, err := NewAttempt(ctx, p.Author, p.Code, p.Path, s.curric, s.repo, s.users)
	if err != nil {
		return CreateAttemptResult{}, err
	}

	duplicate := attempt.Duplicate()
	subm, err := attempt.Save(ctx)
	if err != nil {
		return CreateAttemptResult{}, err
	}

	s.logger.Info("attempt saved",
		"author", p.Author,
		"exercise", attempt.Exercise().String(),
		"duplicate", duplicate,
	)

	return CreateAttemptResult{Submission: subm, Duplicate: duplicate}, nil
}

func (s *SubmSrvc) GetSubm(ctx context.Context, id uuid.UUID) (*Submission, error) {
	subm, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &subm, nil
}

func (s *SubmSrvc) ListForAuthor(ctx context.Context, author uuid.UUID) ([]Submission, error) {
	return s.repo.ListForAuthor(ctx, author)
}

// Hibernate parks a pending submission without ending its lineage; a later
// attempt on the key still supersedes it.
func (s *SubmSrvc) Hibernate(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StateHibernating)
}

// Complete closes a current submission as finished.
func (s *SubmSrvc) Complete(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StateCompleted)
}

func (s *SubmSrvc) transition(ctx context.Context, id uuid.UUID, to State) error {
	subm, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !subm.State.IsCurrent() {
		return newErrInvalidStateTransition(subm.State, to)
	}
	return s.repo.SetState(ctx, id, to)
}

// Mute and Unmute delegate to the repo so the read-modify-write on the mute
// list happens under a single lock and concurrent toggles compose.
func (s *SubmSrvc) Mute(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return s.repo.AddMutedBy(ctx, id, by)
}

func (s *SubmSrvc) Unmute(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return s.repo.RemoveMutedBy(ctx, id, by)
}

// HasSubmission reports whether the author has ever submitted for the
// exercise. Cohort visibility counts this as completion evidence alongside
// the legacy completed record.
func (s *SubmSrvc) HasSubmission(ctx context.Context, author uuid.UUID, language, slug string) (bool, error) {
	return s.repo.ExistsForKey(ctx, author, language, slug)
}
