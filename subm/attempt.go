package subm

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/praksis-io/backend/curriculum"
)

// UserDirectory is the slice of the user service an attempt needs: recording
// which exercise the author is currently working on.
type UserDirectory interface {
	MarkWorkingOn(ctx context.Context, userUUID uuid.UUID, language, slug string) error
}

// Attempt is one submission-in-progress. Construction resolves the target
// exercise and snapshots the author's previous submission for that key;
// nothing is persisted until Save.
type Attempt struct {
	authorUUID uuid.UUID
	code       string // normalized: trailing newlines stripped
	exercise   curriculum.Exercise
	prior      Prior

	repo  SubmRepo
	users UserDirectory
}

func NewAttempt(
	ctx context.Context,
	author uuid.UUID,
	code string,
	path string,
	curric *curriculum.Curriculum,
	repo SubmRepo,
	users UserDirectory,
) (*Attempt, error) {
	exercise, err := curric.Resolve(path)
	if err != nil {
		return nil, err
	}

	content := SubmissionContent{Value: code}
	if err := content.IsValid(); err != nil {
		return nil, err
	}

	// Right-trim newlines only; internal blank lines are part of the code.
	normalized := strings.TrimRight(code, "\n")

	latest, err := repo.LatestForKey(ctx, author, exercise.Language, exercise.Slug)
	if err != nil {
		return nil, err
	}

	prior := NoPriorSubmission
	if latest != nil {
		prior = priorSubmission{subm: *latest}
	}

	return &Attempt{
		authorUUID: author,
		code:       normalized,
		exercise:   exercise,
		prior:      prior,
		repo:       repo,
		users:      users,
	}, nil
}

func (a *Attempt) Exercise() curriculum.Exercise {
	return a.exercise
}

func (a *Attempt) Code() string {
	return a.code
}

// PreviousSubmission is the snapshot taken at construction. It keeps
// returning the pre-save state even after Save supersedes it.
func (a *Attempt) PreviousSubmission() Prior {
	return a.prior
}

// Duplicate reports whether this attempt's normalized code matches the
// previous submission's. A first attempt on a key is never a duplicate.
func (a *Attempt) Duplicate() bool {
	return a.prior.Exists() && a.prior.Code() == a.code
}

// Save persists the attempt as a new pending submission. The repo resolves
// whichever submission is current for the key at save time, not the one
// snapshotted at construction, and supersedes it with its mute list emptied
// in the same atomic unit as the insert. Two attempts saved back to back
// therefore leave exactly one pending submission however they interleave;
// submissions under other keys are untouched.
//
// A duplicate attempt stores nothing and returns the previous submission,
// so two identical-content submissions can never sit next to each other in
// a lineage regardless of whether the caller checked Duplicate first.
func (a *Attempt) Save(ctx context.Context) (*Submission, error) {
	if a.Duplicate() {
		return a.prior.Subm(), nil
	}

	next := Submission{
		UUID:       uuid.New(),
		AuthorUUID: a.authorUUID,
		Language:   a.exercise.Language,
		Slug:       a.exercise.Slug,
		Code:       a.code,
		State:      StatePending,
		MutedBy:    []uuid.UUID{},
		CreatedAt:  time.Now(),
	}

	if err := a.repo.StoreSuperseding(ctx, next); err != nil {
		return nil, err
	}

	// The exercise becomes the author's current one for this language even
	// when the legacy completed record already lists it; that record stays
	// as it is.
	if a.users != nil {
		if err := a.users.MarkWorkingOn(ctx, a.authorUUID, a.exercise.Language, a.exercise.Slug); err != nil {
			return nil, err
		}
	}

	return &next, nil
}
