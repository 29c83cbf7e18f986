package subm

import (
	"context"

	"github.com/google/uuid"
)

type SubmRepo interface {
	Store(ctx context.Context, subm Submission) error

	// Get returns ErrSubmissionNotFound when no row matches.
	Get(ctx context.Context, id uuid.UUID) (Submission, error)

	// LatestForKey returns the most recently created submission for the
	// (author, language, slug) key, or nil when the author has none.
	LatestForKey(ctx context.Context, author uuid.UUID, language, slug string) (*Submission, error)

	// ListForAuthor returns the author's submissions ordered by creation
	// time ascending.
	ListForAuthor(ctx context.Context, author uuid.UUID) ([]Submission, error)

	// StoreSuperseding stores next as the new current submission for its
	// (author, language, slug) key. Any submission for the key still in a
	// current state (pending or hibernating) is transitioned to superseded
	// with an emptied mute list inside the same atomic unit, so the key
	// never carries two current submissions however callers interleave.
	StoreSuperseding(ctx context.Context, next Submission) error

	SetState(ctx context.Context, id uuid.UUID, state State) error

	// AddMutedBy and RemoveMutedBy toggle one viewer in the submission's
	// mute list as a single repo-level update.
	AddMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error
	RemoveMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error

	ExistsForKey(ctx context.Context, author uuid.UUID, language, slug string) (bool, error)
}
