package subm

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type inMemSubmRepo struct {
	mu    sync.RWMutex
	seq   int
	subms map[uuid.UUID]storedSubm
}

type storedSubm struct {
	subm Submission
	seq  int // insertion order, tie-break for equal timestamps
}

func NewInMemSubmRepo() *inMemSubmRepo {
	return &inMemSubmRepo{
		subms: make(map[uuid.UUID]storedSubm),
	}
}

func (r *inMemSubmRepo) Store(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(subm)
	return nil
}

func (r *inMemSubmRepo) store(subm Submission) {
	r.seq++
	subm.MutedBy = append([]uuid.UUID(nil), subm.MutedBy...)
	r.subms[subm.UUID] = storedSubm{subm: subm, seq: r.seq}
}

func (r *inMemSubmRepo) Get(ctx context.Context, id uuid.UUID) (Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if stored, ok := r.subms[id]; ok {
		return stored.subm, nil
	}
	return Submission{}, ErrSubmissionNotFound()
}

func (r *inMemSubmRepo) LatestForKey(ctx context.Context, author uuid.UUID, language, slug string) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *storedSubm
	for id := range r.subms {
		stored := r.subms[id]
		s := stored.subm
		if s.AuthorUUID != author || s.Language != language || s.Slug != slug {
			continue
		}
		if latest == nil || stored.seq > latest.seq {
			latest = &stored
		}
	}

	if latest == nil {
		return nil, nil
	}
	subm := latest.subm
	return &subm, nil
}

func (r *inMemSubmRepo) ListForAuthor(ctx context.Context, author uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stored []storedSubm
	for _, s := range r.subms {
		if s.subm.AuthorUUID == author {
			stored = append(stored, s)
		}
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].seq < stored[j].seq
	})

	subms := make([]Submission, 0, len(stored))
	for _, s := range stored {
		subms = append(subms, s.subm)
	}
	return subms, nil
}

func (r *inMemSubmRepo) StoreSuperseding(ctx context.Context, next Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Resolve the current submission under the same lock as the insert so
	// two interleaved saves cannot both end up pending for the key.
	for id, stored := range r.subms {
		s := stored.subm
		if s.AuthorUUID != next.AuthorUUID || s.Language != next.Language || s.Slug != next.Slug {
			continue
		}
		if !s.State.IsCurrent() {
			continue
		}
		stored.subm.State = StateSuperseded
		stored.subm.MutedBy = []uuid.UUID{}
		r.subms[id] = stored
	}

	r.store(next)
	return nil
}

func (r *inMemSubmRepo) SetState(ctx context.Context, id uuid.UUID, state State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.subms[id]
	if !ok {
		return ErrSubmissionNotFound()
	}
	stored.subm.State = state
	r.subms[id] = stored
	return nil
}

func (r *inMemSubmRepo) AddMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return r.updateMutedBy(id, func(s *Submission) { s.Mute(by) })
}

func (r *inMemSubmRepo) RemoveMutedBy(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	return r.updateMutedBy(id, func(s *Submission) { s.Unmute(by) })
}

func (r *inMemSubmRepo) updateMutedBy(id uuid.UUID, change func(*Submission)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.subms[id]
	if !ok {
		return ErrSubmissionNotFound()
	}
	stored.subm.MutedBy = append([]uuid.UUID(nil), stored.subm.MutedBy...)
	change(&stored.subm)
	r.subms[id] = stored
	return nil
}

func (r *inMemSubmRepo) ExistsForKey(ctx context.Context, author uuid.UUID, language, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, stored := range r.subms {
		s := stored.subm
		if s.AuthorUUID == author && s.Language == language && s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
