package memory

import (
	"context"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type ProgressRepo struct {
	store *Store
}

func NewProgressRepo(store *Store) ProgressRepo {
	return ProgressRepo{store: store}
}

func (r ProgressRepo) Get(_ context.Context, puzzleID string) (puzzle.Progress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.progress[puzzleID]
	if !ok {
		return puzzle.Progress{}, ports.ErrNotFound
	}
	return p, nil
}

func (r ProgressRepo) Create(_ context.Context, p puzzle.Progress) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.progress[p.PuzzleID]; exists {
		return ports.ErrConflict
	}
	r.store.progress[p.PuzzleID] = p
	return nil
}

func (r ProgressRepo) Save(_ context.Context, p puzzle.Progress) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.progress[p.PuzzleID] = p
	return nil
}

func (r ProgressRepo) Delete(_ context.Context, puzzleID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.progress, puzzleID)
	return nil
}

func (r ProgressRepo) All(_ context.Context) (map[string]puzzle.Progress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]puzzle.Progress, len(r.store.progress))
	for k, v := range r.store.progress {
		out[k] = v
	}
	return out, nil
}

func (r ProgressRepo) ReplaceAll(_ context.Context, progress map[string]puzzle.Progress) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	replacement := make(map[string]puzzle.Progress, len(progress))
	for k, v := range progress {
		replacement[k] = v
	}
	r.store.progress = replacement
	return nil
}

var _ ports.ProgressRepository = ProgressRepo{}
