package memory

import (
	"context"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type HintStateRepo struct {
	store *Store
}

func NewHintStateRepo(store *Store) HintStateRepo {
	return HintStateRepo{store: store}
}

func (r HintStateRepo) Get(_ context.Context, puzzleID string) (puzzle.HintState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.hintStates[puzzleID]
	if !ok {
		return puzzle.HintState{}, ports.ErrNotFound
	}
	return s, nil
}

func (r HintStateRepo) Save(_ context.Context, s puzzle.HintState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.hintStates[s.PuzzleID] = s
	return nil
}

func (r HintStateRepo) Delete(_ context.Context, puzzleID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.hintStates, puzzleID)
	return nil
}

var _ ports.HintStateRepository = HintStateRepo{}
