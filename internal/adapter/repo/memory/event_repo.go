package memory

import (
	"context"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, puzzleID string, events []puzzle.Event) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[puzzleID] = append(r.store.events[puzzleID], events...)
	return nil
}

// ListByPuzzleID returns events most recent first, like the durable adapter.
func (r EventRepo) ListByPuzzleID(_ context.Context, puzzleID string, limit int) ([]puzzle.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stored := r.store.events[puzzleID]
	if len(stored) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]puzzle.Event, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ ports.EventRepository = EventRepo{}
