package memory

import (
	"sync"

	"pawtrail/internal/domain/item"
	"pawtrail/internal/domain/puzzle"
)

// Store backs the in-memory repositories. The single-session engine is driven
// by one synchronous caller; the mutex covers the HTTP adapter's goroutines.
type Store struct {
	mu          sync.RWMutex
	progress    map[string]puzzle.Progress
	hintStates  map[string]puzzle.HintState
	events      map[string][]puzzle.Event
	inventories map[string]item.Inventory
}

func NewStore() *Store {
	return &Store{
		progress:    make(map[string]puzzle.Progress),
		hintStates:  make(map[string]puzzle.HintState),
		events:      make(map[string][]puzzle.Event),
		inventories: make(map[string]item.Inventory),
	}
}

func (s *Store) SeedProgress(p puzzle.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[p.PuzzleID] = p
}
