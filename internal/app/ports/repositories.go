package ports

import (
	"context"

	"pawtrail/internal/domain/item"
	"pawtrail/internal/domain/puzzle"
)

type ProgressRepository interface {
	Get(ctx context.Context, puzzleID string) (puzzle.Progress, error)
	// Create fails with ErrConflict when active progress already exists.
	Create(ctx context.Context, progress puzzle.Progress) error
	Save(ctx context.Context, progress puzzle.Progress) error
	Delete(ctx context.Context, puzzleID string) error
	All(ctx context.Context) (map[string]puzzle.Progress, error)
	// ReplaceAll swaps the full progress map in one step (save-file load).
	ReplaceAll(ctx context.Context, progress map[string]puzzle.Progress) error
}

type HintStateRepository interface {
	Get(ctx context.Context, puzzleID string) (puzzle.HintState, error)
	Save(ctx context.Context, state puzzle.HintState) error
	Delete(ctx context.Context, puzzleID string) error
}

type EventRepository interface {
	Append(ctx context.Context, puzzleID string, events []puzzle.Event) error
	ListByPuzzleID(ctx context.Context, puzzleID string, limit int) ([]puzzle.Event, error)
}

type InventoryRepository interface {
	Get(ctx context.Context, playerID string) (item.Inventory, error)
	Save(ctx context.Context, playerID string, inv item.Inventory) error
}

// ProgressSnapshotStore is the durable save-file behind save/load. Load
// reports found=false — not an error — when no prior save exists; corrupt
// data surfaces as ErrCorruptSave.
type ProgressSnapshotStore interface {
	Save(ctx context.Context, progress map[string]puzzle.Progress) error
	Load(ctx context.Context) (map[string]puzzle.Progress, bool, error)
}
