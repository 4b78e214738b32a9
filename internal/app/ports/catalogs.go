package ports

import (
	"pawtrail/internal/domain/item"
	"pawtrail/internal/domain/puzzle"
)

// PuzzleCatalog is the load-once puzzle registry. Lookups are in-memory and
// never fail after a successful load.
type PuzzleCatalog interface {
	Definition(puzzleID string) (puzzle.Definition, bool)
	Settings(difficulty puzzle.Difficulty) puzzle.DifficultySettings
	All() []puzzle.Definition
}

type ItemCatalog interface {
	Item(itemID string) (item.Definition, bool)
	All() []item.Definition
	Recipes() []item.Recipe
}
