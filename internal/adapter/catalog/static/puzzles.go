// Package staticcatalog loads puzzle and item definitions from JSON documents
// on disk. Documents decode once at startup into immutable typed catalogs;
// malformed entries abort the load instead of failing lazily at lookup time.
package staticcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type puzzleDocument struct {
	Puzzles            map[string]puzzle.Definition         `json:"puzzles"`
	DifficultySettings map[string]puzzle.DifficultySettings `json:"difficulty_settings"`
}

type PuzzleCatalog struct {
	defs     map[string]puzzle.Definition
	order    []string
	settings map[puzzle.Difficulty]puzzle.DifficultySettings
}

// defaultSettings applies when a puzzle names a difficulty the document does
// not configure.
var defaultSettings = puzzle.DifficultySettings{
	MaxHints:          3,
	HintCooldownSec:   30,
	AutoHintThreshold: 0,
}

func LoadPuzzleCatalog(path string) (*PuzzleCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle catalog: %w", err)
	}
	var doc puzzleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode puzzle catalog %s: %w", path, err)
	}
	if len(doc.Puzzles) == 0 {
		return nil, fmt.Errorf("puzzle catalog %s: no puzzles defined", path)
	}

	c := &PuzzleCatalog{
		defs:     make(map[string]puzzle.Definition, len(doc.Puzzles)),
		settings: make(map[puzzle.Difficulty]puzzle.DifficultySettings, len(doc.DifficultySettings)),
	}
	for name, s := range doc.DifficultySettings {
		c.settings[puzzle.Difficulty(name)] = s
	}
	for id, def := range doc.Puzzles {
		if def.ID == "" {
			def.ID = id
		}
		if def.ID != id {
			return nil, fmt.Errorf("puzzle %q: id field %q does not match key", id, def.ID)
		}
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", id, err)
		}
		c.defs[id] = def
		c.order = append(c.order, id)
	}
	sort.Strings(c.order)
	return c, nil
}

func validateDefinition(def puzzle.Definition) error {
	if def.Title == "" {
		return fmt.Errorf("missing title")
	}
	if len(def.Combinations) == 0 {
		return fmt.Errorf("no combinations defined")
	}
	results := make(map[string]struct{}, len(def.Combinations))
	for i, combo := range def.Combinations {
		if len(combo.Items) == 0 {
			return fmt.Errorf("combination %d: empty item list", i)
		}
		if combo.Result == "" {
			return fmt.Errorf("combination %d: missing result", i)
		}
		results[combo.Result] = struct{}{}
	}
	for i, stage := range def.Stages {
		if stage.Stage != i+1 {
			return fmt.Errorf("stage %d: expected number %d, got %d", i, i+1, stage.Stage)
		}
		if len(stage.RequiredItems) == 0 {
			return fmt.Errorf("stage %d: no required items", stage.Stage)
		}
	}
	switch def.Success.Type {
	case puzzle.SuccessAllStagesComplete:
	case puzzle.SuccessSpecificCombination:
		if len(def.Success.RequiredCombinations) == 0 {
			return fmt.Errorf("success condition names no required combinations")
		}
	default:
		return fmt.Errorf("unknown success condition type %q", def.Success.Type)
	}
	for _, required := range def.Success.RequiredCombinations {
		if _, ok := results[required]; !ok {
			return fmt.Errorf("success condition references unknown combination result %q", required)
		}
	}
	return nil
}

func (c *PuzzleCatalog) Definition(puzzleID string) (puzzle.Definition, bool) {
	def, ok := c.defs[puzzleID]
	return def, ok
}

func (c *PuzzleCatalog) Settings(difficulty puzzle.Difficulty) puzzle.DifficultySettings {
	if s, ok := c.settings[difficulty]; ok {
		return s
	}
	return defaultSettings
}

func (c *PuzzleCatalog) All() []puzzle.Definition {
	out := make([]puzzle.Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

var _ ports.PuzzleCatalog = (*PuzzleCatalog)(nil)
