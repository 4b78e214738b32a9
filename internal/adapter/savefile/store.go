// Package savefile persists puzzle progress snapshots as a JSON document on
// disk. Writes go through an adjacent temp file followed by a rename so a
// crash mid-write never produces a half-written save.
package savefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

type document struct {
	Version  int                        `json:"version"`
	Progress map[string]puzzle.Progress `json:"puzzle_progress"`
}

const documentVersion = 1

func (s *Store) Save(_ context.Context, progress map[string]puzzle.Progress) error {
	doc := document{Version: documentVersion, Progress: progress}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

func (s *Store) Load(_ context.Context) (map[string]puzzle.Progress, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read save: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ports.ErrCorruptSave, err)
	}
	if doc.Progress == nil {
		doc.Progress = map[string]puzzle.Progress{}
	}
	return doc.Progress, true, nil
}

var _ ports.ProgressSnapshotStore = (*Store)(nil)
