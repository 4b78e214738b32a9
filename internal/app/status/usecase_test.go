package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type fakeCatalog struct {
	defs map[string]puzzle.Definition
}

func (c fakeCatalog) Definition(id string) (puzzle.Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

func (c fakeCatalog) Settings(puzzle.Difficulty) puzzle.DifficultySettings {
	return puzzle.DifficultySettings{}
}

func (c fakeCatalog) All() []puzzle.Definition {
	out := make([]puzzle.Definition, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def)
	}
	return out
}

var _ ports.PuzzleCatalog = fakeCatalog{}

type fakeProgressRepo struct {
	progress map[string]puzzle.Progress
}

func (f fakeProgressRepo) Get(_ context.Context, puzzleID string) (puzzle.Progress, error) {
	p, ok := f.progress[puzzleID]
	if !ok {
		return puzzle.Progress{}, ports.ErrNotFound
	}
	return p, nil
}

func (f fakeProgressRepo) Create(context.Context, puzzle.Progress) error { return nil }
func (f fakeProgressRepo) Save(context.Context, puzzle.Progress) error   { return nil }
func (f fakeProgressRepo) Delete(context.Context, string) error          { return nil }

func (f fakeProgressRepo) All(context.Context) (map[string]puzzle.Progress, error) {
	return f.progress, nil
}

func (f fakeProgressRepo) ReplaceAll(context.Context, map[string]puzzle.Progress) error {
	return nil
}

var _ ports.ProgressRepository = fakeProgressRepo{}

func testCatalog() fakeCatalog {
	return fakeCatalog{defs: map[string]puzzle.Definition{
		"lost_collar": {
			ID:          "lost_collar",
			Title:       "The Lost Collar",
			Description: "Find the collar.",
			Difficulty:  puzzle.DifficultyEasy,
			Category:    "rescue",
		},
		"no_category": {
			ID:         "no_category",
			Title:      "Uncategorized",
			Difficulty: puzzle.DifficultyNormal,
		},
	}}
}

func TestStatusUnknownPuzzle(t *testing.T) {
	uc := UseCase{Catalog: testCatalog(), Progress: fakeProgressRepo{}}

	_, err := uc.Execute(context.Background(), Request{PuzzleID: "nope"})
	if !errors.Is(err, ports.ErrUnknownPuzzle) {
		t.Fatalf("err = %v, want ErrUnknownPuzzle", err)
	}
}

func TestStatusNotStarted(t *testing.T) {
	uc := UseCase{Catalog: testCatalog(), Progress: fakeProgressRepo{}}

	resp, err := uc.Execute(context.Background(), Request{PuzzleID: "lost_collar"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.State != puzzle.StateNotStarted {
		t.Fatalf("state = %q, want %q", resp.State, puzzle.StateNotStarted)
	}
	if resp.Title != "The Lost Collar" {
		t.Fatalf("title = %q", resp.Title)
	}
	if resp.Attempts != 0 || resp.ElapsedSeconds != 0 {
		t.Fatalf("counters should be zero for a not-started puzzle: %+v", resp)
	}
}

func TestStatusInProgress(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := puzzle.NewProgress("lost_collar", started)
	p.Attempts = 7
	p.RecordDiscovery("working_key")

	uc := UseCase{
		Catalog:  testCatalog(),
		Progress: fakeProgressRepo{progress: map[string]puzzle.Progress{"lost_collar": p}},
		Now:      func() time.Time { return started.Add(90 * time.Second) },
	}

	resp, err := uc.Execute(context.Background(), Request{PuzzleID: "lost_collar"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.State != puzzle.StateInProgress {
		t.Fatalf("state = %q", resp.State)
	}
	if resp.Attempts != 7 {
		t.Fatalf("attempts = %d, want 7", resp.Attempts)
	}
	if resp.ElapsedSeconds != 90 {
		t.Fatalf("elapsed = %d, want 90", resp.ElapsedSeconds)
	}
	if len(resp.DiscoveredCombinations) != 1 {
		t.Fatalf("discovered = %v", resp.DiscoveredCombinations)
	}
}

func TestListDefaultsCategory(t *testing.T) {
	uc := ListUseCase{Catalog: testCatalog()}

	resp, err := uc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Puzzles) != 2 {
		t.Fatalf("got %d puzzles, want 2", len(resp.Puzzles))
	}
	for _, summary := range resp.Puzzles {
		if summary.ID == "no_category" && summary.Category != "general" {
			t.Fatalf("category = %q, want general", summary.Category)
		}
		if summary.ID == "lost_collar" && summary.Category != "rescue" {
			t.Fatalf("category = %q, want rescue", summary.Category)
		}
	}
}
