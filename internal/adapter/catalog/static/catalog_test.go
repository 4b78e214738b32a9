package staticcatalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pawtrail/internal/domain/puzzle"
)

func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const validPuzzleDoc = `{
  "puzzles": {
    "lost_collar": {
      "title": "The Lost Collar",
      "description": "Find out where the collar went.",
      "difficulty": "easy",
      "stages": [
        {"stage": 1, "description": "open the shed", "required_items": ["rusty_key"], "hint": "the shed looks locked"}
      ],
      "combinations": [
        {"items": ["rusty_key", "oil_can"], "result": "working_key", "success_message": "the key turns freely now"}
      ],
      "hints": ["look around the garden"],
      "success_condition": {"type": "all_stages_complete"}
    }
  },
  "difficulty_settings": {
    "easy": {"max_hints": 5, "hint_cooldown": 15, "auto_hint_threshold": 8}
  }
}`

func TestLoadPuzzleCatalog(t *testing.T) {
	path := writeDoc(t, "puzzles.json", validPuzzleDoc)

	c, err := LoadPuzzleCatalog(path)
	if err != nil {
		t.Fatalf("LoadPuzzleCatalog: %v", err)
	}

	def, ok := c.Definition("lost_collar")
	if !ok {
		t.Fatal("lost_collar not found")
	}
	if def.ID != "lost_collar" {
		t.Fatalf("id = %q, want lost_collar", def.ID)
	}
	if def.Title != "The Lost Collar" {
		t.Fatalf("title = %q", def.Title)
	}
	if len(def.Stages) != 1 || def.Stages[0].RequiredItems[0] != "rusty_key" {
		t.Fatalf("stages decoded wrong: %+v", def.Stages)
	}

	s := c.Settings(puzzle.DifficultyEasy)
	if s.MaxHints != 5 || s.HintCooldownSec != 15 || s.AutoHintThreshold != 8 {
		t.Fatalf("easy settings = %+v", s)
	}
	if got := c.Settings(puzzle.DifficultyHard); got != defaultSettings {
		t.Fatalf("unconfigured difficulty = %+v, want defaults", got)
	}

	if all := c.All(); len(all) != 1 {
		t.Fatalf("All returned %d puzzles, want 1", len(all))
	}
}

func TestLoadPuzzleCatalogRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "not json",
			doc:  `{broken`,
			want: "decode",
		},
		{
			name: "empty",
			doc:  `{"puzzles": {}}`,
			want: "no puzzles",
		},
		{
			name: "missing title",
			doc: `{"puzzles": {"p": {
				"combinations": [{"items": ["a"], "result": "r"}],
				"success_condition": {"type": "all_stages_complete"}
			}}}`,
			want: "missing title",
		},
		{
			name: "no combinations",
			doc: `{"puzzles": {"p": {
				"title": "t",
				"success_condition": {"type": "all_stages_complete"}
			}}}`,
			want: "no combinations",
		},
		{
			name: "bad stage numbering",
			doc: `{"puzzles": {"p": {
				"title": "t",
				"stages": [{"stage": 2, "required_items": ["a"]}],
				"combinations": [{"items": ["a"], "result": "r"}],
				"success_condition": {"type": "all_stages_complete"}
			}}}`,
			want: "expected number 1",
		},
		{
			name: "unknown success type",
			doc: `{"puzzles": {"p": {
				"title": "t",
				"combinations": [{"items": ["a"], "result": "r"}],
				"success_condition": {"type": "first_blood"}
			}}}`,
			want: "unknown success condition",
		},
		{
			name: "dangling required combination",
			doc: `{"puzzles": {"p": {
				"title": "t",
				"combinations": [{"items": ["a"], "result": "r"}],
				"success_condition": {"type": "specific_combination", "required_combinations": ["missing"]}
			}}}`,
			want: "unknown combination result",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDoc(t, "puzzles.json", tc.doc)
			_, err := LoadPuzzleCatalog(path)
			if err == nil {
				t.Fatal("expected load error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

const validItemDoc = `{
  "items": [
    {"id": "dog_treat", "name": "Dog Treat", "item_type": "food", "rarity": "common", "stackable": true, "max_stack": 10, "usable": true},
    {"id": "rusty_key", "name": "Rusty Key", "item_type": "key", "rarity": "uncommon", "stackable": false, "usable": false},
    {"id": "oil_can", "name": "Oil Can", "item_type": "tool", "rarity": "common", "stackable": false, "usable": true},
    {"id": "working_key", "name": "Working Key", "item_type": "key", "rarity": "rare", "stackable": false, "usable": false}
  ],
  "recipes": [
    {"ingredients": ["rusty_key", "oil_can"], "result": "working_key", "description": "oil the lock"}
  ]
}`

func TestLoadItemCatalog(t *testing.T) {
	path := writeDoc(t, "items.json", validItemDoc)

	c, err := LoadItemCatalog(path)
	if err != nil {
		t.Fatalf("LoadItemCatalog: %v", err)
	}

	def, ok := c.Item("rusty_key")
	if !ok {
		t.Fatal("rusty_key not found")
	}
	if def.MaxStack != 1 {
		t.Fatalf("unstackable item max stack = %d, want 1", def.MaxStack)
	}
	if len(c.All()) != 4 {
		t.Fatalf("All returned %d items, want 4", len(c.All()))
	}
	if len(c.Recipes()) != 1 {
		t.Fatalf("Recipes returned %d, want 1", len(c.Recipes()))
	}
}

func TestLoadItemCatalogRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate id",
			doc: `{"items": [
				{"id": "a", "name": "A", "item_type": "tool", "stackable": false},
				{"id": "a", "name": "A again", "item_type": "tool", "stackable": false}
			]}`,
			want: "duplicate id",
		},
		{
			name: "stackable without max stack",
			doc:  `{"items": [{"id": "a", "name": "A", "item_type": "food", "stackable": true}]}`,
			want: "max_stack",
		},
		{
			name: "recipe with unknown ingredient",
			doc: `{"items": [{"id": "a", "name": "A", "item_type": "tool", "stackable": false}],
				"recipes": [{"ingredients": ["ghost"], "result": "a"}]}`,
			want: "not a known item",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDoc(t, "items.json", tc.doc)
			_, err := LoadItemCatalog(path)
			if err == nil {
				t.Fatal("expected load error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
