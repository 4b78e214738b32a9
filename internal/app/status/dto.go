package status

import "pawtrail/internal/domain/puzzle"

type Request struct {
	PuzzleID string
}

type Response struct {
	PuzzleID               string            `json:"puzzle_id"`
	Title                  string            `json:"title"`
	Description            string            `json:"description"`
	Difficulty             puzzle.Difficulty `json:"difficulty"`
	State                  puzzle.State      `json:"state"`
	CurrentStage           int               `json:"current_stage,omitempty"`
	CompletedStages        []int             `json:"completed_stages,omitempty"`
	UsedHints              int               `json:"used_hints,omitempty"`
	Attempts               int               `json:"attempts,omitempty"`
	DiscoveredCombinations []string          `json:"discovered_combinations,omitempty"`
	ElapsedSeconds         int64             `json:"elapsed_seconds,omitempty"`
}

type ListRequest struct{}

type PuzzleSummary struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  puzzle.Difficulty `json:"difficulty"`
	Category    string            `json:"category"`
}

type ListResponse struct {
	Puzzles []PuzzleSummary `json:"puzzles"`
}
