package stage

import "pawtrail/internal/domain/puzzle"

type Request struct {
	PuzzleID       string
	AvailableItems []string
}

type Response struct {
	Satisfied       bool  `json:"satisfied"`
	CurrentStage    int   `json:"current_stage"`
	CompletedStages []int `json:"completed_stages"`
}

type CompletionRequest struct {
	PuzzleID string
}

type CompletionResponse struct {
	Completed bool          `json:"completed"`
	State     puzzle.State  `json:"state"`
	Rewards   puzzle.Reward `json:"rewards,omitempty"`
}
