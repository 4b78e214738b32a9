package start

import "pawtrail/internal/domain/puzzle"

type Request struct {
	PuzzleID string
}

type Response struct {
	Title    string          `json:"title"`
	Progress puzzle.Progress `json:"progress"`
}

type ResetRequest struct {
	PuzzleID string
}

type ResetResponse struct {
	Reset bool `json:"reset"`
}
