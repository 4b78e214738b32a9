package replay

import "pawtrail/internal/domain/puzzle"

type Request struct {
	PuzzleID string
	Limit    int
}

type Response struct {
	Events []puzzle.Event `json:"events"`
}
