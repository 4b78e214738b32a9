package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrUnknownPuzzle    = errors.New("unknown puzzle")
	ErrPuzzleNotStarted = errors.New("puzzle not started")
	ErrAlreadyStarted   = errors.New("puzzle already started")
	ErrCorruptSave      = errors.New("corrupt save data")
)
