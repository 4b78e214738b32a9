package start

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

var ErrInvalidRequest = errors.New("invalid start request")

type UseCase struct {
	Catalog  ports.PuzzleCatalog
	Progress ports.ProgressRepository
	Events   ports.EventRepository
	Now      func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return Response{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return Response{}, ports.ErrUnknownPuzzle
	}

	now := u.now()
	progress := puzzle.NewProgress(req.PuzzleID, now)
	if err := u.Progress.Create(ctx, progress); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return Response{}, ports.ErrAlreadyStarted
		}
		return Response{}, err
	}

	if u.Events != nil {
		_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
			Type:       puzzle.EventPuzzleStarted,
			OccurredAt: now,
			Payload:    map[string]any{"puzzle_id": req.PuzzleID, "title": def.Title},
		}})
	}

	return Response{Title: def.Title, Progress: progress}, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// ResetUseCase discards active progress and hint pacing state for a puzzle.
// Resetting a puzzle that was never started is a no-op, not an error.
type ResetUseCase struct {
	Progress   ports.ProgressRepository
	HintStates ports.HintStateRepository
	Events     ports.EventRepository
	Now        func() time.Time
}

func (u ResetUseCase) Execute(ctx context.Context, req ResetRequest) (ResetResponse, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return ResetResponse{}, ErrInvalidRequest
	}

	if _, err := u.Progress.Get(ctx, req.PuzzleID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ResetResponse{Reset: false}, nil
		}
		return ResetResponse{}, err
	}

	if err := u.Progress.Delete(ctx, req.PuzzleID); err != nil {
		return ResetResponse{}, err
	}
	if u.HintStates != nil {
		_ = u.HintStates.Delete(ctx, req.PuzzleID)
	}

	if u.Events != nil {
		now := time.Now()
		if u.Now != nil {
			now = u.Now()
		}
		_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
			Type:       puzzle.EventPuzzleReset,
			OccurredAt: now,
			Payload:    map[string]any{"puzzle_id": req.PuzzleID},
		}})
	}

	return ResetResponse{Reset: true}, nil
}
