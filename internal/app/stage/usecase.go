package stage

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

var ErrInvalidRequest = errors.New("invalid stage request")

// UseCase re-evaluates the current stage gate against the items a player holds.
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

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{}, ports.ErrPuzzleNotStarted
		}
		return Response{}, err
	}

	completedStage := progress.CurrentStage
	satisfied := puzzle.EvaluateStage(def, &progress, req.AvailableItems)
	if satisfied {
		if err := u.Progress.Save(ctx, progress); err != nil {
			return Response{}, err
		}
		if u.Events != nil {
			now := time.Now()
			if u.Now != nil {
				now = u.Now()
			}
			_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
				Type:       puzzle.EventStageCompleted,
				OccurredAt: now,
				Payload:    map[string]any{"puzzle_id": req.PuzzleID, "stage": completedStage},
			}})
		}
	}

	return Response{
		Satisfied:       satisfied,
		CurrentStage:    progress.CurrentStage,
		CompletedStages: progress.CompletedStages,
	}, nil
}

// CompletionUseCase checks the puzzle's success condition and performs the
// terminal state transition on success.
type CompletionUseCase struct {
	Catalog  ports.PuzzleCatalog
	Progress ports.ProgressRepository
	Events   ports.EventRepository
	Metrics  ports.PuzzleMetrics
	Now      func() time.Time
}

func (u CompletionUseCase) Execute(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return CompletionResponse{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return CompletionResponse{}, ports.ErrUnknownPuzzle
	}

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return CompletionResponse{}, ports.ErrPuzzleNotStarted
		}
		return CompletionResponse{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	alreadyCompleted := progress.State == puzzle.StateCompleted
	completed := puzzle.EvaluateCompletion(def, &progress, nowFn())
	if !completed {
		return CompletionResponse{Completed: false, State: progress.State}, nil
	}

	if err := u.Progress.Save(ctx, progress); err != nil {
		return CompletionResponse{}, err
	}

	// The transition fires once; re-checks after completion stay quiet.
	if !alreadyCompleted {
		if u.Events != nil {
			_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
				Type:       puzzle.EventPuzzleCompleted,
				OccurredAt: nowFn(),
				Payload: map[string]any{
					"puzzle_id":  req.PuzzleID,
					"title":      def.Title,
					"experience": def.Rewards.Experience,
					"items":      def.Rewards.Items,
				},
			}})
		}
		if u.Metrics != nil {
			u.Metrics.RecordCompletion()
		}
	}

	return CompletionResponse{Completed: true, State: progress.State, Rewards: def.Rewards}, nil
}
