package hint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/app/shared/cooldown"
	"pawtrail/internal/domain/puzzle"
)

var ErrInvalidRequest = errors.New("invalid hint request")

const (
	MessageBudgetExhausted  = "no more hints can be used"
	MessageNoHintsAvailable = "no hints available"
)

// ContextualUseCase serves adaptive hints gated only by the per-puzzle
// cooldown. It never touches the sequential hint budget.
type ContextualUseCase struct {
	Catalog    ports.PuzzleCatalog
	Progress   ports.ProgressRepository
	HintStates ports.HintStateRepository
	Events     ports.EventRepository
	Metrics    ports.PuzzleMetrics
	Now        func() time.Time
}

func (u ContextualUseCase) Execute(ctx context.Context, req ContextualRequest) (ContextualResponse, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return ContextualResponse{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return ContextualResponse{}, ports.ErrUnknownPuzzle
	}

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ContextualResponse{}, ports.ErrPuzzleNotStarted
		}
		return ContextualResponse{}, err
	}

	state, err := u.hintState(ctx, req.PuzzleID)
	if err != nil {
		return ContextualResponse{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	settings := u.Catalog.Settings(def.Difficulty)
	if remaining, active := cooldown.Remaining(state.LastHintAt, settings.HintCooldown(), now); active {
		// The wait message costs nothing: no budget, no cooldown restart.
		return ContextualResponse{
			Hint:             fmt.Sprintf("a hint becomes available in %d seconds", remaining),
			CoolingDown:      true,
			RemainingSeconds: remaining,
		}, nil
	}

	failedAttempts := req.FailedAttempts
	if failedAttempts == nil {
		failedAttempts = progress.FailedAttempts
	}
	text := puzzle.BuildContextualHint(def, progress, req.PlayerItems, failedAttempts)

	state.LastHintAt = now
	state.History = append(state.History, text)
	if err := u.HintStates.Save(ctx, state); err != nil {
		return ContextualResponse{}, err
	}

	if u.Events != nil {
		_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
			Type:       puzzle.EventHintServed,
			OccurredAt: now,
			Payload:    map[string]any{"puzzle_id": req.PuzzleID, "kind": "contextual", "hint": text},
		}})
	}
	if u.Metrics != nil {
		u.Metrics.RecordHint("contextual")
	}

	return ContextualResponse{Hint: text}, nil
}

func (u ContextualUseCase) hintState(ctx context.Context, puzzleID string) (puzzle.HintState, error) {
	state, err := u.HintStates.Get(ctx, puzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return puzzle.HintState{PuzzleID: puzzleID}, nil
		}
		return puzzle.HintState{}, err
	}
	return state, nil
}

// SequentialUseCase dispenses the static hint list one entry at a time, capped
// by the difficulty's hint budget.
type SequentialUseCase struct {
	Catalog  ports.PuzzleCatalog
	Progress ports.ProgressRepository
	Events   ports.EventRepository
	Metrics  ports.PuzzleMetrics
	Now      func() time.Time
}

func (u SequentialUseCase) Execute(ctx context.Context, req SequentialRequest) (SequentialResponse, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return SequentialResponse{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return SequentialResponse{}, ports.ErrUnknownPuzzle
	}

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return SequentialResponse{}, ports.ErrPuzzleNotStarted
		}
		return SequentialResponse{}, err
	}

	settings := u.Catalog.Settings(def.Difficulty)
	if progress.UsedHints >= settings.MaxHints {
		return SequentialResponse{Hint: MessageBudgetExhausted, UsedHints: progress.UsedHints, Exhausted: true}, nil
	}
	if progress.UsedHints >= len(def.Hints) {
		return SequentialResponse{Hint: MessageNoHintsAvailable, UsedHints: progress.UsedHints}, nil
	}

	text := def.Hints[progress.UsedHints]
	progress.UsedHints++
	if err := u.Progress.Save(ctx, progress); err != nil {
		return SequentialResponse{}, err
	}

	if u.Events != nil {
		now := time.Now()
		if u.Now != nil {
			now = u.Now()
		}
		_ = u.Events.Append(ctx, req.PuzzleID, []puzzle.Event{{
			Type:       puzzle.EventHintServed,
			OccurredAt: now,
			Payload:    map[string]any{"puzzle_id": req.PuzzleID, "kind": "sequential", "hint": text},
		}})
	}
	if u.Metrics != nil {
		u.Metrics.RecordHint("sequential")
	}

	return SequentialResponse{Hint: text, UsedHints: progress.UsedHints}, nil
}

// StatusUseCase reports hint availability for UI display.
type StatusUseCase struct {
	Catalog    ports.PuzzleCatalog
	Progress   ports.ProgressRepository
	HintStates ports.HintStateRepository
	Now        func() time.Time
}

func (u StatusUseCase) Execute(ctx context.Context, req StatusRequest) (StatusResponse, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" {
		return StatusResponse{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return StatusResponse{}, ports.ErrUnknownPuzzle
	}

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return StatusResponse{}, ports.ErrPuzzleNotStarted
		}
		return StatusResponse{}, err
	}

	var state puzzle.HintState
	if u.HintStates != nil {
		if s, err := u.HintStates.Get(ctx, req.PuzzleID); err == nil {
			state = s
		} else if !errors.Is(err, ports.ErrNotFound) {
			return StatusResponse{}, err
		}
	}

	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}

	settings := u.Catalog.Settings(def.Difficulty)
	remaining, _ := cooldown.Remaining(state.LastHintAt, settings.HintCooldown(), now)

	return StatusResponse{
		UsedHints:         progress.UsedHints,
		MaxHints:          settings.MaxHints,
		RemainingHints:    settings.MaxHints - progress.UsedHints,
		CooldownRemaining: remaining,
		CanUseHint:        remaining == 0 && progress.UsedHints < settings.MaxHints,
		AutoHintAvailable: settings.AutoHintThreshold > 0 && progress.Attempts >= settings.AutoHintThreshold,
		History:           state.History,
	}, nil
}
