package combine

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

var ErrInvalidRequest = errors.New("invalid combine request")

type UseCase struct {
	TxManager ports.TxManager
	Catalog   ports.PuzzleCatalog
	Progress  ports.ProgressRepository
	Events    ports.EventRepository
	Metrics   ports.PuzzleMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PuzzleID = strings.TrimSpace(req.PuzzleID)
	if req.PuzzleID == "" || len(req.Items) == 0 {
		return Response{}, ErrInvalidRequest
	}

	def, ok := u.Catalog.Definition(req.PuzzleID)
	if !ok {
		return Response{}, ports.ErrUnknownPuzzle
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.runInTx(ctx, func(txCtx context.Context) error {
		progress, err := u.Progress.Get(txCtx, req.PuzzleID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ports.ErrPuzzleNotStarted
			}
			return err
		}

		outcome := puzzle.ResolveCombination(def, &progress, req.Items)
		if err := u.Progress.Save(txCtx, progress); err != nil {
			return err
		}

		if u.Events != nil {
			_ = u.Events.Append(txCtx, req.PuzzleID, []puzzle.Event{{
				Type:       puzzle.EventCombinationChecked,
				OccurredAt: nowFn(),
				Payload: map[string]any{
					"puzzle_id": req.PuzzleID,
					"items":     req.Items,
					"matched":   outcome.Matched,
					"result":    outcome.Result,
				},
			}})
		}

		out = Response{
			Matched:        outcome.Matched,
			Result:         outcome.Result,
			Message:        outcome.Message,
			FirstDiscovery: outcome.FirstDiscovery,
			Attempts:       progress.Attempts,
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordAttempt(out.Matched)
		if out.FirstDiscovery {
			u.Metrics.RecordDiscovery()
		}
	}
	return out, nil
}

func (u UseCase) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.TxManager == nil {
		return fn(ctx)
	}
	return u.TxManager.RunInTx(ctx, fn)
}
