package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Catalog  ports.PuzzleCatalog
	Progress ports.ProgressRepository
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

	out := Response{
		PuzzleID:    def.ID,
		Title:       def.Title,
		Description: def.Description,
		Difficulty:  def.Difficulty,
		State:       puzzle.StateNotStarted,
	}

	progress, err := u.Progress.Get(ctx, req.PuzzleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return out, nil
		}
		return Response{}, err
	}

	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}

	out.State = progress.State
	out.CurrentStage = progress.CurrentStage
	out.CompletedStages = progress.CompletedStages
	out.UsedHints = progress.UsedHints
	out.Attempts = progress.Attempts
	out.DiscoveredCombinations = progress.DiscoveredCombinations
	out.ElapsedSeconds = int64(progress.Elapsed(now) / time.Second)
	return out, nil
}

type ListUseCase struct {
	Catalog ports.PuzzleCatalog
}

func (u ListUseCase) Execute(_ context.Context, _ ListRequest) (ListResponse, error) {
	defs := u.Catalog.All()
	out := ListResponse{Puzzles: make([]PuzzleSummary, 0, len(defs))}
	for _, def := range defs {
		category := def.Category
		if category == "" {
			category = "general"
		}
		out.Puzzles = append(out.Puzzles, PuzzleSummary{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Difficulty:  def.Difficulty,
			Category:    category,
		})
	}
	return out, nil
}
