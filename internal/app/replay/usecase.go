package replay

import (
	"context"
	"errors"
	"strings"

	"pawtrail/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase lists the event trail for one puzzle, most recent first. Collaborators
// poll it instead of registering callbacks.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PuzzleID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByPuzzleID(ctx, req.PuzzleID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}
