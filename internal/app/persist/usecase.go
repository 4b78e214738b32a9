package persist

import (
	"context"

	"pawtrail/internal/app/ports"
)

// SaveUseCase writes the full progress map to the durable snapshot store.
type SaveUseCase struct {
	Progress  ports.ProgressRepository
	Snapshots ports.ProgressSnapshotStore
}

func (u SaveUseCase) Execute(ctx context.Context, _ SaveRequest) (SaveResponse, error) {
	all, err := u.Progress.All(ctx)
	if err != nil {
		return SaveResponse{}, err
	}
	if err := u.Snapshots.Save(ctx, all); err != nil {
		return SaveResponse{}, err
	}
	return SaveResponse{Saved: len(all)}, nil
}

// LoadUseCase restores progress from the snapshot store. A missing snapshot is
// a fresh start, not an error; a corrupt one fails the call and leaves the
// in-memory state untouched.
type LoadUseCase struct {
	Progress  ports.ProgressRepository
	Snapshots ports.ProgressSnapshotStore
}

func (u LoadUseCase) Execute(ctx context.Context, _ LoadRequest) (LoadResponse, error) {
	snapshot, found, err := u.Snapshots.Load(ctx)
	if err != nil {
		return LoadResponse{}, err
	}
	if !found {
		return LoadResponse{Found: false}, nil
	}
	if err := u.Progress.ReplaceAll(ctx, snapshot); err != nil {
		return LoadResponse{}, err
	}
	return LoadResponse{Found: true, Loaded: len(snapshot)}, nil
}
