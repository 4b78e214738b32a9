package memory

import (
	"context"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/item"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) Get(_ context.Context, playerID string) (item.Inventory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	inv, ok := r.store.inventories[playerID]
	if !ok {
		return item.Inventory{}, ports.ErrNotFound
	}
	return inv, nil
}

func (r InventoryRepo) Save(_ context.Context, playerID string, inv item.Inventory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.inventories[playerID] = inv
	return nil
}

var _ ports.InventoryRepository = InventoryRepo{}
