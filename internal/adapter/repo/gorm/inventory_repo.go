package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawtrail/internal/adapter/repo/gorm/model"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/item"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return InventoryRepo{db: db}
}

func (r InventoryRepo) Get(ctx context.Context, playerID string) (item.Inventory, error) {
	var m model.PlayerInventory
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item.Inventory{}, ports.ErrNotFound
		}
		return item.Inventory{}, err
	}
	inv := item.Inventory{Size: m.Size}
	if len(m.Slots) > 0 {
		if err := json.Unmarshal(m.Slots, &inv.Slots); err != nil {
			return item.Inventory{}, err
		}
	}
	return inv, nil
}

func (r InventoryRepo) Save(ctx context.Context, playerID string, inv item.Inventory) error {
	slots, _ := json.Marshal(inv.Slots)
	m := model.PlayerInventory{PlayerID: playerID, Size: inv.Size, Slots: slots}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

var _ ports.InventoryRepository = InventoryRepo{}
