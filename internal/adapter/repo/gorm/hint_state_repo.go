package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawtrail/internal/adapter/repo/gorm/model"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type HintStateRepo struct {
	db *gorm.DB
}

func NewHintStateRepo(db *gorm.DB) HintStateRepo {
	return HintStateRepo{db: db}
}

func (r HintStateRepo) Get(ctx context.Context, puzzleID string) (puzzle.HintState, error) {
	var m model.HintState
	if err := getDBFromCtx(ctx, r.db).Where("puzzle_id = ?", puzzleID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return puzzle.HintState{}, ports.ErrNotFound
		}
		return puzzle.HintState{}, err
	}
	out := puzzle.HintState{PuzzleID: m.PuzzleID, LastHintAt: m.LastHintAt}
	if len(m.History) > 0 {
		if err := json.Unmarshal(m.History, &out.History); err != nil {
			return puzzle.HintState{}, err
		}
	}
	return out, nil
}

func (r HintStateRepo) Save(ctx context.Context, s puzzle.HintState) error {
	history, _ := json.Marshal(s.History)
	m := model.HintState{PuzzleID: s.PuzzleID, LastHintAt: s.LastHintAt, History: history}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "puzzle_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r HintStateRepo) Delete(ctx context.Context, puzzleID string) error {
	return getDBFromCtx(ctx, r.db).
		Where("puzzle_id = ?", puzzleID).
		Delete(&model.HintState{}).Error
}

var _ ports.HintStateRepository = HintStateRepo{}
