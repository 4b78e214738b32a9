package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawtrail/internal/adapter/repo/gorm/model"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type ProgressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return ProgressRepo{db: db}
}

func (r ProgressRepo) Get(ctx context.Context, puzzleID string) (puzzle.Progress, error) {
	var m model.PuzzleProgress
	if err := getDBFromCtx(ctx, r.db).Where("puzzle_id = ?", puzzleID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return puzzle.Progress{}, ports.ErrNotFound
		}
		return puzzle.Progress{}, err
	}
	return decodeProgress(m)
}

func (r ProgressRepo) Create(ctx context.Context, p puzzle.Progress) error {
	m := encodeProgress(p)
	err := getDBFromCtx(ctx, r.db).Create(&m).Error
	if err != nil && isUniqueViolation(err) {
		return ports.ErrConflict
	}
	return err
}

// isUniqueViolation inspects the driver error text directly; gorm only
// translates duplicate-key errors when opened with TranslateError, and the
// pgx message wording is stable.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r ProgressRepo) Save(ctx context.Context, p puzzle.Progress) error {
	m := encodeProgress(p)
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "puzzle_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r ProgressRepo) Delete(ctx context.Context, puzzleID string) error {
	return getDBFromCtx(ctx, r.db).
		Where("puzzle_id = ?", puzzleID).
		Delete(&model.PuzzleProgress{}).Error
}

func (r ProgressRepo) All(ctx context.Context) (map[string]puzzle.Progress, error) {
	var rows []model.PuzzleProgress
	if err := getDBFromCtx(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]puzzle.Progress, len(rows))
	for _, m := range rows {
		p, err := decodeProgress(m)
		if err != nil {
			return nil, err
		}
		out[p.PuzzleID] = p
	}
	return out, nil
}

func (r ProgressRepo) ReplaceAll(ctx context.Context, progress map[string]puzzle.Progress) error {
	db := getDBFromCtx(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.PuzzleProgress{}).Error; err != nil {
			return err
		}
		for _, p := range progress {
			m := encodeProgress(p)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeProgress(p puzzle.Progress) model.PuzzleProgress {
	completed, _ := json.Marshal(p.CompletedStages)
	discovered, _ := json.Marshal(p.DiscoveredCombinations)
	failed, _ := json.Marshal(p.FailedAttempts)
	return model.PuzzleProgress{
		PuzzleID:               p.PuzzleID,
		State:                  string(p.State),
		CurrentStage:           p.CurrentStage,
		UsedHints:              p.UsedHints,
		Attempts:               p.Attempts,
		StartTime:              p.StartTime,
		CompletionTime:         p.CompletionTime,
		CompletedStages:        completed,
		DiscoveredCombinations: discovered,
		FailedAttempts:         failed,
	}
}

func decodeProgress(m model.PuzzleProgress) (puzzle.Progress, error) {
	p := puzzle.Progress{
		PuzzleID:       m.PuzzleID,
		State:          puzzle.State(m.State),
		CurrentStage:   m.CurrentStage,
		UsedHints:      m.UsedHints,
		Attempts:       m.Attempts,
		StartTime:      m.StartTime,
		CompletionTime: m.CompletionTime,
	}
	if len(m.CompletedStages) > 0 {
		if err := json.Unmarshal(m.CompletedStages, &p.CompletedStages); err != nil {
			return puzzle.Progress{}, err
		}
	}
	if len(m.DiscoveredCombinations) > 0 {
		if err := json.Unmarshal(m.DiscoveredCombinations, &p.DiscoveredCombinations); err != nil {
			return puzzle.Progress{}, err
		}
	}
	if len(m.FailedAttempts) > 0 {
		if err := json.Unmarshal(m.FailedAttempts, &p.FailedAttempts); err != nil {
			return puzzle.Progress{}, err
		}
	}
	return p, nil
}

var _ ports.ProgressRepository = ProgressRepo{}
