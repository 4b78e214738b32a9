package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawtrail/internal/adapter/repo/gorm/model"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/puzzle"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, puzzleID string, events []puzzle.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.PuzzleEvent, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return err
		}
		rows = append(rows, model.PuzzleEvent{
			PuzzleID:   puzzleID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    payload,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPuzzleID(ctx context.Context, puzzleID string, limit int) ([]puzzle.Event, error) {
	q := getDBFromCtx(ctx, r.db).
		Where("puzzle_id = ?", puzzleID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "occurred_at"}, Desc: true})
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.PuzzleEvent
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]puzzle.Event, 0, len(rows))
	for _, m := range rows {
		e := puzzle.Event{Type: m.Type, OccurredAt: m.OccurredAt}
		if len(m.Payload) > 0 {
			if err := json.Unmarshal(m.Payload, &e.Payload); err != nil {
				return nil, err
			}
		}
		out = append(out, e)
	}
	return out, nil
}

var _ ports.EventRepository = EventRepo{}
