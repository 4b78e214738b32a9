package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"pawtrail/internal/app/ports"
)

// TxManager wraps fn in a database transaction. Repo calls made through the
// returned context hit the transaction instead of the base connection.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

var _ ports.TxManager = TxManager{}
