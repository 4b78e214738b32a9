package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// The combine flow resolves and saves progress atomically: TxManager opens
// the transaction and stashes the *gorm.DB in the context, and every repo
// method routes through getDBFromCtx so the same connection serves the whole
// batch whether or not a transaction is active.

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func getDBFromCtx(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}
