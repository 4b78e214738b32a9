package memory

import "context"

// TxManager is a pass-through: the memory repos lock per operation and the
// engine is driven by one synchronous caller, so there is nothing to roll
// back. Callers serialize calls per puzzle id.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
