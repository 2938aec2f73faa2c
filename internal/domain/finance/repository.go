package finance

import "context"

type Repository interface {
	Create(ctx context.Context, txn Transaction) (Transaction, error)
	// CreateBatch inserts all rows atomically; none are committed when any
	// insert fails.
	CreateBatch(ctx context.Context, txns []Transaction) ([]Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter Filter) ([]Transaction, int64, error)
}
