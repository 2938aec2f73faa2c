package finance

import "context"

type FinanceService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	// CreateSplit books one receipt as multiple ledger rows atomically. The
	// entries must sum exactly to the submitted total.
	CreateSplit(ctx context.Context, req CreateSplitRequest) ([]TransactionResponse, error)
	GetByID(ctx context.Context, id string) (TransactionResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
