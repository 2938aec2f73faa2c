package payroll

import (
	"context"

	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
)

type Repository interface {
	// Salary configs
	GetSalaryConfig(ctx context.Context, userID string) (SalaryConfig, error)
	UpsertSalaryConfig(ctx context.Context, cfg SalaryConfig) (SalaryConfig, error)
	ListSalaryConfigs(ctx context.Context) ([]SalaryConfig, error)

	// Records. CreateRecordWithJournal persists the record and its
	// auto-journal ledger row in one database transaction; neither is
	// committed when either insert fails. Inserts only - re-issuing a month
	// adds a new row.
	CreateRecordWithJournal(ctx context.Context, rec Record, txn finance.Transaction) (Record, error)
	GetRecordByID(ctx context.Context, id string) (Record, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
}
