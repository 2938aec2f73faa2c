package payroll

import "context"

type PayrollService interface {
	// Salary configs
	UpsertSalaryConfig(ctx context.Context, req UpsertSalaryConfigRequest) (SalaryConfigResponse, error)
	GetSalaryConfig(ctx context.Context, userID string) (SalaryConfigResponse, error)
	ListSalaryConfigs(ctx context.Context) ([]SalaryConfigResponse, error)

	// Issuance. IssueSlip runs the full pipeline for one user: aggregate
	// attendance, compute the slip, render the PDF, deliver it over
	// Telegram and only then persist the record with its ledger journal.
	// IssueBulk runs the same pipeline for every payable user sequentially;
	// per-user failures are counted, never aborting the run.
	IssueSlip(ctx context.Context, req IssueSlipRequest) (IssueSlipResponse, error)
	IssueBulk(ctx context.Context, req IssueBulkRequest) (BulkResult, error)

	// Records
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordResponse, error)
}
