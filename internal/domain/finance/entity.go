package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIn  TransactionType = "in"
	TypeOut TransactionType = "out"
)

const (
	CategorySalary      = "SALARY"
	CategoryOperational = "OPERATIONAL"
	CategorySales       = "SALES"
	CategoryOther       = "OTHER"
)

// Transaction is one ledger row. Payroll issuance creates one automatically
// (the auto-journal) in the same database transaction as the payroll record.
type Transaction struct {
	ID          string
	UnitID      *string
	Date        time.Time
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	// RefID points at the payroll record for auto-journal rows.
	RefID     *string
	CreatedBy *string
	CreatedAt time.Time
}
