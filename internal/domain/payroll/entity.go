package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryConfig is the per-user compensation policy. At most one row per user;
// finance upserts it, it is never deleted.
type SalaryConfig struct {
	ID            string
	UserID        string
	BasicSalary   decimal.Decimal
	Allowance     decimal.Decimal
	MealAllowance decimal.Decimal // paid per day present
	LateDeduction decimal.Decimal // charged per late event
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Metadata carries the attendance counts a record was computed from, so a
// slip can be reproduced after the underlying attendance data changes.
type Metadata struct {
	TotalHadir int `json:"totalHadir"`
	TotalTelat int `json:"totalTelat"`
}

// Record is one computed payroll outcome for a (user, month). Records are
// insert-only: re-issuing the same month creates a fresh row rather than
// updating the old one, so duplicates per (user, month) are expected.
type Record struct {
	ID                 string
	UserID             string
	Month              string // YYYY-MM
	BasicSalary        decimal.Decimal
	Allowance          decimal.Decimal
	TotalMealAllowance decimal.Decimal
	Bonus              decimal.Decimal
	Deductions         decimal.Decimal
	NetSalary          decimal.Decimal
	IsSent             bool
	ProcessedAt        time.Time
	Metadata           Metadata

	// DTO / Join
	UserName *string
}
