package payroll

import (
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Calculate combines a salary config with aggregated attendance counts into a
// payroll record. A nil config yields a nil record: the user is not
// configured for payroll and callers must skip, never fail.
//
// All arithmetic is exact decimal; nothing is rounded here. Net salary is not
// clamped, so deductions larger than gross pay produce a negative net.
func Calculate(cfg *SalaryConfig, stats attendance.Stats, month string, bonus decimal.Decimal) *Record {
	if cfg == nil {
		return nil
	}

	totalMealAllowance := cfg.MealAllowance.Mul(decimal.NewFromInt(int64(stats.TotalPresent)))
	deductions := cfg.LateDeduction.Mul(decimal.NewFromInt(int64(stats.TotalLate)))

	netSalary := cfg.BasicSalary.
		Add(cfg.Allowance).
		Add(totalMealAllowance).
		Add(bonus).
		Sub(deductions)

	return &Record{
		UserID:             cfg.UserID,
		Month:              month,
		BasicSalary:        cfg.BasicSalary,
		Allowance:          cfg.Allowance,
		TotalMealAllowance: totalMealAllowance,
		Bonus:              bonus,
		Deductions:         deductions,
		NetSalary:          netSalary,
		ProcessedAt:        time.Now(),
		Metadata: Metadata{
			TotalHadir: stats.TotalPresent,
			TotalTelat: stats.TotalLate,
		},
	}
}
