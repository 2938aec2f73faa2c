package payroll

import (
	"testing"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testConfig() *SalaryConfig {
	return &SalaryConfig{
		UserID:        "u1",
		BasicSalary:   d(5_000_000),
		Allowance:     d(500_000),
		MealAllowance: d(25_000),
		LateDeduction: d(50_000),
	}
}

func TestCalculateFullMonth(t *testing.T) {
	stats := attendance.Stats{TotalPresent: 20, TotalLate: 3}

	rec := Calculate(testConfig(), stats, "2024-03", decimal.Zero)
	require.NotNil(t, rec)

	// 5.000.000 + 500.000 + 20*25.000 - 3*50.000
	assert.True(t, rec.TotalMealAllowance.Equal(d(500_000)), "meal allowance: %s", rec.TotalMealAllowance)
	assert.True(t, rec.Deductions.Equal(d(150_000)), "deductions: %s", rec.Deductions)
	assert.True(t, rec.NetSalary.Equal(d(5_850_000)), "net salary: %s", rec.NetSalary)
	assert.Equal(t, "2024-03", rec.Month)
	assert.Equal(t, 20, rec.Metadata.TotalHadir)
	assert.Equal(t, 3, rec.Metadata.TotalTelat)
	assert.False(t, rec.IsSent)
}

func TestCalculateZeroAttendance(t *testing.T) {
	rec := Calculate(testConfig(), attendance.Stats{}, "2024-03", decimal.Zero)
	require.NotNil(t, rec)

	// Basic and allowance are paid regardless of presence
	assert.True(t, rec.TotalMealAllowance.IsZero())
	assert.True(t, rec.Deductions.IsZero())
	assert.True(t, rec.NetSalary.Equal(d(5_500_000)), "net salary: %s", rec.NetSalary)
}

func TestCalculateBonus(t *testing.T) {
	stats := attendance.Stats{TotalPresent: 20, TotalLate: 3}

	rec := Calculate(testConfig(), stats, "2024-03", d(1_000_000))
	require.NotNil(t, rec)

	assert.True(t, rec.NetSalary.Equal(d(6_850_000)), "net salary: %s", rec.NetSalary)
}

func TestCalculateNegativeNetNotClamped(t *testing.T) {
	cfg := &SalaryConfig{
		UserID:        "u1",
		BasicSalary:   d(1_000_000),
		LateDeduction: d(200_000),
	}
	stats := attendance.Stats{TotalPresent: 0, TotalLate: 10}

	rec := Calculate(cfg, stats, "2024-03", decimal.Zero)
	require.NotNil(t, rec)

	assert.True(t, rec.NetSalary.Equal(d(-1_000_000)), "net salary: %s", rec.NetSalary)
}

func TestCalculateNilConfig(t *testing.T) {
	rec := Calculate(nil, attendance.Stats{TotalPresent: 20}, "2024-03", decimal.Zero)
	assert.Nil(t, rec)
}

func TestCalculateExactDecimals(t *testing.T) {
	cfg := &SalaryConfig{
		UserID:        "u1",
		BasicSalary:   decimal.RequireFromString("5000000.10"),
		MealAllowance: decimal.RequireFromString("0.01"),
	}
	stats := attendance.Stats{TotalPresent: 3}

	rec := Calculate(cfg, stats, "2024-03", decimal.Zero)
	require.NotNil(t, rec)

	assert.True(t, rec.NetSalary.Equal(decimal.RequireFromString("5000000.13")), "net salary: %s", rec.NetSalary)
}
