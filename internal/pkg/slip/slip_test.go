package slip

import (
	"testing"
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/config"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() payroll.Record {
	return payroll.Record{
		UserID:             "u1",
		Month:              "2024-03",
		BasicSalary:        decimal.NewFromInt(5_000_000),
		Allowance:          decimal.NewFromInt(500_000),
		TotalMealAllowance: decimal.NewFromInt(500_000),
		Deductions:         decimal.NewFromInt(150_000),
		NetSalary:          decimal.NewFromInt(5_850_000),
		ProcessedAt:        time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		Metadata:           payroll.Metadata{TotalHadir: 20, TotalTelat: 3},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer(config.CompanyProfile{
		Name:         "PT Contoh Sejahtera",
		Address:      "Jl. Sudirman 1, Jakarta",
		LogoPosition: "left",
		TextAlign:    "center",
	})

	data, err := renderer.Render(user.User{Name: "Budi", Email: "budi@example.com"}, testRecord())
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderAllLayouts(t *testing.T) {
	for _, pos := range []string{"top", "left", "right"} {
		for _, align := range []string{"left", "center", "right"} {
			renderer := NewRenderer(config.CompanyProfile{
				Name:         "PT Contoh",
				LogoPosition: pos,
				TextAlign:    align,
			})
			data, err := renderer.Render(user.User{Name: "Budi"}, testRecord())
			require.NoError(t, err, "pos=%s align=%s", pos, align)
			assert.NotEmpty(t, data)
		}
	}
}

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5850000", "Rp 5.850.000"},
		{"0", "Rp 0"},
		{"999", "Rp 999"},
		{"1000", "Rp 1.000"},
		{"-1000000", "Rp -1.000.000"},
		{"5850000.49", "Rp 5.850.000"}, // rounded at formatting time only
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatIDR(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Maret 2024", periodLabel("2024-03"))
	assert.Equal(t, "Desember 2023", periodLabel("2023-12"))
	assert.Equal(t, "not-a-month", periodLabel("not-a-month"))
}
