package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func splitRequest(total string, amounts ...string) *CreateSplitRequest {
	req := CreateSplitRequest{
		Type:  "out",
		Total: decimal.RequireFromString(total),
	}
	for _, a := range amounts {
		req.Entries = append(req.Entries, SplitEntry{
			Category: CategoryOperational,
			Amount:   decimal.RequireFromString(a),
		})
	}
	return &req
}

func TestSplitBalanced(t *testing.T) {
	assert.True(t, splitRequest("100.00", "60.00", "40.00").Balanced())
	assert.True(t, splitRequest("100", "33.33", "33.33", "33.34").Balanced())

	assert.False(t, splitRequest("100.00", "60.00", "40.01").Balanced())
	assert.False(t, splitRequest("100.00", "99.99").Balanced())
}

func TestSplitValidate(t *testing.T) {
	req := splitRequest("100.00", "60.00", "40.00")
	assert.NoError(t, req.Validate())

	single := splitRequest("100.00", "100.00")
	assert.Error(t, single.Validate(), "a split needs at least two entries")

	badType := splitRequest("100.00", "60.00", "40.00")
	badType.Type = "transfer"
	assert.Error(t, badType.Validate())

	negative := splitRequest("100.00", "120.00", "-20.00")
	assert.Error(t, negative.Validate())
}

func TestCreateTransactionValidate(t *testing.T) {
	req := CreateTransactionRequest{
		Type:     "in",
		Category: CategorySales,
		Amount:   decimal.NewFromInt(250_000),
		Date:     "2024-03-01",
	}
	assert.NoError(t, req.Validate())

	req.Amount = decimal.Zero
	assert.Error(t, req.Validate())

	req.Amount = decimal.NewFromInt(1)
	req.Date = "01-03-2024"
	assert.Error(t, req.Validate())
}
