package finance

import (
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	UnitID      *string         `json:"unit_id,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD, defaults to today
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeIn) && r.Type != string(TypeOut) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'in' or 'out'"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if r.Amount.IsNegative() || r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SplitEntry is one leg of a split-journal submission.
type SplitEntry struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateSplitRequest books one receipt as multiple ledger rows. The entries
// must sum exactly to Total.
type CreateSplitRequest struct {
	UnitID  *string         `json:"unit_id,omitempty"`
	Date    string          `json:"date"`
	Type    string          `json:"type"`
	Total   decimal.Decimal `json:"total"`
	Entries []SplitEntry    `json:"entries"`
}

func (r *CreateSplitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeIn) && r.Type != string(TypeOut) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'in' or 'out'"})
	}
	if len(r.Entries) < 2 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "a split needs at least two entries"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.Category) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "every entry needs a category"})
			break
		}
		if e.Amount.IsNegative() || e.Amount.IsZero() {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "every entry amount must be positive"})
			break
		}
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Balanced reports whether the entries sum exactly to Total.
func (r *CreateSplitRequest) Balanced() bool {
	sum := decimal.Zero
	for _, e := range r.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum.Equal(r.Total)
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	UnitID      *string         `json:"unit_id,omitempty"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	RefID       *string         `json:"ref_id,omitempty"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UnitID:      t.UnitID,
		Date:        t.Date.Format("2006-01-02"),
		Type:        string(t.Type),
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		RefID:       t.RefID,
	}
}

type Filter struct {
	UnitID   *string
	Type     *string
	Category *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

type ListResponse struct {
	Data       []TransactionResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}
