package attendance

import (
	"regexp"

	"github.com/sdm-erp/erp-backend-go/internal/pkg/validator"
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether s is a "YYYY-MM" month key.
func IsValidMonth(s string) bool {
	return monthRegex.MatchString(s)
}

type RecordResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName *string `json:"user_name,omitempty"`
	Date     string  `json:"date"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out,omitempty"`
	IsLate   bool    `json:"is_late"`
}

type StatsResponse struct {
	UserID       string `json:"user_id"`
	Month        string `json:"month"`
	TotalPresent int    `json:"total_present"`
	TotalLate    int    `json:"total_late"`
}

type MonthQuery struct {
	UserID string
	Month  string
}

func (q *MonthQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
