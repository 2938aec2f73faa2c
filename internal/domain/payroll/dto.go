package payroll

import (
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY CONFIG DTOs ==========

type UpsertSalaryConfigRequest struct {
	UserID        string          `json:"user_id"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Allowance     decimal.Decimal `json:"allowance"`
	MealAllowance decimal.Decimal `json:"meal_allowance"`
	LateDeduction decimal.Decimal `json:"late_deduction"`
}

func (r *UpsertSalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Allowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be non-negative"})
	}
	if r.MealAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meal_allowance", Message: "must be non-negative"})
	}
	if r.LateDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryConfigResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Allowance     decimal.Decimal `json:"allowance"`
	MealAllowance decimal.Decimal `json:"meal_allowance"`
	LateDeduction decimal.Decimal `json:"late_deduction"`
}

func ToSalaryConfigResponse(c SalaryConfig) SalaryConfigResponse {
	return SalaryConfigResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		BasicSalary:   c.BasicSalary,
		Allowance:     c.Allowance,
		MealAllowance: c.MealAllowance,
		LateDeduction: c.LateDeduction,
	}
}

// ========== ISSUANCE DTOs ==========

type IssueSlipRequest struct {
	UserID string          `json:"user_id"`
	Month  string          `json:"month"`
	Bonus  decimal.Decimal `json:"bonus"`
}

func (r *IssueSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !attendance.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IssueBulkRequest struct {
	Month string `json:"month"`
}

func (r *IssueBulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !attendance.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IssueSlipResponse struct {
	Sent   bool           `json:"sent"`
	Record RecordResponse `json:"record"`
}

type BulkResult struct {
	SentCount   int `json:"sent_count"`
	FailedCount int `json:"failed_count"`
}

// ========== RECORD DTOs ==========

type RecordResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	UserName           *string         `json:"user_name,omitempty"`
	Month              string          `json:"month"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	Allowance          decimal.Decimal `json:"allowance"`
	TotalMealAllowance decimal.Decimal `json:"total_meal_allowance"`
	Bonus              decimal.Decimal `json:"bonus"`
	Deductions         decimal.Decimal `json:"deductions"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	IsSent             bool            `json:"is_sent"`
	ProcessedAt        string          `json:"processed_at"`
	Metadata           Metadata        `json:"metadata"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		UserName:           r.UserName,
		Month:              r.Month,
		BasicSalary:        r.BasicSalary,
		Allowance:          r.Allowance,
		TotalMealAllowance: r.TotalMealAllowance,
		Bonus:              r.Bonus,
		Deductions:         r.Deductions,
		NetSalary:          r.NetSalary,
		IsSent:             r.IsSent,
		ProcessedAt:        r.ProcessedAt.Format(time.RFC3339),
		Metadata:           r.Metadata,
	}
}

func ToRecordResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}

type RecordFilter struct {
	UserID *string
	Month  *string
	Page   int
	Limit  int
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
