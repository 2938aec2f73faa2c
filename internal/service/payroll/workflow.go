package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
)

// IssueSlip implements payroll.PayrollService. The pipeline is strictly
// ordered: compute, render, deliver, persist. Nothing is written until the
// slip has actually reached the employee, and the record plus its ledger
// journal then land in one database transaction.
func (s *PayrollServiceImpl) IssueSlip(ctx context.Context, req payroll.IssueSlipRequest) (payroll.IssueSlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.IssueSlipResponse{}, err
	}

	issuerID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.IssueSlipResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return payroll.IssueSlipResponse{}, err
	}

	rec, err := s.issue(ctx, u, req, issuerID)
	if err != nil {
		return payroll.IssueSlipResponse{}, err
	}

	return payroll.IssueSlipResponse{
		Sent:   rec.IsSent,
		Record: payroll.ToRecordResponse(rec),
	}, nil
}

// IssueBulk implements payroll.PayrollService. Users are processed one at a
// time in a stable order; a failure for one user is counted and logged, never
// aborting the rest of the run. Owners are not payable and are skipped
// without counting either way.
func (s *PayrollServiceImpl) IssueBulk(ctx context.Context, req payroll.IssueBulkRequest) (payroll.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkResult{}, err
	}

	issuerID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	var result payroll.BulkResult
	for _, u := range users {
		if u.IsOwner() {
			continue
		}

		slipReq := payroll.IssueSlipRequest{UserID: u.ID, Month: req.Month}
		if _, err := s.issue(ctx, u, slipReq, issuerID); err != nil {
			slog.Warn("Slip issuance failed for user",
				"user_id", u.ID, "month", req.Month, "error", err)
			result.FailedCount++
			continue
		}
		result.SentCount++
	}

	slog.Info("Bulk payroll run finished",
		"month", req.Month, "sent", result.SentCount, "failed", result.FailedCount)

	return result, nil
}

func (s *PayrollServiceImpl) issue(ctx context.Context, u user.User, req payroll.IssueSlipRequest, issuerID string) (payroll.Record, error) {
	cfg, err := s.payrollRepo.GetSalaryConfig(ctx, u.ID)
	if err != nil {
		if errors.Is(err, payroll.ErrSalaryConfigNotFound) {
			return payroll.Record{}, fmt.Errorf("%w: user %s", payroll.ErrNotConfigured, u.ID)
		}
		return payroll.Record{}, err
	}

	records, err := s.attendanceRepo.ListByUserMonth(ctx, u.ID, req.Month)
	if err != nil {
		return payroll.Record{}, err
	}
	stats := attendance.Aggregate(records, u.ID, req.Month)

	rec := payroll.Calculate(&cfg, stats, req.Month, req.Bonus)

	document, err := s.renderer.Render(u, *rec)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to render slip: %w", err)
	}

	if u.TelegramChatID == nil || *u.TelegramChatID == "" || !s.sender.Configured() {
		return payroll.Record{}, fmt.Errorf("%w: user %s", payroll.ErrNotificationTargetMissing, u.ID)
	}

	filename := fmt.Sprintf("slip-gaji-%s-%s.pdf", req.Month, u.ID)
	caption := fmt.Sprintf("Slip gaji %s", req.Month)
	if err := s.sender.SendDocument(*u.TelegramChatID, filename, document, caption); err != nil {
		return payroll.Record{}, errors.Join(payroll.ErrDeliveryFailed, err)
	}

	rec.IsSent = true
	journal := finance.Transaction{
		UnitID:      u.UnitID,
		Date:        time.Now(),
		Type:        finance.TypeOut,
		Category:    finance.CategorySalary,
		Amount:      rec.NetSalary,
		Description: fmt.Sprintf("Gaji %s %s", u.Name, req.Month),
		CreatedBy:   &issuerID,
	}

	created, err := s.payrollRepo.CreateRecordWithJournal(ctx, *rec, journal)
	if err != nil {
		return payroll.Record{}, err
	}

	return created, nil
}
