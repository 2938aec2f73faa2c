package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
)

// SlipRenderer renders a payroll record into a deliverable document.
type SlipRenderer interface {
	Render(u user.User, rec payroll.Record) ([]byte, error)
}

// SlipSender delivers documents to a Telegram chat.
type SlipSender interface {
	Configured() bool
	SendDocument(chatID string, filename string, data []byte, caption string) error
}

type PayrollServiceImpl struct {
	payrollRepo    payroll.Repository
	userRepo       user.Repository
	attendanceRepo attendance.Repository
	renderer       SlipRenderer
	sender         SlipSender
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	userRepo user.Repository,
	attendanceRepo attendance.Repository,
	renderer SlipRenderer,
	sender SlipSender,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		renderer:       renderer,
		sender:         sender,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// ========== SALARY CONFIGS ==========

// UpsertSalaryConfig implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertSalaryConfig(ctx context.Context, req payroll.UpsertSalaryConfigRequest) (payroll.SalaryConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	// The config must point at a real user
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	saved, err := s.payrollRepo.UpsertSalaryConfig(ctx, payroll.SalaryConfig{
		UserID:        req.UserID,
		BasicSalary:   req.BasicSalary,
		Allowance:     req.Allowance,
		MealAllowance: req.MealAllowance,
		LateDeduction: req.LateDeduction,
	})
	if err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	return payroll.ToSalaryConfigResponse(saved), nil
}

// GetSalaryConfig implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryConfig(ctx context.Context, userID string) (payroll.SalaryConfigResponse, error) {
	cfg, err := s.payrollRepo.GetSalaryConfig(ctx, userID)
	if err != nil {
		return payroll.SalaryConfigResponse{}, err
	}
	return payroll.ToSalaryConfigResponse(cfg), nil
}

// ListSalaryConfigs implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSalaryConfigs(ctx context.Context) ([]payroll.SalaryConfigResponse, error) {
	configs, err := s.payrollRepo.ListSalaryConfigs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SalaryConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		result = append(result, payroll.ToSalaryConfigResponse(cfg))
	}
	return result, nil
}

// ========== RECORDS ==========

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	// Employees may only read their own slips
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if rec.UserID != userID && !user.Can(role, user.ActionPayrollViewAll) {
		return payroll.RecordResponse{}, user.ErrActionNotPermitted
	}

	return payroll.ToRecordResponse(rec), nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	// Without the view-all capability the list is forced to the caller's own
	if !user.Can(role, user.ActionPayrollViewAll) {
		filter.UserID = &userID
	}

	if filter.Month != nil && !attendance.IsValidMonth(*filter.Month) {
		return payroll.ListRecordResponse{}, attendance.ErrInvalidMonth
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	return payroll.ListRecordResponse{
		Data:       payroll.ToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
