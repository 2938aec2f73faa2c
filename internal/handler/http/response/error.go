package response

import (
	"errors"
	"net/http"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/auth"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/domain/project"
	"github.com/sdm-erp/erp-backend-go/internal/domain/unit"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/telegram"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrActionNotPermitted):
		Forbidden(w, "Action not permitted for this role")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance record for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Payroll domain errors. Delivery failures carry the Telegram cause so
	// a bad bot token and a bad chat id surface differently.
	case errors.Is(err, payroll.ErrDeliveryFailed):
		switch {
		case errors.Is(err, telegram.ErrUnauthorized):
			BadGateway(w, "Slip delivery failed: Telegram rejected the bot token")
		case errors.Is(err, telegram.ErrChatNotFound):
			BadGateway(w, "Slip delivery failed: Telegram chat not found")
		default:
			BadGateway(w, "Slip delivery failed")
		}
	case errors.Is(err, payroll.ErrNotConfigured):
		BadRequest(w, "User has no salary config", nil)
	case errors.Is(err, payroll.ErrNotificationTargetMissing):
		BadRequest(w, "Telegram chat id or bot token not configured", nil)
	case errors.Is(err, telegram.ErrNotConfigured):
		BadRequest(w, "Telegram bot token not configured", nil)
	case errors.Is(err, payroll.ErrSalaryConfigNotFound):
		NotFound(w, "Salary config not found")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Finance domain errors
	case errors.Is(err, finance.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, finance.ErrUnbalancedSplit):
		BadRequest(w, "Split entries do not sum to the stated total", nil)
	case errors.Is(err, finance.ErrInvalidType):
		BadRequest(w, "Transaction type must be 'in' or 'out'", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, project.ErrInvalidTransition):
		Conflict(w, "Status transition not allowed")
	case errors.Is(err, project.ErrNotAssigneeOrManager):
		Forbidden(w, "Only the assignee or a project manager can move this task")

	// Unit domain errors
	case errors.Is(err, unit.ErrUnitNotFound):
		NotFound(w, "Unit not found")
	case errors.Is(err, unit.ErrUnitNameExists):
		Conflict(w, "Unit name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
