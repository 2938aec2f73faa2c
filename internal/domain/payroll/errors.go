package payroll

import "errors"

var (
	// ErrNotConfigured - the user has no salary config; skip, don't crash.
	ErrNotConfigured = errors.New("user has no salary config")
	// ErrNotificationTargetMissing - no Telegram chat id or no bot token.
	ErrNotificationTargetMissing = errors.New("telegram chat id or bot token not configured")
	// ErrDeliveryFailed - the Telegram API rejected the document send. The
	// wrapped cause distinguishes a bad token from a bad chat id.
	ErrDeliveryFailed = errors.New("slip delivery failed")

	ErrSalaryConfigNotFound = errors.New("salary config not found")
	ErrRecordNotFound       = errors.New("payroll record not found")
)
