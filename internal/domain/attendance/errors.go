package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNotClockedIn     = errors.New("no open attendance record for today")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
)
