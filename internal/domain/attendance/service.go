package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's attendance record for the authenticated user.
	// Lateness is decided against the configured workday start.
	ClockIn(ctx context.Context) (RecordResponse, error)
	// ClockOut completes today's open record.
	ClockOut(ctx context.Context) (RecordResponse, error)
	// MonthlyStats folds a user's records for one month into presence and
	// lateness counts.
	MonthlyStats(ctx context.Context, query MonthQuery) (StatsResponse, error)
	ListByUserMonth(ctx context.Context, query MonthQuery) ([]RecordResponse, error)
}
