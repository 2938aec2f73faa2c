package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetOpenByUserDate(ctx context.Context, userID string, date time.Time) (Record, error)
	CompleteClockOut(ctx context.Context, id string, clockOut time.Time) error
	ListByUserMonth(ctx context.Context, userID, month string) ([]Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
