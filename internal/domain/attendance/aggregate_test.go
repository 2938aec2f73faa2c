package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateCountsPresenceAndLateness(t *testing.T) {
	records := []Record{
		{UserID: "u1", Date: day(2024, 3, 1), IsLate: false},
		{UserID: "u1", Date: day(2024, 3, 4), IsLate: true},
		{UserID: "u1", Date: day(2024, 3, 5), IsLate: true},
		{UserID: "u2", Date: day(2024, 3, 5), IsLate: true},  // other user
		{UserID: "u1", Date: day(2024, 4, 1), IsLate: false}, // other month
	}

	stats := Aggregate(records, "u1", "2024-03")

	assert.Equal(t, 3, stats.TotalPresent)
	assert.Equal(t, 2, stats.TotalLate)
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil, "u1", "2024-03")

	assert.Equal(t, 0, stats.TotalPresent)
	assert.Equal(t, 0, stats.TotalLate)
}

func TestAggregateMonthBoundary(t *testing.T) {
	// Dec 31 and Jan 1 fall in different month keys
	records := []Record{
		{UserID: "u1", Date: day(2023, 12, 31)},
		{UserID: "u1", Date: day(2024, 1, 1)},
	}

	assert.Equal(t, 1, Aggregate(records, "u1", "2023-12").TotalPresent)
	assert.Equal(t, 1, Aggregate(records, "u1", "2024-01").TotalPresent)
}

func TestMonthKeyIsZeroPadded(t *testing.T) {
	rec := Record{Date: day(2024, 3, 15)}
	assert.Equal(t, "2024-03", rec.Month())
}
