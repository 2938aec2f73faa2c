package attendance

import "time"

// Record is a single check-in event. Immutable once written except for
// clock-out completion.
type Record struct {
	ID        string
	UserID    string
	UnitID    *string
	Date      time.Time
	ClockIn   time.Time
	ClockOut  *time.Time
	IsLate    bool
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}

// Month returns the record's calendar month key ("YYYY-MM", zero-padded).
func (r Record) Month() string {
	return r.Date.Format("2006-01")
}
