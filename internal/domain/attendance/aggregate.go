package attendance

// Stats is the monthly reduction consumed by payroll.
type Stats struct {
	TotalPresent int
	TotalLate    int
}

// Aggregate reduces attendance records to presence/lateness counts for one
// user and one month ("YYYY-MM"). A record counts as one day present whether
// or not it has a clock-out. No matches yields zero counts, not an error.
func Aggregate(records []Record, userID, month string) Stats {
	var stats Stats
	for _, r := range records {
		if r.UserID != userID {
			continue
		}
		if r.Month() != month {
			continue
		}
		stats.TotalPresent++
		if r.IsLate {
			stats.TotalLate++
		}
	}
	return stats
}
