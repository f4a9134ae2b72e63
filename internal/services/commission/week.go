package commission

import "time"

const day = 24 * time.Hour

// WeekNumber buckets t into a week of its own year. The weekday of t
// (Sunday = 0) is added to the days elapsed since January 1st before
// dividing, so the result is not an ISO 8601 week. Ledger keys depend on
// this exact numbering.
func WeekNumber(t time.Time) int {
	startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := int(t.Sub(startOfYear) / day)
	n := int(t.Weekday()) + 1 + days
	return (n + 6) / 7
}
