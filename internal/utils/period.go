package utils

import "time"

// WeekStartOf returns the ISO date of the Monday of t's week. Sunday is
// treated as the last day of the week, not the first.
func WeekStartOf(t time.Time) string {
	delta := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -delta).Format("2006-01-02")
}

// MonthKeyOf returns t's year and month as "YYYY-MM".
func MonthKeyOf(t time.Time) string {
	return t.Format("2006-01")
}

// CurrentWeekStart resolves the week bucket key from wall-clock time.
// Callers handling one request should resolve the key once and thread it
// through, so a request straddling a week boundary stays consistent.
func CurrentWeekStart() string {
	return WeekStartOf(time.Now())
}

// CurrentMonthKey resolves the month bucket key from wall-clock time. The
// same resolve-once rule as CurrentWeekStart applies.
func CurrentMonthKey() string {
	return MonthKeyOf(time.Now())
}
