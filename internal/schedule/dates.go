package schedule

import "time"

// Midnight truncates t to local midnight. Calendar days are always compared
// and stored at day granularity.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns the Monday on or before t, at midnight. In the weekday
// model used throughout (Sunday = 0) a Sunday rolls back six days.
func StartOfWeek(t time.Time) time.Time {
	t = Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// isoWeek returns the ISO 8601 week number for t.
func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// dateID formats a date as YYYY-MM-DD for use in scheduled-session ids.
func dateID(t time.Time) string {
	return t.Format("2006-01-02")
}

// daysBetween returns the whole days from a to b for midnight-normalized
// dates.
func daysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)) / (24 * time.Hour))
}
