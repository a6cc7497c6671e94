package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TestStartOfWeek verifies Monday normalization: Mondays stay put, mid-week
// dates roll back, and Sundays roll back six days (weekday 0 = Sunday).
func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", date(2025, time.January, 13), date(2025, time.January, 13)},
		{"wednesday rolls back", date(2025, time.January, 15), date(2025, time.January, 13)},
		{"saturday rolls back", date(2025, time.January, 18), date(2025, time.January, 13)},
		{"sunday rolls back six days", date(2025, time.January, 19), date(2025, time.January, 13)},
	}
	for _, tc := range cases {
		if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
			t.Errorf("%s: StartOfWeek(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

// TestStartOfWeekTruncatesTime verifies the anchor is at midnight even when
// the input carries a time of day.
func TestStartOfWeekTruncatesTime(t *testing.T) {
	in := time.Date(2025, time.January, 15, 18, 30, 0, 0, time.Local)
	got := StartOfWeek(in)
	if !got.Equal(date(2025, time.January, 13)) {
		t.Errorf("StartOfWeek(%v) = %v", in, got)
	}
}

// TestSameDay verifies day-granularity comparison ignores time of day.
func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.February, 14, 6, 0, 0, 0, time.Local)
	b := time.Date(2025, time.February, 14, 23, 59, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("SameDay = false for same date, different times")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("SameDay = true for consecutive dates")
	}
}

// TestDaysBetween verifies whole-day distance for midnight-normalized dates.
func TestDaysBetween(t *testing.T) {
	mon := date(2025, time.January, 13)
	if got := daysBetween(mon, mon.AddDate(0, 0, 4)); got != 4 {
		t.Errorf("daysBetween = %d, want 4", got)
	}
	if got := daysBetween(mon, mon); got != 0 {
		t.Errorf("daysBetween same day = %d, want 0", got)
	}
}
