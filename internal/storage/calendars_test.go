package storage

import (
	"testing"
	"time"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TestRebuildCalendar verifies row reassembly: seven days per week, sessions
// attached by date, rest and race flags derived rather than read back.
func TestRebuildCalendar(t *testing.T) {
	start := date(2025, time.January, 13)
	race := date(2025, time.February, 14)

	weeks := []WeekRow{
		{ProgramWeek: 1, ISOWeek: 3, StartDate: start},
		{ProgramWeek: 2, ISOWeek: 4, StartDate: start.AddDate(0, 0, 7)},
	}
	sessions := []SessionRow{
		{
			ID: "2025-01-13-strength_a-0", ProgramWeek: 1, Date: start,
			ProgramID: "w1-strength-a", Type: "strength_a", Name: "Back", Priority: 1,
			Status: "planned",
		},
		{
			ID: "2025-01-24-cardio_zone2-0", ProgramWeek: 2, Date: start.AddDate(0, 0, 11),
			ProgramID: "w2-zone2", Type: "cardio_zone2", Name: "Easy run", Priority: 1,
			Status: "completed",
		},
	}

	cal := RebuildCalendar(start, race, weeks, sessions)

	if len(cal.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(cal.Weeks))
	}
	for _, w := range cal.Weeks {
		if len(w.Days) != 7 {
			t.Fatalf("week %d days = %d, want 7", w.ProgramWeek, len(w.Days))
		}
	}

	monday := cal.FindDay(start)
	if monday == nil || len(monday.Sessions) != 1 {
		t.Fatal("monday session not reattached")
	}
	if monday.RestDay {
		t.Error("monday flagged rest with a session present")
	}
	if got := monday.Sessions[0].Program.Type; got != program.StrengthA {
		t.Errorf("monday type = %q", got)
	}

	friday := cal.FindDay(start.AddDate(0, 0, 11))
	if friday == nil || len(friday.Sessions) != 1 {
		t.Fatal("week 2 session not reattached")
	}
	if got := friday.Sessions[0].Status; got != schedule.StatusCompleted {
		t.Errorf("status = %q, want completed", got)
	}

	tuesday := cal.FindDay(start.AddDate(0, 0, 1))
	if !tuesday.RestDay {
		t.Error("empty tuesday not flagged as rest day")
	}
}

// TestRebuildCalendarCrossWeekSession verifies a session whose date moved
// into the following program-week still lands on the right day.
func TestRebuildCalendarCrossWeekSession(t *testing.T) {
	start := date(2025, time.January, 13)
	race := date(2025, time.February, 14)
	orig := start.AddDate(0, 0, 5)

	weeks := []WeekRow{
		{ProgramWeek: 1, ISOWeek: 3, StartDate: start},
		{ProgramWeek: 2, ISOWeek: 4, StartDate: start.AddDate(0, 0, 7)},
	}
	sessions := []SessionRow{
		{
			// Saturday session rescheduled to the next week's Tuesday.
			ID: "2025-01-18-strength_c-0", ProgramWeek: 1, Date: start.AddDate(0, 0, 8),
			ProgramID: "w1-strength-c", Type: "strength_c", Name: "Legs", Priority: 1,
			Status: "rescheduled", OriginalDate: &orig,
		},
	}

	cal := RebuildCalendar(start, race, weeks, sessions)

	day := cal.FindDay(start.AddDate(0, 0, 8))
	if day == nil || len(day.Sessions) != 1 {
		t.Fatal("cross-week session not reattached")
	}
	s := day.Sessions[0]
	if s.Status != schedule.StatusRescheduled {
		t.Errorf("status = %q", s.Status)
	}
	if s.OriginalDate == nil || !schedule.SameDay(*s.OriginalDate, orig) {
		t.Errorf("original date = %v, want %v", s.OriginalDate, orig)
	}

	// The original Saturday slot must be empty and rest-flagged.
	sat := cal.FindDay(orig)
	if len(sat.Sessions) != 0 || !sat.RestDay {
		t.Error("original day still holds the rescheduled session")
	}
}

// TestRebuildCalendarRaceFlag verifies the race flag is derived from the
// race date alone.
func TestRebuildCalendarRaceFlag(t *testing.T) {
	start := date(2025, time.February, 10)
	race := date(2025, time.February, 14)

	weeks := []WeekRow{{ProgramWeek: 5, ISOWeek: 7, StartDate: start}}
	cal := RebuildCalendar(start, race, weeks, nil)

	raceDay := cal.FindDay(race)
	if raceDay == nil || !raceDay.RaceDay {
		t.Fatal("race day not flagged on rebuild")
	}
	for _, d := range cal.Weeks[0].Days {
		if d.RaceDay && !schedule.SameDay(d.Date, race) {
			t.Errorf("%v wrongly race-flagged", d.Date)
		}
	}
}
