package localstore

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/schedule"
)

// TestSaveLoadRoundTrip verifies a generated calendar survives the JSON
// document round trip with its sessions, statuses and derived flags intact.
func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	start := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)
	race := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local)
	cal := schedule.BuildCalendar(program.Default(), start, race)

	if err := store.SaveCalendar(cal); err != nil {
		t.Fatalf("SaveCalendar() = %v", err)
	}

	loaded, err := store.LoadCalendar()
	if err != nil {
		t.Fatalf("LoadCalendar() = %v", err)
	}

	if len(loaded.Weeks) != len(cal.Weeks) {
		t.Fatalf("weeks = %d, want %d", len(loaded.Weeks), len(cal.Weeks))
	}
	if got, want := len(loaded.Sessions()), len(cal.Sessions()); got != want {
		t.Fatalf("sessions = %d, want %d", got, want)
	}

	monday := loaded.FindDay(start)
	if monday == nil || len(monday.Sessions) != 1 {
		t.Fatal("monday session lost in round trip")
	}
	if monday.RestDay {
		t.Error("monday rest flag wrong after load")
	}

	raceDay := loaded.FindDay(race)
	if raceDay == nil || !raceDay.RaceDay {
		t.Error("race flag lost in round trip")
	}
}

// TestLoadWithoutSave verifies the typed not-found error.
func TestLoadWithoutSave(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	if _, err := store.LoadCalendar(); !errors.Is(err, ErrNoCalendar) {
		t.Errorf("LoadCalendar() = %v, want ErrNoCalendar", err)
	}
}

// TestSaveReplacesPrevious verifies a second save overwrites the first: the
// store holds exactly one current calendar.
func TestSaveReplacesPrevious(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	start := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)
	race := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local)

	first := schedule.BuildCalendar(program.Default(), start, race)
	if err := store.SaveCalendar(first); err != nil {
		t.Fatal(err)
	}

	second := schedule.BuildCalendar(program.Default(), start.AddDate(0, 0, 7), race)
	if err := store.SaveCalendar(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadCalendar()
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.StartDate.Equal(second.StartDate) {
		t.Errorf("start = %v, want %v", loaded.StartDate, second.StartDate)
	}
}

// TestRescheduledSessionPersists verifies reschedule provenance survives
// the document round trip.
func TestRescheduledSessionPersists(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	start := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)
	race := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local)
	cal := schedule.BuildCalendar(program.Default(), start, race)

	id := cal.Weeks[0].Days[0].Sessions[0].ID
	res := schedule.Reschedule(cal, id, schedule.ReasonBusy)
	if !res.Success {
		t.Fatalf("reschedule failed: %s", res.Message)
	}
	if err := store.SaveCalendar(cal); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadCalendar()
	if err != nil {
		t.Fatal(err)
	}
	s, day, _ := loaded.FindSession(id)
	if s == nil {
		t.Fatal("rescheduled session lost")
	}
	if s.Status != schedule.StatusRescheduled {
		t.Errorf("status = %q", s.Status)
	}
	if s.OriginalDate == nil || !schedule.SameDay(*s.OriginalDate, start) {
		t.Errorf("original date = %v, want %v", s.OriginalDate, start)
	}
	if !schedule.SameDay(day.Date, *res.NewDate) {
		t.Errorf("session on %v, want %v", day.Date, *res.NewDate)
	}
}
