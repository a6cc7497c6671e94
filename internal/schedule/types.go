// Package schedule lays a 10-week training program onto calendar days and
// moves individual sessions around while respecting recovery and
// mutual-exclusion rules. The calendar it produces is a plain in-memory
// structure owned by the caller; nothing here persists or locks.
package schedule

import (
	"time"

	"github.com/claude/planforge/internal/program"
)

// Status is the lifecycle state of a scheduled session.
type Status string

const (
	StatusPlanned     Status = "planned"
	StatusCompleted   Status = "completed"
	StatusSkipped     Status = "skipped"
	StatusRescheduled Status = "rescheduled"
)

// Session is one catalog session placed on a concrete calendar date.
// Created by the builder; mutated only by the reschedule engine (date,
// status, original date) and by the caller marking completion.
type Session struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Program      program.Session `json:"session"`
	Status       Status          `json:"status"`
	OriginalDate *time.Time      `json:"original_date,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

// Day is one calendar date and the sessions scheduled on it. RestDay is
// derived from the session list and refreshed after every mutation;
// RaceDay is true iff the date matches the configured race date.
type Day struct {
	Date     time.Time  `json:"date"`
	Sessions []*Session `json:"sessions"`
	RestDay  bool       `json:"is_rest_day"`
	RaceDay  bool       `json:"is_race_day"`
}

// Week is one program-week realized onto seven consecutive days starting on
// a Monday.
type Week struct {
	ProgramWeek int       `json:"program_week"`
	ISOWeek     int       `json:"week_number"`
	StartDate   time.Time `json:"start_date"`
	Days        []*Day    `json:"days"`
}

// Calendar is the full scheduled plan. Weeks are ordered by program-week.
// The race date is carried so the reschedule engine can enforce the
// pre-race blackout without outside help.
type Calendar struct {
	StartDate time.Time `json:"start_date"`
	RaceDate  time.Time `json:"race_date"`
	Weeks     []*Week   `json:"weeks"`
}

// refreshRest recomputes the derived rest flag. Call after any change to
// the session list so the flag can never desync.
func (d *Day) refreshRest() {
	d.RestDay = len(d.Sessions) == 0
}

// HasStrength reports whether any strength-variant session is on this day.
func (d *Day) HasStrength() bool {
	for _, s := range d.Sessions {
		if program.IsStrength(s.Program.Type) {
			return true
		}
	}
	return false
}

// HasHardCardio reports whether an interval or threshold session is on
// this day.
func (d *Day) HasHardCardio() bool {
	for _, s := range d.Sessions {
		if program.IsHardCardio(s.Program.Type) {
			return true
		}
	}
	return false
}

// FindDay returns the calendar day for the given date, or nil if the date
// falls outside the scheduled horizon.
func (c *Calendar) FindDay(date time.Time) *Day {
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if SameDay(d.Date, date) {
				return d
			}
		}
	}
	return nil
}

// FindSession locates a scheduled session by id and returns it together
// with its day and week. All three are nil when the id is unknown.
func (c *Calendar) FindSession(id string) (*Session, *Day, *Week) {
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			for _, s := range d.Sessions {
				if s.ID == id {
					return s, d, w
				}
			}
		}
	}
	return nil, nil, nil
}

// Sessions returns every scheduled session in calendar order.
func (c *Calendar) Sessions() []*Session {
	var out []*Session
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			out = append(out, d.Sessions...)
		}
	}
	return out
}
