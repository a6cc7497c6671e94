package schedule

import (
	"fmt"
	"time"

	"github.com/claude/planforge/internal/program"
)

// BuildCalendar lays the catalog's program-weeks onto real dates. The start
// date is normalized to the Monday on or before it; each program-week then
// occupies seven consecutive days. Weeks missing from the catalog are
// skipped while the anchor still advances, so a sparse catalog yields a
// shorter calendar rather than an error. The catalog's race week uses the
// taper template.
func BuildCalendar(catalog *program.Catalog, startDate, raceDate time.Time) *Calendar {
	anchor := StartOfWeek(startDate)
	raceDate = Midnight(raceDate)

	cal := &Calendar{
		StartDate: anchor,
		RaceDate:  raceDate,
	}

	for programWeek := 1; programWeek <= 10; programWeek++ {
		week := catalog.WeekByNumber(programWeek)
		if week != nil {
			cal.Weeks = append(cal.Weeks, buildWeek(
				anchor,
				programWeek,
				week.Sessions,
				raceDate,
				programWeek == catalog.RaceWeek,
			))
		}
		anchor = anchor.AddDate(0, 0, 7)
	}

	return cal
}

// buildWeek realizes one program-week onto seven days starting at the given
// Monday. Template slots are filled first (the race date ignores the
// template entirely), then leftover sessions are distributed onto whatever
// days still tolerate them.
func buildWeek(startDate time.Time, programWeek int, sessions []program.Session, raceDate time.Time, taperWeek bool) *Week {
	template := templateFor(taperWeek)

	// FIFO pools per type, catalog order preserved within each.
	pool := make(map[program.SessionType][]program.Session)
	for _, s := range sessions {
		pool[s.Type] = append(pool[s.Type], s)
	}

	week := &Week{
		ProgramWeek: programWeek,
		ISOWeek:     isoWeek(startDate),
		StartDate:   startDate,
	}

	for offset := 0; offset < 7; offset++ {
		date := startDate.AddDate(0, 0, offset)
		day := &Day{Date: date, RaceDay: SameDay(date, raceDate)}

		if day.RaceDay {
			if race := popSession(pool, program.RaceDay); race != nil {
				day.Sessions = append(day.Sessions, &Session{
					ID:      fmt.Sprintf("%s-race", dateID(date)),
					Date:    date,
					Program: *race,
					Status:  StatusPlanned,
				})
			}
		} else {
			for i, typ := range template[date.Weekday()] {
				s := popSession(pool, typ)
				if s == nil {
					continue
				}
				day.Sessions = append(day.Sessions, &Session{
					ID:      fmt.Sprintf("%s-%s-%d", dateID(date), typ, i),
					Date:    date,
					Program: *s,
					Status:  StatusPlanned,
				})
			}
		}

		day.refreshRest()
		week.Days = append(week.Days, day)
	}

	assignLeftovers(week.Days, pool)

	return week
}

// popSession removes and returns the first pooled session of the given
// type, or nil when the pool for that type is empty.
func popSession(pool map[program.SessionType][]program.Session, t program.SessionType) *program.Session {
	queue := pool[t]
	if len(queue) == 0 {
		return nil
	}
	s := queue[0]
	pool[t] = queue[1:]
	return &s
}

// assignLeftovers places sessions the template had no slot for. Types are
// visited in enum order so the result is deterministic. A session with no
// tolerable day is dropped: catalog supply is expected to match template
// capacity, and a renderable calendar beats a hard failure. Race sessions
// are never leftover-assigned; they exist only on the race date.
func assignLeftovers(days []*Day, pool map[program.SessionType][]program.Session) {
	extra := 0
	for _, typ := range program.AllTypes {
		if typ == program.RaceDay {
			continue
		}
		for _, s := range pool[typ] {
			day := findLeftoverDay(days, typ)
			if day == nil {
				continue
			}
			day.Sessions = append(day.Sessions, &Session{
				ID:      fmt.Sprintf("%s-%s-extra-%d", dateID(day.Date), typ, extra),
				Date:    day.Date,
				Program: s,
				Status:  StatusPlanned,
			})
			day.refreshRest()
			extra++
		}
		delete(pool, typ)
	}
}

// findLeftoverDay picks the first day (Monday to Sunday) that tolerates a
// session of the given type. Strength and hard cardio get a single strict
// pass; the permissive types get a preference pass and then a relaxed one.
func findLeftoverDay(days []*Day, t program.SessionType) *Day {
	for _, d := range days {
		if d.RaceDay {
			continue
		}
		hasStrength := d.HasStrength()
		hasHard := d.HasHardCardio()
		switch {
		case program.IsStrength(t):
			if !hasStrength && !hasHard {
				return d
			}
		case program.IsHardCardio(t):
			if !hasStrength {
				return d
			}
		case program.IsCardio(t):
			// Only zone 2 reaches this branch; hard cardio matched above.
			if d.RestDay || (!hasStrength && !hasHard) {
				return d
			}
		default:
			if d.RestDay {
				return d
			}
		}
	}

	// Relaxed pass: zone 2 combines with anything; other soft types still
	// avoid strength and hard cardio.
	for _, d := range days {
		if d.RaceDay {
			continue
		}
		if t == program.CardioZone2 {
			return d
		}
		if !program.IsStrength(t) && !program.IsHardCardio(t) &&
			!d.HasStrength() && !d.HasHardCardio() {
			return d
		}
	}
	return nil
}
