package schedule

import (
	"fmt"
	"time"

	"github.com/claude/planforge/internal/program"
)

// Reason is why the user missed a session. It personalizes the result
// message only; the search itself is reason-independent.
type Reason string

const (
	ReasonBusy  Reason = "busy"
	ReasonSick  Reason = "sick"
	ReasonOther Reason = "other"
)

// RescheduleResult is the structured outcome of a reschedule attempt.
// Expected failures (unknown id, no free slot) are reported here, never as
// errors: NewDate is only meaningful when Success is true.
type RescheduleResult struct {
	Success  bool       `json:"success"`
	NewDate  *time.Time `json:"new_date,omitempty"`
	Message  string     `json:"message"`
	Warnings []string   `json:"warnings"`
}

// User-facing messages stay in French, matching the rest of the app's UI.
const (
	msgNotFound  = "Séance non trouvée"
	msgNoSlot    = "Impossible de trouver une date de report valide"
	warnNoSlot   = "La semaine est trop chargée ou la course approche"
	maxDayLoad   = 2
	searchWindow = 7
)

// Reschedule moves the identified session to the nearest valid future date
// within a one-week window and mutates the calendar in place: the session
// leaves its old day, joins the new one, and both days' rest flags are
// refreshed. The first reschedule records the session's original date;
// later ones preserve it.
func Reschedule(cal *Calendar, sessionID string, reason Reason) RescheduleResult {
	session, day, _ := cal.FindSession(sessionID)
	if session == nil {
		return RescheduleResult{
			Success:  false,
			Message:  msgNotFound,
			Warnings: []string{},
		}
	}

	fromDate := session.Date
	newDate := findNextAvailableDate(cal, fromDate, session.Program.Type)
	if newDate == nil {
		return RescheduleResult{
			Success:  false,
			Message:  msgNoSlot,
			Warnings: []string{warnNoSlot},
		}
	}

	warnings := []string{}
	if gap := daysBetween(fromDate, *newDate); gap > 3 {
		warnings = append(warnings,
			fmt.Sprintf("Report de %d jours - Le repos sera plus long que prévu", gap))
	}

	if session.OriginalDate == nil {
		orig := fromDate
		session.OriginalDate = &orig
	}
	session.Date = *newDate
	session.Status = StatusRescheduled

	// Detach from the old day, attach to the new one.
	kept := day.Sessions[:0]
	for _, s := range day.Sessions {
		if s.ID != sessionID {
			kept = append(kept, s)
		}
	}
	day.Sessions = kept
	day.refreshRest()

	if dest := cal.FindDay(*newDate); dest != nil {
		dest.Sessions = append(dest.Sessions, session)
		dest.refreshRest()
	}

	return RescheduleResult{
		Success:  true,
		NewDate:  newDate,
		Message:  fmt.Sprintf("Séance reportée au %s", FormatDateFR(*newDate)),
		Warnings: warnings,
	}
}

// findNextAvailableDate scans the seven days after fromDate for the first
// one that accepts the session. The strict pass honors day load, type
// exclusivity, the pre-race blackout and recovery spacing; if it finds
// nothing, a relaxed pass takes the first plain rest day. The relaxation is
// deliberate: a late session on a rest day beats a dropped session.
func findNextAvailableDate(cal *Calendar, fromDate time.Time, t program.SessionType) *time.Time {
	for offset := 1; offset <= searchWindow; offset++ {
		candidate := fromDate.AddDate(0, 0, offset)
		day := cal.FindDay(candidate)
		if day == nil {
			continue // beyond the scheduled horizon
		}
		if day.RaceDay {
			continue
		}
		if len(day.Sessions) >= maxDayLoad {
			continue
		}
		if inRaceBlackout(cal.RaceDate, candidate, t) {
			continue
		}

		hasStrength := day.HasStrength()
		hasHard := day.HasHardCardio()
		if program.IsStrength(t) && (hasStrength || hasHard) {
			continue
		}
		if program.IsHardCardio(t) && hasStrength {
			continue
		}

		if day.RestDay {
			return &candidate
		}
		// Easy types coexist with anything already on the day.
		if t == program.CardioZone2 || t == program.Rest {
			return &candidate
		}
		if !HasConflict(cal, candidate, t) {
			return &candidate
		}
	}

	for offset := 1; offset <= searchWindow; offset++ {
		candidate := fromDate.AddDate(0, 0, offset)
		day := cal.FindDay(candidate)
		if day == nil || !day.RestDay || day.RaceDay {
			continue
		}
		if inRaceBlackout(cal.RaceDate, candidate, t) {
			continue
		}
		return &candidate
	}

	return nil
}
