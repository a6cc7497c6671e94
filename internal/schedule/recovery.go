package schedule

import (
	"time"

	"github.com/claude/planforge/internal/program"
)

// RecoveryRule is the spacing constraint between sessions of one class.
type RecoveryRule struct {
	// MinDaysBetween is the minimum rest before and after a session of the
	// same class.
	MinDaysBetween int
	// MaxDaysBetween is the longest acceptable gap. Informational for now;
	// no placement rule enforces an upper bound.
	MaxDaysBetween int
}

// Recovery rules per session class. The three strength variants share one
// class.
var (
	strengthRule  = RecoveryRule{MinDaysBetween: 2, MaxDaysBetween: 4}
	intervalRule  = RecoveryRule{MinDaysBetween: 2, MaxDaysBetween: 5}
	zone2Rule     = RecoveryRule{MinDaysBetween: 1, MaxDaysBetween: 3}
	thresholdRule = RecoveryRule{MinDaysBetween: 2, MaxDaysBetween: 5}
)

// Pre-race blackout: no high-intensity work in the last 2 days before the
// race, no strength work in the last 3.
const (
	noHardCardioDaysBeforeRace = 2
	noStrengthDaysBeforeRace   = 3
)

// ruleFor returns the recovery rule for a session type. Unknown or untyped
// sessions fall back to the easy-cardio rule, the most permissive one.
func ruleFor(t program.SessionType) RecoveryRule {
	switch {
	case program.IsStrength(t):
		return strengthRule
	case t == program.CardioInterval:
		return intervalRule
	case t == program.CardioThreshold:
		return thresholdRule
	default:
		return zone2Rule
	}
}

// sameClass reports whether an existing session collides with the candidate
// type for recovery purposes: any strength variant matches a strength
// candidate; everything else matches on exact type.
func sameClass(candidate, existing program.SessionType) bool {
	if program.IsStrength(candidate) {
		return program.IsStrength(existing)
	}
	return candidate == existing
}

// HasConflict reports whether placing a session of the given type on date
// would violate its recovery spacing: it scans MinDaysBetween days strictly
// before and strictly after the date for a session of the same class.
// Pure function; safe to call repeatedly.
func HasConflict(cal *Calendar, date time.Time, t program.SessionType) bool {
	rule := ruleFor(t)
	for offset := 1; offset <= rule.MinDaysBetween; offset++ {
		for _, check := range []time.Time{
			date.AddDate(0, 0, -offset),
			date.AddDate(0, 0, offset),
		} {
			day := cal.FindDay(check)
			if day == nil {
				continue
			}
			for _, s := range day.Sessions {
				if sameClass(t, s.Program.Type) {
					return true
				}
			}
		}
	}
	return false
}

// inRaceBlackout reports whether the candidate date falls inside the
// pre-race window barred for this session type. The race date itself is
// rejected separately (nothing preempts the race).
func inRaceBlackout(raceDate, candidate time.Time, t program.SessionType) bool {
	until := daysBetween(candidate, raceDate)
	if until <= 0 {
		return false
	}
	if program.IsStrength(t) && until <= noStrengthDaysBeforeRace {
		return true
	}
	if program.IsHardCardio(t) && until <= noHardCardioDaysBeforeRace {
		return true
	}
	return false
}
