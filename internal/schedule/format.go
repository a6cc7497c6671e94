package schedule

import (
	"fmt"
	"time"
)

// French day and month names for user-facing messages. The app's UI is
// French; Go's time package has no locale support.
var (
	frDays = [...]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	}
	frMonths = [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
)

// FormatDateFR renders a date as "lundi 13 janvier".
func FormatDateFR(t time.Time) string {
	return fmt.Sprintf("%s %d %s", frDays[t.Weekday()], t.Day(), frMonths[t.Month()-1])
}

// FormatDateShortFR renders a date as "lun. 13".
func FormatDateShortFR(t time.Time) string {
	return fmt.Sprintf("%s. %d", frDays[t.Weekday()][:3], t.Day())
}
