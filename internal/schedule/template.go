package schedule

import (
	"time"

	"github.com/claude/planforge/internal/program"
)

// WeekTemplate maps a day of week (Sunday = 0) to the session types expected
// on that day. Days absent from the map are rest days.
type WeekTemplate map[time.Weekday][]program.SessionType

// defaultTemplate is the standard weekly distribution: strength on Monday,
// Thursday and Saturday, intervals on Tuesday, easy cardio on Friday,
// Wednesday and Sunday free.
var defaultTemplate = WeekTemplate{
	time.Monday:   {program.StrengthA},
	time.Tuesday:  {program.CardioInterval},
	time.Thursday: {program.StrengthB},
	time.Friday:   {program.CardioZone2},
	time.Saturday: {program.StrengthC},
}

// taperTemplate is the race-week distribution: one light strength session on
// Monday, everything else free. The race session itself is placed by date
// match, not by the template.
var taperTemplate = WeekTemplate{
	time.Monday: {program.StrengthA},
}

// templateFor selects the weekly template: the taper template for the
// designated race week, the default otherwise.
func templateFor(taperWeek bool) WeekTemplate {
	if taperWeek {
		return taperTemplate
	}
	return defaultTemplate
}
