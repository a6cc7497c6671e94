package schedule

import (
	"testing"
	"time"

	"github.com/claude/planforge/internal/program"
)

// TestDefaultTemplateShape verifies the standard weekly distribution:
// strength Mon/Thu/Sat, intervals Tue, easy cardio Fri, Wed/Sun free.
func TestDefaultTemplateShape(t *testing.T) {
	cases := []struct {
		day  time.Weekday
		want []program.SessionType
	}{
		{time.Monday, []program.SessionType{program.StrengthA}},
		{time.Tuesday, []program.SessionType{program.CardioInterval}},
		{time.Wednesday, nil},
		{time.Thursday, []program.SessionType{program.StrengthB}},
		{time.Friday, []program.SessionType{program.CardioZone2}},
		{time.Saturday, []program.SessionType{program.StrengthC}},
		{time.Sunday, nil},
	}
	for _, tc := range cases {
		got := defaultTemplate[tc.day]
		if len(got) != len(tc.want) {
			t.Errorf("%v: %v, want %v", tc.day, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%v[%d] = %q, want %q", tc.day, i, got[i], tc.want[i])
			}
		}
	}
}

// TestTaperTemplateShape verifies the race week keeps only the light Monday
// strength session; the race itself is placed by date, not template.
func TestTaperTemplateShape(t *testing.T) {
	if got := taperTemplate[time.Monday]; len(got) != 1 || got[0] != program.StrengthA {
		t.Errorf("taper monday = %v, want one strength_a", got)
	}
	for day := time.Tuesday; day <= time.Saturday; day++ {
		if got := taperTemplate[day]; len(got) != 0 {
			t.Errorf("taper %v = %v, want empty", day, got)
		}
	}
	if got := taperTemplate[time.Sunday]; len(got) != 0 {
		t.Errorf("taper sunday = %v, want empty", got)
	}
}

// TestTemplateFor verifies template selection by taper flag.
func TestTemplateFor(t *testing.T) {
	if len(templateFor(false)[time.Saturday]) == 0 {
		t.Error("default template missing saturday strength")
	}
	if len(templateFor(true)[time.Saturday]) != 0 {
		t.Error("taper template unexpectedly fills saturday")
	}
}
