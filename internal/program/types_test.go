package program

import "testing"

// TestIsStrength verifies that exactly the three strength variants are
// classified as strength, since they share one recovery class.
func TestIsStrength(t *testing.T) {
	cases := []struct {
		typ  SessionType
		want bool
	}{
		{StrengthA, true},
		{StrengthB, true},
		{StrengthC, true},
		{CardioInterval, false},
		{CardioZone2, false},
		{CardioThreshold, false},
		{Rest, false},
		{RaceDay, false},
	}
	for _, tc := range cases {
		if got := IsStrength(tc.typ); got != tc.want {
			t.Errorf("IsStrength(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

// TestIsHardCardio verifies that interval and threshold work count as hard
// cardio while zone 2 does not.
func TestIsHardCardio(t *testing.T) {
	cases := []struct {
		typ  SessionType
		want bool
	}{
		{CardioInterval, true},
		{CardioThreshold, true},
		{CardioZone2, false},
		{StrengthA, false},
		{RaceDay, false},
	}
	for _, tc := range cases {
		if got := IsHardCardio(tc.typ); got != tc.want {
			t.Errorf("IsHardCardio(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

// TestValid verifies the closed-enum check rejects arbitrary strings.
func TestValid(t *testing.T) {
	for _, typ := range AllTypes {
		if !Valid(typ) {
			t.Errorf("Valid(%q) = false, want true", typ)
		}
	}
	if Valid("musculation_A") {
		t.Error(`Valid("musculation_A") = true, want false`)
	}
	if Valid("") {
		t.Error(`Valid("") = true, want false`)
	}
}

// TestWeekByNumber verifies lookup of present and absent program-weeks.
func TestWeekByNumber(t *testing.T) {
	cat := Default()
	for n := 1; n <= 10; n++ {
		w := cat.WeekByNumber(n)
		if w == nil {
			t.Fatalf("WeekByNumber(%d) = nil, want week", n)
		}
		if w.Number != n {
			t.Errorf("WeekByNumber(%d).Number = %d", n, w.Number)
		}
	}
	if w := cat.WeekByNumber(11); w != nil {
		t.Errorf("WeekByNumber(11) = %+v, want nil", w)
	}
}
