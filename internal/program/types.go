package program

// SessionType is the closed set of training session categories. Placement and
// recovery rules key off the type, never off the display name.
type SessionType string

const (
	StrengthA       SessionType = "strength_a"
	StrengthB       SessionType = "strength_b"
	StrengthC       SessionType = "strength_c"
	CardioInterval  SessionType = "cardio_interval"
	CardioZone2     SessionType = "cardio_zone2"
	CardioThreshold SessionType = "cardio_threshold"
	Rest            SessionType = "rest"
	RaceDay         SessionType = "race_day"
)

// AllTypes lists every session type in declaration order. Iteration over
// grouped session pools follows this order so builds are deterministic.
var AllTypes = []SessionType{
	StrengthA, StrengthB, StrengthC,
	CardioInterval, CardioZone2, CardioThreshold,
	Rest, RaceDay,
}

// IsStrength reports whether t is one of the three strength variants.
// Strength variants share a single recovery class.
func IsStrength(t SessionType) bool {
	return t == StrengthA || t == StrengthB || t == StrengthC
}

// IsHardCardio reports whether t is a high-intensity cardio session
// (interval or threshold work). Hard cardio never shares a day with strength.
func IsHardCardio(t SessionType) bool {
	return t == CardioInterval || t == CardioThreshold
}

// IsCardio reports whether t is any cardio variant.
func IsCardio(t SessionType) bool {
	return t == CardioInterval || t == CardioZone2 || t == CardioThreshold
}

// Valid reports whether t is a known session type.
func Valid(t SessionType) bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Session is one immutable catalog entry. The scheduler only ever reads it.
type Session struct {
	ID          string      `json:"id" yaml:"id"`
	Type        SessionType `json:"type" yaml:"type"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Details     []string    `json:"details,omitempty" yaml:"details,omitempty"`
	// Priority tiers: 1 mandatory, 2 important, 3 optional.
	Priority int `json:"priority" yaml:"priority"`
}

// Week is one program-week: an ordered list of sessions plus display metadata.
type Week struct {
	Number   int       `json:"number" yaml:"number"`
	Block    int       `json:"block" yaml:"block"`
	Theme    string    `json:"theme,omitempty" yaml:"theme,omitempty"`
	Focus    string    `json:"focus,omitempty" yaml:"focus,omitempty"`
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

// Catalog is the full training program: up to 10 program-weeks and the
// designated race week (the taper week whose template replaces the default).
type Catalog struct {
	Weeks    []Week `json:"weeks" yaml:"weeks"`
	RaceWeek int    `json:"race_week" yaml:"race_week"`
}

// WeekByNumber returns the program-week with the given number, or nil if the
// catalog has no entry for it.
func (c *Catalog) WeekByNumber(n int) *Week {
	for i := range c.Weeks {
		if c.Weeks[i].Number == n {
			return &c.Weeks[i]
		}
	}
	return nil
}
