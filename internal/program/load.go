package program

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a program catalog from a YAML file. Missing race_week falls back
// to DefaultRaceWeek. The file is validated the same way the built-in catalog
// is assumed valid: known session types, unique session ids, week numbers in
// 1..10.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if cat.RaceWeek == 0 {
		cat.RaceWeek = DefaultRaceWeek
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	return cat, nil
}

// Validate checks structural soundness of a catalog: week numbers in range,
// no duplicate weeks, known session types, globally unique session ids.
func (c *Catalog) Validate() error {
	if len(c.Weeks) == 0 {
		return fmt.Errorf("catalog has no weeks")
	}
	seenWeeks := make(map[int]bool, len(c.Weeks))
	seenIDs := make(map[string]bool)
	for _, w := range c.Weeks {
		if w.Number < 1 || w.Number > 10 {
			return fmt.Errorf("week number %d out of range 1-10", w.Number)
		}
		if seenWeeks[w.Number] {
			return fmt.Errorf("duplicate week %d", w.Number)
		}
		seenWeeks[w.Number] = true
		for _, s := range w.Sessions {
			if s.ID == "" {
				return fmt.Errorf("week %d: session with empty id", w.Number)
			}
			if seenIDs[s.ID] {
				return fmt.Errorf("duplicate session id %q", s.ID)
			}
			seenIDs[s.ID] = true
			if !Valid(s.Type) {
				return fmt.Errorf("session %q: unknown type %q", s.ID, s.Type)
			}
		}
	}
	if c.RaceWeek < 1 || c.RaceWeek > 10 {
		return fmt.Errorf("race_week %d out of range 1-10", c.RaceWeek)
	}
	return nil
}
