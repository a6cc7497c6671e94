package program

import "fmt"

// DefaultRaceWeek is the program-week that uses the taper template and hosts
// the race. Overridable via config or a catalog file.
const DefaultRaceWeek = 5

// Default returns the built-in 10-week program: block 1 (weeks 1-5) builds
// toward a 9km race, block 2 (weeks 6-10) shifts to hypertrophy and strength.
// The returned catalog is freshly allocated on each call so callers may hold
// it as an immutable value.
func Default() *Catalog {
	return &Catalog{
		RaceWeek: DefaultRaceWeek,
		Weeks: []Week{
			{
				Number: 1, Block: 1,
				Theme: "Technique",
				Focus: "Movement mastery at moderate loads",
				Sessions: []Session{
					{ID: "w1-strength-a", Type: StrengthA, Name: "Back & Posture (Technique)", Description: "Technique work, moderate loads", Duration: "45 min", Priority: 1,
						Details: []string{"Barbell row 3x10 @ 20kg, tempo 3-0-1-0", "Rear delt fly 3x12 @ 3kg", "Superman hold 3x30s"}},
					{ID: "w1-strength-b", Type: StrengthB, Name: "Chest & Triceps (Technique)", Description: "Technique work, moderate loads", Duration: "45 min", Priority: 1,
						Details: []string{"Bench press 3x8 @ 25kg, tempo 3-1-1-0", "Floor press 3x10 @ 8kg/hand"}},
					{ID: "w1-strength-c", Type: StrengthC, Name: "Legs & Core (Technique)", Description: "Front squat introduction", Duration: "45 min", Priority: 1,
						Details: []string{"Front squat 3x10 @ 20kg, tempo 3-1-1-0", "Stiff-leg deadlift 3x10 @ 6kg/hand"}},
					{ID: "w1-interval", Type: CardioInterval, Name: "Intervals 30/30", Description: "Short intervals, first exposure", Duration: "25 min", Priority: 1,
						Details: []string{"Warm-up 5 min", "10x (30s on / 30s off)", "Cool-down 5 min"}},
					{ID: "w1-zone2", Type: CardioZone2, Name: "Zone 2 - 5km easy", Description: "Aerobic base", Duration: "35-40 min", Priority: 1,
						Details: []string{"Conversational pace", "5 km", "Nasal breathing if possible"}},
				},
			},
			{
				Number: 2, Block: 1,
				Theme: "Postural fixation",
				Focus: "Slow tempo, maximum time under tension",
				Sessions: []Session{
					{ID: "w2-strength-a", Type: StrengthA, Name: "Back & Posture (Slow Tempo)", Description: "Tempo 4-0-1-0", Duration: "50 min", Priority: 1,
						Details: []string{"Barbell row 4x10 @ 22.5kg, tempo 4-0-1-0", "Rear delt fly 3x15 @ 4kg", "Superman hold 3x40s"}},
					{ID: "w2-strength-b", Type: StrengthB, Name: "Chest & Triceps (Slow Tempo)", Description: "Tempo 4-1-1-0", Duration: "50 min", Priority: 1,
						Details: []string{"Bench press 4x8 @ 27.5kg, tempo 4-1-1-0", "Floor press 3x12 @ 8kg/hand"}},
					{ID: "w2-strength-c", Type: StrengthC, Name: "Legs & Core (Slow Tempo)", Description: "Tempo 4-1-1-0", Duration: "50 min", Priority: 1,
						Details: []string{"Front squat 4x10 @ 22.5kg, tempo 4-1-1-0", "Stiff-leg deadlift 3x12 @ 7kg/hand"}},
					{ID: "w2-interval", Type: CardioInterval, Name: "Intervals 45/45", Description: "Longer intervals", Duration: "30 min", Priority: 1,
						Details: []string{"Warm-up 5 min", "8x (45s on / 45s off)", "Cool-down 5 min"}},
					{ID: "w2-zone2", Type: CardioZone2, Name: "Zone 2 - 6.5km", Description: "Very easy pace", Duration: "45-50 min", Priority: 1,
						Details: []string{"6.5 km at 7:00-7:30/km", "Full conversation possible"}},
				},
			},
			{
				Number: 3, Block: 1,
				Theme: "First overload",
				Focus: "+2.5kg on the big lifts, threshold work",
				Sessions: []Session{
					{ID: "w3-strength-a", Type: StrengthA, Name: "Back & Posture (+2.5kg)", Description: "First progressive overload", Duration: "50 min", Priority: 1,
						Details: []string{"Barbell row 4x10 @ 25kg", "Rear delt fly 3x15 @ 4kg", "Superman hold 3x45s"}},
					{ID: "w3-strength-b", Type: StrengthB, Name: "Chest & Triceps (+2.5kg)", Description: "Bench overload", Duration: "50 min", Priority: 1,
						Details: []string{"Bench press 4x8 @ 30kg", "Floor press 3x12 @ 10kg/hand"}},
					{ID: "w3-strength-c", Type: StrengthC, Name: "Legs & Core (+2.5kg)", Description: "Squat overload", Duration: "50 min", Priority: 1,
						Details: []string{"Front squat 4x10 @ 25kg", "Stiff-leg deadlift 3x12 @ 8kg/hand"}},
					{ID: "w3-threshold", Type: CardioThreshold, Name: "Threshold 2x2km", Description: "Race-pace blocks", Duration: "35 min", Priority: 1,
						Details: []string{"Warm-up 10 min", "2km @ race pace, 3 min walk, 2km @ race pace", "Cool-down 5 min"}},
					{ID: "w3-zone2", Type: CardioZone2, Name: "Zone 2 - 7.5km", Description: "Distance progression", Duration: "50-55 min", Priority: 1,
						Details: []string{"7.5 km at 7:00/km", "Hydrate beforehand"}},
				},
			},
			{
				Number: 4, Block: 1,
				Theme: "Accumulated volume",
				Focus: "+1 set per movement, last long run",
				Sessions: []Session{
					{ID: "w4-strength-a", Type: StrengthA, Name: "Back & Posture (Volume+)", Description: "+1 set per movement", Duration: "55 min", Priority: 1,
						Details: []string{"Barbell row 5x10 @ 25kg", "Rear delt fly 4x15 @ 4kg", "Superman hold 4x45s"}},
					{ID: "w4-strength-b", Type: StrengthB, Name: "Chest & Triceps (Volume+)", Description: "+1 set per movement", Duration: "55 min", Priority: 1,
						Details: []string{"Bench press 5x8 @ 30kg", "Floor press 4x12 @ 10kg/hand"}},
					{ID: "w4-strength-c", Type: StrengthC, Name: "Legs & Core (Volume+)", Description: "+1 set per movement", Duration: "55 min", Priority: 1,
						Details: []string{"Front squat 5x10 @ 25kg", "Stiff-leg deadlift 4x12 @ 8kg/hand"}},
					{ID: "w4-interval", Type: CardioInterval, Name: "Intervals 1min/1min", Description: "Last intervals before the race", Duration: "35 min", Priority: 1,
						Details: []string{"Warm-up 8 min", "6x (1min on / 1min off)", "Cool-down 8 min"}},
					{ID: "w4-zone2", Type: CardioZone2, Name: "Zone 2 - 8km", Description: "Dress rehearsal", Duration: "55-60 min", Priority: 1,
						Details: []string{"8 km at 6:45-7:00/km", "Fully comfortable breathing"}},
				},
			},
			{
				Number: 5, Block: 1,
				Theme: "Taper & race",
				Focus: "Light maintenance, everything toward race day",
				Sessions: []Session{
					{ID: "w5-strength-light", Type: StrengthA, Name: "Maintenance (Light)", Description: "No muscular fatigue before the race", Duration: "30 min", Priority: 2,
						Details: []string{"Barbell row 3x8 @ 20kg, tempo 2-0-1-0", "Rear delt fly 2x12 @ 3kg", "Superman hold 2x30s"}},
					{ID: "w5-race", Type: RaceDay, Name: "9km Race", Description: "The goal event", Duration: "50-55 min", Priority: 1,
						Details: []string{"Warm-up 5 min walk + mobility", "First 2km in zone 2", "Hold steady through km 8-9, no surge"}},
				},
			},
			{
				Number: 6, Block: 2,
				Theme: "Hypertrophy - restart",
				Focus: "New tempo 2-0-2-0, progressive loads",
				Sessions: hypertrophyWeek(6),
			},
			{
				Number: 7, Block: 2,
				Theme: "Hypertrophy - progression",
				Focus: "+2.5kg on the main lifts",
				Sessions: hypertrophyWeek(7),
			},
			{
				Number: 8, Block: 2,
				Theme: "Athletic strength",
				Focus: "Heavier loads, fewer reps",
				Sessions: hypertrophyWeek(8),
			},
			{
				Number: 9, Block: 2,
				Theme: "Peak volume",
				Focus: "Maximum volume before deload",
				Sessions: hypertrophyWeek(9),
			},
			{
				Number: 10, Block: 2,
				Theme: "Deload & evaluation",
				Focus: "Recovery, strength testing",
				Sessions: append(hypertrophyWeek(10)[:3:3],
					Session{ID: "w10-zone2-1", Type: CardioZone2, Name: "Maintenance Cardio", Description: "Active recovery", Duration: "40-45 min", Priority: 2,
						Details: []string{"6-7 km at a comfortable pace"}}),
			},
		},
	}
}

// hypertrophyWeek builds the block-2 weekly set: three strength sessions plus
// two easy cardio sessions, with ids keyed to the week number.
func hypertrophyWeek(n int) []Session {
	return []Session{
		{ID: fmt.Sprintf("w%d-strength-a", n), Type: StrengthA, Name: "Back / Thickness", Description: "Tempo 2-0-2-0, hypertrophy", Duration: "60 min", Priority: 1,
			Details: []string{"Heavy barbell row 5x8, tempo 2-0-2-0", "Rear delt fly 4x12", "One-arm dumbbell row 3x12/side", "Shrugs 3x15"}},
		{ID: fmt.Sprintf("w%d-strength-b", n), Type: StrengthB, Name: "Chest / Width", Description: "Tempo 2-0-2-0, hypertrophy", Duration: "60 min", Priority: 1,
			Details: []string{"Bench press 5x8, tempo 2-0-2-0", "Dumbbell fly 3x15", "Floor press 3x10", "Triceps extension 3x12"}},
		{ID: fmt.Sprintf("w%d-strength-c", n), Type: StrengthC, Name: "Legs / Core", Description: "Tempo 2-0-2-0 plus finisher", Duration: "65 min", Priority: 1,
			Details: []string{"Front squat 5x8, tempo 2-0-2-0", "Romanian deadlift 4x10", "Walking lunges 3x20 steps", "10 min HIIT finisher"}},
		{ID: fmt.Sprintf("w%d-zone2-1", n), Type: CardioZone2, Name: "Maintenance Cardio", Description: "Aerobic upkeep", Duration: "40-45 min", Priority: 2,
			Details: []string{"6-7 km at a comfortable pace"}},
		{ID: fmt.Sprintf("w%d-zone2-2", n), Type: CardioZone2, Name: "Maintenance Cardio 2", Description: "Active recovery", Duration: "40-45 min", Priority: 2,
			Details: []string{"6-7 km, easier than the first outing"}},
	}
}
