package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/planforge/internal/localstore"
	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/schedule"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	stateDir := flag.String("state", "", "state directory (default ~/.planforge)")
	catalogPath := flag.String("catalog", "", "YAML program catalog (default: built-in ten-week program)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planforge-cli", Version)
		return
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	dir := *stateDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fail("resolving home directory: %v", err)
		}
		dir = filepath.Join(home, ".planforge")
	}

	store, err := localstore.Open(dir)
	if err != nil {
		fail("opening state store: %v", err)
	}
	defer store.Close()

	args := flag.Args()
	switch args[0] {
	case "generate":
		err = cmdGenerate(store, *catalogPath, args[1:])
	case "show":
		err = cmdShow(store, args[1:])
	case "upcoming":
		err = cmdUpcoming(store)
	case "reschedule":
		err = cmdReschedule(store, args[1:])
	case "complete":
		err = cmdComplete(store, args[1:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: planforge-cli [flags] <command>

Commands:
  generate -start YYYY-MM-DD -race YYYY-MM-DD   build a fresh calendar
  show [week]                                   print the calendar (or one week)
  upcoming                                      print sessions for the next 7 days
  reschedule <session-id> [-reason busy|sick|other]
  complete <session-id>

Flags:
`)
	flag.PrintDefaults()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdGenerate(store *localstore.Store, catalogPath string, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	startStr := fs.String("start", "", "plan start date (YYYY-MM-DD, required)")
	raceStr := fs.String("race", "", "race date (YYYY-MM-DD, required)")
	raceWeek := fs.Int("race-week", 0, "program week that tapers into the race (default: catalog's)")
	fs.Parse(args)

	if *startStr == "" || *raceStr == "" {
		return errors.New("generate requires -start and -race")
	}
	start, err := time.ParseInLocation("2006-01-02", *startStr, time.Local)
	if err != nil {
		return fmt.Errorf("parsing -start: %w", err)
	}
	race, err := time.ParseInLocation("2006-01-02", *raceStr, time.Local)
	if err != nil {
		return fmt.Errorf("parsing -race: %w", err)
	}

	catalog := program.Default()
	if catalogPath != "" {
		if catalog, err = program.Load(catalogPath); err != nil {
			return err
		}
	}
	if *raceWeek != 0 {
		catalog.RaceWeek = *raceWeek
	}

	cal := schedule.BuildCalendar(catalog, start, race)
	if err := store.SaveCalendar(cal); err != nil {
		return err
	}

	fmt.Printf("Calendar generated: %d weeks, race on %s\n",
		len(cal.Weeks), schedule.FormatDateFR(cal.RaceDate))
	return nil
}

func cmdShow(store *localstore.Store, args []string) error {
	cal, err := loadCalendar(store)
	if err != nil {
		return err
	}

	var only int
	if len(args) > 0 {
		if _, err := fmt.Sscanf(args[0], "%d", &only); err != nil {
			return fmt.Errorf("invalid week number %q", args[0])
		}
	}

	for _, week := range cal.Weeks {
		if only != 0 && week.ProgramWeek != only {
			continue
		}
		fmt.Printf("Semaine %d (%s)\n", week.ProgramWeek, week.StartDate.Format("2006-01-02"))
		for _, day := range week.Days {
			printDay(day)
		}
		fmt.Println()
	}
	return nil
}

func printDay(day *schedule.Day) {
	label := schedule.FormatDateShortFR(day.Date)
	switch {
	case day.RaceDay:
		fmt.Printf("  %-12s COURSE\n", label)
	case day.RestDay:
		fmt.Printf("  %-12s repos\n", label)
	}
	for _, s := range day.Sessions {
		status := ""
		if s.Status != schedule.StatusPlanned {
			status = fmt.Sprintf(" [%s]", s.Status)
		}
		fmt.Printf("  %-12s %s (%s, %s)%s\n", label, s.Program.Name, s.ID, s.Program.Duration, status)
	}
}

func cmdUpcoming(store *localstore.Store) error {
	cal, err := loadCalendar(store)
	if err != nil {
		return err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, 7)

	count := 0
	for _, s := range cal.Sessions() {
		if s.Date.Before(today) || !s.Date.Before(horizon) {
			continue
		}
		if s.Status == schedule.StatusCompleted || s.Status == schedule.StatusSkipped {
			continue
		}
		fmt.Printf("%s  %s (%s)\n", schedule.FormatDateFR(s.Date), s.Program.Name, s.ID)
		count++
	}
	if count == 0 {
		fmt.Println("Aucune séance dans les 7 prochains jours")
	}
	return nil
}

func cmdReschedule(store *localstore.Store, args []string) error {
	if len(args) == 0 {
		return errors.New("reschedule requires a session id")
	}
	sessionID := args[0]

	fs := flag.NewFlagSet("reschedule", flag.ExitOnError)
	reasonStr := fs.String("reason", "other", "why the session was missed (busy, sick, other)")
	fs.Parse(args[1:])

	cal, err := loadCalendar(store)
	if err != nil {
		return err
	}

	result := schedule.Reschedule(cal, sessionID, schedule.Reason(*reasonStr))
	if result.Success {
		if err := store.SaveCalendar(cal); err != nil {
			return err
		}
	}

	fmt.Println(result.Message)
	for _, w := range result.Warnings {
		fmt.Println("  ⚠", w)
	}
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func cmdComplete(store *localstore.Store, args []string) error {
	if len(args) == 0 {
		return errors.New("complete requires a session id")
	}
	sessionID := args[0]

	cal, err := loadCalendar(store)
	if err != nil {
		return err
	}

	session, _, _ := cal.FindSession(sessionID)
	if session == nil {
		return fmt.Errorf("séance non trouvée: %s", sessionID)
	}

	now := time.Now()
	session.Status = schedule.StatusCompleted
	session.CompletedAt = &now

	if err := store.SaveCalendar(cal); err != nil {
		return err
	}
	fmt.Printf("Séance %s terminée\n", sessionID)
	return nil
}

func loadCalendar(store *localstore.Store) (*schedule.Calendar, error) {
	cal, err := store.LoadCalendar()
	if errors.Is(err, localstore.ErrNoCalendar) {
		return nil, errors.New("no calendar yet: run 'planforge-cli generate' first")
	}
	return cal, err
}
