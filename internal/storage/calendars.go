package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/schedule"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoCalendar is returned when no calendar has been generated yet.
var ErrNoCalendar = errors.New("no calendar stored")

// ErrSessionNotFound is returned when a session mutation matches no row.
// Callers distinguish it from infrastructure failures.
var ErrSessionNotFound = errors.New("session not found")

// WeekRow mirrors one calendar_weeks row.
type WeekRow struct {
	ProgramWeek int
	ISOWeek     int
	StartDate   time.Time
}

// SessionRow mirrors one scheduled_sessions row.
type SessionRow struct {
	ID           string
	ProgramWeek  int
	Date         time.Time
	ProgramID    string
	Type         string
	Name         string
	Description  string
	Duration     string
	Details      []string
	Priority     int
	Status       string
	OriginalDate *time.Time
	CompletedAt  *time.Time
}

// SaveCalendar persists a freshly generated calendar wholesale and returns
// its id. Calendars are immutable rows; the newest one is "current".
func (db *DB) SaveCalendar(ctx context.Context, cal *schedule.Calendar) (uuid.UUID, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO calendars (id, start_date, race_date) VALUES ($1, $2, $3)`,
		id, cal.StartDate, cal.RaceDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting calendar: %w", err)
	}

	for _, w := range cal.Weeks {
		_, err = tx.Exec(ctx,
			`INSERT INTO calendar_weeks (calendar_id, program_week, iso_week, start_date)
			 VALUES ($1, $2, $3, $4)`,
			id, w.ProgramWeek, w.ISOWeek, w.StartDate)
		if err != nil {
			return uuid.Nil, fmt.Errorf("inserting week %d: %w", w.ProgramWeek, err)
		}
		for _, d := range w.Days {
			for _, s := range d.Sessions {
				_, err = tx.Exec(ctx,
					`INSERT INTO scheduled_sessions
					 (id, calendar_id, program_week, session_date, program_id, session_type,
					  name, description, duration, details, priority, status, original_date, completed_at)
					 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
					s.ID, id, w.ProgramWeek, s.Date, s.Program.ID, string(s.Program.Type),
					s.Program.Name, s.Program.Description, s.Program.Duration, s.Program.Details,
					s.Program.Priority, string(s.Status), s.OriginalDate, s.CompletedAt)
				if err != nil {
					return uuid.Nil, fmt.Errorf("inserting session %s: %w", s.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("committing calendar: %w", err)
	}
	return id, nil
}

// LoadCurrentCalendar loads the most recently generated calendar and
// rebuilds the in-memory structure. Rest and race flags are re-derived from
// the rows, never trusted from storage.
func (db *DB) LoadCurrentCalendar(ctx context.Context) (uuid.UUID, *schedule.Calendar, error) {
	var id uuid.UUID
	var startDate, raceDate time.Time
	err := db.Pool.QueryRow(ctx,
		`SELECT id, start_date, race_date FROM calendars ORDER BY created_at DESC LIMIT 1`).
		Scan(&id, &startDate, &raceDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil, ErrNoCalendar
	}
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("querying calendar: %w", err)
	}

	weekRows, err := db.queryWeeks(ctx, id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	sessionRows, err := db.querySessions(ctx, id)
	if err != nil {
		return uuid.Nil, nil, err
	}

	return id, RebuildCalendar(startDate, raceDate, weekRows, sessionRows), nil
}

func (db *DB) queryWeeks(ctx context.Context, calID uuid.UUID) ([]WeekRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT program_week, iso_week, start_date FROM calendar_weeks
		 WHERE calendar_id = $1 ORDER BY program_week ASC`, calID)
	if err != nil {
		return nil, fmt.Errorf("querying weeks: %w", err)
	}
	defer rows.Close()

	var out []WeekRow
	for rows.Next() {
		var w WeekRow
		if err := rows.Scan(&w.ProgramWeek, &w.ISOWeek, &w.StartDate); err != nil {
			return nil, fmt.Errorf("scanning week: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (db *DB) querySessions(ctx context.Context, calID uuid.UUID) ([]SessionRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, program_week, session_date, program_id, session_type, name,
		        description, duration, details, priority, status, original_date, completed_at
		 FROM scheduled_sessions
		 WHERE calendar_id = $1 ORDER BY session_date ASC, id ASC`, calID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var s SessionRow
		if err := rows.Scan(&s.ID, &s.ProgramWeek, &s.Date, &s.ProgramID, &s.Type, &s.Name,
			&s.Description, &s.Duration, &s.Details, &s.Priority, &s.Status,
			&s.OriginalDate, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateSessionSchedule persists a reschedule: new date, status and (first
// time only) the original date, as already applied to the in-memory
// calendar.
func (db *DB) UpdateSessionSchedule(ctx context.Context, calID uuid.UUID, s *schedule.Session) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE scheduled_sessions
		 SET session_date = $1, status = $2, original_date = $3
		 WHERE calendar_id = $4 AND id = $5`,
		s.Date, string(s.Status), s.OriginalDate, calID, s.ID)
	if err != nil {
		return fmt.Errorf("updating session %s: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s in calendar %s: %w", s.ID, calID, ErrSessionNotFound)
	}
	return nil
}

// CompleteSession marks a session completed at the given time.
func (db *DB) CompleteSession(ctx context.Context, calID uuid.UUID, sessionID string, at time.Time) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE scheduled_sessions
		 SET status = $1, completed_at = $2
		 WHERE calendar_id = $3 AND id = $4`,
		string(schedule.StatusCompleted), at, calID, sessionID)
	if err != nil {
		return fmt.Errorf("completing session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s in calendar %s: %w", sessionID, calID, ErrSessionNotFound)
	}
	return nil
}

// RebuildCalendar reassembles the in-memory calendar from stored rows. Each
// week gets its seven days regardless of content; sessions attach to days by
// date; rest and race flags are derived on the spot.
func RebuildCalendar(startDate, raceDate time.Time, weeks []WeekRow, sessions []SessionRow) *schedule.Calendar {
	cal := &schedule.Calendar{
		StartDate: schedule.Midnight(startDate),
		RaceDate:  schedule.Midnight(raceDate),
	}

	for _, wr := range weeks {
		week := &schedule.Week{
			ProgramWeek: wr.ProgramWeek,
			ISOWeek:     wr.ISOWeek,
			StartDate:   schedule.Midnight(wr.StartDate),
		}
		for i := 0; i < 7; i++ {
			date := week.StartDate.AddDate(0, 0, i)
			day := &schedule.Day{
				Date:    date,
				RaceDay: schedule.SameDay(date, cal.RaceDate),
			}
			// Match by date alone: a reschedule can carry a session across
			// its original program-week boundary.
			for _, sr := range sessions {
				if !schedule.SameDay(sr.Date, date) {
					continue
				}
				day.Sessions = append(day.Sessions, &schedule.Session{
					ID:   sr.ID,
					Date: date,
					Program: program.Session{
						ID:          sr.ProgramID,
						Type:        program.SessionType(sr.Type),
						Name:        sr.Name,
						Description: sr.Description,
						Duration:    sr.Duration,
						Details:     sr.Details,
						Priority:    sr.Priority,
					},
					Status:       schedule.Status(sr.Status),
					OriginalDate: sr.OriginalDate,
					CompletedAt:  sr.CompletedAt,
				})
			}
			day.RestDay = len(day.Sessions) == 0
			week.Days = append(week.Days, day)
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return cal
}
