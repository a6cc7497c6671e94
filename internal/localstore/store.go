// Package localstore is the offline single-user persistence layer: the whole
// calendar lives as one JSON document in a local SQLite database, the way the
// original app kept it in browser storage.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/planforge/internal/schedule"
	_ "modernc.org/sqlite"
)

// ErrNoCalendar is returned when no calendar has been saved yet.
var ErrNoCalendar = errors.New("no calendar stored")

const calendarKey = "calendar"

// Store is a small key/document store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the local store at dir/planforge.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "planforge.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveCalendar serializes and stores the calendar, replacing any previous
// one.
func (s *Store) SaveCalendar(cal *schedule.Calendar) error {
	data, err := json.Marshal(cal)
	if err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		calendarKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}
	return nil
}

// LoadCalendar reads the stored calendar back. Derived day flags are
// refreshed after decoding rather than trusted from the document.
func (s *Store) LoadCalendar() (*schedule.Calendar, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, calendarKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCalendar
	}
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}

	cal := &schedule.Calendar{}
	if err := json.Unmarshal([]byte(raw), cal); err != nil {
		return nil, fmt.Errorf("decoding calendar: %w", err)
	}

	for _, w := range cal.Weeks {
		for _, d := range w.Days {
			d.RestDay = len(d.Sessions) == 0
			d.RaceDay = schedule.SameDay(d.Date, cal.RaceDate)
		}
	}
	return cal, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
