package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/planforge/internal/schedule"
	"github.com/claude/planforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleGetProgramWeek(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week number"})
		return
	}
	week := s.catalog.WeekByNumber(n)
	if week == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program week not found"})
		return
	}
	writeJSON(w, http.StatusOK, week)
}

// handleGenerateCalendar builds a fresh calendar from the configured plan
// (optionally overridden per request) and persists it wholesale.
func (s *Server) handleGenerateCalendar(w http.ResponseWriter, r *http.Request) {
	startDate := s.plan.StartDate
	raceDate := s.plan.RaceDate

	if r.ContentLength > 0 {
		var req struct {
			StartDate string `json:"start_date"`
			RaceDate  string `json:"race_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
		var err error
		if req.StartDate != "" {
			if startDate, err = parseDate(req.StartDate); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
				return
			}
		}
		if req.RaceDate != "" {
			if raceDate, err = parseDate(req.RaceDate); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid race_date"})
				return
			}
		}
	}

	cal := schedule.BuildCalendar(s.catalog, startDate, raceDate)
	id, err := s.db.SaveCalendar(r.Context(), cal)
	if err != nil {
		s.log.Error("saving calendar", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("calendar generated", "id", id, "weeks", len(cal.Weeks))
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       id,
		"calendar": cal,
	})
}

func (s *Server) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	_, cal, err := s.db.LoadCurrentCalendar(r.Context())
	if errors.Is(err, storage.ErrNoCalendar) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calendar generated yet"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

func (s *Server) handleGetCalendarWeek(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week number"})
		return
	}

	_, cal, err := s.db.LoadCurrentCalendar(r.Context())
	if errors.Is(err, storage.ErrNoCalendar) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calendar generated yet"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	for _, week := range cal.Weeks {
		if week.ProgramWeek == n {
			writeJSON(w, http.StatusOK, week)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "calendar week not found"})
}

// handleReschedule runs the reschedule engine against the stored calendar
// and persists the mutation when it succeeds. Engine failures (unknown id,
// no slot) come back as 200s with success=false: they are results, not
// transport errors.
func (s *Server) handleReschedule(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req struct {
		Reason schedule.Reason `json:"reason"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}
	if req.Reason == "" {
		req.Reason = schedule.ReasonOther
	}

	calID, cal, err := s.db.LoadCurrentCalendar(r.Context())
	if errors.Is(err, storage.ErrNoCalendar) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calendar generated yet"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result := schedule.Reschedule(cal, sessionID, req.Reason)
	if result.Success {
		session, _, _ := cal.FindSession(sessionID)
		if err := s.db.UpdateSessionSchedule(r.Context(), calID, session); err != nil {
			s.log.Error("persisting reschedule", "session", sessionID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		s.log.Info("session rescheduled", "session", sessionID, "new_date", result.NewDate)
	}

	writeJSON(w, http.StatusOK, result)
}

// handleComplete is the caller-performed completion path: it stamps the
// session completed without any scheduling logic.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	calID, _, err := s.db.LoadCurrentCalendar(r.Context())
	if errors.Is(err, storage.ErrNoCalendar) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calendar generated yet"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.CompleteSession(r.Context(), calID, sessionID, time.Now()); err != nil {
		status := storageErrorStatus(err)
		if status == http.StatusInternalServerError {
			s.log.Error("completing session", "session", sessionID, "error", err)
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(schedule.StatusCompleted)})
}

// storageErrorStatus maps storage errors onto HTTP statuses: the typed
// not-found sentinels are client errors, anything else is an internal
// failure.
func storageErrorStatus(err error) int {
	if errors.Is(err, storage.ErrNoCalendar) || errors.Is(err, storage.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
