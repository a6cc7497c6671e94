package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		catalog: program.Default(),
		plan: PlanSettings{
			StartDate: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local),
			RaceDate:  time.Date(2025, time.February, 14, 0, 0, 0, 0, time.Local),
		},
		log:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
		apiKey: "test-key",
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// TestHandleGetProgram verifies the full catalog is served as JSON.
func TestHandleGetProgram(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/program", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var cat program.Catalog
	if err := json.NewDecoder(rec.Body).Decode(&cat); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(cat.Weeks) != 10 {
		t.Errorf("weeks = %d, want 10", len(cat.Weeks))
	}
	if cat.RaceWeek != 5 {
		t.Errorf("race_week = %d, want 5", cat.RaceWeek)
	}
}

// TestHandleGetProgramWeek verifies week lookup and the not-found path.
func TestHandleGetProgramWeek(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/program/weeks/3", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var week program.Week
	if err := json.NewDecoder(rec.Body).Decode(&week); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if week.Number != 3 {
		t.Errorf("week number = %d, want 3", week.Number)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/program/weeks/42", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for absent week", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/program/weeks/abc", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for non-numeric week", rec.Code)
	}
}

// TestMutatingRoutesRequireAPIKey verifies the key middleware guards the
// mutating endpoints while reads stay open.
func TestMutatingRoutesRequireAPIKey(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/x/reschedule", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/program", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("read without key: status = %d, want 200", rec.Code)
	}
}

// TestStorageErrorStatus verifies the not-found sentinels map to 404 while
// infrastructure failures surface as 500, even when wrapped.
func TestStorageErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", storage.ErrSessionNotFound, http.StatusNotFound},
		{"wrapped session not found", fmt.Errorf("completing session x: %w", storage.ErrSessionNotFound), http.StatusNotFound},
		{"no calendar", storage.ErrNoCalendar, http.StatusNotFound},
		{"database failure", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storageErrorStatus(tt.err); got != tt.want {
				t.Errorf("storageErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
