package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

// PlanSettings is the configured training plan the server schedules from.
type PlanSettings struct {
	StartDate time.Time
	RaceDate  time.Time
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *program.Catalog
	plan    PlanSettings
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, catalog *program.Catalog, plan PlanSettings, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: catalog,
		plan:    plan,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetMCP mounts an MCP transport handler at /mcp. Must be called before
// the server starts accepting requests.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Handle("/mcp", h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints
	s.router.Get("/api/v1/program", s.handleGetProgram)
	s.router.Get("/api/v1/program/weeks/{n}", s.handleGetProgramWeek)
	s.router.Get("/api/v1/calendar", s.handleGetCalendar)
	s.router.Get("/api/v1/calendar/weeks/{n}", s.handleGetCalendarWeek)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/calendar", s.handleGenerateCalendar)
		r.Post("/api/v1/sessions/{id}/reschedule", s.handleReschedule)
		r.Post("/api/v1/sessions/{id}/complete", s.handleComplete)
	})
}
