package mcp

import (
	"log/slog"

	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, catalog *program.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanForge training plan server. Query the structured program, the generated calendar, upcoming sessions, and reschedule or complete scheduled sessions."),
	)

	h := &handlers{db: db, catalog: catalog, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgramWeek, Handler: h.getProgramWeek},
		server.ServerTool{Tool: toolGetCalendarWeek, Handler: h.getCalendarWeek},
		server.ServerTool{Tool: toolGetUpcomingSessions, Handler: h.getUpcomingSessions},
		server.ServerTool{Tool: toolRescheduleSession, Handler: h.rescheduleSession},
		server.ServerTool{Tool: toolCompleteSession, Handler: h.completeSession},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCalendar, Handler: h.calendar},
		server.ServerResource{Resource: resProgram, Handler: h.programCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db      *storage.DB
	catalog *program.Catalog
	log     *slog.Logger
}

// --- Resource definitions ---

var resCalendar = mcp.NewResource(
	"planforge://calendar",
	"Training Calendar",
	mcp.WithResourceDescription("The current generated training calendar: weeks, days, scheduled sessions, rest days and the race day"),
	mcp.WithMIMEType("application/json"),
)

var resProgram = mcp.NewResource(
	"planforge://program",
	"Training Program",
	mcp.WithResourceDescription("The structured training program catalog with all weeks, blocks and session definitions"),
	mcp.WithMIMEType("application/json"),
)
