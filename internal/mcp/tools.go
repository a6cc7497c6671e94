package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/claude/planforge/internal/schedule"
	"github.com/claude/planforge/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProgramWeek = mcp.NewTool("get_program_week",
	mcp.WithDescription("Retrieve one week of the structured training program: block, theme, focus and the planned sessions with their details."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week number (1-10)")),
)

var toolGetCalendarWeek = mcp.NewTool("get_calendar_week",
	mcp.WithDescription("Retrieve one week of the generated calendar: each day with its scheduled sessions, rest-day and race-day flags."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week number (1-10)")),
)

var toolGetUpcomingSessions = mcp.NewTool("get_upcoming_sessions",
	mcp.WithDescription("List scheduled sessions in the coming days, soonest first. Completed and skipped sessions are excluded."),
	mcp.WithNumber("days", mcp.Description("How many days ahead to look. Defaults to 7.")),
)

var toolRescheduleSession = mcp.NewTool("reschedule_session",
	mcp.WithDescription("Move a scheduled session to the next valid date that respects recovery spacing and the pre-race taper. Returns the outcome with a user-facing message and any warnings."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("ID of the scheduled session to move")),
	mcp.WithString("reason", mcp.Description("Why the session was missed. Defaults to 'other'."), mcp.Enum("busy", "sick", "other")),
)

var toolCompleteSession = mcp.NewTool("complete_session",
	mcp.WithDescription("Mark a scheduled session as completed now."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("ID of the scheduled session")),
)

// --- Tool handlers ---

func (h *handlers) getProgramWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	week := h.catalog.WeekByNumber(n)
	if week == nil {
		return mcp.NewToolResultError("no such program week"), nil
	}

	result, err := mcp.NewToolResultJSON(week)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCalendarWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	_, cal, err := h.db.LoadCurrentCalendar(ctx)
	if err != nil {
		return calendarError(err), nil
	}

	for _, week := range cal.Weeks {
		if week.ProgramWeek == n {
			result, err := mcp.NewToolResultJSON(week)
			if err != nil {
				return mcp.NewToolResultError("serialization failed"), nil
			}
			return result, nil
		}
	}
	return mcp.NewToolResultError("no such calendar week"), nil
}

func (h *handlers) getUpcomingSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := req.GetInt("days", 7)
	if days < 1 {
		days = 1
	}

	_, cal, err := h.db.LoadCurrentCalendar(ctx)
	if err != nil {
		return calendarError(err), nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, days)

	var upcoming []*schedule.Session
	for _, s := range cal.Sessions() {
		if s.Date.Before(today) || !s.Date.Before(horizon) {
			continue
		}
		if s.Status == schedule.StatusCompleted || s.Status == schedule.StatusSkipped {
			continue
		}
		upcoming = append(upcoming, s)
	}

	result, err := mcp.NewToolResultJSON(upcoming)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) rescheduleSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	reason := schedule.Reason(req.GetString("reason", string(schedule.ReasonOther)))

	calID, cal, err := h.db.LoadCurrentCalendar(ctx)
	if err != nil {
		return calendarError(err), nil
	}

	res := schedule.Reschedule(cal, sessionID, reason)
	if res.Success {
		session, _, _ := cal.FindSession(sessionID)
		if err := h.db.UpdateSessionSchedule(ctx, calID, session); err != nil {
			h.log.Error("mcp reschedule_session: persist failed", "session", sessionID, "error", err)
			return mcp.NewToolResultError("persisting reschedule failed: " + err.Error()), nil
		}
	}

	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) completeSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	calID, _, err := h.db.LoadCurrentCalendar(ctx)
	if err != nil {
		return calendarError(err), nil
	}

	if err := h.db.CompleteSession(ctx, calID, sessionID, time.Now()); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return mcp.NewToolResultError("session not found: " + sessionID), nil
		}
		h.log.Error("mcp complete_session", "session", sessionID, "error", err)
		return mcp.NewToolResultError("completing session failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{
		"session_id": sessionID,
		"status":     string(schedule.StatusCompleted),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func calendarError(err error) *mcp.CallToolResult {
	if errors.Is(err, storage.ErrNoCalendar) {
		return mcp.NewToolResultError("no calendar generated yet")
	}
	return mcp.NewToolResultError("loading calendar failed: " + err.Error())
}
