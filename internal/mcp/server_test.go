package mcp

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/claude/planforge/internal/program"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestGetProgramWeekTool exercises the program week tool against the
// built-in catalog, without a database.
func TestGetProgramWeekTool(t *testing.T) {
	h := &handlers{
		catalog: program.Default(),
		log:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_program_week"
	req.Params.Arguments = map[string]any{"week": 5}

	res, err := h.getProgramWeek(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error result: %v", res.Content)
	}
}

// TestGetProgramWeekToolMissing verifies the error paths: absent week and
// missing parameter both come back as tool errors, not Go errors.
func TestGetProgramWeekToolMissing(t *testing.T) {
	h := &handlers{
		catalog: program.Default(),
		log:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_program_week"
	req.Params.Arguments = map[string]any{"week": 42}

	res, err := h.getProgramWeek(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for absent week")
	}

	req.Params.Arguments = map[string]any{}
	res, err = h.getProgramWeek(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for missing week parameter")
	}
}
