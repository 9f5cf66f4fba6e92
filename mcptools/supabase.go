package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerSupabaseTools(s *server.MCPServer) {
	sync := NewSyncDataTool()
	s.AddTool(sync.Definition(), sync.Handle)

	realtime := NewRealtimeUpdatesTool()
	s.AddTool(realtime.Definition(), realtime.Handle)

	query := NewQueryDataTool()
	s.AddTool(query.Definition(), query.Handle)
}

// SyncDataTool handles the supabase_sync_data tool.
type SyncDataTool struct{}

// NewSyncDataTool creates a SyncDataTool.
func NewSyncDataTool() *SyncDataTool {
	return &SyncDataTool{}
}

// Definition returns the MCP tool definition for supabase_sync_data.
func (t *SyncDataTool) Definition() mcp.Tool {
	return mcp.NewTool("supabase_sync_data",
		mcp.WithDescription("Sync rows into a table with the given operation."),
		mcp.WithString("table",
			mcp.Required(),
			mcp.Description("Target table name"),
		),
		mcp.WithObject("data",
			mcp.Description("Rows to sync"),
		),
		mcp.WithString("operation",
			mcp.Description("insert, update, or upsert (default: upsert)"),
		),
	)
}

// Handle processes the supabase_sync_data tool call.
func (t *SyncDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := req.GetString("table", "")
	if table == "" {
		return mcp.NewToolResultError("'table' is required"), nil
	}
	operation := req.GetString("operation", "upsert")

	var b strings.Builder
	b.WriteString("Sync complete.\n\n")
	fmt.Fprintf(&b, "Table: %s\n", table)
	fmt.Fprintf(&b, "Operation: %s\n", operation)
	b.WriteString("Affected rows: 1\n")
	b.WriteString("Status: success\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", time.Now().UTC().Format(time.RFC3339))

	return mcp.NewToolResultText(b.String()), nil
}

// RealtimeUpdatesTool handles the supabase_get_realtime_updates tool.
type RealtimeUpdatesTool struct{}

// NewRealtimeUpdatesTool creates a RealtimeUpdatesTool.
func NewRealtimeUpdatesTool() *RealtimeUpdatesTool {
	return &RealtimeUpdatesTool{}
}

// Definition returns the MCP tool definition for supabase_get_realtime_updates.
func (t *RealtimeUpdatesTool) Definition() mcp.Tool {
	return mcp.NewTool("supabase_get_realtime_updates",
		mcp.WithDescription("Fetch recent realtime events for a table."),
		mcp.WithString("table",
			mcp.Required(),
			mcp.Description("Table to watch"),
		),
		mcp.WithString("event",
			mcp.Description("Event type to filter on (default: INSERT)"),
		),
	)
}

// Handle processes the supabase_get_realtime_updates tool call.
func (t *RealtimeUpdatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := req.GetString("table", "")
	if table == "" {
		return mcp.NewToolResultError("'table' is required"), nil
	}
	event := req.GetString("event", "INSERT")

	now := time.Now().UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString("Realtime updates received:\n\n")
	fmt.Fprintf(&b, "Table: %s\n", table)
	fmt.Fprintf(&b, "Event: %s\n\n", event)
	b.WriteString("- Type: NEWSET\n")
	b.WriteString("  Title: New bouldering route\n")
	b.WriteString("  Description: A new 6A bouldering route was added.\n")
	fmt.Fprintf(&b, "  Timestamp: %s\n", now)

	return mcp.NewToolResultText(b.String()), nil
}

// QueryDataTool handles the supabase_query_data tool.
type QueryDataTool struct{}

// NewQueryDataTool creates a QueryDataTool.
func NewQueryDataTool() *QueryDataTool {
	return &QueryDataTool{}
}

// Definition returns the MCP tool definition for supabase_query_data.
func (t *QueryDataTool) Definition() mcp.Tool {
	return mcp.NewTool("supabase_query_data",
		mcp.WithDescription("Query rows from a table with optional filters."),
		mcp.WithString("table",
			mcp.Required(),
			mcp.Description("Table to query"),
		),
		mcp.WithObject("filters",
			mcp.Description("Column filters"),
		),
		mcp.WithString("select",
			mcp.Description("Columns to select (default: *)"),
		),
	)
}

// Handle processes the supabase_query_data tool call.
func (t *QueryDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := req.GetString("table", "")
	if table == "" {
		return mcp.NewToolResultError("'table' is required"), nil
	}
	sel := req.GetString("select", "*")

	rows := []struct {
		title, typ, description, date string
	}{
		{"Winter season routes", "NEWSET", "New winter season routes were set.", "2024-01-15"},
		{"Old route removal", "REMOVAL", "Aging routes are scheduled for removal.", "2024-01-20"},
	}

	var b strings.Builder
	b.WriteString("Query complete.\n\n")
	fmt.Fprintf(&b, "Table: %s\n", table)
	fmt.Fprintf(&b, "Select: %s\n", sel)
	fmt.Fprintf(&b, "Count: %d\n\n", len(rows))
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s (%s)\n  Description: %s\n  Date: %s\n", r.title, r.typ, r.description, r.date)
	}

	return mcp.NewToolResultText(b.String()), nil
}
