package mcptools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestNewKnownServers(t *testing.T) {
	for _, name := range ServerNames {
		s, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
}

func TestNewUnknownServer(t *testing.T) {
	_, err := New("notion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notion")
}

func TestTriggerWorkflow(t *testing.T) {
	tool := NewTriggerWorkflowTool()
	assert.Equal(t, "make_trigger_workflow", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"workflowId": "wf_1",
		"data":       map[string]interface{}{"gymId": "g-1"},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Workflow ID: wf_1")
	assert.Contains(t, text, "Execution ID: exec_")
	assert.Contains(t, text, "Status: running")
}

func TestTriggerWorkflowMissingID(t *testing.T) {
	tool := NewTriggerWorkflowTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "workflowId")
}

func TestWorkflowStatus(t *testing.T) {
	tool := NewWorkflowStatusTool()
	assert.Equal(t, "make_get_workflow_status", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"workflowId": "wf_2",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Workflow wf_2 status:")
	assert.Contains(t, text, "Success count: 15")
}

func TestListWorkflows(t *testing.T) {
	tool := NewListWorkflowsTool()
	assert.Equal(t, "make_list_workflows", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Climbing Gym Updates")
	assert.Contains(t, text, "wf_3")
	assert.Contains(t, text, "draft")
}

func TestScrapeGymInfo(t *testing.T) {
	tool := NewScrapeGymInfoTool()
	assert.Equal(t, "apify_scrape_gym_info", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"gymName": "Climb Lab Gangnam",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Name: Climb Lab Gangnam")
	assert.Contains(t, text, "Rating: 4.8/5.0")
}

func TestScrapeNewRoutes(t *testing.T) {
	tool := NewScrapeNewRoutesTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"url": "https://example-gym.com/routes",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "https://example-gym.com/routes")
	assert.Contains(t, text, "Route: Blue Line")
	assert.Contains(t, text, "Grade: 7B")

	result, err = tool.Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestScrapeRouteGrades(t *testing.T) {
	tool := NewScrapeRouteGradesTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"gymUrl": "https://example-gym.com",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Total routes: 105")
	assert.Contains(t, text, "8A+: 5")
}

func TestRunScraper(t *testing.T) {
	tool := NewRunScraperTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"scraperId": "actor_42",
		"input":     map[string]interface{}{"maxPages": 3},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Scraper ID: actor_42")
	assert.Contains(t, text, "Status: running")
}

func TestAnalyzeData(t *testing.T) {
	tool := NewAnalyzeDataTool()
	assert.Equal(t, "chatgpt_analyze_data", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"data": map[string]interface{}{"routes": float64(105)},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Key features")
	assert.Contains(t, text, "Recommendations")

	result, err = tool.Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGenerateDescription(t *testing.T) {
	tool := NewGenerateDescriptionTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"routeInfo": map[string]interface{}{"name": "Blue Line", "grade": "6A"},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Blue Line")
	assert.Contains(t, text, "6A")
}

func TestGenerateDescriptionDefaults(t *testing.T) {
	tool := NewGenerateDescriptionTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"routeInfo": map[string]interface{}{},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "the route")
}

func TestSummarizeGymInfo(t *testing.T) {
	tool := NewSummarizeGymInfoTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"gymData": map[string]interface{}{"name": "Climb Lab", "location": "Gangnam"},
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Climb Lab is a climbing gym located in Gangnam.")
}

func TestSyncData(t *testing.T) {
	tool := NewSyncDataTool()
	assert.Equal(t, "supabase_sync_data", tool.Definition().Name)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"table": "route_updates",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Table: route_updates")
	assert.Contains(t, text, "Operation: upsert", "operation defaults to upsert")

	result, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"table":     "route_updates",
		"operation": "insert",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Operation: insert")
}

func TestRealtimeUpdates(t *testing.T) {
	tool := NewRealtimeUpdatesTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"table": "route_updates",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Event: INSERT", "event defaults to INSERT")
	assert.Contains(t, text, "Type: NEWSET")
}

func TestQueryData(t *testing.T) {
	tool := NewQueryDataTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"table":  "route_updates",
		"select": "title,type",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "Select: title,type")
	assert.Contains(t, text, "Count: 2")
	assert.Contains(t, text, "Winter season routes")

	result, err = tool.Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
