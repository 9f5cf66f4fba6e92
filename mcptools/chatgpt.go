package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerChatGPTTools(s *server.MCPServer) {
	analyze := NewAnalyzeDataTool()
	s.AddTool(analyze.Definition(), analyze.Handle)

	describe := NewGenerateDescriptionTool()
	s.AddTool(describe.Definition(), describe.Handle)

	summarize := NewSummarizeGymInfoTool()
	s.AddTool(summarize.Definition(), summarize.Handle)
}

// AnalyzeDataTool handles the chatgpt_analyze_data tool.
type AnalyzeDataTool struct{}

// NewAnalyzeDataTool creates an AnalyzeDataTool.
func NewAnalyzeDataTool() *AnalyzeDataTool {
	return &AnalyzeDataTool{}
}

// Definition returns the MCP tool definition for chatgpt_analyze_data.
func (t *AnalyzeDataTool) Definition() mcp.Tool {
	return mcp.NewTool("chatgpt_analyze_data",
		mcp.WithDescription("Analyze gym data and summarize key features."),
		mcp.WithObject("data",
			mcp.Required(),
			mcp.Description("Gym data to analyze"),
		),
		mcp.WithString("prompt",
			mcp.Description("Analysis instructions"),
		),
	)
}

// Handle processes the chatgpt_analyze_data tool call.
func (t *AnalyzeDataTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, ok := req.GetArguments()["data"]; !ok {
		return mcp.NewToolResultError("'data' is required"), nil
	}

	features := []string{
		"wide grade distribution (3A-8A+)",
		"regular route resets",
		"experienced route setters",
		"convenient location and access",
	}
	recommendations := []string{
		"beginners: start on 3A-5A routes",
		"intermediates: try 5A-7A routes",
		"advanced climbers: push on 7A+ routes",
	}

	var b strings.Builder
	b.WriteString("Analysis complete.\n\n")
	b.WriteString("Summary\n")
	b.WriteString("This gym offers routes across a wide range of grades and suits climbers of every level.\n\n")
	b.WriteString("Key features\n")
	for _, f := range features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\nRecommendations\n")
	for _, r := range recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// GenerateDescriptionTool handles the chatgpt_generate_description tool.
type GenerateDescriptionTool struct{}

// NewGenerateDescriptionTool creates a GenerateDescriptionTool.
func NewGenerateDescriptionTool() *GenerateDescriptionTool {
	return &GenerateDescriptionTool{}
}

// Definition returns the MCP tool definition for chatgpt_generate_description.
func (t *GenerateDescriptionTool) Definition() mcp.Tool {
	return mcp.NewTool("chatgpt_generate_description",
		mcp.WithDescription("Generate a route description from route info."),
		mcp.WithObject("routeInfo",
			mcp.Required(),
			mcp.Description("Route name, grade, and any notes"),
		),
		mcp.WithString("prompt",
			mcp.Description("Generation instructions"),
		),
	)
}

// Handle processes the chatgpt_generate_description tool call.
func (t *GenerateDescriptionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	routeInfo, ok := req.GetArguments()["routeInfo"].(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("'routeInfo' is required"), nil
	}

	name, _ := routeInfo["name"].(string)
	if name == "" {
		name = "the route"
	}
	grade, _ := routeInfo["grade"].(string)
	if grade == "" {
		grade = "mid"
	}

	tips := []string{
		"find a stable starting position",
		"use the crimps through the middle section",
		"place your feet carefully on the finishing move",
	}

	var b strings.Builder
	b.WriteString("Description generated.\n\n")
	fmt.Fprintf(&b, "Title\n%s - a challenging %s-grade boulder\n\n", name, grade)
	fmt.Fprintf(&b, "Description\nThis %s route rewards balanced movement and creative beta, with varied holds from start to finish.\n\n", grade)
	b.WriteString("Tips\n")
	for _, tip := range tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// SummarizeGymInfoTool handles the chatgpt_summarize_gym_info tool.
type SummarizeGymInfoTool struct{}

// NewSummarizeGymInfoTool creates a SummarizeGymInfoTool.
func NewSummarizeGymInfoTool() *SummarizeGymInfoTool {
	return &SummarizeGymInfoTool{}
}

// Definition returns the MCP tool definition for chatgpt_summarize_gym_info.
func (t *SummarizeGymInfoTool) Definition() mcp.Tool {
	return mcp.NewTool("chatgpt_summarize_gym_info",
		mcp.WithDescription("Summarize a gym's profile for listing pages."),
		mcp.WithObject("gymData",
			mcp.Required(),
			mcp.Description("Gym name, location, and stats"),
		),
	)
}

// Handle processes the chatgpt_summarize_gym_info tool call.
func (t *SummarizeGymInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gymData, ok := req.GetArguments()["gymData"].(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("'gymData' is required"), nil
	}

	name, _ := gymData["name"].(string)
	if name == "" {
		name = "This gym"
	}
	location, _ := gymData["location"].(string)
	if location == "" {
		location = "Seoul"
	}

	var b strings.Builder
	b.WriteString("Summary generated.\n\n")
	fmt.Fprintf(&b, "Overview\n%s is a climbing gym located in %s.\n\n", name, location)
	b.WriteString("Highlights\n")
	b.WriteString("- 100+ routes across all grades\n")
	b.WriteString("- long opening hours\n")
	b.WriteString("- structured classes run by experienced coaches\n")
	b.WriteString("- modern equipment and safety facilities\n\n")
	b.WriteString("Audience\nClimbers of every level, from first-timers to competitors.\n")

	return mcp.NewToolResultText(b.String()), nil
}
