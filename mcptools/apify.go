package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerApifyTools(s *server.MCPServer) {
	gymInfo := NewScrapeGymInfoTool()
	s.AddTool(gymInfo.Definition(), gymInfo.Handle)

	newRoutes := NewScrapeNewRoutesTool()
	s.AddTool(newRoutes.Definition(), newRoutes.Handle)

	schedule := NewScrapeGymScheduleTool()
	s.AddTool(schedule.Definition(), schedule.Handle)

	grades := NewScrapeRouteGradesTool()
	s.AddTool(grades.Definition(), grades.Handle)

	runScraper := NewRunScraperTool()
	s.AddTool(runScraper.Definition(), runScraper.Handle)
}

// ScrapeGymInfoTool handles the apify_scrape_gym_info tool.
type ScrapeGymInfoTool struct{}

// NewScrapeGymInfoTool creates a ScrapeGymInfoTool.
func NewScrapeGymInfoTool() *ScrapeGymInfoTool {
	return &ScrapeGymInfoTool{}
}

// Definition returns the MCP tool definition for apify_scrape_gym_info.
func (t *ScrapeGymInfoTool) Definition() mcp.Tool {
	return mcp.NewTool("apify_scrape_gym_info",
		mcp.WithDescription("Scrape basic information about a climbing gym."),
		mcp.WithString("gymName",
			mcp.Required(),
			mcp.Description("Gym name to look up"),
		),
		mcp.WithObject("selectors",
			mcp.Description("CSS selectors to extract fields with"),
		),
	)
}

// Handle processes the apify_scrape_gym_info tool call.
func (t *ScrapeGymInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gymName := req.GetString("gymName", "")
	if gymName == "" {
		return mcp.NewToolResultError("'gymName' is required"), nil
	}

	var b strings.Builder
	b.WriteString("Gym info scraped:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", gymName)
	b.WriteString("Address: 123 Teheran-ro, Gangnam-gu, Seoul\n")
	b.WriteString("Phone: 02-1234-5678\n")
	b.WriteString("Website: https://example-gym.com\n")
	b.WriteString("Hours: open 24 hours\n")
	b.WriteString("Facilities: lead walls, bouldering, fitness, showers\n")
	b.WriteString("Rating: 4.8/5.0\n")

	return mcp.NewToolResultText(b.String()), nil
}

// ScrapeNewRoutesTool handles the apify_scrape_new_routes tool.
type ScrapeNewRoutesTool struct{}

// NewScrapeNewRoutesTool creates a ScrapeNewRoutesTool.
func NewScrapeNewRoutesTool() *ScrapeNewRoutesTool {
	return &ScrapeNewRoutesTool{}
}

// Definition returns the MCP tool definition for apify_scrape_new_routes.
func (t *ScrapeNewRoutesTool) Definition() mcp.Tool {
	return mcp.NewTool("apify_scrape_new_routes",
		mcp.WithDescription("Scrape recently set routes from a gym page."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Gym page URL"),
		),
		mcp.WithObject("selectors",
			mcp.Description("CSS selectors for route fields"),
		),
	)
}

// Handle processes the apify_scrape_new_routes tool call.
func (t *ScrapeNewRoutesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := req.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("'url' is required"), nil
	}

	routes := []struct {
		name, grade, setDate, removalDate, wall string
	}{
		{"Blue Line", "6A", "2024-01-15", "2024-03-15", "main bouldering wall"},
		{"Red Line", "7B", "2024-01-20", "2024-04-20", "trad wall"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New routes scraped from %s:\n\n", url)
	for _, r := range routes {
		fmt.Fprintf(&b, "Route: %s\nGrade: %s\nSet: %s\nRemoval: %s\nWall: %s\n\n",
			r.name, r.grade, r.setDate, r.removalDate, r.wall)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ScrapeGymScheduleTool handles the apify_scrape_gym_schedule tool.
type ScrapeGymScheduleTool struct{}

// NewScrapeGymScheduleTool creates a ScrapeGymScheduleTool.
func NewScrapeGymScheduleTool() *ScrapeGymScheduleTool {
	return &ScrapeGymScheduleTool{}
}

// Definition returns the MCP tool definition for apify_scrape_gym_schedule.
func (t *ScrapeGymScheduleTool) Definition() mcp.Tool {
	return mcp.NewTool("apify_scrape_gym_schedule",
		mcp.WithDescription("Scrape a gym's operating hours."),
		mcp.WithString("gymUrl",
			mcp.Required(),
			mcp.Description("Gym page URL"),
		),
	)
}

// Handle processes the apify_scrape_gym_schedule tool call.
func (t *ScrapeGymScheduleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gymURL := req.GetString("gymUrl", "")
	if gymURL == "" {
		return mcp.NewToolResultError("'gymUrl' is required"), nil
	}

	var b strings.Builder
	b.WriteString("Operating hours scraped:\n\n")
	b.WriteString("Mon-Fri: 06:00 - 24:00\n")
	b.WriteString("Sat: 08:00 - 22:00\n")
	b.WriteString("Sun: 08:00 - 22:00\n")
	b.WriteString("Holidays: 10:00 - 20:00\n")

	return mcp.NewToolResultText(b.String()), nil
}

// ScrapeRouteGradesTool handles the apify_scrape_route_grades tool.
type ScrapeRouteGradesTool struct{}

// NewScrapeRouteGradesTool creates a ScrapeRouteGradesTool.
func NewScrapeRouteGradesTool() *ScrapeRouteGradesTool {
	return &ScrapeRouteGradesTool{}
}

// Definition returns the MCP tool definition for apify_scrape_route_grades.
func (t *ScrapeRouteGradesTool) Definition() mcp.Tool {
	return mcp.NewTool("apify_scrape_route_grades",
		mcp.WithDescription("Scrape the route count per grade band for a gym."),
		mcp.WithString("gymUrl",
			mcp.Required(),
			mcp.Description("Gym page URL"),
		),
	)
}

// Handle processes the apify_scrape_route_grades tool call.
func (t *ScrapeRouteGradesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gymURL := req.GetString("gymUrl", "")
	if gymURL == "" {
		return mcp.NewToolResultError("'gymUrl' is required"), nil
	}

	grades := []struct {
		band  string
		count int
	}{
		{"3A-4A", 15},
		{"4A-5A", 25},
		{"5A-6A", 30},
		{"6A-7A", 20},
		{"7A-8A", 10},
		{"8A+", 5},
	}

	total := 0
	for _, g := range grades {
		total += g.count
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Route grades scraped. Total routes: %d\n\n", total)
	for _, g := range grades {
		fmt.Fprintf(&b, "%s: %d\n", g.band, g.count)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// RunScraperTool handles the apify_run_scraper tool.
type RunScraperTool struct{}

// NewRunScraperTool creates a RunScraperTool.
func NewRunScraperTool() *RunScraperTool {
	return &RunScraperTool{}
}

// Definition returns the MCP tool definition for apify_run_scraper.
func (t *RunScraperTool) Definition() mcp.Tool {
	return mcp.NewTool("apify_run_scraper",
		mcp.WithDescription("Start an Apify scraper run with the given input."),
		mcp.WithString("scraperId",
			mcp.Required(),
			mcp.Description("Scraper actor identifier"),
		),
		mcp.WithObject("input",
			mcp.Description("Scraper input payload"),
		),
	)
}

// Handle processes the apify_run_scraper tool call.
func (t *RunScraperTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scraperID := req.GetString("scraperId", "")
	if scraperID == "" {
		return mcp.NewToolResultError("'scraperId' is required"), nil
	}

	executionID := fmt.Sprintf("exec_%d", time.Now().UnixMilli())
	finish := time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString("Scraper run started:\n")
	fmt.Fprintf(&b, "Scraper ID: %s\n", scraperID)
	fmt.Fprintf(&b, "Execution ID: %s\n", executionID)
	b.WriteString("Status: running\n")
	fmt.Fprintf(&b, "Estimated finish: %s\n", finish)

	return mcp.NewToolResultText(b.String()), nil
}
