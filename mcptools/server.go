// Package mcptools provides the mock MCP integration servers used
// during development. Each server fabricates plausible responses so the
// admin tooling can be exercised without real Make.com, Apify, OpenAI,
// or Supabase credentials.
//
// Each tool follows the same pattern: a struct created by a constructor,
// Definition() returning the mcp.Tool schema, and Handle() processing
// the request.
package mcptools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ServerNames lists the available mock integrations.
var ServerNames = []string{"make", "apify", "chatgpt", "supabase"}

// New creates the named mock MCP server with its tools registered.
func New(name string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name+"-mcp-server",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	switch name {
	case "make":
		registerMakeTools(s)
	case "apify":
		registerApifyTools(s)
	case "chatgpt":
		registerChatGPTTools(s)
	case "supabase":
		registerSupabaseTools(s)
	default:
		return nil, fmt.Errorf("unknown MCP server %q (want one of %v)", name, ServerNames)
	}

	return s, nil
}
