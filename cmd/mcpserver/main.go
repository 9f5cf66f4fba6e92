// mcpserver runs one of the mock MCP integration servers over stdio.
//
// Usage:
//
//	mcpserver <name>    # name is one of: make, apify, chatgpt, supabase
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/JinJinHistory/climb-hub/mcptools"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("mcpserver v%s\n", mcptools.Version)
		os.Exit(0)
	}

	s, err := mcptools.New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mcpserver v%s — mock integration servers (stdio transport)

Usage:
  mcpserver <name>

Names:
  %s
`, mcptools.Version, strings.Join(mcptools.ServerNames, ", "))
}
