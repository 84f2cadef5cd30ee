package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing ariatest tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the query,
assert, and inspect operations as tools. Documents are loaded once by name
and queried repeatedly without reparsing.

Supported transports:
  stdio             Standard I/O (default, for Claude Code / MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  ariatest serve
  ariatest serve --transport streamable-http --port 8080
  ariatest serve --no-cache`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Bool("no-cache", false, "Disable traversal and role caching")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	cfg := MCPConfig{
		Transport:    transport,
		Port:         port,
		CacheEnabled: !noCache,
	}

	srv, err := newMCPServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.serve(cfg)
}
