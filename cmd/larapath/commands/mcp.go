package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/larapath/pkg/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the route tools over MCP (stdio)",
	Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  list_routes      Scan the routes directory and list every route
  resolve_routes   Resolve the routes of a PHP route file's content

Example client configuration:
  {"command": "larapath", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	Run:  runMCP,
}

// Flags
var mcpWorkdir string

func init() {
	mcpCmd.Flags().StringVarP(&mcpWorkdir, "workdir", "w", "", "Project directory (default: current directory)")
}

func runMCP(cmd *cobra.Command, args []string) {
	// stdout carries the protocol; logs go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	workdir := mcpWorkdir
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			exitWithError(fmt.Errorf("failed to get working directory: %w", err))
		}
		workdir = wd
	}

	cfg := loadConfig()

	server := mcp.NewServer(workdir)
	server.SetRoutesDir(cfg.RoutesDir)
	server.SetPrefixRules(cfg.Rules())

	if err := server.Serve(); err != nil {
		slog.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
