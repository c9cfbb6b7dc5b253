// Package mcp exposes route resolution to MCP clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/abdul-hamid-achik/larapath/internal/version"
	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server serves the larapath tools for one project directory.
type Server struct {
	workdir   string
	routesDir string
	rules     scanner.PrefixRules
	mcpServer *server.MCPServer
}

// routeRecord is one route as returned by the tools.
type routeRecord struct {
	File     string `json:"file,omitempty"`
	Line     int    `json:"line"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	FullPath string `json:"full_path"`
}

// NewServer creates a Server rooted at workdir and registers its tools.
func NewServer(workdir string) *Server {
	s := &Server{
		workdir:   workdir,
		routesDir: "routes",
		rules:     scanner.DefaultPrefixRules,
	}

	s.mcpServer = server.NewMCPServer(
		"larapath",
		version.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// SetRoutesDir sets the directory list_routes scans when no dir is given.
func (s *Server) SetRoutesDir(dir string) {
	if dir != "" {
		s.routesDir = dir
	}
}

// SetPrefixRules replaces the rules used to pick file prefixes.
func (s *Server) SetPrefixRules(rules scanner.PrefixRules) {
	if len(rules) == 0 {
		rules = scanner.DefaultPrefixRules
	}
	s.rules = rules
}

// Serve runs the server on stdin and stdout until the client disconnects.
func (s *Server) Serve() error {
	slog.Info("Starting MCP server on Stdio", "workdir", s.workdir)
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_routes",
			mcp.WithDescription("Scan the Laravel routes directory and list every route with its full path."),
			mcp.WithString("dir", mcp.Description("Routes directory relative to the project (default: routes)")),
		),
		s.handleListRoutes,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"resolve_routes",
			mcp.WithDescription("Resolve the full paths of the routes declared in a PHP route file's content."),
			mcp.WithString("content", mcp.Required(), mcp.Description("The PHP source of the route file")),
			mcp.WithString("file_path", mcp.Description("Path of the file, used to pick the global and file prefixes")),
			mcp.WithString("global_prefix", mcp.Description("Global prefix override")),
			mcp.WithString("file_prefix", mcp.Description("File prefix override")),
		),
		s.handleResolveRoutes,
	)
}

func (s *Server) handleListRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	dir := s.routesDir
	if d, ok := args["dir"].(string); ok && d != "" {
		dir = d
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.workdir, dir)
	}

	sc := scanner.NewScanner(dir)
	sc.SetPrefixRules(s.rules)

	result, err := sc.Scan()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to scan routes: %v", err)), nil
	}

	routes := make([]routeRecord, 0, result.TotalRoutes())
	for _, f := range result.Files {
		for _, r := range f.Routes {
			routes = append(routes, routeRecord{
				File:     filepath.ToSlash(f.RelativePath),
				Line:     r.Line + 1,
				Method:   r.Method,
				Path:     r.Path,
				FullPath: r.FullPath,
			})
		}
	}

	conflicts := make([]string, 0, len(result.Conflicts))
	for _, c := range result.Conflicts {
		conflicts = append(conflicts, fmt.Sprintf("%s (%s, %s)", c.Message, c.First, c.Second))
	}

	return jsonResult(map[string]any{
		"success":      true,
		"routes_dir":   dir,
		"routes":       routes,
		"total_routes": len(routes),
		"conflicts":    conflicts,
	})
}

func (s *Server) handleResolveRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	content, ok := args["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content argument required"), nil
	}

	var global, filePrefix string
	if p, ok := args["file_path"].(string); ok && p != "" {
		global, filePrefix = s.rules.Match(p)
	}
	if g, ok := args["global_prefix"].(string); ok {
		global = g
	}
	if f, ok := args["file_prefix"].(string); ok {
		filePrefix = f
	}

	routes := []routeRecord{}
	for _, r := range scanner.ExtractRoutes(content, global, filePrefix) {
		routes = append(routes, routeRecord{
			Line:     r.Line + 1,
			Method:   r.Method,
			Path:     r.Path,
			FullPath: r.FullPath,
		})
	}

	return jsonResult(map[string]any{
		"success":       true,
		"global_prefix": global,
		"file_prefix":   filePrefix,
		"routes":        routes,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
