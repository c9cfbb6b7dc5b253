package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RoutesOutput represents the JSON output for the routes command
type RoutesOutput struct {
	Routes      []RouteOutput    `json:"routes"`
	Conflicts   []ConflictOutput `json:"conflicts,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
	TotalRoutes int              `json:"total_routes"`
	TotalFiles  int              `json:"total_files"`
}

// RouteOutput represents a single route in JSON output
type RouteOutput struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	FullPath string `json:"full_path"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// ConflictOutput represents a duplicate route in JSON output
type ConflictOutput struct {
	Method   string `json:"method"`
	FullPath string `json:"full_path"`
	First    string `json:"first"`
	Second   string `json:"second"`
}

// AnnotateOutput represents the JSON output for the annotate command
type AnnotateOutput struct {
	File        string             `json:"file"`
	Enabled     bool               `json:"enabled"`
	Annotations []AnnotationOutput `json:"annotations"`
}

// AnnotationOutput represents one annotated line in JSON output
type AnnotationOutput struct {
	Line     int    `json:"line"`
	Method   string `json:"method"`
	FullPath string `json:"full_path"`
	Label    string `json:"label"`
}

// ToggleOutput represents the JSON output for the toggle command
type ToggleOutput struct {
	Enabled bool   `json:"enabled"`
	File    string `json:"file"`
}

// OpenAPIOutput represents the JSON output for the openapi command
type OpenAPIOutput struct {
	File    string `json:"file"`
	Format  string `json:"format"`
	Version string `json:"version"`
	Routes  int    `json:"routes"`
	Paths   int    `json:"paths"`
}

// printJSON outputs any value as formatted JSON
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

// printSuccess outputs a successful JSON response
func printSuccess(data any) {
	printJSON(JSONResponse{Success: true, Data: data})
}

// printJSONError outputs an error as JSON
func printJSONError(err error) {
	printJSON(JSONResponse{Success: false, Error: err.Error()})
}

// exitWithError reports err in the active output mode and exits.
func exitWithError(err error) {
	if jsonOutput {
		printJSONError(err)
	} else {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "  %s %v\n\n", red("Error:"), err)
	}
	os.Exit(1)
}
