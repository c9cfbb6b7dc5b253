// Package commands provides the CLI commands for larapath.
package commands

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/larapath/internal/config"
	"github.com/abdul-hamid-achik/larapath/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "larapath",
	Short: "larapath - full URL paths for Laravel route files",
	Long: `larapath reads Laravel route files and resolves the full URL path of every
route declaration, including the prefixes of enclosing route groups and the
global and file prefixes of the route file itself.

Quick Start:
  larapath routes            List every route under routes/
  larapath annotate FILE     Print a route file with its paths annotated
  larapath watch             Re-annotate route files as they change
  larapath toggle            Turn annotations on or off
  larapath openapi           Generate an OpenAPI document
  larapath mcp               Serve the route tools over MCP

Documentation: https://github.com/abdul-hamid-achik/larapath`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// cfgFile is the --config flag
var cfgFile string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .larapath.yaml)")

	// Commands
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(openapiCmd)
	rootCmd.AddCommand(mcpCmd)
}

// loadConfig reads the --config file or .larapath.yaml, exiting on error.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		exitWithError(err)
	}
	return cfg
}
