package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes [paths...]",
	Short: "List the resolved routes of Laravel route files",
	Long: `Scan route files and list every route with its full URL path.

Each argument may be a route file or a directory. Directories are walked
recursively; hidden directories, vendor and node_modules are skipped.
Without arguments the configured routes directory is scanned.

Examples:
  larapath routes
  larapath routes routes/api.php
  larapath routes --verbose routes/ modules/billing/routes
  larapath routes --json`,
	Run: runRoutes,
}

// Flags
var routesVerbose bool

func init() {
	routesCmd.Flags().BoolVarP(&routesVerbose, "verbose", "v", false, "Log every route as it is found")
}

func runRoutes(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	cfg := loadConfig()

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.RoutesDir}
	}

	if !jsonOutput {
		fmt.Printf("\n  %s Route Map\n\n", cyan("larapath"))
	}

	result, err := collectRoutes(paths, cfg.Rules(), routesVerbose)
	if err != nil {
		exitWithError(err)
	}

	if jsonOutput {
		printSuccess(buildRoutesOutput(result))
		return
	}

	if result.TotalRoutes() == 0 {
		fmt.Printf("  %s No routes found in %v\n\n", yellow("!"), paths)
	} else {
		renderRoutesTable(os.Stdout, result)
		fmt.Printf("\n  %s %d routes in %d files\n", green("✓"), result.TotalRoutes(), len(result.Files))
	}

	for _, c := range result.Conflicts {
		fmt.Printf("  %s %s (%s, %s)\n", yellow("Warning:"), c.Message, c.First, c.Second)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  %s %s: %s\n", yellow("Warning:"), w.FilePath, w.Message)
	}
	fmt.Println()
}

// collectRoutes scans every path (file or directory) and merges the
// results. Conflicts are computed across all of them.
func collectRoutes(paths []string, rules scanner.PrefixRules, verbose bool) (*scanner.ScanResult, error) {
	merged := &scanner.ScanResult{}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}

		if info.IsDir() {
			s := scanner.NewScanner(p)
			s.SetPrefixRules(rules)
			s.SetVerbose(verbose)

			result, err := s.Scan()
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", p, err)
			}
			merged.Files = append(merged.Files, result.Files...)
			merged.Warnings = append(merged.Warnings, result.Warnings...)
			continue
		}

		s := scanner.NewScanner(filepath.Dir(p))
		s.SetPrefixRules(rules)
		s.SetVerbose(verbose)

		file, err := s.ScanFile(p)
		if err != nil {
			merged.Warnings = append(merged.Warnings, scanner.Warning{FilePath: p, Message: err.Error()})
			continue
		}
		merged.Files = append(merged.Files, *file)
	}

	merged.Conflicts = scanner.FindConflicts(merged.Files)
	return merged, nil
}

func buildRoutesOutput(result *scanner.ScanResult) RoutesOutput {
	output := RoutesOutput{
		Routes:      make([]RouteOutput, 0, result.TotalRoutes()),
		TotalRoutes: result.TotalRoutes(),
		TotalFiles:  len(result.Files),
	}

	for _, f := range result.Files {
		for _, r := range f.Routes {
			output.Routes = append(output.Routes, RouteOutput{
				Method:   r.Method,
				Path:     r.Path,
				FullPath: r.FullPath,
				File:     filepath.ToSlash(f.FilePath),
				Line:     r.Line + 1,
			})
		}
	}

	for _, c := range result.Conflicts {
		output.Conflicts = append(output.Conflicts, ConflictOutput{
			Method:   c.Method,
			FullPath: c.FullPath,
			First:    c.First,
			Second:   c.Second,
		})
	}

	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, fmt.Sprintf("%s: %s", w.FilePath, w.Message))
	}

	return output
}

// renderRoutesTable writes one row per route, grouped by file.
func renderRoutesTable(w io.Writer, result *scanner.ScanResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Full Path", "Declared", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, f := range result.Files {
		for _, r := range f.Routes {
			table.Append([]string{
				r.Method,
				r.FullPath,
				r.Path,
				fmt.Sprintf("%s:%d", filepath.ToSlash(f.RelativePath), r.Line+1),
			})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(result.Files)),
		fmt.Sprintf("%d routes", result.TotalRoutes()),
		"",
		"",
	})

	table.Render()
}
