package commands

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/larapath/pkg/annotate"
	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Print a route file with the full path after each route",
	Long: `Print a route file with the resolved full path appended to every line
that declares a route.

Nothing is annotated while annotations are toggled off (see
"larapath toggle").

Examples:
  larapath annotate routes/api.php
  larapath annotate -n --only-routes routes/web.php
  larapath annotate routes/api.php --json`,
	Args: cobra.ExactArgs(1),
	Run:  runAnnotate,
}

// Flags
var (
	annotateLineNumbers bool
	annotateOnlyRoutes  bool
	annotateNoColor     bool
)

func init() {
	annotateCmd.Flags().BoolVarP(&annotateLineNumbers, "line-numbers", "n", false, "Prefix lines with their number")
	annotateCmd.Flags().BoolVar(&annotateOnlyRoutes, "only-routes", false, "Print only the annotated lines")
	annotateCmd.Flags().BoolVar(&annotateNoColor, "no-color", false, "Disable colored labels")
}

func runAnnotate(cmd *cobra.Command, args []string) {
	yellow := color.New(color.FgYellow).SprintFunc()

	path := args[0]
	cfg := loadConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError(fmt.Errorf("failed to read %s: %w", path, err))
	}

	session := annotate.NewSession(cfg.Rules())
	session.SetEnabled(cfg.Enabled)
	session.Update(path, string(content))
	anns := session.Annotations(path)

	if jsonOutput {
		output := AnnotateOutput{
			File:        path,
			Enabled:     cfg.Enabled,
			Annotations: make([]AnnotationOutput, 0, len(anns)),
		}
		for _, a := range anns {
			output.Annotations = append(output.Annotations, AnnotationOutput{
				Line:     a.Line + 1,
				Method:   a.Route.Method,
				FullPath: a.Route.FullPath,
				Label:    a.Label,
			})
		}
		printSuccess(output)
		return
	}

	if !cfg.Enabled {
		fmt.Fprintf(os.Stderr, "  %s Annotations are disabled (run \"larapath toggle\")\n\n", yellow("!"))
	} else if !scanner.IsRouteFile(path) {
		fmt.Fprintf(os.Stderr, "  %s %s is not under a routes directory, nothing to annotate\n\n", yellow("!"), path)
	}

	opts := annotate.RenderOptions{
		Color:         !annotateNoColor && annotate.ShouldColor(os.Stdout),
		LineNumbers:   annotateLineNumbers,
		OnlyAnnotated: annotateOnlyRoutes,
	}
	if err := annotate.Render(os.Stdout, string(content), anns, opts); err != nil {
		exitWithError(err)
	}
}
