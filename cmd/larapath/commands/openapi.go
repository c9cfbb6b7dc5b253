package commands

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/larapath/pkg/openapi"
	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi [paths...]",
	Short: "Generate an OpenAPI document from route files",
	Long: `Generate an OpenAPI 3.1 document from the resolved routes.

Route::any fans out to every method, Route::apiResource expands to its
index, store, show, update and destroy endpoints, and optional
placeholders ({id?}) become plain path parameters.

Use "larapath openapi serve" to browse the document in Swagger UI.

Examples:
  larapath openapi
  larapath openapi --output api.yaml --format yaml
  larapath openapi --title "Shop API" --version 2.0.0 routes/api.php`,
	Run: runOpenAPI,
}

var openapiServeCmd = &cobra.Command{
	Use:   "serve [paths...]",
	Short: "Serve the OpenAPI document with Swagger UI",
	Long: `Start a local server with Swagger UI for the resolved routes.

The document is generated from the routes directory (or the given paths)
unless --spec points at an existing file.

Endpoints:
  /docs          Swagger UI
  /openapi.json  OpenAPI document

Examples:
  larapath openapi serve
  larapath openapi serve --port 9000 --open
  larapath openapi serve --spec openapi.json`,
	Run: runOpenAPIServe,
}

// Flags
var (
	openapiOutput    string
	openapiFormat    string
	openapiTitle     string
	openapiVersion   string
	openapiDesc      string
	openapiServerURL string
	openapiOpenAPI30 bool

	serveSpecFile string
	servePort     string
	serveTitle    string
	serveVersion  string
	serveOpen     bool
)

func init() {
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file path")
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "", "Output format (json|yaml, default from the output extension)")
	openapiCmd.Flags().StringVar(&openapiTitle, "title", "", "API title (defaults to the project directory name)")
	openapiCmd.Flags().StringVar(&openapiVersion, "version", "1.0.0", "API version")
	openapiCmd.Flags().StringVar(&openapiDesc, "description", "", "API description")
	openapiCmd.Flags().StringVar(&openapiServerURL, "server", "", "Server URL (e.g., http://localhost:8000)")
	openapiCmd.Flags().BoolVar(&openapiOpenAPI30, "openapi30", false, "Use OpenAPI 3.0.3 instead of 3.1.0")

	openapiServeCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to serve on")
	openapiServeCmd.Flags().StringVar(&serveSpecFile, "spec", "", "Serve an existing document instead of generating one")
	openapiServeCmd.Flags().StringVar(&serveTitle, "title", "", "API title (defaults to the project directory name)")
	openapiServeCmd.Flags().StringVar(&serveVersion, "version", "1.0.0", "API version")
	openapiServeCmd.Flags().BoolVar(&serveOpen, "open", false, "Open Swagger UI in the browser")

	openapiCmd.AddCommand(openapiServeCmd)
}

func runOpenAPI(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	cfg := loadConfig()

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.RoutesDir}
	}

	if !jsonOutput {
		fmt.Printf("\n  %s OpenAPI Generator\n\n", cyan("larapath"))
		fmt.Printf("  → Scanning routes...\n")
	}

	result, err := collectRoutes(paths, cfg.Rules(), false)
	if err != nil {
		exitWithError(err)
	}

	title := openapiTitle
	if title == "" {
		title = projectTitle()
	}

	genConfig := openapi.Config{
		Title:       title,
		Version:     openapiVersion,
		Description: openapiDesc,
		ServerURL:   openapiServerURL,
	}
	if openapiOpenAPI30 {
		genConfig.OpenAPIVersion = "3.0.3"
	}
	gen := openapi.NewGenerator(genConfig)

	format := outputFormat(openapiOutput, openapiFormat)

	if !jsonOutput {
		fmt.Printf("  %s Found %d routes\n", green("✓"), result.TotalRoutes())
		fmt.Printf("  → Generating OpenAPI document...\n")
	}

	if err := gen.WriteToFile(result, openapiOutput, format); err != nil {
		exitWithError(fmt.Errorf("failed to generate document: %w", err))
	}

	doc := gen.Generate(result)

	if jsonOutput {
		printSuccess(OpenAPIOutput{
			File:    openapiOutput,
			Format:  format,
			Version: doc.OpenAPI,
			Routes:  result.TotalRoutes(),
			Paths:   doc.Paths.Len(),
		})
		return
	}

	fmt.Printf("  %s Document generated\n\n", green("✓"))
	fmt.Printf("  Output:  %s\n", green(openapiOutput))
	fmt.Printf("  Format:  OpenAPI %s (%s)\n", doc.OpenAPI, format)
	fmt.Printf("  Routes:  %d\n", result.TotalRoutes())
	fmt.Printf("  Paths:   %d\n\n", doc.Paths.Len())
}

func runOpenAPIServe(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Printf("\n  %s OpenAPI Server\n\n", cyan("larapath"))

	var spec []byte
	var err error
	if serveSpecFile != "" {
		fmt.Printf("  → Loading document from %s...\n", serveSpecFile)
		spec, err = os.ReadFile(serveSpecFile)
		if err != nil {
			exitWithError(fmt.Errorf("failed to read document: %w", err))
		}
		fmt.Printf("  %s Document loaded\n\n", green("✓"))
	} else {
		fmt.Printf("  → Generating document from routes...\n")
		cfg := loadConfig()
		paths := args
		if len(paths) == 0 {
			paths = []string{cfg.RoutesDir}
		}
		spec, err = generateServeSpec(paths, cfg.Rules(), serveTitle, serveVersion)
		if err != nil {
			exitWithError(err)
		}
		fmt.Printf("  %s Document generated\n\n", green("✓"))
	}

	listener, err := net.Listen("tcp", ":"+servePort)
	if err != nil {
		exitWithError(fmt.Errorf("failed to listen on port %s: %w", servePort, err))
	}

	docsURL := fmt.Sprintf("http://localhost:%s/docs", servePort)
	fmt.Printf("  %s Swagger UI:    %s\n", green("➜"), cyan(docsURL))
	fmt.Printf("  %s OpenAPI JSON:  %s\n\n", green("➜"), dim(fmt.Sprintf("http://localhost:%s%s", servePort, openapi.SpecPath)))

	if serveOpen {
		if err := browser.OpenURL(docsURL); err != nil {
			fmt.Printf("  %s Could not open browser. Please visit:\n", yellow("!"))
			fmt.Printf("  %s\n\n", cyan(docsURL))
		}
	}
	fmt.Printf("  Press %s to stop\n\n", yellow("Ctrl+C"))

	server := &http.Server{Handler: openapi.NewDocsHandler(spec)}
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		exitWithError(fmt.Errorf("server error: %w", err))
	}
}

// generateServeSpec builds the JSON document served by "openapi serve".
func generateServeSpec(paths []string, rules scanner.PrefixRules, title, version string) ([]byte, error) {
	result, err := collectRoutes(paths, rules, false)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = projectTitle()
	}
	spec, err := openapi.NewGenerator(openapi.Config{Title: title, Version: version}).GenerateJSON(result)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return spec, nil
}

// outputFormat returns the explicit format, or the one implied by the
// output file's extension.
func outputFormat(output, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

// projectTitle uses the working directory name as the API title.
func projectTitle() string {
	wd, err := os.Getwd()
	if err != nil {
		return "API"
	}
	name := filepath.Base(wd)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "API"
	}
	return name
}
