// Package openapi builds an OpenAPI document from scanned Laravel routes.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Config configures OpenAPI document generation.
type Config struct {
	// Title is the API title (default: "API").
	Title string

	// Version is the API version (default: "1.0.0").
	Version string

	// Description is the API description.
	Description string

	// ServerURL is added as the only server when set.
	ServerURL string

	// OpenAPIVersion is the spec version (default: "3.1.0").
	OpenAPIVersion string
}

// Generator generates OpenAPI documents from scan results.
type Generator struct {
	config Config
}

// endpoint is one concrete method and path pair.
type endpoint struct {
	method string
	path   string
	tag    string
	source string
}

// anyMethods are the methods registered by Route::any.
var anyMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

// NewGenerator creates a new Generator.
func NewGenerator(config Config) *Generator {
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = "3.1.0"
	}
	if config.Title == "" {
		config.Title = "API"
	}
	return &Generator{config: config}
}

// Generate creates an OpenAPI document for every route in result.
func (g *Generator) Generate(result *scanner.ScanResult) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: g.config.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	if g.config.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: g.config.ServerURL}}
	}

	byPath := make(map[string][]endpoint)
	for _, f := range result.Files {
		for _, r := range f.Routes {
			for _, ep := range expand(r) {
				ep.source = fmt.Sprintf("%s:%d", f.RelativePath, r.Line+1)
				byPath[ep.path] = append(byPath[ep.path], ep)
			}
		}
	}

	patterns := make([]string, 0, len(byPath))
	for p := range byPath {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	for _, p := range patterns {
		doc.Paths.Set(p, g.buildPathItem(p, byPath[p]))
	}

	return doc
}

// GenerateJSON returns the document as JSON bytes.
func (g *Generator) GenerateJSON(result *scanner.ScanResult) ([]byte, error) {
	return json.MarshalIndent(g.Generate(result), "", "  ")
}

// GenerateYAML returns the document as YAML bytes.
func (g *Generator) GenerateYAML(result *scanner.ScanResult) ([]byte, error) {
	return yaml.Marshal(g.Generate(result))
}

// WriteToFile writes the document to a file.
func (g *Generator) WriteToFile(result *scanner.ScanResult, filepath, format string) error {
	var data []byte
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = g.GenerateYAML(result)
	case "json":
		data, err = g.GenerateJSON(result)
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}

	if err != nil {
		return err
	}

	return os.WriteFile(filepath, data, 0644)
}

// expand turns a declaration into the endpoints Laravel registers for it.
func expand(r scanner.Route) []endpoint {
	p := NormalizePath(r.FullPath)
	tag := deriveTag(p)

	switch r.Method {
	case scanner.MethodAny:
		eps := make([]endpoint, 0, len(anyMethods))
		for _, m := range anyMethods {
			eps = append(eps, endpoint{method: m, path: p, tag: tag})
		}
		return eps

	case scanner.MethodResource:
		member := scanner.JoinPath(p, "{"+singular(path.Base(p))+"}")
		return []endpoint{
			{method: "GET", path: p, tag: tag},
			{method: "POST", path: p, tag: tag},
			{method: "GET", path: member, tag: tag},
			{method: "PUT", path: member, tag: tag},
			{method: "PATCH", path: member, tag: tag},
			{method: "DELETE", path: member, tag: tag},
		}
	}

	return []endpoint{{method: r.Method, path: p, tag: tag}}
}

// NormalizePath rewrites Laravel optional placeholders ({id?}) into plain
// OpenAPI path parameters ({id}).
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, "?}", "}")
}

// singular derives a resource parameter name (photos -> photo).
func singular(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	switch {
	case name == "" || name == "/":
		return "id"
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "ses"):
		return strings.TrimSuffix(name, "es")
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss"):
		return strings.TrimSuffix(name, "s")
	}
	return name
}

// deriveTag uses the first static segment after a leading "api" or
// version segment as the tag.
// Example: /api/v1/users/{user} -> "users"
func deriveTag(p string) string {
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if seg == "" || seg == "api" || strings.HasPrefix(seg, "{") || isVersion(seg) {
			continue
		}
		return seg
	}
	return "default"
}

func isVersion(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, c := range seg[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// buildPathItem creates a PathItem from the endpoints of one path.
func (g *Generator) buildPathItem(pattern string, eps []endpoint) *openapi3.PathItem {
	pathItem := &openapi3.PathItem{}

	for _, ep := range eps {
		op := g.buildOperation(pattern, ep)

		switch ep.method {
		case "GET":
			pathItem.Get = op
		case "POST":
			pathItem.Post = op
		case "PUT":
			pathItem.Put = op
		case "PATCH":
			pathItem.Patch = op
		case "DELETE":
			pathItem.Delete = op
		case "OPTIONS":
			pathItem.Options = op
		}
	}

	return pathItem
}

// buildOperation creates an Operation for an endpoint.
func (g *Generator) buildOperation(pattern string, ep endpoint) *openapi3.Operation {
	op := &openapi3.Operation{
		Summary:   ep.method + " " + pattern,
		Tags:      []string{ep.tag},
		Responses: openapi3.NewResponses(),
	}
	if ep.source != "" {
		op.Description = "Declared in " + ep.source
	}

	params := buildParameters(pattern)
	if len(params) > 0 {
		op.Parameters = params
	}

	op.Responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: openapi3.Ptr("Success"),
		},
	})

	if len(params) > 0 && ep.method != "POST" {
		op.Responses.Set("404", &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: openapi3.Ptr("Not Found"),
			},
		})
	}

	if ep.method == "POST" || ep.method == "PUT" || ep.method == "PATCH" {
		op.Responses.Set("422", &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: openapi3.Ptr("Unprocessable Entity"),
			},
		})
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Description: "Request body",
				Required:    true,
				Content: openapi3.NewContentWithJSONSchema(&openapi3.Schema{
					Type: &openapi3.Types{"object"},
				}),
			},
		}
	}

	return op
}

// buildParameters extracts path parameters from a pattern.
// Example: /users/{user} -> [Parameter{name: "user", in: "path"}]
func buildParameters(pattern string) openapi3.Parameters {
	var params openapi3.Parameters

	for _, seg := range strings.Split(pattern, "/") {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
		if name == "" {
			continue
		}

		params = append(params, &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        name,
			In:          "path",
			Required:    true,
			Description: fmt.Sprintf("%s parameter", name),
			Schema: &openapi3.SchemaRef{
				Value: &openapi3.Schema{
					Type: &openapi3.Types{"string"},
				},
			},
		}})
	}

	return params
}
