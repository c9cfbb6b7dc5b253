// Package scanner extracts route declarations from Laravel route files.
// It resolves every declaration to its full URL path by tracking nested
// route-group prefixes with a line-oriented, brace-counting scan. It does
// not parse PHP; the scan is a best-effort approximation that never fails.
package scanner

// HTTP method labels reported on a Route.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodOptions = "OPTIONS"
	MethodAny     = "ANY"
	// MethodResource is the label of an apiResource declaration, which
	// registers several routes under one path.
	MethodResource = "APIRESOURCE (Multiple)"
)

// Route is a single route declaration found in a route file.
type Route struct {
	// Line is the zero-based line index of the declaration
	Line int
	// Method is the uppercased HTTP method or MethodResource
	Method string
	// Path is the literal path as written (e.g., "/users/{id}")
	Path string
	// FullPath is the resolved absolute path (e.g., "/api/v1/users/{id}")
	FullPath string
}

// IsResource reports whether the route was declared with apiResource.
func (r Route) IsResource() bool {
	return r.Method == MethodResource
}

// RouteFile holds the routes discovered in one file.
type RouteFile struct {
	// FilePath is the path the file was read from
	FilePath string
	// RelativePath is the path relative to the scanned routes directory
	RelativePath string
	// GlobalPrefix is the base prefix applied to every route in the file
	GlobalPrefix string
	// FilePrefix is the file-specific prefix (e.g., "v1")
	FilePrefix string
	// Routes are the declarations in source order
	Routes []Route
}

// ScanResult holds everything discovered by a directory scan.
type ScanResult struct {
	// Files are the route files that were scanned, in walk order
	Files []RouteFile
	// Warnings are non-fatal issues encountered during scanning
	Warnings []Warning
	// Conflicts are duplicate method and path declarations
	Conflicts []Conflict
}

// TotalRoutes returns the number of routes across all files.
func (r *ScanResult) TotalRoutes() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Routes)
	}
	return n
}

// Warning represents a non-fatal issue during scanning.
type Warning struct {
	FilePath string
	Message  string
}

// Conflict represents the same method and resolved path declared twice.
type Conflict struct {
	Method   string
	FullPath string
	// First and Second are "file:line" locations, line numbers one-based
	First   string
	Second  string
	Message string
}

// scopeFrame is one open route group: its accumulated prefix and the
// brace depth recorded on the line that opened it.
type scopeFrame struct {
	prefix string
	depth  int
}
