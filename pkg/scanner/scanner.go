package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans a routes directory for Laravel route files.
type Scanner struct {
	routesDir string
	rules     PrefixRules
	verbose   bool
}

// NewScanner creates a new Scanner for the given routes directory.
func NewScanner(routesDir string) *Scanner {
	return &Scanner{
		routesDir: routesDir,
		rules:     DefaultPrefixRules,
		verbose:   false,
	}
}

// SetVerbose enables verbose logging during scanning.
func (s *Scanner) SetVerbose(v bool) {
	s.verbose = v
}

// SetPrefixRules replaces the rules used to pick each file's prefixes.
func (s *Scanner) SetPrefixRules(rules PrefixRules) {
	if len(rules) == 0 {
		rules = DefaultPrefixRules
	}
	s.rules = rules
}

// skippedDirs are never descended into
var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
}

// Scan walks the routes directory and extracts the routes of every route
// file. A missing directory yields an empty result.
func (s *Scanner) Scan() (*ScanResult, error) {
	result := &ScanResult{}

	if _, err := os.Stat(s.routesDir); os.IsNotExist(err) {
		return result, nil
	}

	err := filepath.Walk(s.routesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != s.routesDir && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsRouteFile(path) {
			return nil
		}

		file, err := s.ScanFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				FilePath: path,
				Message:  err.Error(),
			})
			return nil
		}
		result.Files = append(result.Files, *file)

		return nil
	})

	result.Conflicts = FindConflicts(result.Files)

	return result, err
}

// ScanFile reads one route file and extracts its routes.
func (s *Scanner) ScanFile(path string) (*RouteFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}

	file := s.ScanContent(path, string(content))

	if s.verbose {
		for _, r := range file.Routes {
			fmt.Fprintf(os.Stderr, "  Found route: %s %s in %s:%d\n", r.Method, r.FullPath, path, r.Line+1)
		}
	}

	return file, nil
}

// ScanContent extracts the routes of already-read content. path selects
// the prefixes and need not exist on disk.
func (s *Scanner) ScanContent(path, content string) *RouteFile {
	global, filePrefix := s.rules.Match(path)

	relPath := path
	if rel, err := filepath.Rel(s.routesDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		relPath = rel
	}

	return &RouteFile{
		FilePath:     path,
		RelativePath: relPath,
		GlobalPrefix: global,
		FilePrefix:   filePrefix,
		Routes:       ExtractRoutes(content, global, filePrefix),
	}
}

// FindConflicts reports every method and full path declared more than
// once across files. Each duplicate is paired with the first declaration.
func FindConflicts(files []RouteFile) []Conflict {
	var conflicts []Conflict

	seen := make(map[string]string) // method+path -> location
	for _, f := range files {
		for _, r := range f.Routes {
			key := r.Method + " " + r.FullPath
			location := fmt.Sprintf("%s:%d", f.FilePath, r.Line+1)

			existing, ok := seen[key]
			if !ok {
				seen[key] = location
				continue
			}

			conflicts = append(conflicts, Conflict{
				Method:   r.Method,
				FullPath: r.FullPath,
				First:    existing,
				Second:   location,
				Message:  fmt.Sprintf("Duplicate %s route for %s", r.Method, r.FullPath),
			})
		}
	}

	return conflicts
}
