package scanner

import "strings"

// PrefixRule assigns prefixes to files whose path contains Contains.
type PrefixRule struct {
	// Contains is matched against the slash-separated file path
	Contains string
	// Global is the base prefix (e.g., "api")
	Global string
	// File is the file-specific prefix (e.g., "v1")
	File string
}

// PrefixRules is an ordered rule list; the first matching rule wins.
type PrefixRules []PrefixRule

// DefaultPrefixRules mirror Laravel's stock route service provider.
var DefaultPrefixRules = PrefixRules{
	{Contains: "routes/api.php", Global: "api"},
	{Contains: "routes/api_v1.php", Global: "api", File: "v1"},
	{Contains: "routes/web.php"},
}

// Match returns the prefixes for path. Paths no rule matches get no
// prefixes.
func (rules PrefixRules) Match(path string) (global, file string) {
	if path == "" {
		return "", ""
	}
	path = toSlash(path)
	for _, r := range rules {
		if r.Contains != "" && strings.Contains(path, r.Contains) {
			return r.Global, r.File
		}
	}
	return "", ""
}

// PrefixesForFile returns the global and file-specific prefixes for path
// using DefaultPrefixRules.
func PrefixesForFile(path string) (global, file string) {
	return DefaultPrefixRules.Match(path)
}

// WithDefaults returns rules followed by DefaultPrefixRules.
func (rules PrefixRules) WithDefaults() PrefixRules {
	out := make(PrefixRules, 0, len(rules)+len(DefaultPrefixRules))
	out = append(out, rules...)
	return append(out, DefaultPrefixRules...)
}

// IsRouteFile reports whether path looks like a Laravel route file: a
// .php file somewhere under a routes directory.
func IsRouteFile(path string) bool {
	if path == "" {
		return false
	}
	path = toSlash(path)
	return strings.Contains(path, "routes") && strings.HasSuffix(path, ".php")
}

// toSlash normalizes Windows separators regardless of the host OS.
func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
