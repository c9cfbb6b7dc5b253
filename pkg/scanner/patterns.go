package scanner

import (
	"regexp"
	"strings"
)

// groupOpener is one recognized route-group construct. The first capture
// group of re is the prefix literal.
type groupOpener struct {
	name string
	re   *regexp.Regexp
}

// groupOpeners are tried in order; the first match on a line wins.
var groupOpeners = []groupOpener{
	// Route::group(['prefix' => 'admin', ...], function () {
	{
		name: "array-group",
		re:   regexp.MustCompile(`Route::group\s*\(\s*\[\s*['"]prefix['"]\s*=>\s*['"]([^'"]+)['"]`),
	},
	// Route::middleware('auth')->prefix('admin')->group(function () {
	{
		name: "chained-prefix-group",
		re:   regexp.MustCompile(`->prefix\s*\(\s*['"]([^'"]+)['"]\s*\)\s*->.*group\s*\(`),
	},
	// Route::name('admin.')->middleware('auth')->prefix('admin')->group(...
	{
		name: "builder-prefix-group",
		re:   regexp.MustCompile(`Route::\w+\s*\(.*?\)\s*->.*?prefix\s*\(\s*['"]([^'"]+)['"]\s*\).*?->group\s*\(`),
	},
	// Route::controller(UserController::class)->prefix('users')->group(...
	{
		name: "controller-group",
		re:   regexp.MustCompile(`Route::controller\s*\(.*?::class\)\s*->prefix\s*\(\s*['"]([^'"]+)['"]\s*\).*?->group\s*\(`),
	},
	// Route::prefix('admin')->group(function () {
	{
		name: "prefix-group",
		re:   regexp.MustCompile(`Route::prefix\s*\(\s*['"]([^'"]+)['"]\s*\)\s*->group\s*\(`),
	},
}

// routeDeclRe matches a route declaration whose first argument is a
// quoted literal path. Matching is case-insensitive.
var routeDeclRe = regexp.MustCompile(`(?i)Route::(get|post|put|delete|patch|options|any|apiResource)\s*\(\s*['"]([^'"]+)['"]`)

var slashRunRe = regexp.MustCompile(`/{2,}`)

// matchGroupOpener returns the prefix literal and opener name of the first
// group construct found in line.
func matchGroupOpener(line string) (prefix, name string, ok bool) {
	for _, g := range groupOpeners {
		if m := g.re.FindStringSubmatch(line); len(m) > 1 {
			return m[1], g.name, true
		}
	}
	return "", "", false
}

// matchRouteDecl returns the method label and literal path of a route
// declaration in line.
func matchRouteDecl(line string) (method, path string, ok bool) {
	m := routeDeclRe.FindStringSubmatch(line)
	if len(m) < 3 {
		return "", "", false
	}
	method = strings.ToUpper(m[1])
	if method == "APIRESOURCE" {
		method = MethodResource
	}
	return method, m[2], true
}

// collapseSlashes replaces every run of slashes with a single slash.
func collapseSlashes(s string) string {
	return slashRunRe.ReplaceAllString(s, "/")
}

// joinPrefix nests literal under parent and returns the new group prefix
// with no leading or trailing slash.
func joinPrefix(parent, literal string) string {
	joined := literal
	if parent != "" {
		joined = parent + "/" + literal
	}
	return strings.Trim(collapseSlashes(joined), "/")
}

// JoinPath joins path segments into an absolute URL path. Each segment is
// trimmed of surrounding slashes and empty segments are dropped, so the
// result starts with exactly one slash, contains no repeated slashes and
// has no trailing slash unless it is the root.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.Trim(seg, "/")
		if seg == "" {
			continue
		}
		parts = append(parts, seg)
	}
	return collapseSlashes("/" + strings.Join(parts, "/"))
}
