package scanner

import "strings"

// ExtractRoutes returns the route declarations in text, in line order.
// Each route's FullPath combines globalPrefix, filePrefix, the group
// prefix active on its line and its own literal path.
//
// Lines that do not hold a declaration with a quoted literal path are
// skipped. ExtractRoutes never fails; unparseable input yields no routes.
func ExtractRoutes(text, globalPrefix, filePrefix string) []Route {
	var routes []Route

	prefixes := ResolveLinePrefixes(text)

	for i, line := range strings.Split(text, "\n") {
		method, path, ok := matchRouteDecl(strings.TrimSpace(line))
		if !ok {
			continue
		}

		routes = append(routes, Route{
			Line:     i,
			Method:   method,
			Path:     path,
			FullPath: ResolvePath(path, prefixes[i], globalPrefix, filePrefix),
		})
	}

	return routes
}

// ResolvePath computes the absolute path of a route declared with the
// literal path under groupPrefix in a file with the given prefixes. A
// root-only literal ("" or "/") contributes no segment.
func ResolvePath(path, groupPrefix, globalPrefix, filePrefix string) string {
	if path == "/" {
		path = ""
	}
	return JoinPath(globalPrefix, filePrefix, groupPrefix, path)
}
