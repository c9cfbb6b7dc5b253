package scanner

import "strings"

// ResolveLinePrefixes maps every line index of text to the route-group
// prefix active on that line ("" outside any group).
//
// Groups are tracked with a stack of frames. A frame is pushed when a line
// opens a group and records the running brace depth after that line; it is
// popped once the depth drops below that value. Braces are counted
// anywhere on the line, including inside strings and comments.
func ResolveLinePrefixes(text string) map[int]string {
	lines := strings.Split(text, "\n")
	prefixes := make(map[int]string, len(lines))

	stack := []scopeFrame{{prefix: "", depth: 0}}
	depth := 0

	for i, line := range lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if literal, _, ok := matchGroupOpener(strings.TrimSpace(line)); ok {
			top := stack[len(stack)-1]
			stack = append(stack, scopeFrame{
				prefix: joinPrefix(top.prefix, literal),
				depth:  depth,
			})
		}

		// The root frame is never popped.
		for len(stack) > 1 && depth < stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}

		prefixes[i] = stack[len(stack)-1].prefix
	}

	return prefixes
}
