// Package annotate keeps the per-file route annotations shown next to
// route declarations and renders them in a terminal.
package annotate

import (
	"sync"

	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
)

// Marker prefixes every annotation label.
const Marker = "🧩"

// Annotation is the label attached to the end of one line.
type Annotation struct {
	// Line is the zero-based line the label belongs to
	Line int
	// Label is the rendered text (e.g., "🧩 /api/users")
	Label string
	// Route is the declaration the label describes
	Route scanner.Route
}

// Diff describes how a file's annotations changed on update.
type Diff struct {
	Added   []Annotation
	Removed []Annotation
}

// Empty reports whether nothing changed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// FromRoutes builds one annotation per route.
func FromRoutes(routes []scanner.Route) []Annotation {
	anns := make([]Annotation, 0, len(routes))
	for _, r := range routes {
		anns = append(anns, Annotation{
			Line:  r.Line,
			Label: Marker + " " + r.FullPath,
			Route: r,
		})
	}
	return anns
}

// Session tracks the annotations currently shown for each file. It is
// safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	enabled bool
	rules   scanner.PrefixRules
	sets    map[string][]Annotation
}

// NewSession creates an enabled Session that picks file prefixes with
// rules. Empty rules fall back to scanner.DefaultPrefixRules.
func NewSession(rules scanner.PrefixRules) *Session {
	if len(rules) == 0 {
		rules = scanner.DefaultPrefixRules
	}
	return &Session{
		enabled: true,
		rules:   rules,
		sets:    make(map[string][]Annotation),
	}
}

// Update re-derives the annotations of path from its full text and
// replaces the stored set. Disabled sessions and non-route files only
// clear what was shown before.
func (s *Session) Update(path, text string) Diff {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.sets[path]

	if !s.enabled || !scanner.IsRouteFile(path) {
		delete(s.sets, path)
		return Diff{Removed: prev}
	}

	global, filePrefix := s.rules.Match(path)
	next := FromRoutes(scanner.ExtractRoutes(text, global, filePrefix))
	s.sets[path] = next

	return diff(prev, next)
}

// Annotations returns a copy of the annotations shown for path.
func (s *Session) Annotations(path string) []Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Annotation(nil), s.sets[path]...)
}

// Clear forgets path and returns the annotations that were shown.
func (s *Session) Clear(path string) []Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.sets[path]
	delete(s.sets, path)
	return prev
}

// Enabled reports whether annotations are shown.
func (s *Session) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled
}

// SetEnabled turns annotations on or off and reports whether the state
// changed. Turning them off clears every file; the cleared sets are
// returned keyed by path so callers can erase what was shown.
func (s *Session) SetEnabled(enabled bool) (changed bool, cleared map[string][]Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed = s.enabled != enabled
	s.enabled = enabled
	if !enabled {
		cleared = s.sets
		s.sets = make(map[string][]Annotation)
	}
	return changed, cleared
}

// Files returns how many files currently have annotations.
func (s *Session) Files() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sets)
}

type annotationKey struct {
	line  int
	label string
}

func diff(prev, next []Annotation) Diff {
	var d Diff

	old := make(map[annotationKey]bool, len(prev))
	for _, a := range prev {
		old[annotationKey{a.Line, a.Label}] = true
	}
	cur := make(map[annotationKey]bool, len(next))
	for _, a := range next {
		key := annotationKey{a.Line, a.Label}
		cur[key] = true
		if !old[key] {
			d.Added = append(d.Added, a)
		}
	}
	for _, a := range prev {
		if !cur[annotationKey{a.Line, a.Label}] {
			d.Removed = append(d.Removed, a)
		}
	}

	return d
}
