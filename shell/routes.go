package shell

import (
	"log/slog"
	"strings"
)

// RouteEntry maps a path pattern to a page identifier. A bare entry with
// only Page set derives its path as "/" + Page. Patterns may contain
// ":name" segments which are captured as params and passed through to the
// page's init context untouched.
type RouteEntry struct {
	Path string
	Page string
}

// PageRoute builds the bare form of a route entry.
func PageRoute(id string) RouteEntry { return RouteEntry{Page: id} }

// Route is one matched route: the pattern that matched, the page it names
// and any captured path params.
type Route struct {
	Path   string
	Page   string
	Params map[string]string
}

type compiledRoute struct {
	pattern  string
	segments []string
	page     string
}

// Table resolves paths to page identifiers. It is built once at startup via
// Register and never mutated afterwards.
type Table struct {
	log        *slog.Logger
	routes     []compiledRoute
	aliases    map[string]string
	registered bool
}

func NewTable(log *slog.Logger) *Table {
	if log == nil {
		log = slog.Default()
	}
	return &Table{log: log, aliases: map[string]string{}}
}

// Register builds the match structures from static configuration plus a
// synthetic default route mapping "/" to defaultPage. Malformed entries are
// skipped with a warning so one bad entry cannot break the table. A second
// Register call is ignored; the table is immutable once built.
func (t *Table) Register(defaultPage string, entries []RouteEntry, aliases map[string]string) {
	if t.registered {
		t.log.Warn("route table already registered, ignoring")
		return
	}
	t.registered = true

	if defaultPage != "" {
		t.add("/", defaultPage)
	}
	for _, e := range entries {
		if e.Page == "" {
			t.log.Warn("skipping route entry with no page", "path", e.Path)
			continue
		}
		path := e.Path
		if path == "" {
			path = "/" + e.Page
		}
		t.add(path, e.Page)
	}
	for src, target := range aliases {
		if src == "" || target == "" {
			t.log.Warn("skipping malformed alias", "source", src, "target", target)
			continue
		}
		t.aliases[normalizePath(src)] = target
	}
}

func (t *Table) add(path, page string) {
	path = normalizePath(path)
	for _, r := range t.routes {
		if r.pattern == path {
			t.log.Warn("duplicate route path, keeping first", "path", path, "page", page)
			return
		}
	}
	t.routes = append(t.routes, compiledRoute{
		pattern:  path,
		segments: splitPath(path),
		page:     page,
	})
}

// ResolveAlias returns the page identifier an alias path points at. Alias
// resolution is a single hop: the target has one leading separator stripped
// and the remainder is the page identifier.
func (t *Table) ResolveAlias(path string) (string, bool) {
	target, ok := t.aliases[normalizePath(path)]
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(target, "/"), true
}

// Match finds the route for path. Exact segment matches win; ":name"
// segments capture their value into Params.
func (t *Table) Match(path string) (Route, bool) {
	segs := splitPath(normalizePath(path))
	for _, r := range t.routes {
		if params, ok := matchSegments(r.segments, segs); ok {
			return Route{Path: r.pattern, Page: r.page, Params: params}, true
		}
	}
	return Route{}, false
}

// Paths lists every registered path pattern, used for nearest-route
// suggestions on the not-found view.
func (t *Table) Paths() []string {
	out := make([]string, 0, len(t.routes)+len(t.aliases))
	for _, r := range t.routes {
		out = append(out, r.pattern)
	}
	for src := range t.aliases {
		out = append(out, src)
	}
	return out
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if params == nil {
				params = map[string]string{}
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
