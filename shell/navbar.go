package shell

import "strings"

// NavItem is one entry of the persistent navigation bar. TargetRef carries
// the navigation target in hash ("#home") or path ("/home") form; the core
// only reads the reference and writes Selected.
type NavItem struct {
	Label     string
	TargetRef string
	Selected  bool
}

// NavBar is the persistent navigation widget kept in sync with the current
// page after every reveal.
type NavBar struct {
	items []NavItem
}

func NewNavBar(items []NavItem) *NavBar {
	return &NavBar{items: items}
}

// Sync projects the current page onto item selection. Every item gets an
// explicit assignment so none is ever left stale.
func (n *NavBar) Sync(page string) {
	for i := range n.items {
		n.items[i].Selected = refPage(n.items[i].TargetRef) == page && page != ""
	}
}

// Items returns the bar's items in order.
func (n *NavBar) Items() []NavItem {
	return n.items
}

// TargetPath returns the navigable path of item i.
func (n *NavBar) TargetPath(i int) (string, bool) {
	if i < 0 || i >= len(n.items) {
		return "", false
	}
	ref := n.items[i].TargetRef
	if page := refPage(ref); page != "" {
		return "/" + page, true
	}
	return "", false
}

// refPage extracts the page identifier from a hash- or path-style target
// reference.
func refPage(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "#"):
		return ref[1:]
	case strings.HasPrefix(ref, "/"):
		return strings.TrimPrefix(ref, "/")
	default:
		return ref
	}
}
