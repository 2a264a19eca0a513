package shell

import tea "github.com/charmbracelet/bubbletea"

// Navigate requests navigation to a path through the update loop. Safe to
// hand out to pages and external callers; the request is processed on the
// shell's own task queue.
func (s *Shell) Navigate(path string) tea.Cmd {
	return Navigate(path)
}

// CurrentRoute returns the route that produced the current page, for
// introspection. Zero value before the first successful navigation.
func (s *Shell) CurrentRoute() Route {
	return s.currentRoute
}
