package shell

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestionMaxDistance caps how far a registered path may be from the
// requested one before suggesting it would be more confusing than helpful.
const suggestionMaxDistance = 4

// notFoundFragment builds the fallback view for an unmatched path: what was
// asked for, the closest registered path if one is plausibly near, and the
// way back to the default page.
func (s *Shell) notFoundFragment(path string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(notFoundTitleStyle.Render("  Page not found"))
	b.WriteString("\n\n")
	b.WriteString("  There is nothing at " + path + "\n")
	if suggestion := s.suggestPath(path); suggestion != "" {
		b.WriteString(notFoundHintStyle.Render("  Did you mean "+suggestion+"?") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(notFoundHintStyle.Render("  Press 1 to return to /" + s.defaultPage))
	b.WriteString("\n")
	return b.String()
}

// suggestPath returns the registered path nearest to path by edit distance.
func (s *Shell) suggestPath(path string) string {
	path = normalizePath(path)
	best := ""
	bestDist := suggestionMaxDistance + 1
	for _, candidate := range s.table.Paths() {
		if candidate == "/" {
			continue
		}
		d := levenshtein.ComputeDistance(path, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
