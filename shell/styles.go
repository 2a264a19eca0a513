package shell

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// StyleRegistry holds the named styles applied so far plus the style cache:
// the set of pages whose sheet has been applied in this session. The cache
// grows monotonically and is never pruned; bundle count is bounded by the
// route table.
type StyleRegistry struct {
	log     *slog.Logger
	styles  map[string]lipgloss.Style
	applied map[string]struct{}
}

func NewStyleRegistry(log *slog.Logger) *StyleRegistry {
	if log == nil {
		log = slog.Default()
	}
	return &StyleRegistry{
		log:     log,
		styles:  map[string]lipgloss.Style{},
		applied: map[string]struct{}{},
	}
}

// Applied reports whether page's sheet has already been applied.
func (r *StyleRegistry) Applied(page string) bool {
	_, ok := r.applied[page]
	return ok
}

// Apply registers a page's sheet and records the page in the cache. A
// second Apply for the same page is a guarded no-op.
func (r *StyleRegistry) Apply(page string, sheet StyleSheet) {
	if r.Applied(page) {
		return
	}
	for name, style := range sheet {
		if _, exists := r.styles[name]; exists {
			r.log.Warn("style name collision, keeping first", "style", name, "page", page)
			continue
		}
		r.styles[name] = style
	}
	r.applied[page] = struct{}{}
}

// Lookup returns a registered style by name.
func (r *StyleRegistry) Lookup(name string) (lipgloss.Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	navSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	navSelectedStyle = lipgloss.NewStyle().
				Background(colorSurface0).
				Foreground(colorAccent).
				Bold(true).
				Padding(0, 1)
	navItemStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorNavOff).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	keyHintStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	containerDimStyle = lipgloss.NewStyle().Faint(true)

	notFoundTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	notFoundHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
