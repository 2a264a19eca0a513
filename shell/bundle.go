package shell

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrNoSuchPage signals that a resolver knows nothing about a page.
	ErrNoSuchPage = errors.New("shell: no such page")
	// ErrMarkupUnavailable signals a page without markup. Navigation-fatal.
	ErrMarkupUnavailable = errors.New("shell: markup unavailable")
	// ErrStyleUnavailable signals a page without styles. Non-fatal.
	ErrStyleUnavailable = errors.New("shell: style unavailable")
	// ErrBehaviorUnavailable signals a page without behavior. Non-fatal.
	ErrBehaviorUnavailable = errors.New("shell: behavior unavailable")
	// ErrContainerMissing signals that the configured content region does
	// not exist in the shell layout. Fatal at startup; the chrome still
	// reveals so the terminal is never left blank.
	ErrContainerMissing = errors.New("shell: container region missing")
)

// StyleSheet is one page's named styles. Application is idempotent; the
// shell applies a page's sheet at most once per session.
type StyleSheet map[string]lipgloss.Style

// BundleResolver retrieves the three artifacts of a page bundle. Each
// artifact resolves independently; the absence of one must not corrupt
// another. Implementations decide where artifacts live (static registry,
// filesystem, ...) so the core never builds retrieval paths itself.
type BundleResolver interface {
	Markup(ctx context.Context, page string) (string, error)
	Style(ctx context.Context, page string) (StyleSheet, error)
	Behavior(ctx context.Context, page string) (BehaviorModule, error)
}

// RegisterFunc performs a behavior module's registration side effects:
// work that must complete before the page's markup enters the container,
// typically glyph registration.
type RegisterFunc func(*GlyphRegistry)

// InitFunc is a behavior module's initialization entry point, invoked only
// after the page's markup has been inserted.
type InitFunc func(*PageContext) error

// InitKind tags which entry point a behavior module carries.
type InitKind int

const (
	InitNone InitKind = iota
	InitDefault
	InitNamed
)

// BehaviorModule is the resolved shape of a page's behavior: optional
// registration side effects plus at most one init entry point, tagged at
// load time rather than duck-typed per navigation.
type BehaviorModule struct {
	register RegisterFunc
	entry    InitFunc
	kind     InitKind
}

// Behavior builds a module with only registration side effects.
func Behavior(register RegisterFunc) BehaviorModule {
	return BehaviorModule{register: register}
}

// WithDefault attaches the default entry point. The default entry wins over
// a named one, mirroring the consultation order of the module contract.
func (b BehaviorModule) WithDefault(fn InitFunc) BehaviorModule {
	if fn == nil {
		return b
	}
	b.entry = fn
	b.kind = InitDefault
	return b
}

// WithNamed attaches the named init entry point unless a default entry is
// already present.
func (b BehaviorModule) WithNamed(fn InitFunc) BehaviorModule {
	if fn == nil || b.kind == InitDefault {
		return b
	}
	b.entry = fn
	b.kind = InitNamed
	return b
}

// Entry returns the module's entry point and its kind.
func (b BehaviorModule) Entry() (InitFunc, InitKind) { return b.entry, b.kind }

// RunRegistration executes the module's registration side effects against
// a glyph registry. The sequencer calls this before markup insertion.
func (b BehaviorModule) RunRegistration(g *GlyphRegistry) {
	if b.register != nil {
		b.register(g)
	}
}

// PageContext is handed to a behavior module's init entry point once its
// markup is in the container. Ctx is the shell's lifetime context; handlers
// wired through the container use it for data access.
type PageContext struct {
	Ctx       context.Context
	Page      string
	Params    map[string]string
	Container *Container
	Styles    *StyleRegistry
	Glyphs    *GlyphRegistry
	Navigate  func(path string) tea.Cmd
}
