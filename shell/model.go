package shell

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultSettle is the reveal delay used when none is configured. The value
// is display-dependent; deployments tune it through Options.
const defaultSettle = 120 * time.Millisecond

// Options configures a Shell.
type Options struct {
	Table           *Table
	Resolver        BundleResolver
	NavItems        []NavItem
	ContainerRegion string // layout region pages are swapped into
	DefaultPage     string
	SettleDelay     time.Duration // 0 means defaultSettle
	Logger          *slog.Logger
	Context         context.Context
	Title           string
}

// Shell is the bubbletea model tying the route table, bundle loader and
// sequencer together. Everything is owned here and passed down explicitly;
// there is no ambient global instance.
type Shell struct {
	width  int
	height int

	ctx      context.Context
	log      *slog.Logger
	title    string
	table    *Table
	resolver BundleResolver
	styles   *StyleRegistry
	glyphs   *GlyphRegistry
	navbar   *NavBar

	regions   map[string]*Container
	container *Container

	current      string
	currentRoute Route
	nav          *navigation
	gen          uint64
	settle       time.Duration
	defaultPage  string
	listeners    []PageChangedListener

	status    string
	statusErr bool
	quitting  bool
}

// New builds the shell. A missing container region is a configuration
// error: the returned shell still runs and reveals its chrome (a blank
// hung terminal helps nobody), but every navigation is dropped.
func New(opts Options) (*Shell, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	settle := opts.SettleDelay
	if settle <= 0 {
		settle = defaultSettle
	}
	title := opts.Title
	if title == "" {
		title = "Workbench"
	}

	s := &Shell{
		ctx:         ctx,
		log:         log,
		title:       title,
		table:       opts.Table,
		resolver:    opts.Resolver,
		styles:      NewStyleRegistry(log),
		glyphs:      NewGlyphRegistry(),
		navbar:      NewNavBar(opts.NavItems),
		settle:      settle,
		defaultPage: opts.DefaultPage,
		status:      "Ready",
		width:       100,
		height:      32,
	}
	s.regions = map[string]*Container{
		"content": newContainer("content"),
	}

	region := opts.ContainerRegion
	if region == "" {
		region = "content"
	}
	c, ok := s.regions[region]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrContainerMissing, region)
	}
	s.container = c
	return s, nil
}

// Init navigates to the root path so the default page is the first reveal.
func (s *Shell) Init() tea.Cmd {
	return Navigate("/")
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		return s, nil

	case StatusMsg:
		s.status = msg.Text
		s.statusErr = msg.IsErr
		return s, nil

	case NavigateMsg:
		return s, s.startNavigation(msg.Path)

	case behaviorReadyMsg:
		return s, s.handleBehaviorReady(msg)
	case styleReadyMsg:
		return s, s.handleStyleReady(msg)
	case markupReadyMsg:
		return s, s.handleMarkupReady(msg)
	case settledMsg:
		return s, s.handleSettled(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		s.quitting = true
		return s, tea.Quit
	}

	// Number keys activate nav bar items, like clicking the persistent nav.
	if key := msg.String(); len(key) == 1 && key >= "1" && key <= "9" {
		idx, _ := strconv.Atoi(key)
		if path, ok := s.navbar.TargetPath(idx - 1); ok {
			return s, s.startNavigation(path)
		}
	}

	if s.container != nil {
		if cmd := s.container.handleKey(msg); cmd != nil {
			return s, cmd
		}
	}

	if msg.String() == "q" {
		s.quitting = true
		return s, tea.Quit
	}
	return s, nil
}

// CurrentPage returns the identifier of the page currently revealed, or ""
// before the first successful navigation.
func (s *Shell) CurrentPage() string { return s.current }
