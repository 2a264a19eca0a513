package shell

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// navigation is one in-flight request through the phased load sequence:
//
//	fade out -> resolve behavior registration + style (join) ->
//	insert markup -> init -> settle -> reveal
//
// Behavior registration and style resolution are kicked off together and
// joined before markup is fetched; inserting markup first would expand
// glyphs that are not registered yet. Each navigation carries a generation
// token so phases of a superseded navigation are dropped instead of racing
// the newer one's reveal.
type navigation struct {
	gen          uint64
	route        Route
	module       BehaviorModule
	behaviorDone bool
	styleDone    bool
	sheet        StyleSheet
	notFound     bool
}

func (s *Shell) startNavigation(path string) tea.Cmd {
	if s.container == nil {
		s.log.Error("navigation dropped, shell has no container", "path", path)
		return nil
	}

	var route Route
	if page, ok := s.table.ResolveAlias(path); ok {
		route = Route{Path: normalizePath(path), Page: page}
	} else if r, ok := s.table.Match(path); ok {
		route = r
	} else {
		s.log.Warn("no route matched", "path", path)
		return s.startNotFound(path)
	}

	// Re-navigating to the active page without path params is a no-op so a
	// re-fired click on the already-selected nav item never reloads.
	if route.Page == s.current && len(route.Params) == 0 {
		return nil
	}

	s.gen++
	nav := &navigation{gen: s.gen, route: route}
	s.nav = nav
	s.container.dimmed = true
	s.log.Debug("navigation started", "page", route.Page, "path", path, "gen", nav.gen)

	cmds := []tea.Cmd{s.resolveBehaviorCmd(nav.gen, route.Page)}
	if s.styles.Applied(route.Page) {
		nav.styleDone = true
	} else {
		cmds = append(cmds, s.resolveStyleCmd(nav.gen, route.Page))
	}
	return tea.Batch(cmds...)
}

// startNotFound runs the fallback flow: same fade cadence as a normal
// navigation, fragment swapped in place of a bundle. The current page is
// left untouched.
func (s *Shell) startNotFound(path string) tea.Cmd {
	if s.container == nil {
		return nil
	}
	s.gen++
	nav := &navigation{gen: s.gen, notFound: true}
	s.nav = nav
	s.container.dimmed = true
	s.container.Bind(nil)
	s.container.SetContent(s.notFoundFragment(path))
	s.status = "Not found: " + path
	s.statusErr = true
	return s.settleCmd(nav.gen)
}

func (s *Shell) resolveBehaviorCmd(gen uint64, page string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = behaviorReadyMsg{gen: gen, err: fmt.Errorf("behavior resolution panicked: %v", r)}
			}
		}()
		module, err := s.resolver.Behavior(s.ctx, page)
		return behaviorReadyMsg{gen: gen, module: module, err: err}
	}
}

func (s *Shell) resolveStyleCmd(gen uint64, page string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = styleReadyMsg{gen: gen, err: fmt.Errorf("style resolution panicked: %v", r)}
			}
		}()
		sheet, err := s.resolver.Style(s.ctx, page)
		return styleReadyMsg{gen: gen, sheet: sheet, err: err}
	}
}

func (s *Shell) resolveMarkupCmd(gen uint64, page string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = markupReadyMsg{gen: gen, err: fmt.Errorf("markup resolution panicked: %v", r)}
			}
		}()
		text, err := s.resolver.Markup(s.ctx, page)
		return markupReadyMsg{gen: gen, text: text, err: err}
	}
}

func (s *Shell) handleBehaviorReady(msg behaviorReadyMsg) tea.Cmd {
	nav := s.nav
	if nav == nil || nav.gen != msg.gen {
		return nil
	}
	if msg.err != nil {
		// Non-fatal: the page renders without wiring.
		s.log.Warn("behavior unresolved, page will render without wiring",
			"page", nav.route.Page, "err", msg.err)
		nav.module = BehaviorModule{}
	} else {
		nav.module = msg.module
		s.runRegistration(nav)
	}
	nav.behaviorDone = true
	return s.maybeInsert(nav)
}

func (s *Shell) handleStyleReady(msg styleReadyMsg) tea.Cmd {
	nav := s.nav
	if nav == nil || nav.gen != msg.gen {
		return nil
	}
	if msg.err != nil {
		// Non-fatal: the page renders unstyled. The cache stays cold so a
		// later navigation retries resolution.
		s.log.Warn("style unresolved, page will render unstyled",
			"page", nav.route.Page, "err", msg.err)
	} else {
		nav.sheet = msg.sheet
	}
	nav.styleDone = true
	return s.maybeInsert(nav)
}

// maybeInsert is the join point: markup is fetched only once both behavior
// registration and style application have completed.
func (s *Shell) maybeInsert(nav *navigation) tea.Cmd {
	if !nav.behaviorDone || !nav.styleDone {
		return nil
	}
	if nav.sheet != nil {
		s.styles.Apply(nav.route.Page, nav.sheet)
	}
	return s.resolveMarkupCmd(nav.gen, nav.route.Page)
}

func (s *Shell) handleMarkupReady(msg markupReadyMsg) tea.Cmd {
	nav := s.nav
	if nav == nil || nav.gen != msg.gen {
		return nil
	}
	if msg.err != nil {
		// A page with no visible content is not a usable page.
		s.log.Error("markup unresolved, falling back to not-found",
			"page", nav.route.Page, "err", msg.err)
		nav.notFound = true
		s.container.Bind(nil)
		s.container.SetContent(s.notFoundFragment(nav.route.Path))
		s.status = "Page unavailable: " + nav.route.Page
		s.statusErr = true
		return s.settleCmd(nav.gen)
	}

	s.container.Bind(nil)
	s.container.SetContent(expandMarkup(msg.text, s.glyphs, s.styles))
	s.runInit(nav)
	return s.settleCmd(nav.gen)
}

func (s *Shell) runRegistration(nav *navigation) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("behavior registration panicked", "page", nav.route.Page, "panic", r)
		}
	}()
	nav.module.RunRegistration(s.glyphs)
}

// runInit invokes the behavior entry point against the freshly inserted
// markup. Failures are contained: a broken page script must not keep the
// page from being visible.
func (s *Shell) runInit(nav *navigation) {
	entry, kind := nav.module.Entry()
	if kind == InitNone {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("page init panicked, page remains visible",
				"page", nav.route.Page, "panic", r)
		}
	}()
	ctx := &PageContext{
		Ctx:       s.ctx,
		Page:      nav.route.Page,
		Params:    nav.route.Params,
		Container: s.container,
		Styles:    s.styles,
		Glyphs:    s.glyphs,
		Navigate:  Navigate,
	}
	if err := entry(ctx); err != nil {
		s.log.Error("page init failed, page remains visible",
			"page", nav.route.Page, "err", err)
	}
}

// settleCmd waits out the configured settle delay so layout catches up
// before the reveal.
func (s *Shell) settleCmd(gen uint64) tea.Cmd {
	if s.settle <= 0 {
		return func() tea.Msg { return settledMsg{gen: gen} }
	}
	return tea.Tick(s.settle, func(time.Time) tea.Msg { return settledMsg{gen: gen} })
}

func (s *Shell) handleSettled(msg settledMsg) tea.Cmd {
	nav := s.nav
	if nav == nil || nav.gen != msg.gen {
		return nil
	}
	s.container.dimmed = false
	if !nav.notFound {
		s.current = nav.route.Page
		s.currentRoute = nav.route
		s.navbar.Sync(s.current)
		s.status = "Ready"
		s.statusErr = false
		s.emitPageChanged(s.current)
		s.log.Debug("navigation revealed", "page", s.current, "gen", nav.gen)
	}
	s.nav = nil
	return nil
}
