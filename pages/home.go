package pages

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/shell"
)

var (
	pageColorAccent = lipgloss.Color("#89b4fa")
	pageColorGood   = lipgloss.Color("#a6e3a1")
	pageColorBad    = lipgloss.Color("#f38ba8")
	pageColorMuted  = lipgloss.Color("#7f849c")
	pageColorPeach  = lipgloss.Color("#fab387")
)

const homeMarkup = `{{glyph:spark}} {{style:home-title|Procurement Workbench}}

Purchase document analytics over a local data store.

  {{glyph:chat}}   {{style:home-entry|Chat}}       ask the data agent about spend and delivery
  {{glyph:chart}}  {{style:home-entry|Dashboard}}  headline KPIs and the order value trend
  {{glyph:inbox}}  {{style:home-entry|Import}}     load purchase documents from CSV

{{style:home-hint|Press a number key to open a page. q quits.}}`

func homeBundle() bundles.Bundle {
	return bundles.Bundle{
		Markup: func(context.Context) (string, error) {
			return strings.TrimSpace(homeMarkup), nil
		},
		Styles: shell.StyleSheet{
			"home-title": lipgloss.NewStyle().Foreground(pageColorAccent).Bold(true),
			"home-entry": lipgloss.NewStyle().Foreground(pageColorPeach),
			"home-hint":  lipgloss.NewStyle().Foreground(pageColorMuted),
		},
		Behavior: func() shell.BehaviorModule {
			return shell.Behavior(func(g *shell.GlyphRegistry) {
				g.Register("spark", "✦")
				g.Register("chat", "❯")
				g.Register("chart", "▤")
				g.Register("inbox", "⇩")
			})
		},
	}
}
