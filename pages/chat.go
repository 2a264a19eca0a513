package pages

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/shell"
)

// chatHistoryMax bounds the transcript; older exchanges scroll away.
const chatHistoryMax = 24

var (
	chatUserStyle  = lipgloss.NewStyle().Foreground(pageColorAccent).Bold(true)
	chatAgentStyle = lipgloss.NewStyle().Foreground(pageColorPeach)
	chatHintStyle  = lipgloss.NewStyle().Foreground(pageColorMuted)
)

const chatMarkup = `{{style:chat-title|Data Agent}}

{{style:chat-hint|Loading session...}}`

func chatBundle(deps Deps) bundles.Bundle {
	return bundles.Bundle{
		Markup: func(context.Context) (string, error) {
			return strings.TrimSpace(chatMarkup), nil
		},
		Styles: shell.StyleSheet{
			"chat-title": lipgloss.NewStyle().Foreground(pageColorAccent).Bold(true),
			"chat-hint":  lipgloss.NewStyle().Foreground(pageColorMuted),
		},
		Behavior: func() shell.BehaviorModule {
			return shell.Behavior(func(g *shell.GlyphRegistry) {
				g.Register("prompt-user", chatUserStyle.Render("❯"))
				g.Register("prompt-agent", chatAgentStyle.Render("◆"))
			}).WithDefault(func(pc *shell.PageContext) error {
				s := newChatSession(deps, pc)
				pc.Container.Bind(s.handleKey)
				pc.Container.SetContent(s.view())
				return nil
			})
		},
	}
}

type chatLine struct {
	fromUser bool
	text     string
}

type chatSession struct {
	ctx   context.Context
	pc    *shell.PageContext
	agent *Agent
	input textinput.Model
	lines []chatLine
}

func newChatSession(deps Deps, pc *shell.PageContext) *chatSession {
	inp := textinput.New()
	inp.Placeholder = "Ask about spend, plants or delivery"
	inp.Prompt = "you> "
	inp.CharLimit = 200
	inp.Width = pageWidth - len(inp.Prompt) - 2
	inp.Focus()
	return &chatSession{
		ctx:   pc.Ctx,
		pc:    pc,
		agent: NewAgent(deps.KPIs),
		input: inp,
	}
}

func (s *chatSession) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		q := strings.TrimSpace(s.input.Value())
		if q == "" {
			return consume
		}
		s.input.Reset()
		s.push(chatLine{fromUser: true, text: q})
		s.push(chatLine{text: s.agent.Answer(s.ctx, q)})
		s.pc.Container.SetContent(s.view())
		return consume
	case "esc":
		s.input.Reset()
		s.pc.Container.SetContent(s.view())
		return consume
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.pc.Container.SetContent(s.view())
	if cmd != nil {
		return cmd
	}
	return consume
}

func (s *chatSession) push(l chatLine) {
	s.lines = append(s.lines, l)
	if len(s.lines) > chatHistoryMax {
		s.lines = s.lines[len(s.lines)-chatHistoryMax:]
	}
}

func (s *chatSession) view() string {
	var b strings.Builder
	b.WriteString(chatUserStyle.Render("Data Agent"))
	b.WriteString("\n\n")

	if len(s.lines) == 0 {
		b.WriteString(chatHintStyle.Render("Ask a question about the imported purchase documents."))
		b.WriteString("\n")
	}
	for _, l := range s.lines {
		marker, style := s.glyph("prompt-agent", "◆"), chatAgentStyle
		if l.fromUser {
			marker, style = s.glyph("prompt-user", "❯"), chatUserStyle
		}
		first := true
		for _, row := range strings.Split(l.text, "\n") {
			if first {
				b.WriteString(marker + " " + style.Render(row))
				first = false
			} else {
				b.WriteString("  " + style.Render(row))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")
	b.WriteString(chatHintStyle.Render("enter sends, esc clears"))
	return b.String()
}

func (s *chatSession) glyph(name, fallback string) string {
	if g, ok := s.pc.Glyphs.Lookup(name); ok {
		return g
	}
	return fallback
}
