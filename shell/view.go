package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (s *Shell) View() string {
	if s.quitting {
		return "Goodbye\n"
	}
	header := s.renderHeader()
	status := s.renderStatusBar()
	footer := s.renderFooter()
	available := s.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}

	body := ""
	if s.container != nil {
		body = s.container.Content()
		if s.container.dimmed {
			body = containerDimStyle.Render(body)
		}
	}
	body = fitHeight(body, available)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, s.height))
	return appStyle.Width(max(1, s.width)).MaxWidth(max(1, s.width)).Render(view)
}

func (s *Shell) renderHeader() string {
	items := s.navbar.Items()
	labels := make([]string, 0, len(items))
	for i, item := range items {
		label := item.Label
		if i < 9 {
			label = string(rune('1'+i)) + ":" + label
		}
		if item.Selected {
			labels = append(labels, navSelectedStyle.Render(label))
		} else {
			labels = append(labels, navItemStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(s.title)
	right := navSepStyle.Render(" ") + strings.Join(labels, navSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, s.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < s.width {
		gap = s.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, s.width), left+strings.Repeat(" ", gap)+right)
}

func (s *Shell) renderStatusBar() string {
	msg := strings.TrimSpace(s.status)
	if msg == "" {
		msg = "Ready"
	}
	if s.statusErr {
		return renderBar(statusErrBarStyle, max(1, s.width), msg)
	}
	return renderBar(statusBarStyle, max(1, s.width), msg)
}

func (s *Shell) renderFooter() string {
	hints := []string{
		keyHintStyle.Render("1-9") + " " + helpDescStyle.Render("go to page"),
		keyHintStyle.Render("ctrl+c") + " " + helpDescStyle.Render("quit"),
	}
	return renderBar(footerStyle, max(1, s.width), strings.Join(hints, "  "))
}

func renderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
