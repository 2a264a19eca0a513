package shell

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg requests navigation to a path. Anything holding the shell's
// program handle can send it; pages get a Navigate func on their context.
type NavigateMsg struct {
	Path string
}

// Navigate builds a command that requests navigation to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// StatusMsg updates the status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// StatusCmd builds a command that sets the status bar text.
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd builds a command that surfaces err on the status bar.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// Internal sequencer phase messages. Every one carries the generation it
// belongs to; the update loop drops messages from superseded navigations.

type behaviorReadyMsg struct {
	gen    uint64
	module BehaviorModule
	err    error
}

type styleReadyMsg struct {
	gen   uint64
	sheet StyleSheet
	err   error
}

type markupReadyMsg struct {
	gen  uint64
	text string
	err  error
}

type settledMsg struct {
	gen uint64
}
