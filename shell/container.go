package shell

import tea "github.com/charmbracelet/bubbletea"

// Container is the single content region pages are swapped into. Content
// is replaced wholesale per navigation, never incrementally. While a swap
// is in flight the container renders dimmed rather than empty so there is
// no flash of mismatched content.
type Container struct {
	name       string
	content    string
	dimmed     bool
	keyHandler func(tea.KeyMsg) tea.Cmd
}

func newContainer(name string) *Container {
	return &Container{name: name}
}

// Name returns the region name the container was looked up by.
func (c *Container) Name() string { return c.name }

// Content returns the currently inserted fragment.
func (c *Container) Content() string { return c.content }

// SetContent replaces the container's content wholesale. Page behaviors use
// this from their wired handlers to refresh their own fragment.
func (c *Container) SetContent(s string) { c.content = s }

// Bind wires a key handler against the inserted fragment. Passing nil
// unwires. The previous handler is dropped on every swap since it was wired
// against markup that no longer exists.
func (c *Container) Bind(fn func(tea.KeyMsg) tea.Cmd) { c.keyHandler = fn }

func (c *Container) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.keyHandler == nil {
		return nil
	}
	return c.keyHandler(msg)
}
