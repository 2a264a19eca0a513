package shell

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorNavOff   lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

// SetAccent overrides the accent color, typically from configuration.
func SetAccent(hex string) {
	if hex == "" {
		return
	}
	colorAccent = lipgloss.Color(hex)
	headerAppStyle = headerAppStyle.Foreground(colorAccent)
	navSelectedStyle = navSelectedStyle.Foreground(colorAccent)
	keyHintStyle = keyHintStyle.Foreground(colorAccent)
}
