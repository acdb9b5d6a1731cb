package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

// SetAccent overrides the accent color (config-driven, settings tab).
func SetAccent(hex string) {
	if len(hex) == 7 && hex[0] == '#' {
		colorAccent = lipgloss.Color(hex)
		rebuildStyles()
	}
}
