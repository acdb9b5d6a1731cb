package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TabHeader is one tab label with its resolved state.
type TabHeader struct {
	Label    string
	Active   bool
	Focused  bool
	Disabled bool
}

// TabStrip renders a horizontal row of tab headers. With no active tab
// (controlled value missing from the tab set) nothing is highlighted.
type TabStrip struct {
	Tabs []TabHeader
}

var (
	tabActiveStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#313244")).Foreground(lipgloss.Color("#89b4fa")).Bold(true).Padding(0, 1)
	tabFocusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Underline(true).Padding(0, 1)
	tabIdleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Padding(0, 1)
	tabDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")).Padding(0, 1)
	tabStripSep      = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")).Render("│")
)

func (t TabStrip) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(t.Tabs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(t.Tabs))
	for _, tab := range t.Tabs {
		switch {
		case tab.Disabled:
			parts = append(parts, tabDisabledStyle.Render(tab.Label))
		case tab.Active:
			parts = append(parts, tabActiveStyle.Render(tab.Label))
		case tab.Focused:
			parts = append(parts, tabFocusStyle.Render(tab.Label))
		default:
			parts = append(parts, tabIdleStyle.Render(tab.Label))
		}
	}
	return ansi.Truncate(strings.Join(parts, tabStripSep), width, "")
}
