package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DayCell is one day of a month grid, already resolved from calendar
// state by the caller.
type DayCell struct {
	Label    string
	Selected bool
	Focused  bool
	Disabled bool
	InRange  bool
}

// MonthGrid renders a calendar month: title, weekday header, then weeks
// of three-column day cells. LeadingBlanks shifts day 1 under its
// weekday.
type MonthGrid struct {
	Title         string
	LeadingBlanks int
	Days          []DayCell
}

var (
	gridTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	gridHeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	gridSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#89b4fa")).Foreground(lipgloss.Color("#1e1e2e")).Bold(true)
	gridFocusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Underline(true)
	gridRangeStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#313244"))
	gridDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

func (g MonthGrid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, 9)
	if g.Title != "" {
		lines = append(lines, gridTitleStyle.Render(ansi.Truncate(g.Title, width, "")))
	}
	lines = append(lines, gridHeaderStyle.Render(weekdayHeader))

	cells := make([]string, 0, g.LeadingBlanks+len(g.Days))
	for i := 0; i < g.LeadingBlanks; i++ {
		cells = append(cells, "  ")
	}
	for _, d := range g.Days {
		cells = append(cells, renderDay(d))
	}
	for row := 0; row < len(cells); row += 7 {
		end := row + 7
		if end > len(cells) {
			end = len(cells)
		}
		lines = append(lines, ansi.Truncate(strings.Join(cells[row:end], " "), width, ""))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func renderDay(d DayCell) string {
	label := d.Label
	if len(label) < 2 {
		label = " " + label
	}
	switch {
	case d.Selected:
		return gridSelectedStyle.Render(label)
	case d.Focused:
		return gridFocusStyle.Render(label)
	case d.Disabled:
		return gridDisabledStyle.Render(label)
	case d.InRange:
		return gridRangeStyle.Render(label)
	default:
		return label
	}
}
