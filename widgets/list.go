package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OptionRow is one line of an option list, already resolved from model
// state by the caller. This package never sees the selection model.
type OptionRow struct {
	Label    string
	Caption  string
	Selected bool
	Focused  bool
	Disabled bool
}

// OptionList renders a vertical option list with a roving cursor marker,
// selection marks and a scroll window. Multi mode draws checkbox-style
// marks; single mode draws a dot on the selected row. An empty Rows
// slice renders the empty state instead of nothing.
type OptionList struct {
	Title      string
	Rows       []OptionRow
	Multi      bool
	EmptyText  string
	Suggestion string
}

var (
	listFocusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	listDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	listCaptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	listEmptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Italic(true)
)

func (l OptionList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	if l.Title != "" {
		lines = append(lines, ansi.Truncate(l.Title, width, ""))
	}
	if len(l.Rows) == 0 {
		empty := l.EmptyText
		if empty == "" {
			empty = "No matching options"
		}
		lines = append(lines, listEmptyStyle.Render(ansi.Truncate("  "+empty, width, "")))
		if l.Suggestion != "" {
			hint := "  Did you mean " + l.Suggestion + "?"
			lines = append(lines, listEmptyStyle.Render(ansi.Truncate(hint, width, "")))
		}
		return clip(lines, height)
	}

	body := make([]string, 0, len(l.Rows))
	focusAt := -1
	for i, row := range l.Rows {
		if row.Focused {
			focusAt = i
		}
		body = append(body, l.renderRow(row, width))
	}
	body = windowRows(body, focusAt, height-len(lines))
	return clip(append(lines, body...), height)
}

func (l OptionList) renderRow(row OptionRow, width int) string {
	cursor := "  "
	if row.Focused {
		cursor = "> "
	}
	mark := l.mark(row)
	text := row.Label
	if row.Caption != "" {
		text += "  " + listCaptionStyle.Render(row.Caption)
	}
	line := cursor + mark + text
	line = ansi.Truncate(line, width, "")
	switch {
	case row.Disabled:
		return listDisabledStyle.Render(ansi.Strip(line))
	case row.Focused:
		return listFocusStyle.Render(ansi.Strip(line))
	default:
		return line
	}
}

func (l OptionList) mark(row OptionRow) string {
	if l.Multi {
		if row.Selected {
			return "[x] "
		}
		return "[ ] "
	}
	if row.Selected {
		return "● "
	}
	return "○ "
}

// windowRows slides a height-sized window over rows so the focused row
// stays visible.
func windowRows(rows []string, focusAt, height int) []string {
	if height <= 0 || len(rows) <= height {
		return rows
	}
	start := 0
	if focusAt >= height {
		start = focusAt - height + 1
	}
	if start+height > len(rows) {
		start = len(rows) - height
	}
	return rows[start : start+height]
}

func clip(lines []string, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
