package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TagRow renders a multiselect's committed values as a single row of
// tags. Tags that do not fit the width collapse into a "+N" overflow
// counter rather than wrapping.
type TagRow struct {
	Tags        []string
	Placeholder string
}

var (
	tagStyle         = lipgloss.NewStyle().Background(lipgloss.Color("#313244")).Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1)
	tagOverflowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

func (t TagRow) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Tags) == 0 {
		ph := t.Placeholder
		if ph == "" {
			ph = "Nothing selected"
		}
		return tagOverflowStyle.Render(ansi.Truncate(ph, width, ""))
	}
	parts := make([]string, 0, len(t.Tags))
	used := 0
	shown := 0
	for i, tag := range t.Tags {
		rendered := tagStyle.Render(tag)
		w := ansi.StringWidth(rendered) + 1
		overflowW := len(fmt.Sprintf("+%d", len(t.Tags)-i-1)) + 1
		if used+w+overflowW > width && i < len(t.Tags)-1 {
			break
		}
		if used+w > width {
			break
		}
		parts = append(parts, rendered)
		used += w
		shown++
	}
	if shown < len(t.Tags) {
		parts = append(parts, tagOverflowStyle.Render(fmt.Sprintf("+%d", len(t.Tags)-shown)))
	}
	return ansi.Truncate(strings.Join(parts, " "), width, "")
}
