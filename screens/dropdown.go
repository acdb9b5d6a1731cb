package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// DropdownScreen is a searchable single-select popup. The search field is
// a bubbles textinput whose value drives the combobox query; the cursor
// and commit semantics live in core.Combobox. Slots swap out the
// rendered parts without touching the interaction loop.
type DropdownScreen struct {
	title      string
	combo      *core.Combobox
	input      textinput.Model
	slots      core.Slots
	onSelected func(core.Option) tea.Msg
}

func NewDropdownScreen(title string, options []core.Option, defaultValue string, slots core.Slots, onSelected func(core.Option) tea.Msg) *DropdownScreen {
	inp := textinput.New()
	inp.Placeholder = "type to filter"
	inp.Prompt = "/ "
	inp.Focus()
	return &DropdownScreen{
		title:      title,
		combo:      core.NewCombobox(options, defaultValue),
		input:      inp,
		slots:      slots,
		onSelected: onSelected,
	}
}

func (s *DropdownScreen) Title() string { return s.title }
func (s *DropdownScreen) Scope() string { return "screen:dropdown" }

func (s *DropdownScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch keyMsg.String() {
	case "up", "ctrl+p", "down", "ctrl+n", "home", "end":
		s.combo.HandleKey(keyMsg.String())
		return s, nil, false
	case "enter":
		o, found := s.combo.Focused()
		if !found {
			return s, nil, false
		}
		s.combo.Single().Select(o.Value)
		if s.onSelected != nil {
			return s, func() tea.Msg { return s.onSelected(o) }, true
		}
		return s, nil, true
	case "esc":
		return s, nil, true
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.combo.SetQuery(s.input.Value())
	return s, cmd, false
}

func (s *DropdownScreen) View(width, height int) string {
	visible := s.combo.Visible()
	content := s.slots.Content
	if content == nil {
		content = widgets.OptionList{
			Title:      s.title,
			Rows:       dropdownRows(s.combo, visible),
			EmptyText:  "No matching options",
			Suggestion: visible.Suggestion,
		}
	}
	search := s.slots.Search
	if search == nil {
		search = widgets.WidgetFunc(func(w, h int) string { return s.input.View() })
	}
	if visible.Empty() && s.slots.EmptyState != nil {
		content = s.slots.EmptyState
	}

	parts := []string{
		search.Render(width, 1),
		"",
		content.Render(width, max(4, height-4)),
		"",
		"Enter select. Esc cancel.",
	}
	return core.ClipHeight(strings.Join(parts, "\n"), max(6, height))
}

func dropdownRows(combo *core.Combobox, visible core.FilterResult) []widgets.OptionRow {
	selected, hasSelected := combo.Single().Selected()
	rows := make([]widgets.OptionRow, 0, len(visible.Options))
	for i, o := range visible.Options {
		rows = append(rows, widgets.OptionRow{
			Label:    o.Label,
			Caption:  o.Caption,
			Selected: hasSelected && o.Value == selected.Value,
			Focused:  i == combo.Cursor(),
			Disabled: o.Disabled,
		})
	}
	return rows
}
