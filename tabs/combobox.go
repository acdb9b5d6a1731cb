package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/screens"
	"github.com/jask/selectkit/widgets"
)

// ComboTab demos the popup family: an inline combobox pane plus a
// launcher pane that opens the dropdown and multi-select overlays.
type ComboTab struct {
	host core.PaneHost
}

func NewComboTab() *ComboTab {
	return &ComboTab{host: core.NewPaneHost(
		newComboPane(),
		newLauncherPane(),
	)}
}

func (t *ComboTab) ID() string              { return "combobox" }
func (t *ComboTab) Title() string           { return "Combobox" }
func (t *ComboTab) Scope() string           { return t.host.Scope() }
func (t *ComboTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *ComboTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *ComboTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *ComboTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *ComboTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *ComboTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *ComboTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("inline", m), t.host.BuildPane("launcher", m)},
		Ratios:  []float64{0.6, 0.4},
		Gap:     1,
	}
}

func countryOptions() []core.Option {
	return []core.Option{
		{Value: "us", Label: "United States", Caption: "USD"},
		{Value: "gb", Label: "United Kingdom", Caption: "GBP"},
		{Value: "ca", Label: "Canada", Caption: "CAD", Disabled: true},
		{Value: "mx", Label: "Mexico", Caption: "MXN"},
		{Value: "de", Label: "Germany", Caption: "EUR"},
		{Value: "fr", Label: "France", Caption: "EUR"},
		{Value: "jp", Label: "Japan", Caption: "JPY"},
	}
}

// comboPane hosts an inline combobox: type to filter, arrows rove over
// the filtered subset, enter commits. The empty state shows a closest-
// match suggestion.
type comboPane struct {
	combo *core.Combobox
}

func newComboPane() *comboPane {
	return &comboPane{combo: core.NewCombobox(countryOptions(), "")}
}

func (p *comboPane) ID() string      { return "inline" }
func (p *comboPane) Title() string   { return "Combobox" }
func (p *comboPane) Scope() string   { return "pane:combobox:inline" }
func (p *comboPane) JumpKey() byte   { return 'c' }
func (p *comboPane) Focusable() bool { return true }
func (p *comboPane) Init() tea.Cmd   { return nil }

func (p *comboPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	result := p.combo.HandleKey(keyMsg.String())
	if result.Action == core.ComboboxActionSelected {
		return core.CommitCmd("combobox", result.Option.Value)
	}
	return nil
}

func (p *comboPane) View(width, height int, selected, focused bool) string {
	visible := p.combo.Visible()
	rows := make([]widgets.OptionRow, 0, len(visible.Options))
	chosen, hasChosen := p.combo.Single().Selected()
	for i, o := range visible.Options {
		rows = append(rows, widgets.OptionRow{
			Label:    o.Label,
			Caption:  o.Caption,
			Selected: hasChosen && o.Value == chosen.Value,
			Focused:  i == p.combo.Cursor(),
			Disabled: o.Disabled,
		})
	}
	query := p.combo.Query()
	if query == "" {
		query = "(type to filter)"
	}
	list := widgets.OptionList{
		Rows:       rows,
		EmptyText:  "No matching options",
		Suggestion: visible.Suggestion,
	}.Render(max(4, width-4), max(3, height-6))
	content := strings.Join([]string{"Filter: " + query, "", list}, "\n")
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *comboPane) OnSelect() tea.Cmd   { return nil }
func (p *comboPane) OnDeselect() tea.Cmd { return nil }
func (p *comboPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.Title())
}
func (p *comboPane) OnBlur() tea.Cmd { return nil }

// launcherPane opens the popup variants over the tab.
type launcherPane struct {
	lastSingle string
	lastMulti  []string
}

func newLauncherPane() *launcherPane {
	return &launcherPane{}
}

func (p *launcherPane) ID() string      { return "launcher" }
func (p *launcherPane) Title() string   { return "Popups" }
func (p *launcherPane) Scope() string   { return "pane:combobox:launcher" }
func (p *launcherPane) JumpKey() byte   { return 'p' }
func (p *launcherPane) Focusable() bool { return true }
func (p *launcherPane) Init() tea.Cmd   { return nil }

func (p *launcherPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "d":
		screen := screens.NewDropdownScreen("Country", countryOptions(), p.lastSingle, core.Slots{}, func(o core.Option) tea.Msg {
			p.lastSingle = o.Value
			return core.SelectionCommittedMsg{Widget: "dropdown", Value: o.Value}
		})
		return func() tea.Msg { return core.PushScreenMsg{Screen: screen} }
	case "m":
		screen := screens.NewMultiSelectScreen("Countries", countryOptions(), p.lastMulti, func(values []string) tea.Msg {
			p.lastMulti = values
			return core.SelectionCommittedMsg{Widget: "multiselect", Value: strings.Join(values, ",")}
		})
		return func() tea.Msg { return core.PushScreenMsg{Screen: screen} }
	}
	return nil
}

func (p *launcherPane) View(width, height int, selected, focused bool) string {
	last := p.lastSingle
	if last == "" {
		last = "(none)"
	}
	lines := []string{
		"D opens the dropdown popup.",
		"M opens the multi-select popup.",
		"",
		"Last dropdown pick: " + last,
		"Last multi pick: " + summarizeValues(p.lastMulti),
	}
	return widgets.Pane{Title: p.Title(), Height: height, Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

func summarizeValues(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func (p *launcherPane) OnSelect() tea.Cmd   { return nil }
func (p *launcherPane) OnDeselect() tea.Cmd { return nil }
func (p *launcherPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.Title())
}
func (p *launcherPane) OnBlur() tea.Cmd { return nil }
