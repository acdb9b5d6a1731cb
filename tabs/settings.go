package tabs

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// SettingsTab holds the accent picker and the persisted selection
// history. onAccent lets app wiring persist the accepted accent.
type SettingsTab struct {
	host core.PaneHost
}

func NewSettingsTab(history core.HistoryStore, accent string, onAccent func(hex string)) *SettingsTab {
	return &SettingsTab{host: core.NewPaneHost(
		newAccentPane(accent, onAccent),
		newHistoryPane(history),
	)}
}

func (t *SettingsTab) ID() string              { return "settings" }
func (t *SettingsTab) Title() string           { return "Settings" }
func (t *SettingsTab) Scope() string           { return t.host.Scope() }
func (t *SettingsTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *SettingsTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *SettingsTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *SettingsTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *SettingsTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("accent", m), t.host.BuildPane("history", m)},
		Ratios:  []float64{0.4, 0.6},
		Gap:     1,
	}
}

// accentPane is a radio group over theme accents; an accepted pick
// restyles the whole app immediately.
type accentPane struct {
	*SelectListPane
	onAccent func(hex string)
}

func newAccentPane(accent string, onAccent func(hex string)) *accentPane {
	list := core.NewSingleList(core.RoleRadioGroup, []core.Option{
		{Value: "#89b4fa", Label: "Blue"},
		{Value: "#a6e3a1", Label: "Green"},
		{Value: "#f9e2af", Label: "Yellow"},
		{Value: "#f38ba8", Label: "Pink"},
		{Value: "#cba6f7", Label: "Mauve"},
	}, accent)
	p := &accentPane{
		SelectListPane: NewSelectListPane("accent", "Accent", "pane:settings:accent", 'a',
			"Space applies the accent everywhere.", list),
		onAccent: onAccent,
	}
	list.Single().OnChange = func(value string, set bool) {
		if !set {
			return
		}
		core.SetAccent(value)
		if p.onAccent != nil {
			p.onAccent(value)
		}
	}
	return p
}

// historyPane tables recent committed selections from the store. It
// refreshes when the pane gains selection so new commits show up without
// a restart.
type historyPane struct {
	store   core.HistoryStore
	table   table.Model
	loadErr error
}

func newHistoryPane(store core.HistoryStore) *historyPane {
	cols := []table.Column{
		{Title: "Time", Width: 10},
		{Title: "Widget", Width: 14},
		{Title: "Value", Width: 20},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(8))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	p := &historyPane{store: store, table: t}
	p.refresh()
	return p
}

func (p *historyPane) refresh() {
	if p.store == nil {
		return
	}
	var entries []core.HistoryEntry
	entries, p.loadErr = p.store.Recent(20)
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.At.Format("15:04:05"), e.Widget, e.Value})
	}
	p.table.SetRows(rows)
}

func (p *historyPane) ID() string      { return "history" }
func (p *historyPane) Title() string   { return "History" }
func (p *historyPane) Scope() string   { return "pane:settings:history" }
func (p *historyPane) JumpKey() byte   { return 'h' }
func (p *historyPane) Focusable() bool { return true }
func (p *historyPane) Init() tea.Cmd   { return nil }

func (p *historyPane) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "r" {
		p.refresh()
		return core.StatusCmd("History refreshed")
	}
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *historyPane) View(width, height int, selected, focused bool) string {
	var content string
	switch {
	case p.store == nil:
		content = "No history store configured."
	case p.loadErr != nil:
		content = "History unavailable: " + p.loadErr.Error()
	case len(p.table.Rows()) == 0:
		content = "No selections recorded yet."
	default:
		innerH := height - 6
		if innerH < 3 {
			innerH = 3
		}
		p.table.SetWidth(max(12, width-4))
		p.table.SetHeight(innerH)
		content = p.table.View()
	}
	content += "\n\nR refreshes. J/K scroll when focused."
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *historyPane) OnSelect() tea.Cmd {
	p.refresh()
	return nil
}
func (p *historyPane) OnDeselect() tea.Cmd { return nil }
func (p *historyPane) OnFocus() tea.Cmd {
	p.refresh()
	return core.StatusCmd("Focused pane: " + p.Title())
}
func (p *historyPane) OnBlur() tea.Cmd { return nil }
