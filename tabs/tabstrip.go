package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// TabStripTab demos the tab-list contract: left/right roves focus with
// wrap-around, enter activates the focused header, disabled headers are
// skipped, and a content region follows the active header.
type TabStripTab struct {
	host core.PaneHost
}

func NewTabStripTab() *TabStripTab {
	return &TabStripTab{host: core.NewPaneHost(
		newStripPane(),
	)}
}

func (t *TabStripTab) ID() string              { return "tabs" }
func (t *TabStripTab) Title() string           { return "Tabs" }
func (t *TabStripTab) Scope() string           { return t.host.Scope() }
func (t *TabStripTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *TabStripTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *TabStripTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *TabStripTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *TabStripTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *TabStripTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *TabStripTab) Build(m *core.Model) widgets.Widget {
	return t.host.BuildPane("strip", m)
}

type stripPane struct {
	list    *core.SelectionList
	content map[string]string
}

func newStripPane() *stripPane {
	list := core.NewSingleList(core.RoleTabList, []core.Option{
		{Value: "overview", Label: "Overview"},
		{Value: "activity", Label: "Activity"},
		{Value: "billing", Label: "Billing", Disabled: true, Caption: "plan required"},
		{Value: "members", Label: "Members"},
	}, "overview")
	return &stripPane{
		list: list,
		content: map[string]string{
			"overview": "Project summary, recent changes, quick links.",
			"activity": "Audit trail of the last 30 days.",
			"members":  "Seats, roles and pending invites.",
		},
	}
}

func (p *stripPane) ID() string      { return "strip" }
func (p *stripPane) Title() string   { return "Tab Strip" }
func (p *stripPane) Scope() string   { return "pane:tabs:strip" }
func (p *stripPane) JumpKey() byte   { return 's' }
func (p *stripPane) Focusable() bool { return true }
func (p *stripPane) Init() tea.Cmd   { return nil }

func (p *stripPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		p.list.Handle(core.NavPrev)
	case "right", "l":
		p.list.Handle(core.NavNext)
	case "home":
		p.list.Handle(core.NavHome)
	case "end":
		p.list.Handle(core.NavEnd)
	case "enter", " ", "space":
		o, focused := p.list.Traversal().Focused()
		if !focused {
			return nil
		}
		p.list.Commit()
		return core.CommitCmd("tabstrip", o.Value)
	}
	return nil
}

func (p *stripPane) View(width, height int, selected, focused bool) string {
	options := p.list.Options()
	trav := p.list.Traversal()
	single := p.list.Single()
	headers := make([]widgets.TabHeader, 0, len(options))
	for i, o := range options {
		headers = append(headers, widgets.TabHeader{
			Label:    o.Label,
			Active:   single.IsSelected(o.Value),
			Focused:  i == trav.FocusIndex(),
			Disabled: o.Disabled,
		})
	}
	strip := widgets.TabStrip{Tabs: headers}.Render(max(4, width-4), 1)

	body := "No active tab."
	if active, ok := single.Selected(); ok {
		body = p.content[active.Value]
	}
	content := strip + "\n\n" + body + "\n\nLeft/right wraps. Enter activates. Billing is disabled."
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *stripPane) OnSelect() tea.Cmd   { return nil }
func (p *stripPane) OnDeselect() tea.Cmd { return nil }
func (p *stripPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.Title())
}
func (p *stripPane) OnBlur() tea.Cmd { return nil }
