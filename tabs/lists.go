package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// ListsTab demos the single-select list family: a wrapping radio group,
// a clamping list box, and a controlled list whose value is owned by the
// pane rather than the model.
type ListsTab struct {
	host core.PaneHost
}

func NewListsTab() *ListsTab {
	radio := core.NewSingleList(core.RoleRadioGroup, []core.Option{
		{Value: "sm", Label: "Small"},
		{Value: "md", Label: "Medium"},
		{Value: "lg", Label: "Large"},
		{Value: "xl", Label: "Extra large", Disabled: true, Caption: "out of stock"},
	}, "md")
	listbox := core.NewSingleList(core.RoleListBox, []core.Option{
		{Value: "us", Label: "United States", Caption: "USD"},
		{Value: "ca", Label: "Canada", Caption: "CAD", Disabled: true},
		{Value: "mx", Label: "Mexico", Caption: "MXN"},
		{Value: "br", Label: "Brazil", Caption: "BRL"},
		{Value: "ar", Label: "Argentina", Caption: "ARS"},
	}, "")

	return &ListsTab{host: core.NewPaneHost(
		NewSelectListPane("radio", "Radio Group", "pane:lists:radio", 'r',
			"Wraps at the ends. Space selects. C clears.", radio),
		NewSelectListPane("listbox", "List Box", "pane:lists:listbox", 'l',
			"Clamps at the ends. Disabled rows are skipped.", listbox),
		newControlledPane(),
	)}
}

func (t *ListsTab) ID() string              { return "lists" }
func (t *ListsTab) Title() string           { return "Lists" }
func (t *ListsTab) Scope() string           { return t.host.Scope() }
func (t *ListsTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *ListsTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *ListsTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *ListsTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *ListsTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *ListsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *ListsTab) Build(m *core.Model) widgets.Widget {
	left := widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane("radio", m), t.host.BuildPane("controlled", m)},
		Ratios:  []float64{0.5, 0.5},
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{left, t.host.BuildPane("listbox", m)},
		Ratios:  []float64{0.5, 0.5},
		Gap:     1,
	}
}

// controlledPane owns its value externally: every interaction is a
// proposal surfaced through OnChange, and the pane decides whether to
// push it back into the model. Proposals for the "restricted" option are
// rejected to make the ownership split visible.
type controlledPane struct {
	*SelectListPane
	rejected string
}

func newControlledPane() *controlledPane {
	list := core.NewControlledSingleList(core.RoleRadioGroup, []core.Option{
		{Value: "read", Label: "Read only"},
		{Value: "write", Label: "Read + write"},
		{Value: "admin", Label: "Admin", Caption: "restricted"},
	}, "read")
	p := &controlledPane{
		SelectListPane: NewSelectListPane("controlled", "Controlled", "pane:lists:controlled", 'c',
			"Owner accepts proposals; admin is rejected.", list),
	}
	list.Single().OnChange = func(value string, set bool) {
		if value == "admin" {
			p.rejected = value
			return
		}
		p.rejected = ""
		list.Single().SetValue(value, set)
	}
	return p
}

func (p *controlledPane) View(width, height int, selected, focused bool) string {
	content := p.contentList().Render(max(4, width-4), max(3, height-6))
	if p.rejected != "" {
		content += "\n\nProposal rejected: " + p.rejected
	} else {
		content += "\n\n" + p.hint
	}
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}
