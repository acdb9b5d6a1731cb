package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// MultiTab demos set-valued selection: a checkbox group with a tri-state
// select-all, and a tag row mirroring the same model's committed values.
type MultiTab struct {
	host core.PaneHost
}

func NewMultiTab() *MultiTab {
	group := core.NewMultiList(core.RoleListBox, []core.Option{
		{Value: "cheese", Label: "Cheese"},
		{Value: "mushroom", Label: "Mushrooms"},
		{Value: "olive", Label: "Olives"},
		{Value: "anchovy", Label: "Anchovies", Disabled: true, Caption: "86'd"},
		{Value: "pepper", Label: "Peppers"},
		{Value: "onion", Label: "Onions"},
	}, []string{"cheese"})

	checkboxes := NewSelectListPane("checkboxes", "Checkbox Group", "pane:multi:checkboxes", 'g',
		"Space toggles. A selects/clears all enabled.", group)

	return &MultiTab{host: core.NewPaneHost(
		checkboxes,
		newTagRowPane(group.Multi()),
	)}
}

func (t *MultiTab) ID() string              { return "multi" }
func (t *MultiTab) Title() string           { return "Multi" }
func (t *MultiTab) Scope() string           { return t.host.Scope() }
func (t *MultiTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *MultiTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *MultiTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *MultiTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *MultiTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *MultiTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *MultiTab) Build(m *core.Model) widgets.Widget {
	return widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane("checkboxes", m), t.host.BuildPane("tags", m)},
		Ratios:  []float64{0.72, 0.28},
	}
}

// tagRowPane is a read-only mirror of a multi-select's visible values.
type tagRowPane struct {
	multi *core.MultiSelect
}

func newTagRowPane(multi *core.MultiSelect) *tagRowPane {
	return &tagRowPane{multi: multi}
}

func (p *tagRowPane) ID() string                 { return "tags" }
func (p *tagRowPane) Title() string              { return "Tag Row" }
func (p *tagRowPane) Scope() string              { return "pane:multi:tags" }
func (p *tagRowPane) JumpKey() byte              { return 't' }
func (p *tagRowPane) Focusable() bool            { return true }
func (p *tagRowPane) Init() tea.Cmd              { return nil }
func (p *tagRowPane) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *tagRowPane) View(width, height int, selected, focused bool) string {
	labels := make([]string, 0, p.multi.Count())
	for _, o := range p.multi.Options() {
		if p.multi.Has(o.Value) && !o.Disabled {
			labels = append(labels, o.Label)
		}
	}
	row := widgets.TagRow{Tags: labels, Placeholder: "Nothing selected"}.Render(max(4, width-4), 1)
	content := row + "\n\nMirrors the checkbox group above."
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *tagRowPane) OnSelect() tea.Cmd   { return nil }
func (p *tagRowPane) OnDeselect() tea.Cmd { return nil }
func (p *tagRowPane) OnFocus() tea.Cmd    { return nil }
func (p *tagRowPane) OnBlur() tea.Cmd     { return nil }
