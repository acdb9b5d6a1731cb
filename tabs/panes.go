package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// SelectListPane is the shared demo pane for roving-focus selection
// lists: radio groups, list boxes and checkbox groups differ only in the
// SelectionList handed in. Commits are reported through core.CommitCmd
// so the shell can record them.
type SelectListPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	hint    string
	list    *core.SelectionList
	history string // widget name used for history records
}

func NewSelectListPane(id, title, scope string, jumpKey byte, hint string, list *core.SelectionList) *SelectListPane {
	return &SelectListPane{
		id:      id,
		title:   title,
		scope:   scope,
		jump:    jumpKey,
		hint:    hint,
		list:    list,
		history: id,
	}
}

func (p *SelectListPane) List() *core.SelectionList { return p.list }

func (p *SelectListPane) ID() string      { return p.id }
func (p *SelectListPane) Title() string   { return p.title }
func (p *SelectListPane) Scope() string   { return p.scope }
func (p *SelectListPane) JumpKey() byte   { return p.jump }
func (p *SelectListPane) Focusable() bool { return true }
func (p *SelectListPane) Init() tea.Cmd   { return nil }

func (p *SelectListPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		p.list.Handle(core.NavPrev)
	case "down", "j":
		p.list.Handle(core.NavNext)
	case "home":
		p.list.Handle(core.NavHome)
	case "end":
		p.list.Handle(core.NavEnd)
	case " ", "space", "enter":
		o, focused := p.list.Traversal().Focused()
		if !focused {
			return nil
		}
		p.list.Commit()
		return core.CommitCmd(p.history, o.Value)
	case "a":
		if multi := p.list.Multi(); multi != nil {
			if multi.AllSelected() {
				multi.ClearAll()
			} else {
				multi.SelectAll()
			}
			return core.StatusCmd(p.title + ": " + triStateLabel(multi))
		}
	case "c":
		if single := p.list.Single(); single != nil {
			single.Clear()
			return core.StatusCmd(p.title + ": cleared")
		}
	}
	return nil
}

func (p *SelectListPane) View(width, height int, selected, focused bool) string {
	content := p.contentList().Render(max(4, width-4), max(3, height-4))
	if p.hint != "" {
		content += "\n\n" + p.hint
	}
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *SelectListPane) contentList() widgets.OptionList {
	options := p.list.Options()
	trav := p.list.Traversal()
	rows := make([]widgets.OptionRow, 0, len(options))
	for i, o := range options {
		rows = append(rows, widgets.OptionRow{
			Label:    o.Label,
			Caption:  o.Caption,
			Selected: p.isSelected(o.Value),
			Focused:  i == trav.FocusIndex(),
			Disabled: o.Disabled,
		})
	}
	title := ""
	if multi := p.list.Multi(); multi != nil {
		title = triStateLabel(multi)
	}
	return widgets.OptionList{Title: title, Rows: rows, Multi: p.list.Multi() != nil}
}

func (p *SelectListPane) isSelected(value string) bool {
	if single := p.list.Single(); single != nil {
		return single.IsSelected(value)
	}
	return p.list.Multi().Has(value)
}

func (p *SelectListPane) OnSelect() tea.Cmd   { return nil }
func (p *SelectListPane) OnDeselect() tea.Cmd { return nil }
func (p *SelectListPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *SelectListPane) OnBlur() tea.Cmd { return nil }

func triStateLabel(multi *core.MultiSelect) string {
	switch {
	case multi.AllSelected():
		return "all selected"
	case multi.Indeterminate():
		return "some selected"
	default:
		return "none selected"
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
