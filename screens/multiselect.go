package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// MultiSelectScreen is a checkbox-group popup: space toggles the focused
// option, a toggles all, enter confirms the set, esc abandons it.
type MultiSelectScreen struct {
	title  string
	list   *core.SelectionList
	onDone func(values []string) tea.Msg
}

func NewMultiSelectScreen(title string, options []core.Option, defaults []string, onDone func(values []string) tea.Msg) *MultiSelectScreen {
	return &MultiSelectScreen{
		title:  title,
		list:   core.NewMultiList(core.RoleListBox, options, defaults),
		onDone: onDone,
	}
}

func (s *MultiSelectScreen) Title() string { return s.title }
func (s *MultiSelectScreen) Scope() string { return "screen:dropdown" }

func (s *MultiSelectScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch keyMsg.String() {
	case "up", "k":
		s.list.Handle(core.NavPrev)
	case "down", "j":
		s.list.Handle(core.NavNext)
	case "home":
		s.list.Handle(core.NavHome)
	case "end":
		s.list.Handle(core.NavEnd)
	case " ", "space":
		s.list.Commit()
	case "a":
		if s.list.Multi().AllSelected() {
			s.list.Multi().ClearAll()
		} else {
			s.list.Multi().SelectAll()
		}
	case "enter":
		if s.onDone != nil {
			values := s.list.Multi().Values()
			return s, func() tea.Msg { return s.onDone(values) }, true
		}
		return s, nil, true
	case "esc":
		return s, nil, true
	}
	return s, nil, false
}

func (s *MultiSelectScreen) View(width, height int) string {
	multi := s.list.Multi()
	trav := s.list.Traversal()
	options := s.list.Options()
	rows := make([]widgets.OptionRow, 0, len(options))
	for i, o := range options {
		rows = append(rows, widgets.OptionRow{
			Label:    o.Label,
			Caption:  o.Caption,
			Selected: multi.Has(o.Value),
			Focused:  i == trav.FocusIndex(),
			Disabled: o.Disabled,
		})
	}
	listView := widgets.OptionList{
		Title: s.title + "  " + summarizeSelection(multi),
		Rows:  rows,
		Multi: true,
	}.Render(width, max(4, height-2))
	return core.ClipHeight(strings.Join([]string{listView, "", "Space toggle. A all. Enter confirm. Esc cancel."}, "\n"), max(6, height))
}

func summarizeSelection(multi *core.MultiSelect) string {
	switch {
	case multi.AllSelected():
		return "(all)"
	case multi.Indeterminate():
		return "(some)"
	default:
		return "(none)"
	}
}
