package tabs

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/widgets"
)

// CalendarTab demos the date pickers: a bounded single-day calendar and
// a range calendar sharing the same day-as-option model.
type CalendarTab struct {
	host core.PaneHost
}

func NewCalendarTab() *CalendarTab {
	now := time.Now()
	single := core.NewCalendar(now)
	single.SetBounds(now.AddDate(0, -1, 0), now.AddDate(0, 2, 0))

	return &CalendarTab{host: core.NewPaneHost(
		newCalendarPane("single", "Date Picker", "pane:calendar:single", 'd', single,
			"Arrows move. Enter picks. [ ] changes month."),
		newCalendarPane("range", "Range Picker", "pane:calendar:range", 'r', core.NewRangeCalendar(now),
			"Two picks make a range; a third restarts."),
	)}
}

func (t *CalendarTab) ID() string              { return "calendar" }
func (t *CalendarTab) Title() string           { return "Calendar" }
func (t *CalendarTab) Scope() string           { return t.host.Scope() }
func (t *CalendarTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *CalendarTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *CalendarTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *CalendarTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *CalendarTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *CalendarTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *CalendarTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("single", m), t.host.BuildPane("range", m)},
		Ratios:  []float64{0.5, 0.5},
		Gap:     1,
	}
}

// calendarPane drives a core.Calendar with a roving day traversal. The
// traversal rebuilds whenever the visible month changes so focus never
// lands outside it.
type calendarPane struct {
	id    string
	title string
	scope string
	jump  byte
	hint  string
	cal   *core.Calendar
	trav  *core.Traversal
}

func newCalendarPane(id, title, scope string, jumpKey byte, cal *core.Calendar, hint string) *calendarPane {
	return &calendarPane{
		id:    id,
		title: title,
		scope: scope,
		jump:  jumpKey,
		hint:  hint,
		cal:   cal,
		trav:  core.NewTraversal(core.RoleListBox, cal.DayOptions()),
	}
}

func (p *calendarPane) ID() string      { return p.id }
func (p *calendarPane) Title() string   { return p.title }
func (p *calendarPane) Scope() string   { return p.scope }
func (p *calendarPane) JumpKey() byte   { return p.jump }
func (p *calendarPane) Focusable() bool { return true }
func (p *calendarPane) Init() tea.Cmd   { return nil }

func (p *calendarPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		p.trav.Handle(core.NavPrev)
	case "right", "l":
		p.trav.Handle(core.NavNext)
	case "home":
		p.trav.Handle(core.NavHome)
	case "end":
		p.trav.Handle(core.NavEnd)
	case "[":
		p.cal.PrevMonth()
		p.trav.SetOptions(p.cal.DayOptions())
	case "]":
		p.cal.NextMonth()
		p.trav.SetOptions(p.cal.DayOptions())
	case "enter", " ", "space":
		o, focused := p.trav.Focused()
		if !focused {
			return nil
		}
		p.cal.Pick(o.Value)
		return core.CommitCmd(p.id+"-calendar", o.Value)
	}
	return nil
}

func (p *calendarPane) View(width, height int, selected, focused bool) string {
	days := p.cal.DayOptions()
	cells := make([]widgets.DayCell, 0, len(days))
	for i, d := range days {
		cells = append(cells, widgets.DayCell{
			Label:    d.Label,
			Selected: p.cal.IsSelected(d.Value),
			Focused:  i == p.trav.FocusIndex(),
			Disabled: d.Disabled,
			InRange:  p.cal.RangeMode() && p.cal.InRange(d.Value),
		})
	}
	month := p.cal.Month()
	grid := widgets.MonthGrid{
		Title:         month.Format("January 2006"),
		LeadingBlanks: int(month.Weekday()),
		Days:          cells,
	}.Render(max(4, width-4), max(3, height-6))
	content := grid + "\n\n" + p.statusLine() + "\n" + p.hint
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *calendarPane) statusLine() string {
	if !p.cal.RangeMode() {
		if day, ok := p.cal.Selected(); ok {
			return "Picked: " + day.Format("2006-01-02")
		}
		return "Picked: (none)"
	}
	start, end, complete := p.cal.Range()
	if complete {
		return "Range: " + start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
	}
	if p.cal.InRange(start.Format("2006-01-02")) {
		return "Range: " + start.Format("2006-01-02") + " to ..."
	}
	return "Range: (none)"
}

func (p *calendarPane) OnSelect() tea.Cmd   { return nil }
func (p *calendarPane) OnDeselect() tea.Cmd { return nil }
func (p *calendarPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *calendarPane) OnBlur() tea.Cmd { return nil }
