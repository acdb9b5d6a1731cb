package tabs

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSelectListPaneCommitEmitsSelection(t *testing.T) {
	list := core.NewSingleList(core.RoleListBox, []core.Option{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
	}, "")
	p := NewSelectListPane("demo", "Demo", "pane:demo", 'd', "", list)

	p.Update(key("down"))
	cmd := p.Update(key("space"))
	if cmd == nil {
		t.Fatalf("expected commit command")
	}
	msg, ok := cmd().(core.SelectionCommittedMsg)
	if !ok || msg.Widget != "demo" || msg.Value != "b" {
		t.Fatalf("commit msg = %+v", cmd())
	}
	if !list.Single().IsSelected("b") {
		t.Fatalf("expected b selected after commit")
	}
}

func TestSelectListPaneSelectAllToggle(t *testing.T) {
	list := core.NewMultiList(core.RoleListBox, []core.Option{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B", Disabled: true},
		{Value: "c", Label: "C"},
	}, nil)
	p := NewSelectListPane("group", "Group", "pane:group", 'g', "", list)

	p.Update(key("a"))
	if !list.Multi().AllSelected() {
		t.Fatalf("expected all enabled selected")
	}
	p.Update(key("a"))
	if list.Multi().Count() != 0 {
		t.Fatalf("expected cleared selection")
	}
}

func TestControlledPaneRejectsRestrictedProposal(t *testing.T) {
	p := newControlledPane()

	// Focus starts on "read"; move to "admin" and commit.
	p.Update(key("down"))
	p.Update(key("down"))
	p.Update(key("space"))
	if p.rejected != "admin" {
		t.Fatalf("expected admin proposal rejected, got %q", p.rejected)
	}
	if p.List().Single().IsSelected("admin") {
		t.Fatalf("rejected proposal must not change the value")
	}
	if !p.List().Single().IsSelected("read") {
		t.Fatalf("expected original value retained")
	}
}

func TestStripPaneWrapsAndSkipsDisabled(t *testing.T) {
	p := newStripPane()

	// Left from the first header wraps to the last enabled one.
	p.Update(key("left"))
	o, ok := p.list.Traversal().Focused()
	if !ok || o.Value != "members" {
		t.Fatalf("focused = %+v, want members", o)
	}
	cmd := p.Update(key("enter"))
	if cmd == nil {
		t.Fatalf("expected commit command")
	}
	if !p.list.Single().IsSelected("members") {
		t.Fatalf("expected members active")
	}
}

func TestCalendarPanePickAndMonthNav(t *testing.T) {
	cal := core.NewCalendar(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
	p := newCalendarPane("single", "Date Picker", "pane:cal", 'd', cal, "")

	cmd := p.Update(key("enter"))
	if cmd == nil {
		t.Fatalf("expected commit command")
	}
	if _, ok := cal.Selected(); !ok {
		t.Fatalf("expected a picked day")
	}

	p.Update(key("]"))
	if cal.Month().Month().String() != "September" {
		t.Fatalf("month = %s, want September", cal.Month().Month())
	}
	if _, ok := p.trav.Focused(); !ok {
		t.Fatalf("expected focus inside the new month")
	}
}
