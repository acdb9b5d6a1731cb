package core

import "testing"

func travOptions() []Option {
	return []Option{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Bravo", Disabled: true},
		{Value: "c", Label: "Charlie"},
	}
}

func TestNextSkipsDisabled(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("initial focus should be first enabled, got %q", o.Value)
	}
	tr.Next()
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("next must skip disabled option, got %q", o.Value)
	}
}

func TestListBoxClampsAtEnds(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	tr.Prev()
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("listbox must clamp at start, got %q", o.Value)
	}
	tr.End()
	tr.Next()
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("listbox must clamp at end, got %q", o.Value)
	}
}

func TestTabListWrapsAtEnds(t *testing.T) {
	tr := NewTraversal(RoleTabList, travOptions())
	tr.Prev()
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("tablist must wrap backwards, got %q", o.Value)
	}
	tr.Next()
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("tablist must wrap forwards, got %q", o.Value)
	}
}

func TestHomeEndJumpToEnabledBoundaries(t *testing.T) {
	opts := []Option{
		{Value: "x", Label: "X", Disabled: true},
		{Value: "a", Label: "Alpha"},
		{Value: "c", Label: "Charlie"},
		{Value: "z", Label: "Z", Disabled: true},
	}
	tr := NewTraversal(RoleListBox, opts)
	tr.End()
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("end must land on last enabled, got %q", o.Value)
	}
	tr.Home()
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("home must land on first enabled, got %q", o.Value)
	}
}

func TestAllDisabledMeansNoFocus(t *testing.T) {
	opts := []Option{{Value: "a", Label: "A", Disabled: true}}
	tr := NewTraversal(RoleListBox, opts)
	if _, ok := tr.Focused(); ok {
		t.Fatalf("nothing should be focusable")
	}
	tr.Next()
	if tr.FocusIndex() != -1 {
		t.Fatalf("focus index should stay -1, got %d", tr.FocusIndex())
	}
}

func TestSetOptionsFollowsFocusedValue(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	tr.Next() // c
	tr.SetOptions([]Option{
		{Value: "n", Label: "New"},
		{Value: "c", Label: "Charlie"},
	})
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("focus should follow surviving value, got %q", o.Value)
	}
}

func TestSetOptionsReclampsWhenFocusedValueGone(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	tr.Next() // c
	tr.SetOptions([]Option{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Bravo"},
	})
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("focus should fall back to first enabled, got %q", o.Value)
	}
}

func TestSetOptionsReclampsWhenFocusedValueNowDisabled(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	tr.Next() // c
	tr.SetOptions([]Option{
		{Value: "a", Label: "Alpha"},
		{Value: "c", Label: "Charlie", Disabled: true},
	})
	if o, _ := tr.Focused(); o.Value != "a" {
		t.Fatalf("disabled survivor must lose focus, got %q", o.Value)
	}
}

func TestWrapOverrideBeatsRoleDefault(t *testing.T) {
	tr := NewTraversal(RoleListBox, travOptions())
	tr.SetWrap(true)
	tr.Prev()
	if o, _ := tr.Focused(); o.Value != "c" {
		t.Fatalf("wrap override not honored, got %q", o.Value)
	}
}

func TestSelectionListCommit(t *testing.T) {
	l := NewSingleList(RoleTabList, travOptions(), "")
	l.Handle(NavNext) // focus c
	l.Commit()
	if o, ok := l.Single().Selected(); !ok || o.Value != "c" {
		t.Fatalf("commit should select focused option, got %v %v", o.Value, ok)
	}
}

func TestSelectionListCommitTogglesMultiTraversal(t *testing.T) {
	l := NewMultiList(RoleListBox, travOptions(), nil)
	l.Commit()
	l.Handle(NavNext)
	l.Commit()
	if got := l.Multi().Count(); got != 2 {
		t.Fatalf("expected two committed values, got %d", got)
	}
	l.Commit()
	if got := l.Multi().Count(); got != 1 {
		t.Fatalf("recommit should toggle off, got %d", got)
	}
}
