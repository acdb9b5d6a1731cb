package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
)

func demoOptions() []core.Option {
	return []core.Option{
		{Value: "us", Label: "United States"},
		{Value: "ca", Label: "Canada", Disabled: true},
		{Value: "mx", Label: "Mexico"},
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDropdownTypingFiltersAndEnterSelects(t *testing.T) {
	var picked core.Option
	s := NewDropdownScreen("Country", demoOptions(), "", core.Slots{}, func(o core.Option) tea.Msg {
		picked = o
		return nil
	})

	for _, r := range "mex" {
		_, _, pop := s.Update(keyRunes(r))
		if pop {
			t.Fatalf("typing should not close the dropdown")
		}
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter should close the dropdown")
	}
	if cmd != nil {
		cmd()
	}
	if picked.Value != "mx" {
		t.Fatalf("picked = %q, want mx", picked.Value)
	}
}

func TestDropdownEscCancelsWithoutSelection(t *testing.T) {
	called := false
	s := NewDropdownScreen("Country", demoOptions(), "", core.Slots{}, func(o core.Option) tea.Msg {
		called = true
		return nil
	})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("esc should close the dropdown")
	}
	if cmd != nil {
		cmd()
	}
	if called {
		t.Fatalf("esc must not commit a selection")
	}
}

func TestDropdownEnterWithNoMatchIsNoop(t *testing.T) {
	s := NewDropdownScreen("Country", demoOptions(), "", core.Slots{}, nil)
	for _, r := range "zz" {
		s.Update(keyRunes(r))
	}
	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if pop {
		t.Fatalf("enter on an empty result set should keep the dropdown open")
	}
}

func TestMultiSelectToggleAndConfirm(t *testing.T) {
	var got []string
	s := NewMultiSelectScreen("Toppings", demoOptions(), nil, func(values []string) tea.Msg {
		got = values
		return nil
	})

	s.Update(tea.KeyMsg{Type: tea.KeySpace}) // toggle "us"
	s.Update(tea.KeyMsg{Type: tea.KeyDown})  // skips disabled "ca"
	s.Update(tea.KeyMsg{Type: tea.KeySpace}) // toggle "mx"
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter should confirm and close")
	}
	if cmd != nil {
		cmd()
	}
	if len(got) != 2 || got[0] != "us" || got[1] != "mx" {
		t.Fatalf("values = %v, want [us mx]", got)
	}
}

func TestMultiSelectSelectAllSkipsDisabled(t *testing.T) {
	var got []string
	s := NewMultiSelectScreen("Toppings", demoOptions(), nil, func(values []string) tea.Msg {
		got = values
		return nil
	})
	s.Update(keyRunes('a'))
	_, cmd, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		cmd()
	}
	if len(got) != 2 {
		t.Fatalf("select-all should skip disabled options, got %v", got)
	}
}
