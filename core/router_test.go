package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/widgets"
)

type routerTab struct{ hits int }

func (t *routerTab) ID() string    { return "r" }
func (t *routerTab) Title() string { return "Router" }
func (t *routerTab) Scope() string { return "tab:r" }
func (t *routerTab) Build(m *Model) widgets.Widget {
	return widgets.Pane{Title: "t", Height: 5, Content: "x"}
}
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func TestScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

type memoryHistory struct {
	entries []HistoryEntry
}

func (h *memoryHistory) Record(widget, value string) error {
	h.entries = append(h.entries, HistoryEntry{Widget: widget, Value: value})
	return nil
}

func (h *memoryHistory) Recent(limit int) ([]HistoryEntry, error) {
	if limit > len(h.entries) {
		limit = len(h.entries)
	}
	return h.entries[:limit], nil
}

func TestSelectionCommitRecordsHistory(t *testing.T) {
	store := &memoryHistory{}
	m := NewModel([]Tab{&routerTab{}}, NewKeyRegistry(nil), NewCommandRegistry(nil), store)
	next, _ := m.Update(SelectionCommittedMsg{Widget: "dropdown", Value: "mx"})
	updated := next.(Model)
	if len(store.entries) != 1 || store.entries[0].Value != "mx" {
		t.Fatalf("expected commit recorded, got %+v", store.entries)
	}
	if updated.statusErr {
		t.Fatalf("unexpected error status")
	}
}
