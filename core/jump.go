package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpMode struct {
	Active bool
}

type JumpTarget struct {
	Key   string
	Label string
}

// JumpTargetProvider lets a tab expose its focusable panes to the jump
// picker.
type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

func (m *Model) toggleJumpMode() {
	m.jump.Active = !m.jump.Active
	if m.jump.Active {
		m.SetStatus("Jump mode: press tab letter")
	} else {
		m.SetStatus("Ready")
	}
}

// jumpHandleKey is the fallback when the active tab has no jump targets:
// a digit switches to that tab directly.
func (m *Model) jumpHandleKey(msg tea.KeyMsg) (handled bool) {
	if !m.jump.Active {
		return false
	}
	m.jump.Active = false
	r := []rune(strings.ToLower(msg.String()))
	if len(r) != 1 || !unicode.IsDigit(r[0]) {
		m.SetStatus("Jump mode cancelled")
		return true
	}
	idx := int(r[0]-'0') - 1
	if idx < 0 || idx >= len(m.tabs) {
		m.SetStatus("No tab mapped to that key")
		return true
	}
	m.SwitchTab(idx)
	m.SetStatus("Jumped to " + m.tabs[idx].Title())
	return true
}
