package core

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// NewJumpPickerModal is the stock jump picker; app wiring can swap in
// its own via Model.OpenJumpPickerModal.
func NewJumpPickerModal(targets []JumpTarget) Screen {
	return newJumpPickerScreen(targets)
}

type jumpPickerScreen struct {
	scope     string
	title     string
	targetByK map[string]JumpTarget
	combo     *Combobox
}

func newJumpPickerScreen(targets []JumpTarget) *jumpPickerScreen {
	options := make([]Option, 0, len(targets))
	targetByK := make(map[string]JumpTarget, len(targets))
	for _, target := range targets {
		key := normalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		target.Key = key
		targetByK[key] = target
		options = append(options, Option{
			Value:   key,
			Label:   fmt.Sprintf("[%s] %s", key, target.Label),
			Caption: "jump target",
		})
	}
	return &jumpPickerScreen{
		scope:     "screen:jump-picker",
		title:     "Jump Picker",
		targetByK: targetByK,
		combo:     NewCombobox(options, ""),
	}
}

func (s *jumpPickerScreen) Title() string { return s.title }
func (s *jumpPickerScreen) Scope() string { return s.scope }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if isJumpGlyph(keyName) && s.combo.Query() == "" {
		if target, found := s.targetByK[keyName]; found {
			return s, func() tea.Msg { return JumpTargetSelectedMsg{Key: target.Key} }, true
		}
	}
	result := s.combo.HandleKey(keyName)
	switch result.Action {
	case ComboboxActionCancelled:
		return s, nil, true
	case ComboboxActionSelected:
		return s, func() tea.Msg { return JumpTargetSelectedMsg{Key: result.Option.Value} }, true
	default:
		return s, nil, false
	}
}

func (s *jumpPickerScreen) View(width, height int) string {
	visible := s.combo.Visible()
	lines := make([]string, 0, len(visible.Options)+4)
	q := strings.TrimSpace(s.combo.Query())
	if q == "" {
		q = "(type to filter)"
	}
	lines = append(lines, "Filter: "+q, "")
	if visible.Empty() {
		lines = append(lines, "  No jump targets")
	} else {
		cursor := s.combo.Cursor()
		for i, o := range visible.Options {
			prefix := "  "
			if i == cursor {
				prefix = "> "
			}
			lines = append(lines, prefix+o.Label)
		}
	}
	lines = append(lines, "", "Type pane key to jump. Enter selects row. Esc cancels.")
	view := strings.Join(lines, "\n")
	return ClipHeight(TrimToWidth(view, max(20, width)), max(6, height))
}

func normalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if !isJumpGlyph(k) {
		return ""
	}
	return k
}

func isJumpGlyph(k string) bool {
	r := []rune(k)
	if len(r) != 1 {
		return false
	}
	return unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])
}
