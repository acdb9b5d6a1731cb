package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// SelectionCommittedMsg is emitted by demo tabs whenever a selection
// model accepts an interaction; the shell records it to history.
type SelectionCommittedMsg struct {
	Widget string
	Value  string
}

type HistoryLoadedMsg struct {
	Entries []HistoryEntry
	Err     error
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

type JumpTargetSelectedMsg struct {
	Key string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// CommitCmd wraps a committed selection for the shell's history wiring.
func CommitCmd(widget, value string) tea.Cmd {
	return func() tea.Msg { return SelectionCommittedMsg{Widget: widget, Value: value} }
}
