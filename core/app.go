package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/widgets"
)

// Screen is a modal layer (dropdown, palette, jump picker) stacked over
// the active tab. Update returns pop=true to close itself.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one gallery page.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// HistoryEntry is one committed selection, as persisted.
type HistoryEntry struct {
	ID     string
	Widget string
	Value  string
	At     time.Time
}

// HistoryStore records committed selections. The sqlite-backed
// implementation lives in internal/database/repository; core only needs
// the contract.
type HistoryStore interface {
	Record(widget, value string) error
	Recent(limit int) ([]HistoryEntry, error)
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	jump      JumpMode

	History             HistoryStore
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, history HistoryStore) Model {
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		History:   history,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
		OpenJumpPickerModal: func(_ *Model, targets []JumpTarget) Screen {
			return NewJumpPickerModal(targets)
		},
	}
}

func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }
func (m *Model) KeyRegistry() *KeyRegistry         { return m.keys }

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) ActiveTab() Tab {
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if t := m.ActiveTab(); t != nil {
		return t.Scope()
	}
	return ""
}

func (m *Model) SwitchTab(idx int) {
	if idx < 0 || idx >= len(m.tabs) {
		return
	}
	m.activeTab = idx
	m.SetStatus("Tab: " + m.tabs[idx].Title())
}

func (m *Model) activateJumpPicker() tea.Cmd {
	tab := m.ActiveTab()
	provider, ok := tab.(JumpTargetProvider)
	if !ok || m.OpenJumpPickerModal == nil {
		m.toggleJumpMode()
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets on this tab")
		return nil
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	return nil
}

// recordCommit persists a committed selection, surfacing store failures
// in the status bar only.
func (m *Model) recordCommit(widget, value string) {
	if m.History == nil {
		return
	}
	if err := m.History.Record(widget, value); err != nil {
		m.SetError(err)
		return
	}
	m.SetStatus("Selected " + value + " in " + widget)
}
