package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/screens"
	"github.com/jask/selectkit/tabs"
)

// Tabs assembles the gallery pages in display order.
func Tabs(history core.HistoryStore, accent string, onAccent func(hex string)) []core.Tab {
	return []core.Tab{
		tabs.NewListsTab(),
		tabs.NewMultiTab(),
		tabs.NewTabStripTab(),
		tabs.NewComboTab(),
		tabs.NewCalendarTab(),
		tabs.NewSettingsTab(history, accent, onAccent),
	}
}

// ConfigureModel hooks the overlay factories and commands into the shell.
func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandModal(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(model *core.Model, targets []core.JumpTarget) core.Screen {
		return core.NewJumpPickerModal(targets)
	}

	RegisterCommands(m.CommandRegistry())
}

func RegisterCommands(reg *core.CommandRegistry) {
	pages := []struct {
		idx  int
		id   string
		name string
	}{
		{0, "switch-lists", "Switch to lists"},
		{1, "switch-multi", "Switch to multi"},
		{2, "switch-tabs", "Switch to tabs"},
		{3, "switch-combobox", "Switch to combobox"},
		{4, "switch-calendar", "Switch to calendar"},
		{5, "switch-settings", "Switch to settings"},
	}
	for _, page := range pages {
		idx := page.idx
		name := page.name
		reg.Register(core.Command{
			ID:          page.id,
			Name:        name,
			Description: "Activate the " + name[10:] + " tab",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(idx)
				return nil
			},
		})
	}
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit the gallery",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
