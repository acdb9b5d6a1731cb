package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search returns palette candidates for scope, fuzzy-ranked by query.
// The empty query lists everything alphabetically, enabled first.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	inScope := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if scopeMatch(scope, c.Scopes) {
			inScope = append(inScope, c)
		}
	}

	q := strings.TrimSpace(query)
	if q != "" {
		haystack := make([]string, len(inScope))
		for i, c := range inScope {
			haystack[i] = c.Name + " " + c.Description + " " + c.ID
		}
		matches := fuzzy.Find(q, haystack)
		ranked := make([]Command, 0, len(matches))
		for _, match := range matches {
			ranked = append(ranked, inScope[match.Index])
		}
		inScope = ranked
	}

	results := make([]CommandResult, 0, len(inScope))
	for _, c := range inScope {
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	if q == "" {
		slices.SortFunc(results, func(a, b CommandResult) int {
			if a.Disabled != b.Disabled {
				if !a.Disabled {
					return -1
				}
				return 1
			}
			return cmp.Compare(a.Name, b.Name)
		})
	}
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
