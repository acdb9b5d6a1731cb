package core

import "strings"

type ComboboxAction int

const (
	ComboboxActionNone ComboboxAction = iota
	ComboboxActionMoved
	ComboboxActionSelected
	ComboboxActionCancelled
)

type ComboboxResult struct {
	Action ComboboxAction
	Option Option
}

// Combobox is a searchable single-select: a free-text query reduces the
// option list, a roving cursor walks the visible subset, enter commits.
// The cursor re-derives on every query change so it never points at a
// filtered-out entry. Combobox cursors clamp at list boundaries; they do
// not wrap.
type Combobox struct {
	all      OptionSet
	filtered FilterResult
	trav     *Traversal
	single   *SingleSelect
	query    string
}

func NewCombobox(options []Option, defaultValue string) *Combobox {
	c := &Combobox{
		all:    OptionSet(options).Clone(),
		single: NewSingleSelect(options, defaultValue),
	}
	c.filtered = FilterOptions(c.all, "")
	c.trav = NewTraversal(RoleComboBox, c.filtered.Options)
	return c
}

// NewControlledCombobox routes every committed value through
// Single().OnChange instead of internal state.
func NewControlledCombobox(options []Option, value string) *Combobox {
	c := &Combobox{
		all:    OptionSet(options).Clone(),
		single: NewControlledSingleSelect(options, value),
	}
	c.filtered = FilterOptions(c.all, "")
	c.trav = NewTraversal(RoleComboBox, c.filtered.Options)
	return c
}

func (c *Combobox) Single() *SingleSelect { return c.single }
func (c *Combobox) Query() string         { return c.query }
func (c *Combobox) Cursor() int           { return c.trav.FocusIndex() }

// Visible returns the current filtered subset.
func (c *Combobox) Visible() FilterResult { return c.filtered }

func (c *Combobox) SetOptions(options []Option) {
	c.all = OptionSet(options).Clone()
	c.single.SetOptions(options)
	c.refilter()
}

func (c *Combobox) SetQuery(q string) {
	c.query = q
	c.refilter()
}

func (c *Combobox) refilter() {
	c.filtered = FilterOptions(c.all, c.query)
	c.trav.SetOptions(c.filtered.Options)
}

// Focused is the option under the cursor, if any.
func (c *Combobox) Focused() (Option, bool) {
	return c.trav.Focused()
}

// HandleKey consumes a named key the way the gallery screens deliver
// them. Printable keys extend the query; everything else drives the
// cursor or commits.
func (c *Combobox) HandleKey(keyName string) ComboboxResult {
	switch keyName {
	case "up", "ctrl+p":
		return c.moved(NavPrev)
	case "down", "ctrl+n":
		return c.moved(NavNext)
	case "home":
		return c.moved(NavHome)
	case "end":
		return c.moved(NavEnd)
	case "enter":
		o, ok := c.trav.Focused()
		if !ok {
			return ComboboxResult{Action: ComboboxActionNone}
		}
		c.single.Select(o.Value)
		return ComboboxResult{Action: ComboboxActionSelected, Option: o}
	case "esc":
		return ComboboxResult{Action: ComboboxActionCancelled}
	case "backspace":
		if len(c.query) > 0 {
			c.SetQuery(c.query[:len(c.query)-1])
		}
		return ComboboxResult{Action: ComboboxActionNone}
	case "space":
		c.SetQuery(c.query + " ")
		return ComboboxResult{Action: ComboboxActionNone}
	default:
		if isPrintableKey(keyName) {
			c.SetQuery(c.query + keyName)
		}
		return ComboboxResult{Action: ComboboxActionNone}
	}
}

func (c *Combobox) moved(ev NavEvent) ComboboxResult {
	before := c.trav.FocusIndex()
	c.trav.Handle(ev)
	if c.trav.FocusIndex() != before {
		return ComboboxResult{Action: ComboboxActionMoved}
	}
	return ComboboxResult{Action: ComboboxActionNone}
}

func isPrintableKey(keyName string) bool {
	if len(keyName) != 1 {
		return false
	}
	return keyName[0] >= 32 && keyName[0] < 127 && !strings.ContainsAny(keyName, "\t\n")
}
