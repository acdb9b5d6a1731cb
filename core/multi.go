package core

// MultiSelect holds set-valued selection state: multiselects, checkbox
// groups, tag collections. Duplicates are impossible by construction and
// reported values always follow option order.
//
// The controlled/uncontrolled ownership rule matches SingleSelect.
type MultiSelect struct {
	options    OptionSet
	selected   map[string]bool
	controlled bool

	// OnChange receives the full proposed value set, in option order.
	OnChange func(values []string)
}

// NewMultiSelect creates an uncontrolled model seeded from defaults.
// Defaults naming missing or disabled options are dropped.
func NewMultiSelect(options []Option, defaults []string) *MultiSelect {
	m := &MultiSelect{
		options:  OptionSet(options).Clone(),
		selected: make(map[string]bool, len(defaults)),
	}
	for _, v := range defaults {
		if m.options.Selectable(v) {
			m.selected[v] = true
		}
	}
	return m
}

// NewControlledMultiSelect creates a model whose value set is owned by
// the caller. Values are stored verbatim, deduplicated.
func NewControlledMultiSelect(options []Option, values []string) *MultiSelect {
	m := &MultiSelect{
		options:    OptionSet(options).Clone(),
		selected:   make(map[string]bool, len(values)),
		controlled: true,
	}
	for _, v := range values {
		m.selected[v] = true
	}
	return m
}

func (m *MultiSelect) Controlled() bool   { return m.controlled }
func (m *MultiSelect) Options() OptionSet { return m.options.Clone() }

func (m *MultiSelect) SetOptions(options []Option) {
	m.options = OptionSet(options).Clone()
}

// SetValues is the controlled owner's write path; ignored when
// uncontrolled.
func (m *MultiSelect) SetValues(values []string) {
	if !m.controlled {
		return
	}
	next := make(map[string]bool, len(values))
	for _, v := range values {
		next[v] = true
	}
	m.selected = next
}

// Toggle flips membership of value. Unknown or disabled targets are
// silent no-ops.
func (m *MultiSelect) Toggle(value string) {
	if !m.options.Selectable(value) {
		return
	}
	next := m.cloneSelected()
	if next[value] {
		delete(next, value)
	} else {
		next[value] = true
	}
	m.propose(next)
}

// SelectAll selects every enabled option. Disabled options stay out even
// when a stale controlled value already contains them.
func (m *MultiSelect) SelectAll() {
	next := make(map[string]bool, len(m.options))
	for _, o := range m.options {
		if !o.Disabled {
			next[o.Value] = true
		}
	}
	m.propose(next)
}

// ClearAll empties the selection.
func (m *MultiSelect) ClearAll() {
	m.propose(map[string]bool{})
}

func (m *MultiSelect) propose(next map[string]bool) {
	if !m.controlled {
		m.selected = next
	}
	if m.OnChange != nil {
		m.OnChange(orderedValues(next, m.options))
	}
}

func (m *MultiSelect) cloneSelected() map[string]bool {
	out := make(map[string]bool, len(m.selected))
	for v := range m.selected {
		out[v] = true
	}
	return out
}

func (m *MultiSelect) Has(value string) bool { return m.selected[value] }

// Values returns the visible selection in option order. Stored values
// that resolve to no enabled option are excluded from the visible set.
func (m *MultiSelect) Values() []string {
	return orderedValues(m.selected, m.options)
}

func (m *MultiSelect) Count() int { return len(m.Values()) }

// AllSelected reports whether every enabled option is selected. An
// option list with no enabled entries is never "all selected".
func (m *MultiSelect) AllSelected() bool {
	enabled := m.options.EnabledCount()
	return enabled > 0 && m.Count() == enabled
}

// SomeSelected reports a non-empty but incomplete selection, the state a
// parent "select all" checkbox renders as indeterminate.
func (m *MultiSelect) SomeSelected() bool {
	n := m.Count()
	return n > 0 && n < m.options.EnabledCount()
}

func (m *MultiSelect) Indeterminate() bool { return m.SomeSelected() }

// ComputeIndeterminate is the standalone form used by render layers that
// carry raw value slices instead of a model.
func ComputeIndeterminate(selected []string, options []Option) bool {
	set := make(map[string]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}
	return indeterminate(set, OptionSet(options))
}

func indeterminate(selected map[string]bool, options OptionSet) bool {
	n := len(orderedValues(selected, options))
	enabled := options.EnabledCount()
	return n > 0 && n < enabled
}

func orderedValues(selected map[string]bool, options OptionSet) []string {
	out := make([]string, 0, len(selected))
	for _, o := range options {
		if o.Disabled {
			continue
		}
		if selected[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}
