package core

// SelectionList glues a roving-focus traversal to a selection model. It
// is the shared state machine behind tab strips, radio groups, dropdown
// menus and checkbox groups: the same list, focus and commit contract,
// differing only in role (wrap policy) and cardinality (single/multi).
type SelectionList struct {
	options  OptionSet
	trav     *Traversal
	single   *SingleSelect
	multi    *MultiSelect
	disabled bool
}

// NewSingleList builds a single-select list. defaultValue may be empty.
func NewSingleList(role Role, options []Option, defaultValue string) *SelectionList {
	set := OptionSet(options).Clone()
	return &SelectionList{
		options: set,
		trav:    NewTraversal(role, set),
		single:  NewSingleSelect(set, defaultValue),
	}
}

// NewMultiList builds a multi-select list.
func NewMultiList(role Role, options []Option, defaults []string) *SelectionList {
	set := OptionSet(options).Clone()
	return &SelectionList{
		options: set,
		trav:    NewTraversal(role, set),
		multi:   NewMultiSelect(set, defaults),
	}
}

// NewControlledSingleList builds a single-select list whose value is
// caller-owned; interactions surface through Single().OnChange only.
func NewControlledSingleList(role Role, options []Option, value string) *SelectionList {
	set := OptionSet(options).Clone()
	return &SelectionList{
		options: set,
		trav:    NewTraversal(role, set),
		single:  NewControlledSingleSelect(set, value),
	}
}

func (l *SelectionList) Options() OptionSet   { return l.options.Clone() }
func (l *SelectionList) Traversal() *Traversal { return l.trav }

// Single returns the single-select model, nil for multi lists.
func (l *SelectionList) Single() *SingleSelect { return l.single }

// Multi returns the multi-select model, nil for single lists.
func (l *SelectionList) Multi() *MultiSelect { return l.multi }

// SetOptions swaps the option list everywhere at once: focus reclamps,
// selection models resolve against the new list on next read.
func (l *SelectionList) SetOptions(options []Option) {
	l.options = OptionSet(options).Clone()
	l.trav.SetOptions(l.options)
	if l.single != nil {
		l.single.SetOptions(l.options)
	}
	if l.multi != nil {
		l.multi.SetOptions(l.options)
	}
}

// SetDisabled is the whole-widget disable override: while set, traversal
// and commits are inert regardless of per-option flags.
func (l *SelectionList) SetDisabled(disabled bool) { l.disabled = disabled }
func (l *SelectionList) Disabled() bool            { return l.disabled }

// Handle applies a traversal event.
func (l *SelectionList) Handle(ev NavEvent) {
	if l.disabled {
		return
	}
	l.trav.Handle(ev)
}

// Commit applies the focused option: select for single lists, toggle for
// multi lists. With nothing focused it is a no-op.
func (l *SelectionList) Commit() {
	if l.disabled {
		return
	}
	o, ok := l.trav.Focused()
	if !ok {
		return
	}
	if l.single != nil {
		l.single.Select(o.Value)
	}
	if l.multi != nil {
		l.multi.Toggle(o.Value)
	}
}
