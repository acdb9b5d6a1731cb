package core

// Role tags which keyboard contract a widget follows. The only behavioral
// difference between roles today is the wrap policy at list boundaries:
// tab strips and radio groups wrap (Next from the last enabled option
// lands on the first), list boxes and comboboxes clamp at the ends. The
// source widgets were inconsistent here, so the policy is pinned per role
// and overridable through config.
type Role int

const (
	RoleListBox Role = iota
	RoleTabList
	RoleRadioGroup
	RoleComboBox
)

func (r Role) String() string {
	switch r {
	case RoleTabList:
		return "tablist"
	case RoleRadioGroup:
		return "radiogroup"
	case RoleComboBox:
		return "combobox"
	default:
		return "listbox"
	}
}

func (r Role) Wraps() bool {
	return r == RoleTabList || r == RoleRadioGroup
}

// ParseRole maps a config role name to its Role.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "listbox":
		return RoleListBox, true
	case "tablist":
		return RoleTabList, true
	case "radiogroup":
		return RoleRadioGroup, true
	case "combobox":
		return RoleComboBox, true
	}
	return RoleListBox, false
}

// wrapOverrides pins wrap policy per role, set once from config at
// startup before any traversal exists.
var wrapOverrides = map[Role]bool{}

func SetWrapOverride(role Role, wrap bool) {
	wrapOverrides[role] = wrap
}

// NavEvent is a discrete keyboard traversal event.
type NavEvent int

const (
	NavNext NavEvent = iota
	NavPrev
	NavHome
	NavEnd
)

// FocusState is the roving focus position: an index into the full option
// list (not the enabled subset). -1 means nothing is focusable.
type FocusState struct {
	Index int
}

// ReduceFocus is the pure keyboard contract: (state, event) -> state over
// a fixed option list. Disabled options are skipped entirely; they never
// receive focus. wrap controls boundary behavior for NavNext/NavPrev.
func ReduceFocus(st FocusState, ev NavEvent, options OptionSet, wrap bool) FocusState {
	first := firstEnabled(options)
	if first < 0 {
		return FocusState{Index: -1}
	}
	idx := st.Index
	if idx < 0 || idx >= len(options) || options[idx].Disabled {
		return FocusState{Index: first}
	}
	switch ev {
	case NavHome:
		return FocusState{Index: first}
	case NavEnd:
		return FocusState{Index: lastEnabled(options)}
	case NavNext:
		return FocusState{Index: stepEnabled(options, idx, +1, wrap)}
	case NavPrev:
		return FocusState{Index: stepEnabled(options, idx, -1, wrap)}
	}
	return st
}

// ClampFocus re-derives focus after the option list changes. If the
// previously focused value is still present and enabled, focus follows
// it; otherwise focus falls back to the first enabled option.
func ClampFocus(st FocusState, prev OptionSet, next OptionSet) FocusState {
	if st.Index >= 0 && st.Index < len(prev) {
		want := prev[st.Index].Value
		for i, o := range next {
			if o.Value == want && !o.Disabled {
				return FocusState{Index: i}
			}
		}
	}
	return FocusState{Index: firstEnabled(next)}
}

func firstEnabled(options OptionSet) int {
	for i, o := range options {
		if !o.Disabled {
			return i
		}
	}
	return -1
}

func lastEnabled(options OptionSet) int {
	for i := len(options) - 1; i >= 0; i-- {
		if !options[i].Disabled {
			return i
		}
	}
	return -1
}

func stepEnabled(options OptionSet, from, dir int, wrap bool) int {
	n := len(options)
	i := from
	for steps := 0; steps < n; steps++ {
		i += dir
		if i < 0 || i >= n {
			if !wrap {
				return from
			}
			i = (i + n) % n
		}
		if !options[i].Disabled {
			return i
		}
	}
	return from
}

// Traversal is the stateful convenience over ReduceFocus used by the
// interactive widgets.
type Traversal struct {
	role    Role
	wrap    bool
	options OptionSet
	focus   FocusState
}

func NewTraversal(role Role, options []Option) *Traversal {
	wrap := role.Wraps()
	if override, ok := wrapOverrides[role]; ok {
		wrap = override
	}
	t := &Traversal{role: role, wrap: wrap, options: OptionSet(options).Clone()}
	t.focus = FocusState{Index: firstEnabled(t.options)}
	return t
}

func (t *Traversal) Role() Role { return t.role }

// SetWrap overrides the role's default wrap policy (config-driven).
func (t *Traversal) SetWrap(wrap bool) { t.wrap = wrap }
func (t *Traversal) Wraps() bool       { return t.wrap }

// SetOptions swaps the option list and reclamps focus so it never points
// at a filtered-out or disabled entry.
func (t *Traversal) SetOptions(options []Option) {
	next := OptionSet(options).Clone()
	t.focus = ClampFocus(t.focus, t.options, next)
	t.options = next
}

func (t *Traversal) Handle(ev NavEvent) {
	t.focus = ReduceFocus(t.focus, ev, t.options, t.wrap)
}

func (t *Traversal) Next() { t.Handle(NavNext) }
func (t *Traversal) Prev() { t.Handle(NavPrev) }
func (t *Traversal) Home() { t.Handle(NavHome) }
func (t *Traversal) End()  { t.Handle(NavEnd) }

func (t *Traversal) FocusIndex() int { return t.focus.Index }

func (t *Traversal) Focused() (Option, bool) {
	if t.focus.Index < 0 || t.focus.Index >= len(t.options) {
		return Option{}, false
	}
	o := t.options[t.focus.Index]
	if o.Disabled {
		return Option{}, false
	}
	return o, true
}

// FocusValue moves focus directly to value when it is enabled.
func (t *Traversal) FocusValue(value string) bool {
	for i, o := range t.options {
		if o.Value == value && !o.Disabled {
			t.focus = FocusState{Index: i}
			return true
		}
	}
	return false
}
