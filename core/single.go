package core

// SingleSelect holds the selection state shared by tab strips, radio
// groups and plain dropdowns: at most one selected value at a time.
//
// Ownership is exclusive. An uncontrolled model owns its value and
// mutates it on Select/Clear. A controlled model never mutates: every
// interaction is routed through OnChange as a proposal and the external
// owner pushes the accepted value back via SetValue.
type SingleSelect struct {
	options    OptionSet
	value      string
	hasValue   bool
	controlled bool

	// OnChange is invoked with the proposed value after every accepted
	// interaction. set=false means the selection was cleared.
	OnChange func(value string, set bool)
}

// NewSingleSelect creates an uncontrolled model. A defaultValue naming a
// missing or disabled option seeds the model with no selection.
func NewSingleSelect(options []Option, defaultValue string) *SingleSelect {
	s := &SingleSelect{options: OptionSet(options).Clone()}
	if s.options.Selectable(defaultValue) {
		s.value = defaultValue
		s.hasValue = true
	}
	return s
}

// NewControlledSingleSelect creates a model whose value is owned by the
// caller. The stored value is kept verbatim even when it names no visible
// option; Selected simply reports nothing in that case.
func NewControlledSingleSelect(options []Option, value string) *SingleSelect {
	return &SingleSelect{
		options:    OptionSet(options).Clone(),
		value:      value,
		hasValue:   value != "",
		controlled: true,
	}
}

func (s *SingleSelect) Controlled() bool { return s.controlled }

func (s *SingleSelect) Options() OptionSet { return s.options.Clone() }

// SetOptions swaps the option list. The stored value is not rewritten:
// a value that no longer resolves to an enabled option renders as "no
// visible selection" until the list changes back.
func (s *SingleSelect) SetOptions(options []Option) {
	s.options = OptionSet(options).Clone()
}

// SetValue is the controlled owner's write path. On an uncontrolled model
// it is ignored: ownership does not transfer after construction.
func (s *SingleSelect) SetValue(value string, set bool) {
	if !s.controlled {
		return
	}
	s.value = value
	s.hasValue = set
}

// Select records value as the selection. Unknown or disabled targets are
// silent no-ops. Selecting the already-selected value re-notifies but
// leaves state identical.
func (s *SingleSelect) Select(value string) {
	if !s.options.Selectable(value) {
		return
	}
	if !s.controlled {
		s.value = value
		s.hasValue = true
	}
	if s.OnChange != nil {
		s.OnChange(value, true)
	}
}

// Clear unsets the selection.
func (s *SingleSelect) Clear() {
	if !s.controlled {
		s.value = ""
		s.hasValue = false
	}
	if s.OnChange != nil {
		s.OnChange("", false)
	}
}

// Value returns the raw stored value. For controlled models this may name
// an option that is absent from the current list.
func (s *SingleSelect) Value() (string, bool) {
	return s.value, s.hasValue
}

// Selected resolves the stored value against the current options. A value
// that is missing or disabled yields no visible selection.
func (s *SingleSelect) Selected() (Option, bool) {
	if !s.hasValue {
		return Option{}, false
	}
	o, ok := s.options.Find(s.value)
	if !ok || o.Disabled {
		return Option{}, false
	}
	return o, true
}

func (s *SingleSelect) IsSelected(value string) bool {
	o, ok := s.Selected()
	return ok && o.Value == value
}
