package core

// Option is a single selectable entry. Value is an opaque identifier that
// stays stable across option-list rebuilds; Label is what gets rendered.
// Caption is optional secondary text (dropdown descriptions, user emails).
type Option struct {
	Value    string
	Label    string
	Caption  string
	Disabled bool
}

// OptionSet is an ordered collection of options. Order is meaningful and
// is preserved by every operation in this package.
type OptionSet []Option

func (s OptionSet) Find(value string) (Option, bool) {
	for _, o := range s {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Selectable reports whether value names an option that exists and is not
// disabled. Unknown and disabled values are indistinguishable to callers:
// both make selection a no-op.
func (s OptionSet) Selectable(value string) bool {
	o, ok := s.Find(value)
	return ok && !o.Disabled
}

func (s OptionSet) Enabled() OptionSet {
	out := make(OptionSet, 0, len(s))
	for _, o := range s {
		if !o.Disabled {
			out = append(out, o)
		}
	}
	return out
}

func (s OptionSet) EnabledCount() int {
	n := 0
	for _, o := range s {
		if !o.Disabled {
			n++
		}
	}
	return n
}

func (s OptionSet) Values() []string {
	out := make([]string, len(s))
	for i, o := range s {
		out[i] = o.Value
	}
	return out
}

// Clone returns an independent copy so callers cannot mutate model-owned
// option slices out from under the model.
func (s OptionSet) Clone() OptionSet {
	return append(OptionSet(nil), s...)
}
