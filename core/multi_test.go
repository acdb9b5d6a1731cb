package core

import (
	"reflect"
	"testing"
)

func abcOptions() []Option {
	return []Option{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Bravo"},
		{Value: "c", Label: "Charlie"},
	}
}

func TestToggleSymmetry(t *testing.T) {
	m := NewMultiSelect(abcOptions(), []string{"a"})
	before := m.Values()
	m.Toggle("b")
	m.Toggle("b")
	if !reflect.DeepEqual(m.Values(), before) {
		t.Fatalf("toggle twice must restore original set: %v vs %v", m.Values(), before)
	}
}

func TestToggleDisabledIsNoop(t *testing.T) {
	opts := []Option{{Value: "a", Label: "Alpha"}, {Value: "b", Label: "Bravo", Disabled: true}}
	m := NewMultiSelect(opts, nil)
	m.Toggle("b")
	if m.Count() != 0 {
		t.Fatalf("disabled toggle must not select")
	}
}

func TestValuesFollowOptionOrder(t *testing.T) {
	m := NewMultiSelect(abcOptions(), nil)
	m.Toggle("c")
	m.Toggle("a")
	if got := m.Values(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("values not in option order: %v", got)
	}
}

func TestSelectAllSkipsDisabled(t *testing.T) {
	opts := []Option{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Bravo", Disabled: true},
		{Value: "c", Label: "Charlie"},
	}
	m := NewMultiSelect(opts, nil)
	m.SelectAll()
	if got := m.Values(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("select all must cover enabled options only: %v", got)
	}
	if !m.AllSelected() {
		t.Fatalf("expected all-selected after SelectAll")
	}
}

func TestClearAllEmptiesSelection(t *testing.T) {
	m := NewMultiSelect(abcOptions(), []string{"a", "b"})
	m.ClearAll()
	if m.Count() != 0 || m.SomeSelected() || m.AllSelected() {
		t.Fatalf("clear all left residue: %v", m.Values())
	}
}

func TestIndeterminateTruthTable(t *testing.T) {
	opts := abcOptions()
	if !ComputeIndeterminate([]string{"a"}, opts) {
		t.Fatalf("{A} of {A,B,C} must be indeterminate")
	}
	if ComputeIndeterminate([]string{"a", "b", "c"}, opts) {
		t.Fatalf("full selection must not be indeterminate")
	}
	if ComputeIndeterminate(nil, opts) {
		t.Fatalf("empty selection must not be indeterminate")
	}
}

func TestControlledMultiOnlyProposes(t *testing.T) {
	m := NewControlledMultiSelect(abcOptions(), []string{"a"})
	var proposed []string
	m.OnChange = func(vs []string) { proposed = vs }
	m.Toggle("b")
	if got := m.Values(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("controlled model mutated itself: %v", got)
	}
	if !reflect.DeepEqual(proposed, []string{"a", "b"}) {
		t.Fatalf("expected proposal [a b], got %v", proposed)
	}
	m.SetValues(proposed)
	if got := m.Values(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("owner push not applied: %v", got)
	}
}

func TestDuplicateDefaultsCollapse(t *testing.T) {
	m := NewMultiSelect(abcOptions(), []string{"a", "a", "a"})
	if got := m.Values(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("duplicates must collapse: %v", got)
	}
}
