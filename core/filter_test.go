package core

import (
	"reflect"
	"testing"
)

func countryOptions() []Option {
	return []Option{
		{Value: "us", Label: "United States"},
		{Value: "ca", Label: "Canada"},
		{Value: "mx", Label: "Mexico"},
	}
}

func labels(set OptionSet) []string {
	out := make([]string, len(set))
	for i, o := range set {
		out[i] = o.Label
	}
	return out
}

func TestFilterExactSubset(t *testing.T) {
	res := FilterOptions(countryOptions(), "United")
	if got := labels(res.Options); !reflect.DeepEqual(got, []string{"United States"}) {
		t.Fatalf("filter mismatch: %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	res := FilterOptions(countryOptions(), "")
	if got := labels(res.Options); !reflect.DeepEqual(got, []string{"United States", "Canada", "Mexico"}) {
		t.Fatalf("empty query must return full list in order: %v", got)
	}
	if res.Empty() {
		t.Fatalf("full list reported empty")
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	res := FilterOptions(countryOptions(), "cAnAdA")
	if len(res.Options) != 1 || res.Options[0].Value != "ca" {
		t.Fatalf("case-insensitive match failed: %v", res.Options)
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	opts := []Option{
		{Value: "1", Label: "alpha one"},
		{Value: "2", Label: "beta"},
		{Value: "3", Label: "alpha two"},
	}
	res := FilterOptions(opts, "alpha")
	if got := labels(res.Options); !reflect.DeepEqual(got, []string{"alpha one", "alpha two"}) {
		t.Fatalf("stable filter violated: %v", got)
	}
}

func TestFilterEmptyStateIsDistinct(t *testing.T) {
	res := FilterOptions(countryOptions(), "zzzz")
	if !res.Empty() {
		t.Fatalf("expected empty result")
	}
}

func TestFilterSuggestsClosestLabelOnTypo(t *testing.T) {
	res := FilterOptions(countryOptions(), "mexco")
	if !res.Empty() {
		t.Fatalf("typo should match nothing")
	}
	if res.Suggestion != "Mexico" {
		t.Fatalf("expected Mexico suggestion, got %q", res.Suggestion)
	}
}

func TestFilterNoSuggestionForUnrelatedQuery(t *testing.T) {
	res := FilterOptions(countryOptions(), "xqwz")
	if res.Suggestion != "" {
		t.Fatalf("unrelated query should suggest nothing, got %q", res.Suggestion)
	}
}
