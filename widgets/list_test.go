package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOptionListRendersMarksAndCursor(t *testing.T) {
	l := OptionList{
		Multi: true,
		Rows: []OptionRow{
			{Label: "Alpha", Selected: true},
			{Label: "Bravo", Focused: true},
			{Label: "Charlie", Disabled: true},
		},
	}
	out := ansi.Strip(l.Render(40, 10))
	if !strings.Contains(out, "[x] Alpha") {
		t.Fatalf("selected mark missing:\n%s", out)
	}
	if !strings.Contains(out, "> [ ] Bravo") {
		t.Fatalf("cursor row missing:\n%s", out)
	}
	if !strings.Contains(out, "Charlie") {
		t.Fatalf("disabled row must still render:\n%s", out)
	}
}

func TestOptionListSingleMarks(t *testing.T) {
	l := OptionList{Rows: []OptionRow{{Label: "One", Selected: true}, {Label: "Two"}}}
	out := ansi.Strip(l.Render(40, 10))
	if !strings.Contains(out, "● One") || !strings.Contains(out, "○ Two") {
		t.Fatalf("single-select marks wrong:\n%s", out)
	}
}

func TestOptionListEmptyStateAndSuggestion(t *testing.T) {
	l := OptionList{EmptyText: "No countries match", Suggestion: "Mexico"}
	out := ansi.Strip(l.Render(40, 10))
	if !strings.Contains(out, "No countries match") {
		t.Fatalf("empty state missing:\n%s", out)
	}
	if !strings.Contains(out, "Did you mean Mexico?") {
		t.Fatalf("suggestion missing:\n%s", out)
	}
}

func TestOptionListWindowsAroundFocus(t *testing.T) {
	rows := make([]OptionRow, 10)
	for i := range rows {
		rows[i] = OptionRow{Label: string(rune('a' + i))}
	}
	rows[9].Focused = true
	out := ansi.Strip(OptionList{Rows: rows}.Render(20, 3))
	if !strings.Contains(out, "> ○ j") {
		t.Fatalf("focused row must stay visible:\n%s", out)
	}
	if strings.Contains(out, "○ a") {
		t.Fatalf("window should have scrolled past first row:\n%s", out)
	}
}

func TestTagRowOverflowCounter(t *testing.T) {
	row := TagRow{Tags: []string{"alpha", "bravo", "charlie", "delta", "echo"}}
	out := ansi.Strip(row.Render(20, 1))
	if !strings.Contains(out, "+") {
		t.Fatalf("expected overflow counter in narrow width:\n%s", out)
	}
}

func TestTagRowPlaceholder(t *testing.T) {
	out := ansi.Strip(TagRow{Placeholder: "Pick some"}.Render(20, 1))
	if !strings.Contains(out, "Pick some") {
		t.Fatalf("placeholder missing: %s", out)
	}
}

func TestTabStripHighlightsActive(t *testing.T) {
	strip := TabStrip{Tabs: []TabHeader{
		{Label: "First", Active: true},
		{Label: "Second"},
		{Label: "Third", Disabled: true},
	}}
	out := ansi.Strip(strip.Render(60, 1))
	for _, want := range []string{"First", "Second", "Third"} {
		if !strings.Contains(out, want) {
			t.Fatalf("tab %q missing: %s", want, out)
		}
	}
}

func TestMonthGridShape(t *testing.T) {
	days := make([]DayCell, 31)
	for i := range days {
		days[i] = DayCell{Label: itoa(i + 1)}
	}
	days[14].Selected = true
	g := MonthGrid{Title: "August 2026", LeadingBlanks: 6, Days: days}
	out := ansi.Strip(g.Render(40, 12))
	lines := strings.Split(out, "\n")
	if lines[0] != "August 2026" {
		t.Fatalf("title row wrong: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Su Mo") {
		t.Fatalf("weekday header wrong: %q", lines[1])
	}
	// 6 leading blanks put day 1 in the last column.
	if !strings.HasSuffix(strings.TrimRight(lines[2], " "), " 1") {
		t.Fatalf("day 1 misplaced: %q", lines[2])
	}
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
