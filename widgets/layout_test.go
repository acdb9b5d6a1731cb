package widgets

import (
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string { return w.text }

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		t.Fatalf("expected output")
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestPaneMarksFocusState(t *testing.T) {
	out := Pane{Title: "Demo", Height: 4, Content: "body", Focused: true}.Render(30, 6)
	if !strings.Contains(out, "●") {
		t.Fatalf("focused pane should carry focus marker:\n%s", out)
	}
	if !strings.Contains(out, "body") {
		t.Fatalf("content missing:\n%s", out)
	}
}
