package core

import "github.com/jask/selectkit/widgets"

// Slots is the explicit composition surface for popup-style widgets.
// Instead of freeform nested children, a dropdown or combobox screen is
// assembled from four named parts, each independently swappable. A nil
// slot falls back to the default supplied by the widget.
type Slots struct {
	Trigger    widgets.Widget
	Content    widgets.Widget
	Search     widgets.Widget
	EmptyState widgets.Widget
}

// WithDefaults fills every nil slot from def.
func (s Slots) WithDefaults(def Slots) Slots {
	if s.Trigger == nil {
		s.Trigger = def.Trigger
	}
	if s.Content == nil {
		s.Content = def.Content
	}
	if s.Search == nil {
		s.Search = def.Search
	}
	if s.EmptyState == nil {
		s.EmptyState = def.EmptyState
	}
	return s
}
