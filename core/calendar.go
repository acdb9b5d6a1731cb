package core

import "time"

const dayValueLayout = "2006-01-02"

// Calendar models one visible month of a date picker as a selection
// list: each day is an Option whose value is its ISO date, disabled when
// outside the Min/Max bounds. Range mode builds a start/end pair across
// two picks; a third pick restarts the range.
type Calendar struct {
	month      time.Time // first day of the visible month
	min, max   time.Time // zero means unbounded
	rangeMode  bool
	selected   time.Time
	hasDay     bool
	rangeStart time.Time
	rangeEnd   time.Time
	hasStart   bool
	hasEnd     bool
}

func NewCalendar(month time.Time) *Calendar {
	return &Calendar{month: firstOfMonth(month)}
}

func NewRangeCalendar(month time.Time) *Calendar {
	return &Calendar{month: firstOfMonth(month), rangeMode: true}
}

func (c *Calendar) Month() time.Time { return c.month }
func (c *Calendar) RangeMode() bool  { return c.rangeMode }

// SetBounds restricts pickable days to [min, max]. A zero bound is open.
func (c *Calendar) SetBounds(min, max time.Time) {
	c.min = dateOnly(min)
	c.max = dateOnly(max)
}

func (c *Calendar) NextMonth() { c.month = c.month.AddDate(0, 1, 0) }
func (c *Calendar) PrevMonth() { c.month = c.month.AddDate(0, -1, 0) }

// DayOptions materializes the visible month as an option set. Days
// outside the bounds come back disabled so the shared traversal and
// selection rules apply unchanged.
func (c *Calendar) DayOptions() OptionSet {
	days := daysIn(c.month)
	out := make(OptionSet, 0, days)
	for d := 1; d <= days; d++ {
		day := time.Date(c.month.Year(), c.month.Month(), d, 0, 0, 0, 0, c.month.Location())
		out = append(out, Option{
			Value:    day.Format(dayValueLayout),
			Label:    day.Format("2"),
			Disabled: c.outOfBounds(day),
		})
	}
	return out
}

func (c *Calendar) outOfBounds(day time.Time) bool {
	if !c.min.IsZero() && day.Before(c.min) {
		return true
	}
	if !c.max.IsZero() && day.After(c.max) {
		return true
	}
	return false
}

// Pick selects a day by its option value. Out-of-bounds and unparseable
// values are silent no-ops. In range mode the first pick sets the start,
// the second completes the range (swapping when picked backwards), and
// the next pick starts over.
func (c *Calendar) Pick(value string) {
	day, err := time.ParseInLocation(dayValueLayout, value, c.month.Location())
	if err != nil || c.outOfBounds(day) {
		return
	}
	if !c.rangeMode {
		c.selected = day
		c.hasDay = true
		return
	}
	switch {
	case !c.hasStart || c.hasEnd:
		c.rangeStart = day
		c.hasStart = true
		c.hasEnd = false
	default:
		start, end := c.rangeStart, day
		if end.Before(start) {
			start, end = end, start
		}
		c.rangeStart, c.rangeEnd = start, end
		c.hasEnd = true
	}
}

func (c *Calendar) Selected() (time.Time, bool) {
	return c.selected, c.hasDay
}

func (c *Calendar) Range() (start, end time.Time, complete bool) {
	return c.rangeStart, c.rangeEnd, c.hasStart && c.hasEnd
}

// InRange reports whether a day value falls inside the completed range
// (inclusive) or equals the pending range start.
func (c *Calendar) InRange(value string) bool {
	day, err := time.ParseInLocation(dayValueLayout, value, c.month.Location())
	if err != nil {
		return false
	}
	if c.hasStart && !c.hasEnd {
		return day.Equal(c.rangeStart)
	}
	if !c.hasStart {
		return false
	}
	return !day.Before(c.rangeStart) && !day.After(c.rangeEnd)
}

// IsSelected reports whether value is the picked day (single mode) or a
// range endpoint (range mode).
func (c *Calendar) IsSelected(value string) bool {
	day, err := time.ParseInLocation(dayValueLayout, value, c.month.Location())
	if err != nil {
		return false
	}
	if c.rangeMode {
		return (c.hasStart && day.Equal(c.rangeStart)) || (c.hasEnd && day.Equal(c.rangeEnd))
	}
	return c.hasDay && day.Equal(c.selected)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysIn(month time.Time) int {
	return firstOfMonth(month).AddDate(0, 1, -1).Day()
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
