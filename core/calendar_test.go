package core

import (
	"testing"
	"time"
)

func aug2026() time.Time {
	return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
}

func TestDayOptionsCoverMonth(t *testing.T) {
	c := NewCalendar(aug2026())
	opts := c.DayOptions()
	if len(opts) != 31 {
		t.Fatalf("august has 31 days, got %d", len(opts))
	}
	if opts[0].Value != "2026-08-01" || opts[30].Value != "2026-08-31" {
		t.Fatalf("day values malformed: %s .. %s", opts[0].Value, opts[30].Value)
	}
}

func TestBoundsDisableDays(t *testing.T) {
	c := NewCalendar(aug2026())
	c.SetBounds(
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
	)
	opts := c.DayOptions()
	if !opts[8].Disabled || opts[9].Disabled {
		t.Fatalf("lower bound wrong: day9=%v day10=%v", opts[8].Disabled, opts[9].Disabled)
	}
	if opts[19].Disabled || !opts[20].Disabled {
		t.Fatalf("upper bound wrong: day20=%v day21=%v", opts[19].Disabled, opts[20].Disabled)
	}
}

func TestPickOutOfBoundsIsNoop(t *testing.T) {
	c := NewCalendar(aug2026())
	c.SetBounds(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), time.Time{})
	c.Pick("2026-08-05")
	if _, ok := c.Selected(); ok {
		t.Fatalf("out-of-bounds pick must not select")
	}
	c.Pick("2026-08-15")
	if d, ok := c.Selected(); !ok || d.Day() != 15 {
		t.Fatalf("in-bounds pick failed: %v %v", d, ok)
	}
}

func TestRangePicksSwapWhenBackwards(t *testing.T) {
	c := NewRangeCalendar(aug2026())
	c.Pick("2026-08-20")
	c.Pick("2026-08-10")
	start, end, complete := c.Range()
	if !complete || start.Day() != 10 || end.Day() != 20 {
		t.Fatalf("backwards range must normalize: %v..%v %v", start, end, complete)
	}
	if !c.InRange("2026-08-15") || c.InRange("2026-08-25") {
		t.Fatalf("range membership wrong")
	}
}

func TestThirdPickRestartsRange(t *testing.T) {
	c := NewRangeCalendar(aug2026())
	c.Pick("2026-08-05")
	c.Pick("2026-08-08")
	c.Pick("2026-08-12")
	if _, _, complete := c.Range(); complete {
		t.Fatalf("third pick should start a fresh range")
	}
	if !c.InRange("2026-08-12") {
		t.Fatalf("pending start should count as in range")
	}
}

func TestMonthNavigation(t *testing.T) {
	c := NewCalendar(aug2026())
	c.NextMonth()
	if c.Month().Month() != time.September {
		t.Fatalf("next month failed: %v", c.Month())
	}
	c.PrevMonth()
	c.PrevMonth()
	if c.Month().Month() != time.July {
		t.Fatalf("prev month failed: %v", c.Month())
	}
}

func TestIsSelectedMatchesEndpoints(t *testing.T) {
	c := NewRangeCalendar(aug2026())
	c.Pick("2026-08-03")
	c.Pick("2026-08-06")
	if !c.IsSelected("2026-08-03") || !c.IsSelected("2026-08-06") || c.IsSelected("2026-08-04") {
		t.Fatalf("endpoint selection flags wrong")
	}
}
