package schedule

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextStaysInRange(t *testing.T) {
	for slotsPerDay := 1; slotsPerDay <= 5; slotsPerDay++ {
		for slot := 1; slot <= slotsPerDay; slot++ {
			c := NewCursor(day("2026-03-02"), slot)
			next := c.Next(slotsPerDay)
			if next.Slot < 1 || next.Slot > slotsPerDay {
				t.Errorf("slotsPerDay=%d slot=%d: next slot %d out of range", slotsPerDay, slot, next.Slot)
			}
			if next.Date.Before(c.Date) {
				t.Errorf("slotsPerDay=%d slot=%d: date went backwards", slotsPerDay, slot)
			}
		}
	}
}

func TestNextSameDay(t *testing.T) {
	c := NewCursor(day("2026-03-02"), 2)
	next := c.Next(4)
	if !next.Date.Equal(c.Date) {
		t.Errorf("expected same day, got %s", next.Date)
	}
	if next.Slot != 3 {
		t.Errorf("slot = %d, want 3", next.Slot)
	}
}

func TestNextWrapsToNextDay(t *testing.T) {
	c := NewCursor(day("2026-03-02"), 4)
	next := c.Next(4)
	if !next.Date.Equal(day("2026-03-03")) {
		t.Errorf("date = %s, want 2026-03-03", next.Date.Format("2006-01-02"))
	}
	if next.Slot != 1 {
		t.Errorf("slot = %d, want 1", next.Slot)
	}
}

func TestNextSingleSlotDayAlwaysWraps(t *testing.T) {
	c := NewCursor(day("2026-03-02"), 1)
	next := c.Next(1)
	if !next.Date.Equal(day("2026-03-03")) || next.Slot != 1 {
		t.Errorf("got (%s, %d), want (2026-03-03, 1)", next.Date.Format("2006-01-02"), next.Slot)
	}
}

func TestNextSkippingStepsOverWeekday(t *testing.T) {
	// 2026-03-07 is a Saturday; wrapping lands on Sunday, which is skipped.
	c := NewCursor(day("2026-03-07"), 4)
	next := c.NextSkipping(4, time.Sunday)
	if next.Date.Weekday() == time.Sunday {
		t.Fatal("cursor landed on the skipped weekday")
	}
	if !next.Date.Equal(day("2026-03-09")) {
		t.Errorf("date = %s, want Monday 2026-03-09", next.Date.Format("2006-01-02"))
	}
	if next.Slot != 1 {
		t.Errorf("slot = %d, want 1", next.Slot)
	}
}

func TestNextSkippingSameDayNoSkip(t *testing.T) {
	// Advancing within a day never relocates it, even on the skip weekday.
	c := NewCursor(day("2026-03-08"), 1) // a Sunday
	next := c.NextSkipping(4, time.Sunday)
	if !next.Date.Equal(c.Date) {
		t.Errorf("expected same day, got %s", next.Date.Format("2006-01-02"))
	}
	if next.Slot != 2 {
		t.Errorf("slot = %d, want 2", next.Slot)
	}
}

func TestNewCursorNormalizesDate(t *testing.T) {
	c := NewCursor(time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC), 1)
	if c.Date.Hour() != 0 || c.Date.Minute() != 0 {
		t.Errorf("date not truncated to midnight: %s", c.Date)
	}
}
