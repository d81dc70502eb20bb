package schedule

import (
	"time"

	"github.com/lmehta/cohortplan/internal/store"
)

// Cursor is the in-memory (date, slot) walking state used while expanding
// an experience into sessions. It is never persisted.
type Cursor struct {
	Date time.Time
	Slot int
}

// NewCursor returns a cursor at the given day and slot, with the date
// normalized to midnight UTC.
func NewCursor(date time.Time, slot int) Cursor {
	return Cursor{Date: store.DayOf(date), Slot: slot}
}

// Next advances the cursor by one slot. When the day's slots are exhausted
// the cursor wraps to slot 1 of the next day.
func (c Cursor) Next(slotsPerDay int) Cursor {
	if c.Slot < slotsPerDay {
		return Cursor{Date: c.Date, Slot: c.Slot + 1}
	}
	return Cursor{Date: c.Date.AddDate(0, 0, 1), Slot: 1}
}

// NextSkipping advances like Next but, when wrapping to a new day, keeps
// moving forward until the date does not fall on the skipped weekday. Used
// only for automatic forward allocation; manual placement never skips.
func (c Cursor) NextSkipping(slotsPerDay int, skip time.Weekday) Cursor {
	next := c.Next(slotsPerDay)
	if next.Date.Equal(c.Date) {
		return next
	}
	for next.Date.Weekday() == skip {
		next.Date = next.Date.AddDate(0, 0, 1)
	}
	return next
}
