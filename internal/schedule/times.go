package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/lmehta/cohortplan/internal/store"
)

// resolveSlotTimes combines a session's calendar day with the cohort's
// HH:mm defaults for its slot. A slot with no defaults yields nil times;
// the session then has no fixed wall-clock time.
func resolveSlotTimes(ctx context.Context, defaults store.SlotDefaultRepo, cohortID string, date time.Time, slot int) (start, end *time.Time, err error) {
	if defaults == nil {
		return nil, nil, nil
	}
	times, err := defaults.TimesForSlot(ctx, cohortID, slot)
	if err != nil {
		return nil, nil, &StoreError{Op: "load slot defaults", Err: err}
	}
	if times == nil {
		return nil, nil, nil
	}

	s, err := atTimeOfDay(date, times.Start)
	if err != nil {
		return nil, nil, fmt.Errorf("slot %d start time: %w", slot, err)
	}
	e, err := atTimeOfDay(date, times.End)
	if err != nil {
		return nil, nil, fmt.Errorf("slot %d end time: %w", slot, err)
	}
	return &s, &e, nil
}

// atTimeOfDay anchors an HH:mm wall-clock string to the given calendar day.
func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", hhmm, err)
	}
	day := store.DayOf(date)
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}
