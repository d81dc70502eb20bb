package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/lmehta/cohortplan/internal/store"
)

// SlotRef identifies one calendar cell a plan wants to occupy.
type SlotRef struct {
	Date time.Time
	Slot int
}

// Validator checks a list of required calendar cells against the session
// store in a single bulk read. Checking cell-by-cell would widen the race
// window with concurrent writers and cost one round-trip per slot.
type Validator struct {
	sessions store.SessionRepo
}

// NewValidator creates a Validator backed by the given session repo.
func NewValidator(sessions store.SessionRepo) *Validator {
	return &Validator{sessions: sessions}
}

// Validate returns nil if every required cell is free, or a *ConflictError
// for the first occupied cell in the order given. A nil result does not
// lock anything; the store's uniqueness constraint remains the final
// arbiter at write time.
func (v *Validator) Validate(ctx context.Context, cohortID, epicID string, required []SlotRef) error {
	if len(required) == 0 {
		return nil
	}

	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, ref := range required {
		d := store.DayOf(ref.Date)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	existing, err := v.sessions.FindByDates(ctx, cohortID, epicID, dates)
	if err != nil {
		return &StoreError{Op: "load existing sessions", Err: err}
	}

	occupied := make(map[string]bool, len(existing))
	for _, s := range existing {
		occupied[cellKey(s.Date, s.Slot)] = true
	}

	for _, ref := range required {
		if occupied[cellKey(ref.Date, ref.Slot)] {
			return &ConflictError{Date: store.DayOf(ref.Date), Slot: ref.Slot}
		}
	}
	return nil
}

func cellKey(date time.Time, slot int) string {
	return fmt.Sprintf("%s#%d", store.DayOf(date).Format("2006-01-02"), slot)
}
