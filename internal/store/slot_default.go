package store

import (
	"context"
	"fmt"

	"github.com/lmehta/cohortplan/ent"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// NewFallbackSlotDefaults decorates a SlotDefaultRepo with a static
// fallback table, consulted when the store has no row for a slot. Cohorts
// without their own defaults then inherit the application-wide windows.
func NewFallbackSlotDefaults(primary SlotDefaultRepo, fallback map[int]SlotTimes) SlotDefaultRepo {
	return &fallbackSlotDefaults{primary: primary, fallback: fallback}
}

type fallbackSlotDefaults struct {
	primary  SlotDefaultRepo
	fallback map[int]SlotTimes
}

func (r *fallbackSlotDefaults) TimesForSlot(ctx context.Context, cohortID string, slot int) (*SlotTimes, error) {
	times, err := r.primary.TimesForSlot(ctx, cohortID, slot)
	if err != nil || times != nil {
		return times, err
	}
	if t, ok := r.fallback[slot]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *fallbackSlotDefaults) Upsert(ctx context.Context, cohortID string, slot int, times SlotTimes) error {
	return r.primary.Upsert(ctx, cohortID, slot, times)
}

// slotDefaultRepo implements SlotDefaultRepo using the ent client.
type slotDefaultRepo struct {
	client *ent.Client
}

func (r *slotDefaultRepo) TimesForSlot(ctx context.Context, cohortID string, slot int) (*SlotTimes, error) {
	row, err := r.client.SlotDefault.Query().
		Where(
			slotdefault.CohortID(cohortID),
			slotdefault.Slot(slot),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query slot default: %w", err)
	}
	return &SlotTimes{Start: row.StartAt, End: row.EndAt}, nil
}

func (r *slotDefaultRepo) Upsert(ctx context.Context, cohortID string, slot int, times SlotTimes) error {
	existing, err := r.client.SlotDefault.Query().
		Where(
			slotdefault.CohortID(cohortID),
			slotdefault.Slot(slot),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetStartAt(times.Start).
			SetEndAt(times.End).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update slot default: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.SlotDefault.Create().
			SetCohortID(cohortID).
			SetSlot(slot).
			SetStartAt(times.Start).
			SetEndAt(times.End).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create slot default: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query slot default: %w", err)
	}
}
