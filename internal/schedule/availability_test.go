package schedule

import (
	"context"
	"testing"
)

func TestValidateAllFree(t *testing.T) {
	sessions := newFakeSessionRepo()
	v := NewValidator(sessions)

	err := v.Validate(context.Background(), "c1", "e1", []SlotRef{
		{Date: day("2026-01-05"), Slot: 1},
		{Date: day("2026-01-05"), Slot: 2},
		{Date: day("2026-01-06"), Slot: 1},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateReportsFirstConflictInOrder(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.occupy("c1", "e1", day("2026-01-06"), 1)
	sessions.occupy("c1", "e1", day("2026-01-05"), 2)
	v := NewValidator(sessions)

	// Required list is in cursor (chronological) order; the first
	// occupied entry wins even though both are taken.
	err := v.Validate(context.Background(), "c1", "e1", []SlotRef{
		{Date: day("2026-01-05"), Slot: 1},
		{Date: day("2026-01-05"), Slot: 2},
		{Date: day("2026-01-06"), Slot: 1},
	})

	conflict, ok := err.(*ConflictError)
	if !ok {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if got := conflict.Date.Format("2006-01-02"); got != "2026-01-05" {
		t.Errorf("conflict date = %s, want 2026-01-05", got)
	}
	if conflict.Slot != 2 {
		t.Errorf("conflict slot = %d, want 2", conflict.Slot)
	}
}

func TestValidateUsesOneBulkRead(t *testing.T) {
	sessions := newFakeSessionRepo()
	v := NewValidator(sessions)

	refs := []SlotRef{
		{Date: day("2026-01-05"), Slot: 1},
		{Date: day("2026-01-05"), Slot: 2},
		{Date: day("2026-01-06"), Slot: 1},
		{Date: day("2026-01-07"), Slot: 1},
	}
	if err := v.Validate(context.Background(), "c1", "e1", refs); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if sessions.findCalls != 1 {
		t.Errorf("findCalls = %d, want 1", sessions.findCalls)
	}
}

func TestValidateEmptyRequiredSkipsQuery(t *testing.T) {
	sessions := newFakeSessionRepo()
	v := NewValidator(sessions)

	if err := v.Validate(context.Background(), "c1", "e1", nil); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if sessions.findCalls != 0 {
		t.Errorf("findCalls = %d, want 0", sessions.findCalls)
	}
}

func TestValidateScopedToCohortAndEpic(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.occupy("other-cohort", "e1", day("2026-01-05"), 1)
	sessions.occupy("c1", "other-epic", day("2026-01-05"), 1)
	v := NewValidator(sessions)

	err := v.Validate(context.Background(), "c1", "e1", []SlotRef{
		{Date: day("2026-01-05"), Slot: 1},
	})
	if err != nil {
		t.Fatalf("sessions in other scopes must not conflict: %v", err)
	}
}
