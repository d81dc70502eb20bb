package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/lmehta/cohortplan/internal/sessiontype"
)

func TestWriteBatchAnnotatesChallengeTitle(t *testing.T) {
	sessions := newFakeSessionRepo()
	w := NewWriter(sessions)

	specs := []SessionSpec{
		{Date: day("2026-01-05"), Slot: 1, Type: sessiontype.ChallengeIntro, Title: "A", ChallengeID: "ch-1", OriginalMember: true},
		{Date: day("2026-01-05"), Slot: 2, Type: sessiontype.Innovate, Title: "Widget", ChallengeID: "ch-1", OriginalMember: true},
	}
	created, err := w.WriteBatch(context.Background(), "c1", "e1", specs, "Widget")
	if err != nil {
		t.Fatalf("write batch: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d sessions, want 2", len(created))
	}
	for i, s := range created {
		if s.ChallengeTitle != "Widget" {
			t.Errorf("session %d challenge title = %q, want Widget", i, s.ChallengeTitle)
		}
		if s.ID == 0 {
			t.Errorf("session %d has no assigned id", i)
		}
		if s.CohortID != "c1" || s.EpicID != "e1" {
			t.Errorf("session %d scope = (%s, %s)", i, s.CohortID, s.EpicID)
		}
	}
}

func TestWriteBatchEmptyIsNoop(t *testing.T) {
	sessions := newFakeSessionRepo()
	w := NewWriter(sessions)

	created, err := w.WriteBatch(context.Background(), "c1", "e1", nil, "")
	if err != nil {
		t.Fatalf("write batch: %v", err)
	}
	if created != nil {
		t.Errorf("expected nil result for empty batch")
	}
}

func TestWriteBatchSurfacesStoreError(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.insertErr = errors.New("UNIQUE constraint failed")
	w := NewWriter(sessions)

	_, err := w.WriteBatch(context.Background(), "c1", "e1", []SessionSpec{
		{Date: day("2026-01-05"), Slot: 1, Type: sessiontype.Workshop, Title: "W"},
	}, "")

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *StoreError, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Errorf("no sessions should exist after a failed insert")
	}
}
