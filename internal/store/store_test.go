package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lmehta/cohortplan/internal/sessiontype"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestInsertManyAndFindByDates(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.ChallengeIntro, Title: "A"},
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-06"), Slot: 1, Type: sessiontype.Transform, Title: "B"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d rows, want 2", len(created))
	}
	if created[0].ID == 0 {
		t.Error("expected assigned id")
	}

	found, err := repo.FindByDates(ctx, "c1", "e1", []time.Time{testDay(t, "2026-01-05")})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("found %d rows, want 1", len(found))
	}
	if found[0].Title != "A" {
		t.Errorf("title = %q, want A", found[0].Title)
	}
	if found[0].Type != sessiontype.ChallengeIntro {
		t.Errorf("type = %q, want challenge-intro", found[0].Type)
	}
}

func TestInsertManyUniqueConstraint(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.Workshop, Title: "First"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.Workshop, Title: "Second"},
	})
	if err == nil {
		t.Fatal("expected uniqueness violation")
	}

	// Same cell in a different scope is fine.
	_, err = repo.InsertMany(ctx, []Session{
		{CohortID: "c2", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.Workshop, Title: "Other cohort"},
	})
	if err != nil {
		t.Fatalf("insert other scope: %v", err)
	}
}

func TestInsertManyRollsBackWholeBatch(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 2, Type: sessiontype.Workshop, Title: "Taken"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.ChallengeIntro, Title: "New 1"},
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 2, Type: sessiontype.Innovate, Title: "Collides"},
	})
	if err == nil {
		t.Fatal("expected batch to fail")
	}

	all, err := repo.ListByScope(ctx, "c1", "e1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("store has %d sessions, want 1 (failed batch must write nothing)", len(all))
	}
}

func TestDeleteChallengeMembers(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.ChallengeIntro, Title: "A", ChallengeID: "ch-1", OriginalMember: true},
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 2, Type: sessiontype.Transform, Title: "B", ChallengeID: "ch-1", OriginalMember: true},
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 3, Type: sessiontype.GenericCBL, Title: "Ad hoc", ChallengeID: "ch-1"},
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 4, Type: sessiontype.Workshop, Title: "Unrelated"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := repo.DeleteChallengeMembers(ctx, "ch-1")
	if err != nil {
		t.Fatalf("delete members: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2 (only original members)", n)
	}

	remaining, err := repo.ListByScope(ctx, "c1", "e1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("remaining = %d, want 2", len(remaining))
	}
}

func TestUpdateByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.InsertMany(ctx, []Session{
		{CohortID: "c1", EpicID: "e1", Date: testDay(t, "2026-01-05"), Slot: 1, Type: sessiontype.Workshop, Title: "Old"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	title := "New title"
	start := testDay(t, "2026-01-05").Add(9 * time.Hour)
	updated, err := repo.UpdateByID(ctx, created[0].ID, SessionPatch{Title: &title, StartTime: &start})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.StartTime == nil || !updated.StartTime.Equal(start) {
		t.Errorf("start time not applied: %v", updated.StartTime)
	}

	_, err = repo.UpdateByID(ctx, 9999, SessionPatch{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing session, got %v", err)
	}
}

func TestChallengeLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChallengeRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Challenge{
		ID:        "ch-1",
		CohortID:  "c1",
		EpicID:    "e1",
		Title:     "Widget",
		CreatedBy: "coach-1",
		Status:    "active",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsMock {
		t.Error("expected non-mock by default")
	}

	got, err := repo.Get(ctx, "ch-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Widget" {
		t.Fatalf("get = %+v", got)
	}

	listed, err := repo.ListCreatedBefore(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d, want 1", len(listed))
	}

	if err := repo.Delete(ctx, "ch-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.Get(ctx, "ch-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestSlotDefaultUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SlotDefaultRepo()
	ctx := context.Background()

	times, err := repo.TimesForSlot(ctx, "c1", 1)
	if err != nil {
		t.Fatalf("times (empty): %v", err)
	}
	if times != nil {
		t.Fatal("expected nil for unconfigured slot")
	}

	if err := repo.Upsert(ctx, "c1", 1, SlotTimes{Start: "09:00", End: "10:30"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "c1", 1, SlotTimes{Start: "09:15", End: "10:45"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	times, err = repo.TimesForSlot(ctx, "c1", 1)
	if err != nil {
		t.Fatalf("times: %v", err)
	}
	if times == nil || times.Start != "09:15" || times.End != "10:45" {
		t.Errorf("times = %+v, want 09:15-10:45", times)
	}
}

func TestFallbackSlotDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo := NewFallbackSlotDefaults(s.SlotDefaultRepo(), map[int]SlotTimes{
		2: {Start: "11:00", End: "12:30"},
	})

	if err := repo.Upsert(ctx, "c1", 1, SlotTimes{Start: "09:00", End: "10:30"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Store row wins for slot 1.
	times, err := repo.TimesForSlot(ctx, "c1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if times == nil || times.Start != "09:00" {
		t.Errorf("slot 1 = %+v", times)
	}

	// Fallback covers slot 2.
	times, err = repo.TimesForSlot(ctx, "c1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if times == nil || times.Start != "11:00" {
		t.Errorf("slot 2 = %+v", times)
	}

	// Nothing covers slot 3.
	times, err = repo.TimesForSlot(ctx, "c1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if times != nil {
		t.Errorf("slot 3 = %+v, want nil", times)
	}
}

func TestDayOf(t *testing.T) {
	noon := time.Date(2026, 1, 5, 12, 30, 45, 0, time.UTC)
	d := DayOf(noon)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("not truncated: %v", d)
	}
	if !strings.HasPrefix(d.Format(time.RFC3339), "2026-01-05T00:00:00") {
		t.Errorf("wrong day: %v", d)
	}
}
