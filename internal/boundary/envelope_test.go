package boundary

import (
	"context"
	"testing"
	"time"

	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func member(challengeID string, t sessiontype.Type, date string, slot int, title string) store.Session {
	return store.Session{
		ChallengeID:    challengeID,
		Type:           t,
		Date:           day(date),
		Slot:           slot,
		Title:          title,
		OriginalMember: true,
	}
}

// fakeChallenges resolves challenge metadata from a fixed map.
type fakeChallenges struct {
	byID map[string]store.Challenge
}

func (f *fakeChallenges) Create(_ context.Context, ch store.Challenge) (*store.Challenge, error) {
	f.byID[ch.ID] = ch
	return &ch, nil
}

func (f *fakeChallenges) Get(_ context.Context, id string) (*store.Challenge, error) {
	ch, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (f *fakeChallenges) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeChallenges) ListCreatedBefore(_ context.Context, cutoff time.Time) ([]store.Challenge, error) {
	var out []store.Challenge
	for _, ch := range f.byID {
		if ch.CreatedAt.Before(cutoff) {
			out = append(out, ch)
		}
	}
	return out, nil
}

func TestDetectEnvelopeFromFirstAndLast(t *testing.T) {
	sessions := []store.Session{
		member("ch-1", sessiontype.Transform, "2026-01-07", 2, "Widget"),
		member("ch-1", sessiontype.ChallengeIntro, "2026-01-05", 1, "A"),
		member("ch-1", sessiontype.Innovate, "2026-01-06", 3, "Widget"),
	}

	d := NewDetector(nil)
	envelopes, err := d.Detect(context.Background(), sessions)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(envelopes) != 1 {
		t.Fatalf("got %d envelopes, want 1", len(envelopes))
	}

	e := envelopes[0]
	if !e.StartDate.Equal(day("2026-01-05")) {
		t.Errorf("start = %s, want 2026-01-05", e.StartDate.Format("2006-01-02"))
	}
	if !e.EndDate.Equal(day("2026-01-07")) {
		t.Errorf("end = %s, want 2026-01-07", e.EndDate.Format("2006-01-02"))
	}
	if e.SlotMin != 1 {
		t.Errorf("slot min = %d, want 1", e.SlotMin)
	}
	if e.SlotMax != 2 {
		t.Errorf("slot max = %d, want 2 (slot of the last session)", e.SlotMax)
	}
}

func TestDetectMiddleSessionInvariance(t *testing.T) {
	base := []store.Session{
		member("ch-1", sessiontype.ChallengeIntro, "2026-01-05", 1, "Intro"),
		member("ch-1", sessiontype.Innovate, "2026-01-06", 1, "Widget"),
		member("ch-1", sessiontype.Transform, "2026-01-07", 2, "Widget"),
	}

	d := NewDetector(nil)
	before, err := d.Detect(context.Background(), base)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	// Move the middle innovate anywhere inside [start, end].
	moved := make([]store.Session, len(base))
	copy(moved, base)
	moved[1].Date = day("2026-01-05")
	moved[1].Slot = 4

	after, err := d.Detect(context.Background(), moved)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if !after[0].StartDate.Equal(before[0].StartDate) || !after[0].EndDate.Equal(before[0].EndDate) {
		t.Errorf("moving a middle session changed the envelope: %v -> %v", before[0], after[0])
	}
	if after[0].SlotMax != before[0].SlotMax {
		t.Errorf("slot max changed: %d -> %d", before[0].SlotMax, after[0].SlotMax)
	}
}

func TestDetectIgnoresUnlinkedAndStandalone(t *testing.T) {
	sessions := []store.Session{
		{Type: sessiontype.Workshop, Date: day("2026-01-05"), Slot: 1, Title: "Solo"},
		{Type: sessiontype.Masterclass, Date: day("2026-01-05"), Slot: 2, Title: "MC", ChallengeID: "ch-x"},
		member("", sessiontype.Learn, "2026-01-05", 3, "Stray learn"),
	}

	d := NewDetector(nil)
	envelopes, err := d.Detect(context.Background(), sessions)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(envelopes) != 0 {
		t.Errorf("got %d envelopes, want 0", len(envelopes))
	}
}

func TestDetectResolvesChallengeRecord(t *testing.T) {
	repo := &fakeChallenges{byID: map[string]store.Challenge{
		"ch-1": {ID: "ch-1", Title: "Widget Sprint", IsMock: true},
	}}
	sessions := []store.Session{
		member("ch-1", sessiontype.ChallengeIntro, "2026-01-05", 1, "A"),
		member("ch-1", sessiontype.Transform, "2026-01-06", 1, "A"),
	}

	d := NewDetector(repo)
	envelopes, err := d.Detect(context.Background(), sessions)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if envelopes[0].ChallengeTitle != "Widget Sprint" {
		t.Errorf("title = %q, want Widget Sprint", envelopes[0].ChallengeTitle)
	}
	if !envelopes[0].IsMock {
		t.Error("expected mock flag from the challenge record")
	}
}

func TestDetectMockFallbackFromTitle(t *testing.T) {
	sessions := []store.Session{
		member("ch-2", sessiontype.ChallengeIntro, "2026-01-05", 1, "Mock Interview Week"),
		member("ch-2", sessiontype.Transform, "2026-01-06", 1, "Mock Interview Week"),
	}

	// No challenge repo available: substring fallback decides.
	d := NewDetector(nil)
	envelopes, err := d.Detect(context.Background(), sessions)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !envelopes[0].IsMock {
		t.Error("expected mock fallback from title substring")
	}
}

func TestDetectOrdersByStartDate(t *testing.T) {
	sessions := []store.Session{
		member("ch-late", sessiontype.ChallengeIntro, "2026-02-02", 1, "Late"),
		member("ch-late", sessiontype.Transform, "2026-02-04", 1, "Late"),
		member("ch-early", sessiontype.ChallengeIntro, "2026-01-05", 1, "Early"),
		member("ch-early", sessiontype.Transform, "2026-01-07", 1, "Early"),
	}

	d := NewDetector(nil)
	envelopes, err := d.Detect(context.Background(), sessions)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(envelopes) != 2 {
		t.Fatalf("got %d envelopes, want 2", len(envelopes))
	}
	if envelopes[0].ChallengeID != "ch-early" || envelopes[1].ChallengeID != "ch-late" {
		t.Errorf("envelopes out of order: %s, %s", envelopes[0].ChallengeID, envelopes[1].ChallengeID)
	}
}

func TestContainsEndDateSlotCeiling(t *testing.T) {
	e := Envelope{
		StartDate: day("2026-01-05"),
		EndDate:   day("2026-01-07"),
		SlotMin:   1,
		SlotMax:   2,
	}

	tests := []struct {
		date string
		slot int
		want bool
	}{
		{"2026-01-04", 1, false},
		{"2026-01-05", 1, true},
		{"2026-01-05", 4, true}, // interior days ignore slot
		{"2026-01-06", 4, true},
		{"2026-01-07", 1, true},
		{"2026-01-07", 2, true},
		{"2026-01-07", 3, false}, // past the ceiling on the end date
		{"2026-01-08", 1, false},
	}
	for _, tt := range tests {
		if got := e.Contains(day(tt.date), tt.slot); got != tt.want {
			t.Errorf("Contains(%s, %d) = %v, want %v", tt.date, tt.slot, got, tt.want)
		}
	}
}

func TestContainsSingleDayChallenge(t *testing.T) {
	e := Envelope{
		StartDate: day("2026-01-05"),
		EndDate:   day("2026-01-05"),
		SlotMin:   1,
		SlotMax:   2,
	}

	if !e.Contains(day("2026-01-05"), 1) || !e.Contains(day("2026-01-05"), 2) {
		t.Error("slots up to the ceiling must be inside")
	}
	if e.Contains(day("2026-01-05"), 3) {
		t.Error("slot past the ceiling must be outside")
	}
	if e.Contains(day("2026-01-06"), 1) {
		t.Error("other days must be outside")
	}
}

func TestContainsNormalizesTime(t *testing.T) {
	e := Envelope{
		StartDate: day("2026-01-05"),
		EndDate:   day("2026-01-06"),
		SlotMin:   1,
		SlotMax:   1,
	}
	noon := time.Date(2026, 1, 5, 12, 30, 0, 0, time.UTC)
	if !e.Contains(noon, 4) {
		t.Error("time-of-day must be stripped before comparing")
	}
}

func TestWithinAny(t *testing.T) {
	envelopes := []Envelope{
		{StartDate: day("2026-01-05"), EndDate: day("2026-01-06"), SlotMin: 1, SlotMax: 2},
		{StartDate: day("2026-02-02"), EndDate: day("2026-02-03"), SlotMin: 1, SlotMax: 1},
	}
	if !WithinAny(envelopes, day("2026-02-02"), 3) {
		t.Error("cell inside the second envelope")
	}
	if WithinAny(envelopes, day("2026-03-01"), 1) {
		t.Error("cell outside every envelope")
	}
}
