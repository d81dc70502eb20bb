package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/lmehta/cohortplan/internal/store"
)

type fakeSessions struct {
	countByChallenge map[string]int
}

func (f *fakeSessions) FindByDates(_ context.Context, _, _ string, _ []time.Time) ([]store.Session, error) {
	return nil, nil
}
func (f *fakeSessions) ListByScope(_ context.Context, _, _ string) ([]store.Session, error) {
	return nil, nil
}
func (f *fakeSessions) InsertMany(_ context.Context, _ []store.Session) ([]store.Session, error) {
	return nil, nil
}
func (f *fakeSessions) UpdateByID(_ context.Context, _ int, _ store.SessionPatch) (*store.Session, error) {
	return nil, nil
}
func (f *fakeSessions) DeleteByID(_ context.Context, _ int) error { return nil }
func (f *fakeSessions) DeleteChallengeMembers(_ context.Context, _ string) (int, error) {
	return 0, nil
}
func (f *fakeSessions) CountByChallenge(_ context.Context, challengeID string) (int, error) {
	return f.countByChallenge[challengeID], nil
}

type fakeChallenges struct {
	challenges map[string]store.Challenge
}

func (f *fakeChallenges) Create(_ context.Context, ch store.Challenge) (*store.Challenge, error) {
	f.challenges[ch.ID] = ch
	return &ch, nil
}
func (f *fakeChallenges) Get(_ context.Context, id string) (*store.Challenge, error) {
	ch, ok := f.challenges[id]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}
func (f *fakeChallenges) Delete(_ context.Context, id string) error {
	delete(f.challenges, id)
	return nil
}
func (f *fakeChallenges) ListCreatedBefore(_ context.Context, cutoff time.Time) ([]store.Challenge, error) {
	var out []store.Challenge
	for _, ch := range f.challenges {
		if ch.CreatedAt.Before(cutoff) {
			out = append(out, ch)
		}
	}
	return out, nil
}

func TestSweepRemovesOldOrphans(t *testing.T) {
	challenges := &fakeChallenges{challenges: map[string]store.Challenge{
		"orphan-old":   {ID: "orphan-old", CreatedAt: time.Now().Add(-2 * time.Hour)},
		"orphan-young": {ID: "orphan-young", CreatedAt: time.Now().Add(-time.Minute)},
		"populated":    {ID: "populated", CreatedAt: time.Now().Add(-2 * time.Hour)},
	}}
	sessions := &fakeSessions{countByChallenge: map[string]int{"populated": 3}}

	s := New(sessions, challenges, time.Hour)
	removed, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := challenges.challenges["orphan-old"]; ok {
		t.Error("old orphan not deleted")
	}
	if _, ok := challenges.challenges["orphan-young"]; !ok {
		t.Error("young challenge inside grace period was deleted")
	}
	if _, ok := challenges.challenges["populated"]; !ok {
		t.Error("challenge with sessions was deleted")
	}
}

func TestSweepEmptyStore(t *testing.T) {
	challenges := &fakeChallenges{challenges: map[string]store.Challenge{}}
	sessions := &fakeSessions{countByChallenge: map[string]int{}}

	s := New(sessions, challenges, time.Hour)
	removed, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}
