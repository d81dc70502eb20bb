package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmehta/cohortplan/internal/auth"
	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

// fakeSessionRepo is an in-memory store.SessionRepo that enforces the
// (cohort, epic, date, slot) uniqueness constraint the way the real store
// does: a conflicting batch fails with nothing written.
type fakeSessionRepo struct {
	sessions  []store.Session
	nextID    int
	findCalls int
	insertErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1}
}

func (f *fakeSessionRepo) key(cohortID, epicID string, date time.Time, slot int) string {
	return fmt.Sprintf("%s/%s/%s/%d", cohortID, epicID, store.DayOf(date).Format("2006-01-02"), slot)
}

func (f *fakeSessionRepo) FindByDates(_ context.Context, cohortID, epicID string, dates []time.Time) ([]store.Session, error) {
	f.findCalls++
	wanted := make(map[time.Time]bool)
	for _, d := range dates {
		wanted[store.DayOf(d)] = true
	}
	var out []store.Session
	for _, s := range f.sessions {
		if s.CohortID == cohortID && s.EpicID == epicID && wanted[store.DayOf(s.Date)] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByScope(_ context.Context, cohortID, epicID string) ([]store.Session, error) {
	var out []store.Session
	for _, s := range f.sessions {
		if s.CohortID == cohortID && s.EpicID == epicID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) InsertMany(_ context.Context, rows []store.Session) ([]store.Session, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	occupied := make(map[string]bool)
	for _, s := range f.sessions {
		occupied[f.key(s.CohortID, s.EpicID, s.Date, s.Slot)] = true
	}
	for _, r := range rows {
		k := f.key(r.CohortID, r.EpicID, r.Date, r.Slot)
		if occupied[k] {
			return nil, fmt.Errorf("UNIQUE constraint failed: %s", k)
		}
		occupied[k] = true
	}
	created := make([]store.Session, 0, len(rows))
	for _, r := range rows {
		r.ID = f.nextID
		f.nextID++
		f.sessions = append(f.sessions, r)
		created = append(created, r)
	}
	return created, nil
}

func (f *fakeSessionRepo) UpdateByID(_ context.Context, id int, patch store.SessionPatch) (*store.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			if patch.Title != nil {
				f.sessions[i].Title = *patch.Title
			}
			if patch.StartTime != nil {
				f.sessions[i].StartTime = patch.StartTime
			}
			if patch.EndTime != nil {
				f.sessions[i].EndTime = patch.EndTime
			}
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("session %d not found", id)
}

func (f *fakeSessionRepo) DeleteByID(_ context.Context, id int) error {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session %d not found", id)
}

func (f *fakeSessionRepo) DeleteChallengeMembers(_ context.Context, challengeID string) (int, error) {
	var kept []store.Session
	removed := 0
	for _, s := range f.sessions {
		if s.ChallengeID == challengeID && s.OriginalMember {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return removed, nil
}

func (f *fakeSessionRepo) CountByChallenge(_ context.Context, challengeID string) (int, error) {
	n := 0
	for _, s := range f.sessions {
		if s.ChallengeID == challengeID {
			n++
		}
	}
	return n, nil
}

// occupy seeds an existing session at the given cell.
func (f *fakeSessionRepo) occupy(cohortID, epicID string, date time.Time, slot int) {
	f.sessions = append(f.sessions, store.Session{
		ID:       f.nextID,
		CohortID: cohortID,
		EpicID:   epicID,
		Date:     store.DayOf(date),
		Slot:     slot,
		Type:     sessiontype.Workshop,
		Title:    "taken",
	})
	f.nextID++
}

// fakeChallengeRepo is an in-memory store.ChallengeRepo.
type fakeChallengeRepo struct {
	challenges map[string]store.Challenge
	createErr  error
	deleteErr  error
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[string]store.Challenge)}
}

func (f *fakeChallengeRepo) Create(_ context.Context, ch store.Challenge) (*store.Challenge, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	ch.CreatedAt = time.Now()
	f.challenges[ch.ID] = ch
	return &ch, nil
}

func (f *fakeChallengeRepo) Get(_ context.Context, id string) (*store.Challenge, error) {
	ch, ok := f.challenges[id]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (f *fakeChallengeRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.challenges, id)
	return nil
}

func (f *fakeChallengeRepo) ListCreatedBefore(_ context.Context, cutoff time.Time) ([]store.Challenge, error) {
	var out []store.Challenge
	for _, ch := range f.challenges {
		if ch.CreatedAt.Before(cutoff) {
			out = append(out, ch)
		}
	}
	return out, nil
}

// fakeDefaults serves the same HH:mm window for every cohort.
type fakeDefaults struct {
	times map[int]store.SlotTimes
}

func (f *fakeDefaults) TimesForSlot(_ context.Context, _ string, slot int) (*store.SlotTimes, error) {
	if t, ok := f.times[slot]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeDefaults) Upsert(_ context.Context, _ string, slot int, times store.SlotTimes) error {
	f.times[slot] = times
	return nil
}

// fakeChecker grants elevated roles to a fixed set of actors.
type fakeChecker struct {
	elevated map[string]bool
}

func (f *fakeChecker) HasRole(_ context.Context, actorID string, _ []auth.Role) (bool, error) {
	return f.elevated[actorID], nil
}

func newTestComposer(sessions *fakeSessionRepo, challenges *fakeChallengeRepo, opts ...ComposerOption) *Composer {
	checker := &fakeChecker{elevated: map[string]bool{"coach-1": true}}
	return NewComposer(sessions, challenges, nil, checker, opts...)
}

func cblRequest(lectureTitles ...string) ComposeRequest {
	exp := Experience{Kind: KindCBL, Title: "Widget"}
	for i, title := range lectureTitles {
		exp.Lectures = append(exp.Lectures, LectureModule{Title: title, Order: i + 1})
	}
	return ComposeRequest{
		Experience:  exp,
		CohortID:    "c1",
		EpicID:      "e1",
		ActorID:     "coach-1",
		StartDate:   day("2026-01-05"), // a Monday
		StartSlot:   1,
		SlotsPerDay: 4,
	}
}

func TestComposeCBLSessionCounts(t *testing.T) {
	tests := []struct {
		lectures int
		want     int
	}{
		{0, 3},
		{1, 3},
		{2, 5},
		{3, 7},
		{5, 11},
	}
	for _, tt := range tests {
		sessions := newFakeSessionRepo()
		challenges := newFakeChallengeRepo()
		composer := newTestComposer(sessions, challenges)

		var titles []string
		for i := 0; i < tt.lectures; i++ {
			titles = append(titles, fmt.Sprintf("Lecture %d", i+1))
		}
		created, err := composer.Compose(context.Background(), cblRequest(titles...))
		require.NoError(t, err, "lectures=%d", tt.lectures)
		assert.Len(t, created, tt.want, "lectures=%d", tt.lectures)
	}
}

func TestComposeCBLScenario(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	created, err := composer.Compose(context.Background(), cblRequest("A", "B"))
	require.NoError(t, err)
	require.Len(t, created, 5)

	type cell struct {
		date  string
		slot  int
		typ   sessiontype.Type
		title string
	}
	want := []cell{
		{"2026-01-05", 1, sessiontype.ChallengeIntro, "A"},
		{"2026-01-05", 2, sessiontype.Innovate, "Widget"},
		{"2026-01-05", 3, sessiontype.Learn, "B"},
		{"2026-01-05", 4, sessiontype.Innovate, "Widget"},
		{"2026-01-06", 1, sessiontype.Transform, "Widget"},
	}
	for i, w := range want {
		got := created[i]
		assert.Equal(t, w.date, store.DayOf(got.Date).Format("2006-01-02"), "session %d date", i)
		assert.Equal(t, w.slot, got.Slot, "session %d slot", i)
		assert.Equal(t, w.typ, got.Type, "session %d type", i)
		assert.Equal(t, w.title, got.Title, "session %d title", i)
		assert.True(t, got.OriginalMember, "session %d original member", i)
		assert.Equal(t, "Widget", got.ChallengeTitle, "session %d challenge title", i)
		assert.NotEmpty(t, got.ChallengeID, "session %d challenge id", i)
		assert.Equal(t, created[0].ChallengeID, got.ChallengeID, "session %d shares challenge", i)
	}

	require.Len(t, challenges.challenges, 1)
	for _, ch := range challenges.challenges {
		assert.Equal(t, "Widget", ch.Title)
		assert.False(t, ch.IsMock)
		assert.Equal(t, "active", ch.Status)
		assert.Equal(t, "coach-1", ch.CreatedBy)
	}
}

func TestComposeZeroLecturesCollapses(t *testing.T) {
	sessions := newFakeSessionRepo()
	composer := newTestComposer(sessions, newFakeChallengeRepo())

	created, err := composer.Compose(context.Background(), cblRequest())
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, sessiontype.ChallengeIntro, created[0].Type)
	assert.Equal(t, "Widget", created[0].Title, "intro falls back to the experience title")
	assert.Equal(t, sessiontype.Innovate, created[1].Type)
	assert.Equal(t, sessiontype.Transform, created[2].Type)
}

func TestComposeConflictAbortsEverything(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	sessions.occupy("c1", "e1", day("2026-01-05"), 3)
	before := len(sessions.sessions)

	_, err := composer.Compose(context.Background(), cblRequest("A", "B"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, day("2026-01-05"), conflict.Date)
	assert.Equal(t, 3, conflict.Slot)

	assert.Len(t, sessions.sessions, before, "no sessions written on conflict")
	assert.Empty(t, challenges.challenges, "orphaned challenge cleaned up")
}

func TestComposeSkipWeekdayWrap(t *testing.T) {
	sessions := newFakeSessionRepo()
	composer := newTestComposer(sessions, newFakeChallengeRepo(), WithSkipWeekday(time.Sunday))

	req := cblRequest()
	req.StartDate = day("2026-01-10") // a Saturday
	req.StartSlot = 3

	created, err := composer.Compose(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, "2026-01-10", store.DayOf(created[1].Date).Format("2006-01-02"))
	assert.Equal(t, 4, created[1].Slot)
	// Transform wraps past Sunday the 11th onto Monday the 12th.
	assert.Equal(t, "2026-01-12", store.DayOf(created[2].Date).Format("2006-01-02"))
	assert.Equal(t, 1, created[2].Slot)
}

func TestComposeMockRequiresElevatedRole(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	req := cblRequest()
	req.Experience.Kind = KindMock
	req.ActorID = "learner-9"

	_, err := composer.Compose(context.Background(), req)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, challenges.challenges, "no challenge created before the role check")
	assert.Empty(t, sessions.sessions)
}

func TestComposeMockTwoSlots(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	req := cblRequest()
	req.Experience.Kind = KindMock
	req.Experience.Title = "Practice Run"

	created, err := composer.Compose(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, sessiontype.ChallengeIntro, created[0].Type)
	assert.Equal(t, 1, created[0].Slot)
	assert.Equal(t, sessiontype.Transform, created[1].Type)
	assert.Equal(t, 2, created[1].Slot)

	require.Len(t, challenges.challenges, 1)
	for _, ch := range challenges.challenges {
		assert.True(t, ch.IsMock)
	}
}

func TestComposeSingletonMock(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	req := cblRequest()
	req.Experience = Experience{Kind: KindMock, Title: "Dry Run", Singleton: true}

	created, err := composer.Compose(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, created, 1)

	got := created[0]
	assert.Equal(t, sessiontype.MockChallenge, got.Type)
	assert.Equal(t, "Dry Run", got.Title)
	assert.Equal(t, 1, got.Slot)
	assert.Empty(t, got.ChallengeID)
	assert.False(t, got.OriginalMember)
	assert.Empty(t, challenges.challenges, "singleton mocks create no challenge record")
}

func TestComposeSingletonMockRequiresElevatedRole(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	req := cblRequest()
	req.Experience = Experience{Kind: KindMock, Title: "Dry Run", Singleton: true}
	req.ActorID = "learner-9"

	_, err := composer.Compose(context.Background(), req)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, sessions.sessions)
	assert.Empty(t, challenges.challenges)
}

func TestComposeStandaloneSingleSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	req := cblRequest()
	req.Experience = Experience{Kind: KindWorkshop, Title: "Soldering 101"}
	req.StartSlot = 2

	created, err := composer.Compose(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, created, 1)

	got := created[0]
	assert.Equal(t, sessiontype.Workshop, got.Type)
	assert.Equal(t, 2, got.Slot)
	assert.Empty(t, got.ChallengeID)
	assert.False(t, got.OriginalMember)
	assert.Empty(t, challenges.challenges, "standalone plans create no challenge record")
}

func TestComposeWriteFailureCleansUpChallenge(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	sessions.insertErr = errors.New("connection reset")

	_, err := composer.Compose(context.Background(), cblRequest("A"))
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Empty(t, challenges.challenges, "challenge removed after failed batch write")
}

func TestComposeCleanupFailureKeepsOriginalError(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	composer := newTestComposer(sessions, challenges)

	sessions.occupy("c1", "e1", day("2026-01-05"), 1)
	challenges.deleteErr = errors.New("delete refused")

	_, err := composer.Compose(context.Background(), cblRequest())
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict, "cleanup failure must not mask the conflict")
	assert.Len(t, challenges.challenges, 1, "orphan row left for the sweeper")
}

func TestComposeResolvesSlotTimes(t *testing.T) {
	sessions := newFakeSessionRepo()
	defaults := &fakeDefaults{times: map[int]store.SlotTimes{
		1: {Start: "09:00", End: "10:30"},
	}}
	composer := NewComposer(sessions, newFakeChallengeRepo(), defaults, &fakeChecker{})

	created, err := composer.Compose(context.Background(), cblRequest())
	require.NoError(t, err)
	require.Len(t, created, 3)

	require.NotNil(t, created[0].StartTime)
	require.NotNil(t, created[0].EndTime)
	assert.Equal(t, "2026-01-05T09:00", created[0].StartTime.Format("2006-01-02T15:04"))
	assert.Equal(t, "2026-01-05T10:30", created[0].EndTime.Format("2006-01-02T15:04"))

	// Slots 2 and 3 have no defaults and stay untimed.
	assert.Nil(t, created[1].StartTime)
	assert.Nil(t, created[2].StartTime)
}

func TestComposeRejectsBadStartSlot(t *testing.T) {
	composer := newTestComposer(newFakeSessionRepo(), newFakeChallengeRepo())

	req := cblRequest()
	req.StartSlot = 5
	_, err := composer.Compose(context.Background(), req)
	assert.Error(t, err)

	req.StartSlot = 0
	_, err = composer.Compose(context.Background(), req)
	assert.Error(t, err)
}

func TestComposeChallengeCreateFailureHasNoSideEffects(t *testing.T) {
	sessions := newFakeSessionRepo()
	challenges := newFakeChallengeRepo()
	challenges.createErr = errors.New("store down")
	composer := newTestComposer(sessions, challenges)

	_, err := composer.Compose(context.Background(), cblRequest("A"))
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Empty(t, sessions.sessions)
}
