package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmehta/cohortplan/internal/auth"
	"github.com/lmehta/cohortplan/internal/boundary"
	"github.com/lmehta/cohortplan/internal/schedule"
	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

type memSessionRepo struct {
	rows   []store.Session
	nextID int
}

func (r *memSessionRepo) FindByDates(_ context.Context, cohortID, epicID string, dates []time.Time) ([]store.Session, error) {
	want := make(map[string]bool, len(dates))
	for _, d := range dates {
		want[store.DayOf(d).Format("2006-01-02")] = true
	}
	var out []store.Session
	for _, s := range r.rows {
		if s.CohortID == cohortID && s.EpicID == epicID && want[store.DayOf(s.Date).Format("2006-01-02")] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) ListByScope(_ context.Context, cohortID, epicID string) ([]store.Session, error) {
	var out []store.Session
	for _, s := range r.rows {
		if s.CohortID == cohortID && s.EpicID == epicID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) InsertMany(_ context.Context, rows []store.Session) ([]store.Session, error) {
	created := make([]store.Session, 0, len(rows))
	for _, row := range rows {
		for _, existing := range r.rows {
			if existing.CohortID == row.CohortID && existing.EpicID == row.EpicID &&
				store.DayOf(existing.Date).Equal(store.DayOf(row.Date)) && existing.Slot == row.Slot {
				return nil, fmt.Errorf("unique constraint violated at %s slot %d", row.Date.Format("2006-01-02"), row.Slot)
			}
		}
		r.nextID++
		row.ID = r.nextID
		r.rows = append(r.rows, row)
		created = append(created, row)
	}
	return created, nil
}

func (r *memSessionRepo) UpdateByID(_ context.Context, id int, patch store.SessionPatch) (*store.Session, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if patch.Title != nil {
				r.rows[i].Title = *patch.Title
			}
			if patch.StartTime != nil {
				r.rows[i].StartTime = patch.StartTime
			}
			if patch.EndTime != nil {
				r.rows[i].EndTime = patch.EndTime
			}
			s := r.rows[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("session %d: %w", id, store.ErrNotFound)
}

func (r *memSessionRepo) DeleteByID(_ context.Context, id int) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session %d not found", id)
}

func (r *memSessionRepo) DeleteChallengeMembers(_ context.Context, challengeID string) (int, error) {
	var kept []store.Session
	n := 0
	for _, s := range r.rows {
		if s.ChallengeID == challengeID && s.OriginalMember {
			n++
			continue
		}
		kept = append(kept, s)
	}
	r.rows = kept
	return n, nil
}

func (r *memSessionRepo) CountByChallenge(_ context.Context, challengeID string) (int, error) {
	n := 0
	for _, s := range r.rows {
		if s.ChallengeID == challengeID {
			n++
		}
	}
	return n, nil
}

type memChallengeRepo struct {
	rows map[string]store.Challenge
}

func newMemChallengeRepo() *memChallengeRepo {
	return &memChallengeRepo{rows: map[string]store.Challenge{}}
}

func (r *memChallengeRepo) Create(_ context.Context, ch store.Challenge) (*store.Challenge, error) {
	if ch.CreatedAt.IsZero() {
		ch.CreatedAt = time.Now()
	}
	r.rows[ch.ID] = ch
	return &ch, nil
}

func (r *memChallengeRepo) Get(_ context.Context, id string) (*store.Challenge, error) {
	ch, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (r *memChallengeRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memChallengeRepo) ListCreatedBefore(_ context.Context, cutoff time.Time) ([]store.Challenge, error) {
	var out []store.Challenge
	for _, ch := range r.rows {
		if ch.CreatedAt.Before(cutoff) {
			out = append(out, ch)
		}
	}
	return out, nil
}

type memDefaults struct{}

func (memDefaults) TimesForSlot(context.Context, string, int) (*store.SlotTimes, error) {
	return nil, nil
}

func (memDefaults) Upsert(context.Context, string, int, store.SlotTimes) error { return nil }

func newTestRouter() (http.Handler, *memSessionRepo) {
	sessions := &memSessionRepo{}
	challenges := newMemChallengeRepo()
	checker := auth.NewStaticChecker(map[string]auth.Role{"coach-1": auth.RoleCoach})
	composer := schedule.NewComposer(sessions, challenges, memDefaults{}, checker)
	detector := boundary.NewDetector(challenges)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(composer, detector, sessions, logger), sessions
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestComposeCreatesSessions(t *testing.T) {
	router, sessions := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":  "cbl",
		"title": "Widget",
		"lectures": []map[string]any{
			{"title": "Lecture A", "order": 1},
			{"title": "Lecture B", "order": 2},
		},
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "learner-1",
		"slotsPerDay": 4,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Sessions []sessionJSON `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 5)

	assert.Equal(t, "challenge-intro", resp.Sessions[0].Type)
	assert.Equal(t, "2026-01-05", resp.Sessions[0].Date)
	assert.Equal(t, 1, resp.Sessions[0].Slot)
	assert.Equal(t, "transform", resp.Sessions[4].Type)
	assert.Equal(t, "Widget", resp.Sessions[0].ChallengeTitle)
	for _, s := range resp.Sessions {
		assert.NotZero(t, s.ID)
		assert.NotEmpty(t, s.ChallengeID)
	}

	assert.Len(t, sessions.rows, 5)
}

func TestComposeConflictReturns409(t *testing.T) {
	router, sessions := newTestRouter()
	sessions.rows = append(sessions.rows, store.Session{
		ID: 99, CohortID: "c1", EpicID: "e1",
		Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Slot: 2,
		Type: sessiontype.Workshop, Title: "Taken",
	})
	sessions.nextID = 99

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":        "cbl",
		"title":       "Widget",
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "learner-1",
		"slotsPerDay": 4,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-01-05"`)
	assert.Contains(t, rec.Body.String(), `"slot":2`)
	// Nothing written.
	assert.Len(t, sessions.rows, 1)
}

func TestComposeMockRequiresElevatedRole(t *testing.T) {
	router, _ := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":        "mock-challenge",
		"title":       "Dry Run",
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "learner-1",
		"slotsPerDay": 4,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":        "mock-challenge",
		"title":       "Dry Run",
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "coach-1",
		"slotsPerDay": 4,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestComposeBadRequest(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/cohorts/c1/epics/e1/compose", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":      "cbl",
		"title":     "Widget",
		"startDate": "05/01/2026",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid startDate")
}

func TestBoundariesAfterCompose(t *testing.T) {
	router, _ := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":  "cbl",
		"title": "Widget",
		"lectures": []map[string]any{
			{"title": "Lecture A", "order": 1},
			{"title": "Lecture B", "order": 2},
		},
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "learner-1",
		"slotsPerDay": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/cohorts/c1/epics/e1/boundaries", nil)
	out := httptest.NewRecorder()
	router.ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	var resp struct {
		Envelopes []envelopeJSON `json:"envelopes"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &resp))
	require.Len(t, resp.Envelopes, 1)

	env := resp.Envelopes[0]
	assert.Equal(t, "Widget", env.ChallengeTitle)
	assert.Equal(t, "2026-01-05", env.StartDate)
	assert.Equal(t, "2026-01-06", env.EndDate)
	assert.Equal(t, 1, env.SlotMax)
	assert.False(t, env.IsMock)
}

func TestCanMoveInteriorOutsideRejected(t *testing.T) {
	router, _ := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":  "cbl",
		"title": "Widget",
		"lectures": []map[string]any{
			{"title": "Lecture A", "order": 1},
		},
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "learner-1",
		"slotsPerDay": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Moving a learn session from inside the envelope to a later week.
	rec = postJSON(t, router, "/cohorts/c1/epics/e1/can-move", map[string]any{
		"sessionType": "learn",
		"sourceDate":  "2026-01-05",
		"sourceSlot":  2,
		"targetDate":  "2026-02-01",
		"targetSlot":  1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":false`)

	// Anchors move freely.
	rec = postJSON(t, router, "/cohorts/c1/epics/e1/can-move", map[string]any{
		"sessionType": "transform",
		"sourceDate":  "2026-01-05",
		"sourceSlot":  3,
		"targetDate":  "2026-02-01",
		"targetSlot":  1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":true`)
}

func TestCanPlaceNewChecksEnvelope(t *testing.T) {
	router, _ := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/can-move", map[string]any{
		"sessionType": "learn",
		"targetDate":  "2026-02-01",
		"targetSlot":  1,
		"new":         true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":false`)

	rec = postJSON(t, router, "/cohorts/c1/epics/e1/can-move", map[string]any{
		"sessionType": "challenge-intro",
		"targetDate":  "2026-02-01",
		"targetSlot":  1,
		"new":         true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":true`)
}

func TestComposeSingletonMock(t *testing.T) {
	router, sessions := newTestRouter()

	rec := postJSON(t, router, "/cohorts/c1/epics/e1/compose", map[string]any{
		"kind":        "mock-challenge",
		"title":       "Dry Run",
		"startDate":   "2026-01-05",
		"startSlot":   1,
		"actorId":     "coach-1",
		"slotsPerDay": 4,
		"singleton":   true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Sessions []sessionJSON `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "mock-challenge", resp.Sessions[0].Type)
	assert.Empty(t, resp.Sessions[0].ChallengeID)
	assert.Len(t, sessions.rows, 1)
}

func TestUpdateSession(t *testing.T) {
	router, sessions := newTestRouter()
	sessions.rows = append(sessions.rows, store.Session{
		ID: 7, CohortID: "c1", EpicID: "e1",
		Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Slot: 1,
		Type: sessiontype.Workshop, Title: "Old",
	})
	sessions.nextID = 7

	raw := `{"title":"Renamed","startTime":"2026-01-05T09:00:00Z","endTime":"2026-01-05T10:30:00Z"}`
	req := httptest.NewRequest(http.MethodPatch, "/sessions/7", strings.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"title":"Renamed"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"2026-01-05T09:00:00Z"`)

	assert.Equal(t, "Renamed", sessions.rows[0].Title)
	require.NotNil(t, sessions.rows[0].EndTime)
	assert.Equal(t, "10:30", sessions.rows[0].EndTime.Format("15:04"))
}

func TestUpdateSessionErrors(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/sessions/999", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/sessions/abc", strings.NewReader(`{"title":"x"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A patch with no fields changes nothing and is rejected.
	req = httptest.NewRequest(http.MethodPatch, "/sessions/1", strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/sessions/1", strings.NewReader(`{"startTime":"09:00"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDLogged(t *testing.T) {
	sessions := &memSessionRepo{}
	challenges := newMemChallengeRepo()
	composer := schedule.NewComposer(sessions, challenges, memDefaults{}, auth.NewStaticChecker(nil))
	detector := boundary.NewDetector(challenges)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	router := NewRouter(composer, detector, sessions, logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestCanMoveUnknownType(t *testing.T) {
	router, _ := newTestRouter()
	rec := postJSON(t, router, "/cohorts/c1/epics/e1/can-move", map[string]any{
		"sessionType": "recess",
		"targetDate":  "2026-02-01",
		"targetSlot":  1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
