package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lmehta/cohortplan/internal/boundary"
	"github.com/lmehta/cohortplan/internal/schedule"
	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

const dateLayout = "2006-01-02"

// ScheduleHandler exposes the scheduling core over HTTP: composing
// experiences, reading boundary envelopes and checking moves.
type ScheduleHandler struct {
	composer *schedule.Composer
	detector *boundary.Detector
	sessions store.SessionRepo
}

// NewScheduleHandler creates a handler over the given core components.
func NewScheduleHandler(composer *schedule.Composer, detector *boundary.Detector, sessions store.SessionRepo) *ScheduleHandler {
	return &ScheduleHandler{composer: composer, detector: detector, sessions: sessions}
}

type lectureJSON struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type composeRequestJSON struct {
	Kind        string        `json:"kind"`
	Title       string        `json:"title"`
	Lectures    []lectureJSON `json:"lectures"`
	StartDate   string        `json:"startDate"`
	StartSlot   int           `json:"startSlot"`
	ActorID     string        `json:"actorId"`
	SlotsPerDay int           `json:"slotsPerDay"`
	Singleton   bool          `json:"singleton,omitempty"`
}

type sessionJSON struct {
	ID             int    `json:"id"`
	Date           string `json:"date"`
	Slot           int    `json:"slot"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	ChallengeID    string `json:"challengeId,omitempty"`
	ChallengeTitle string `json:"challengeTitle,omitempty"`
}

// Compose handles POST /cohorts/{cohortID}/epics/{epicID}/compose.
func (h *ScheduleHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req composeRequestJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate: "+err.Error())
		return
	}

	exp := schedule.Experience{
		Kind:      schedule.Kind(req.Kind),
		Title:     req.Title,
		Singleton: req.Singleton,
	}
	for _, l := range req.Lectures {
		exp.Lectures = append(exp.Lectures, schedule.LectureModule{Title: l.Title, Order: l.Order})
	}

	created, err := h.composer.Compose(r.Context(), schedule.ComposeRequest{
		Experience:  exp,
		CohortID:    chi.URLParam(r, "cohortID"),
		EpicID:      chi.URLParam(r, "epicID"),
		ActorID:     req.ActorID,
		StartDate:   startDate,
		StartSlot:   req.StartSlot,
		SlotsPerDay: req.SlotsPerDay,
	})
	if err != nil {
		writeComposeError(w, err)
		return
	}

	out := make([]sessionJSON, 0, len(created))
	for _, s := range created {
		out = append(out, toSessionJSON(s))
	}
	writeJSON(w, http.StatusCreated, map[string]any{"sessions": out})
}

type envelopeJSON struct {
	ChallengeID    string `json:"challengeId"`
	ChallengeTitle string `json:"challengeTitle"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	SlotMin        int    `json:"slotMin"`
	SlotMax        int    `json:"slotMax"`
	IsMock         bool   `json:"isMock"`
}

// Boundaries handles GET /cohorts/{cohortID}/epics/{epicID}/boundaries.
func (h *ScheduleHandler) Boundaries(w http.ResponseWriter, r *http.Request) {
	envelopes, err := h.loadEnvelopes(r.Context(), chi.URLParam(r, "cohortID"), chi.URLParam(r, "epicID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]envelopeJSON, 0, len(envelopes))
	for _, e := range envelopes {
		out = append(out, envelopeJSON{
			ChallengeID:    e.ChallengeID,
			ChallengeTitle: e.ChallengeTitle,
			StartDate:      e.StartDate.Format(dateLayout),
			EndDate:        e.EndDate.Format(dateLayout),
			SlotMin:        e.SlotMin,
			SlotMax:        e.SlotMax,
			IsMock:         e.IsMock,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"envelopes": out})
}

type moveCheckJSON struct {
	SessionType string `json:"sessionType"`
	SourceDate  string `json:"sourceDate,omitempty"`
	SourceSlot  int    `json:"sourceSlot,omitempty"`
	TargetDate  string `json:"targetDate"`
	TargetSlot  int    `json:"targetSlot"`
	New         bool   `json:"new"`
}

// CanMove handles POST /cohorts/{cohortID}/epics/{epicID}/can-move.
func (h *ScheduleHandler) CanMove(w http.ResponseWriter, r *http.Request) {
	var req moveCheckJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	t := sessiontype.Type(req.SessionType)
	if !t.Valid() {
		writeError(w, http.StatusBadRequest, "unknown session type "+req.SessionType)
		return
	}

	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid targetDate: "+err.Error())
		return
	}

	envelopes, err := h.loadEnvelopes(r.Context(), chi.URLParam(r, "cohortID"), chi.URLParam(r, "epicID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	destWithin := boundary.WithinAny(envelopes, targetDate, req.TargetSlot)

	var allowed bool
	if req.New {
		allowed = boundary.CanPlaceNew(t, destWithin)
	} else {
		sourceDate, err := time.Parse(dateLayout, req.SourceDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid sourceDate: "+err.Error())
			return
		}
		sourceWithin := boundary.WithinAny(envelopes, sourceDate, req.SourceSlot)
		allowed = boundary.CanMove(t, sourceWithin, destWithin)
	}

	writeJSON(w, http.StatusOK, map[string]any{"allowed": allowed})
}

type sessionPatchJSON struct {
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// UpdateSession handles PATCH /sessions/{sessionID}. Absent fields are
// left unchanged; times are RFC3339.
func (h *ScheduleHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req sessionPatchJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	patch := store.SessionPatch{Title: req.Title}
	if req.StartTime != nil {
		t, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startTime: "+err.Error())
			return
		}
		patch.StartTime = &t
	}
	if req.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endTime: "+err.Error())
			return
		}
		patch.EndTime = &t
	}
	if patch.Title == nil && patch.StartTime == nil && patch.EndTime == nil {
		writeError(w, http.StatusBadRequest, "empty patch")
		return
	}

	updated, err := h.sessions.UpdateByID(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toSessionJSON(*updated))
}

// Health handles GET /health.
func (h *ScheduleHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *ScheduleHandler) loadEnvelopes(ctx context.Context, cohortID, epicID string) ([]boundary.Envelope, error) {
	sessions, err := h.sessions.ListByScope(ctx, cohortID, epicID)
	if err != nil {
		return nil, err
	}
	return h.detector.Detect(ctx, sessions)
}

func toSessionJSON(s store.Session) sessionJSON {
	out := sessionJSON{
		ID:             s.ID,
		Date:           store.DayOf(s.Date).Format(dateLayout),
		Slot:           s.Slot,
		Type:           string(s.Type),
		Title:          s.Title,
		ChallengeID:    s.ChallengeID,
		ChallengeTitle: s.ChallengeTitle,
	}
	if s.StartTime != nil {
		out.StartTime = s.StartTime.Format(time.RFC3339)
	}
	if s.EndTime != nil {
		out.EndTime = s.EndTime.Format(time.RFC3339)
	}
	return out
}

// writeComposeError maps the composer's typed failures onto HTTP statuses.
func writeComposeError(w http.ResponseWriter, err error) {
	var conflict *schedule.ConflictError
	if errors.As(err, &conflict) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error": conflict.Error(),
			"date":  conflict.Date.Format(dateLayout),
			"slot":  conflict.Slot,
		})
		return
	}
	var authErr *schedule.AuthorizationError
	if errors.As(err, &authErr) {
		writeError(w, http.StatusForbidden, authErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
