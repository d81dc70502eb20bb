package store

import (
	"context"
	"errors"
	"time"

	"github.com/lmehta/cohortplan/internal/sessiontype"
)

// ErrNotFound reports that the requested row does not exist. Returned
// wrapped; check with errors.Is.
var ErrNotFound = errors.New("not found")

// Session is one bookable calendar cell, as read from or written to the
// session table. ChallengeTitle is a read-side annotation supplied by the
// batch writer; it is never persisted.
type Session struct {
	ID             int
	CohortID       string
	EpicID         string
	Date           time.Time
	Slot           int
	Type           sessiontype.Type
	Title          string
	StartTime      *time.Time
	EndTime        *time.Time
	ChallengeID    string
	OriginalMember bool
	ChallengeTitle string
}

// SessionPatch describes a partial update to a session. Nil fields are
// left unchanged.
type SessionPatch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
}

// Challenge is the parent grouping record for a multi-session experience.
type Challenge struct {
	ID        string
	CohortID  string
	EpicID    string
	Title     string
	CreatedBy string
	Status    string
	IsMock    bool
	CreatedAt time.Time
}

// SlotTimes are a cohort's default wall-clock times for one slot position,
// as HH:mm strings.
type SlotTimes struct {
	Start string
	End   string
}

// SessionRepo provides access to the session table.
type SessionRepo interface {
	// FindByDates returns all sessions for the scope whose date is in dates.
	// This is the single bulk read backing availability validation.
	FindByDates(ctx context.Context, cohortID, epicID string, dates []time.Time) ([]Session, error)

	// ListByScope returns every session for one (cohort, epic) pair,
	// ordered by (date, slot) ascending.
	ListByScope(ctx context.Context, cohortID, epicID string) ([]Session, error)

	// InsertMany persists rows in one all-or-nothing insert and returns
	// the created sessions with assigned ids.
	InsertMany(ctx context.Context, rows []Session) ([]Session, error)

	// UpdateByID applies patch to one session.
	UpdateByID(ctx context.Context, id int, patch SessionPatch) (*Session, error)

	// DeleteByID removes one session.
	DeleteByID(ctx context.Context, id int) error

	// DeleteChallengeMembers removes every original-member session of a
	// challenge and reports how many were deleted.
	DeleteChallengeMembers(ctx context.Context, challengeID string) (int, error)

	// CountByChallenge returns the number of sessions linked to a challenge.
	CountByChallenge(ctx context.Context, challengeID string) (int, error)
}

// ChallengeRepo provides access to the challenge table.
type ChallengeRepo interface {
	// Create persists a new challenge record.
	Create(ctx context.Context, ch Challenge) (*Challenge, error)

	// Get returns one challenge, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Challenge, error)

	// Delete removes one challenge record.
	Delete(ctx context.Context, id string) error

	// ListCreatedBefore returns challenges created before cutoff, oldest
	// first. Used by the orphan sweeper.
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]Challenge, error)
}

// SlotDefaultRepo provides access to per-cohort default slot times.
type SlotDefaultRepo interface {
	// TimesForSlot returns the default times for a slot, or nil if the
	// cohort has none configured for it.
	TimesForSlot(ctx context.Context, cohortID string, slot int) (*SlotTimes, error)

	// Upsert creates or replaces the default times for a slot.
	Upsert(ctx context.Context, cohortID string, slot int, times SlotTimes) error
}

// DayOf truncates t to midnight UTC. All session dates are stored and
// compared in this normalized form.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
