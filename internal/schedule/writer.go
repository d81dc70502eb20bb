package schedule

import (
	"context"
	"time"

	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

// SessionSpec is one fully resolved session waiting to be persisted:
// absolute date, slot, type, title and optional wall-clock times.
type SessionSpec struct {
	Date           time.Time
	Slot           int
	Type           sessiontype.Type
	Title          string
	StartTime      *time.Time
	EndTime        *time.Time
	ChallengeID    string
	OriginalMember bool
}

// Writer persists a resolved list of session specs in one bulk insert.
type Writer struct {
	sessions store.SessionRepo
}

// NewWriter creates a Writer backed by the given session repo.
func NewWriter(sessions store.SessionRepo) *Writer {
	return &Writer{sessions: sessions}
}

// WriteBatch maps each spec to a row and issues a single insert. The
// challenge title is passed in once by the caller and stamped onto every
// returned session; it is never re-queried per row. A uniqueness violation
// from a racing writer surfaces as a *StoreError with nothing written.
func (w *Writer) WriteBatch(ctx context.Context, cohortID, epicID string, specs []SessionSpec, challengeTitle string) ([]store.Session, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	rows := make([]store.Session, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, store.Session{
			CohortID:       cohortID,
			EpicID:         epicID,
			Date:           store.DayOf(spec.Date),
			Slot:           spec.Slot,
			Type:           spec.Type,
			Title:          spec.Title,
			StartTime:      spec.StartTime,
			EndTime:        spec.EndTime,
			ChallengeID:    spec.ChallengeID,
			OriginalMember: spec.OriginalMember,
		})
	}

	created, err := w.sessions.InsertMany(ctx, rows)
	if err != nil {
		return nil, &StoreError{Op: "insert session batch", Err: err}
	}
	for i := range created {
		created[i].ChallengeTitle = challengeTitle
	}
	return created, nil
}
