package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lmehta/cohortplan/ent"
	"github.com/lmehta/cohortplan/ent/session"
	"github.com/lmehta/cohortplan/internal/sessiontype"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) FindByDates(ctx context.Context, cohortID, epicID string, dates []time.Time) ([]Session, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	normalized := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		normalized = append(normalized, DayOf(d))
	}

	rows, err := r.client.Session.Query().
		Where(
			session.CohortID(cohortID),
			session.EpicID(epicID),
			session.DateIn(normalized...),
		).
		Order(ent.Asc(session.FieldDate), ent.Asc(session.FieldSlot)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions by dates: %w", err)
	}
	return fromEntSessions(rows), nil
}

func (r *sessionRepo) ListByScope(ctx context.Context, cohortID, epicID string) ([]Session, error) {
	rows, err := r.client.Session.Query().
		Where(
			session.CohortID(cohortID),
			session.EpicID(epicID),
		).
		Order(ent.Asc(session.FieldDate), ent.Asc(session.FieldSlot)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions by scope: %w", err)
	}
	return fromEntSessions(rows), nil
}

// InsertMany writes all rows inside one transaction so that a uniqueness
// violation on any row rolls back the whole batch.
func (r *sessionRepo) InsertMany(ctx context.Context, rows []Session) ([]Session, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin insert transaction: %w", err)
	}

	builders := make([]*ent.SessionCreate, 0, len(rows))
	for _, row := range rows {
		b := tx.Session.Create().
			SetCohortID(row.CohortID).
			SetEpicID(row.EpicID).
			SetDate(DayOf(row.Date)).
			SetSlot(row.Slot).
			SetSessionType(string(row.Type)).
			SetTitle(row.Title).
			SetIsOriginalChallengeMember(row.OriginalMember)
		if row.ChallengeID != "" {
			b = b.SetChallengeID(row.ChallengeID)
		}
		if row.StartTime != nil {
			b = b.SetStartTime(*row.StartTime)
		}
		if row.EndTime != nil {
			b = b.SetEndTime(*row.EndTime)
		}
		builders = append(builders, b)
	}

	created, err := tx.Session.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, fmt.Errorf("insert sessions: %w (rollback: %v)", err, rbErr)
		}
		return nil, fmt.Errorf("insert sessions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit session insert: %w", err)
	}
	return fromEntSessions(created), nil
}

func (r *sessionRepo) UpdateByID(ctx context.Context, id int, patch SessionPatch) (*Session, error) {
	b := r.client.Session.UpdateOneID(id)
	if patch.Title != nil {
		b = b.SetTitle(*patch.Title)
	}
	if patch.StartTime != nil {
		b = b.SetStartTime(*patch.StartTime)
	}
	if patch.EndTime != nil {
		b = b.SetEndTime(*patch.EndTime)
	}
	updated, err := b.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("update session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update session %d: %w", id, err)
	}
	s := fromEntSession(updated)
	return &s, nil
}

func (r *sessionRepo) DeleteByID(ctx context.Context, id int) error {
	if err := r.client.Session.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("delete session %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) DeleteChallengeMembers(ctx context.Context, challengeID string) (int, error) {
	n, err := r.client.Session.Delete().
		Where(
			session.ChallengeID(challengeID),
			session.IsOriginalChallengeMember(true),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete challenge members: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) CountByChallenge(ctx context.Context, challengeID string) (int, error) {
	n, err := r.client.Session.Query().
		Where(session.ChallengeID(challengeID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count challenge sessions: %w", err)
	}
	return n, nil
}

// fromEntSession converts an ent Session row to a store Session.
func fromEntSession(s *ent.Session) Session {
	return Session{
		ID:             s.ID,
		CohortID:       s.CohortID,
		EpicID:         s.EpicID,
		Date:           s.Date,
		Slot:           s.Slot,
		Type:           sessiontype.Type(s.SessionType),
		Title:          s.Title,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		ChallengeID:    s.ChallengeID,
		OriginalMember: s.IsOriginalChallengeMember,
	}
}

func fromEntSessions(rows []*ent.Session) []Session {
	out := make([]Session, 0, len(rows))
	for _, s := range rows {
		out = append(out, fromEntSession(s))
	}
	return out
}
