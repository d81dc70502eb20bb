package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lmehta/cohortplan/ent"
	"github.com/lmehta/cohortplan/ent/challenge"
)

// challengeRepo implements ChallengeRepo using the ent client.
type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) Create(ctx context.Context, ch Challenge) (*Challenge, error) {
	created, err := r.client.Challenge.Create().
		SetID(ch.ID).
		SetCohortID(ch.CohortID).
		SetEpicID(ch.EpicID).
		SetTitle(ch.Title).
		SetCreatedBy(ch.CreatedBy).
		SetStatus(ch.Status).
		SetIsMock(ch.IsMock).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}
	out := fromEntChallenge(created)
	return &out, nil
}

func (r *challengeRepo) Get(ctx context.Context, id string) (*Challenge, error) {
	ch, err := r.client.Challenge.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get challenge %s: %w", id, err)
	}
	out := fromEntChallenge(ch)
	return &out, nil
}

func (r *challengeRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Challenge.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete challenge %s: %w", id, err)
	}
	return nil
}

func (r *challengeRepo) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]Challenge, error) {
	rows, err := r.client.Challenge.Query().
		Where(challenge.CreatedAtLT(cutoff)).
		Order(ent.Asc(challenge.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	out := make([]Challenge, 0, len(rows))
	for _, ch := range rows {
		out = append(out, fromEntChallenge(ch))
	}
	return out, nil
}

func fromEntChallenge(ch *ent.Challenge) Challenge {
	return Challenge{
		ID:        ch.ID,
		CohortID:  ch.CohortID,
		EpicID:    ch.EpicID,
		Title:     ch.Title,
		CreatedBy: ch.CreatedBy,
		Status:    ch.Status,
		IsMock:    ch.IsMock,
		CreatedAt: ch.CreatedAt,
	}
}
