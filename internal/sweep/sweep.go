package sweep

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lmehta/cohortplan/internal/store"
)

// Sweeper deletes challenge records that never got their sessions: a
// composer whose compensating delete failed leaves such rows behind, and
// they stay inert until this pass removes them.
type Sweeper struct {
	sessions   store.SessionRepo
	challenges store.ChallengeRepo
	grace      time.Duration
}

// New creates a Sweeper. Challenges younger than grace are left alone so a
// composer mid-flight is never swept out from under its own batch write.
func New(sessions store.SessionRepo, challenges store.ChallengeRepo, grace time.Duration) *Sweeper {
	return &Sweeper{sessions: sessions, challenges: challenges, grace: grace}
}

// Sweep deletes every orphaned challenge older than the grace period and
// reports how many were removed. Individual delete failures are logged and
// skipped; the sweep runs again later anyway.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.grace)
	candidates, err := s.challenges.ListCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list sweep candidates: %w", err)
	}

	removed := 0
	for _, ch := range candidates {
		n, err := s.sessions.CountByChallenge(ctx, ch.ID)
		if err != nil {
			return removed, fmt.Errorf("count sessions for challenge %s: %w", ch.ID, err)
		}
		if n > 0 {
			continue
		}
		if err := s.challenges.Delete(ctx, ch.ID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to sweep challenge %s: %v\n", ch.ID, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Watch runs the sweep on the given cron schedule until ctx is cancelled.
func (s *Sweeper) Watch(ctx context.Context, cronExpr string) error {
	c := cron.New()
	_, err := c.AddFunc(cronExpr, func() {
		n, err := s.Sweep(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: sweep failed: %v\n", err)
			return
		}
		if n > 0 {
			fmt.Printf("swept %d orphaned challenge(s)\n", n)
		}
	})
	if err != nil {
		return fmt.Errorf("parse cron expression %q: %w", cronExpr, err)
	}

	c.Start()
	<-ctx.Done()
	stop := c.Stop()
	<-stop.Done()
	return ctx.Err()
}
