package boundary

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lmehta/cohortplan/internal/store"
)

// Envelope is the derived date range and end-date slot ceiling of one
// challenge's member sessions. It is computed on demand and never stored;
// recompute it whenever the underlying session set changes.
type Envelope struct {
	ChallengeID    string
	ChallengeTitle string
	StartDate      time.Time
	EndDate        time.Time
	SlotMin        int
	SlotMax        int
	IsMock         bool
}

// Contains reports whether a calendar cell lies inside the envelope. Days
// strictly before the end date (and not before the start) are inside
// regardless of slot; on the end date only slots up to the ceiling count.
// A single-day challenge collapses to the end-date rule.
func (e Envelope) Contains(date time.Time, slot int) bool {
	d := store.DayOf(date)
	if d.Before(e.StartDate) {
		return false
	}
	if d.Before(e.EndDate) {
		return true
	}
	if d.Equal(e.EndDate) {
		return slot <= e.SlotMax
	}
	return false
}

// Detector derives boundary envelopes from session sets. It is read-only
// and safe to rerun any number of times per render.
type Detector struct {
	challenges store.ChallengeRepo
}

// NewDetector creates a Detector. The challenge repo resolves titles and
// the mock flag; it may be nil, in which case both fall back to the member
// sessions themselves.
func NewDetector(challenges store.ChallengeRepo) *Detector {
	return &Detector{challenges: challenges}
}

// Detect groups the challenge-linked sessions in the input by challenge and
// derives each group's envelope. Only the chronologically first and last
// sessions of a group determine it; moving a middle session never shifts
// the boundary. Envelopes come back ordered by start date, then challenge id.
func (d *Detector) Detect(ctx context.Context, sessions []store.Session) ([]Envelope, error) {
	groups := make(map[string][]store.Session)
	for _, s := range sessions {
		if s.ChallengeID == "" || !s.Type.InChallengeFamily() {
			continue
		}
		groups[s.ChallengeID] = append(groups[s.ChallengeID], s)
	}

	envelopes := make([]Envelope, 0, len(groups))
	for challengeID, members := range groups {
		sort.Slice(members, func(i, j int) bool {
			di, dj := store.DayOf(members[i].Date), store.DayOf(members[j].Date)
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return members[i].Slot < members[j].Slot
		})

		first := members[0]
		last := members[len(members)-1]

		env := Envelope{
			ChallengeID: challengeID,
			StartDate:   store.DayOf(first.Date),
			EndDate:     store.DayOf(last.Date),
			SlotMin:     1,
			SlotMax:     last.Slot,
		}
		env.ChallengeTitle, env.IsMock = d.resolveChallenge(ctx, challengeID, first)
		envelopes = append(envelopes, env)
	}

	sort.Slice(envelopes, func(i, j int) bool {
		if !envelopes[i].StartDate.Equal(envelopes[j].StartDate) {
			return envelopes[i].StartDate.Before(envelopes[j].StartDate)
		}
		return envelopes[i].ChallengeID < envelopes[j].ChallengeID
	})
	return envelopes, nil
}

// resolveChallenge looks up the parent challenge's title and mock flag.
// When the record is unavailable the first member's title stands in, and
// the mock flag falls back to a substring check on that title.
func (d *Detector) resolveChallenge(ctx context.Context, challengeID string, first store.Session) (title string, isMock bool) {
	title = first.Title
	if d.challenges != nil {
		ch, err := d.challenges.Get(ctx, challengeID)
		if err == nil && ch != nil {
			return ch.Title, ch.IsMock
		}
	}
	return title, strings.Contains(strings.ToLower(title), "mock")
}

// WithinAny reports whether a cell is inside any of the envelopes.
func WithinAny(envelopes []Envelope, date time.Time, slot int) bool {
	for _, e := range envelopes {
		if e.Contains(date, slot) {
			return true
		}
	}
	return false
}
