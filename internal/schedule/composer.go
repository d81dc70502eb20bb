package schedule

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lmehta/cohortplan/internal/auth"
	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

// ComposeRequest carries everything needed to expand one experience onto
// the calendar of a (cohort, epic) scope.
type ComposeRequest struct {
	Experience  Experience
	CohortID    string
	EpicID      string
	ActorID     string
	StartDate   time.Time
	StartSlot   int
	SlotsPerDay int
}

// Composer expands an experience definition into a concrete ordered session
// sequence, validates the whole sequence as a unit, then commits it in one
// batch tied to a freshly created challenge record.
type Composer struct {
	sessions   store.SessionRepo
	challenges store.ChallengeRepo
	defaults   store.SlotDefaultRepo
	checker    auth.Checker
	validator  *Validator
	writer     *Writer

	// skipWeekday, when set, is the non-working day skipped during
	// automatic forward allocation.
	skipWeekday    time.Weekday
	hasSkipWeekday bool
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithSkipWeekday makes automatic allocation step over the given weekday.
func WithSkipWeekday(wd time.Weekday) ComposerOption {
	return func(c *Composer) {
		c.skipWeekday = wd
		c.hasSkipWeekday = true
	}
}

// NewComposer creates a Composer over the given stores. defaults and
// checker may be nil: sessions then get no fixed times, and mock challenge
// creation is denied for everyone.
func NewComposer(sessions store.SessionRepo, challenges store.ChallengeRepo, defaults store.SlotDefaultRepo, checker auth.Checker, opts ...ComposerOption) *Composer {
	c := &Composer{
		sessions:   sessions,
		challenges: challenges,
		defaults:   defaults,
		checker:    checker,
		validator:  NewValidator(sessions),
		writer:     NewWriter(sessions),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose is the main entry point. It returns the created sessions, each
// annotated with the parent challenge's title, or a typed error:
// *ConflictError when a required cell is occupied, *AuthorizationError when
// the actor may not create a mock challenge, *StoreError otherwise. Any
// failure before the final batch write leaves the calendar unchanged.
func (c *Composer) Compose(ctx context.Context, req ComposeRequest) ([]store.Session, error) {
	if req.SlotsPerDay < 1 {
		return nil, fmt.Errorf("slots per day must be at least 1, got %d", req.SlotsPerDay)
	}
	if req.StartSlot < 1 || req.StartSlot > req.SlotsPerDay {
		return nil, fmt.Errorf("start slot %d outside [1, %d]", req.StartSlot, req.SlotsPerDay)
	}

	switch req.Experience.Kind {
	case KindCBL:
		return c.composeChallenge(ctx, req, false)
	case KindMock:
		if req.Experience.Singleton {
			// Singleton mocks carry no challenge record but stay
			// role-gated like their two-slot counterpart.
			if err := c.requireElevated(ctx, req.ActorID); err != nil {
				return nil, err
			}
			return c.composeStandalone(ctx, req)
		}
		return c.composeChallenge(ctx, req, true)
	case KindMasterclass, KindWorkshop, KindGap:
		return c.composeStandalone(ctx, req)
	default:
		return nil, fmt.Errorf("unknown experience kind %q", req.Experience.Kind)
	}
}

// composeChallenge handles the CBL and mock variants: challenge record
// first, then the full session sequence as one validated, one-shot batch.
func (c *Composer) composeChallenge(ctx context.Context, req ComposeRequest, mock bool) ([]store.Session, error) {
	if mock {
		if err := c.requireElevated(ctx, req.ActorID); err != nil {
			return nil, err
		}
	}

	ch, err := c.challenges.Create(ctx, store.Challenge{
		ID:        uuid.NewString(),
		CohortID:  req.CohortID,
		EpicID:    req.EpicID,
		Title:     req.Experience.Title,
		CreatedBy: req.ActorID,
		Status:    "active",
		IsMock:    mock,
	})
	if err != nil {
		return nil, &StoreError{Op: "create challenge", Err: err}
	}

	var specs []SessionSpec
	if mock {
		specs = c.buildMockSequence(req, ch.ID)
	} else {
		specs = c.buildCBLSequence(req, ch.ID)
	}

	refs := make([]SlotRef, 0, len(specs))
	for _, s := range specs {
		refs = append(refs, SlotRef{Date: s.Date, Slot: s.Slot})
	}
	if err := c.validator.Validate(ctx, req.CohortID, req.EpicID, refs); err != nil {
		c.cleanupChallenge(ctx, ch.ID)
		return nil, err
	}

	for i := range specs {
		start, end, err := resolveSlotTimes(ctx, c.defaults, req.CohortID, specs[i].Date, specs[i].Slot)
		if err != nil {
			c.cleanupChallenge(ctx, ch.ID)
			return nil, err
		}
		specs[i].StartTime = start
		specs[i].EndTime = end
	}

	created, err := c.writer.WriteBatch(ctx, req.CohortID, req.EpicID, specs, ch.Title)
	if err != nil {
		c.cleanupChallenge(ctx, ch.ID)
		return nil, err
	}
	return created, nil
}

// buildCBLSequence expands a CBL experience into its fixed session pattern
// starting at the requested cell. N lecture modules produce 2N+1 sessions;
// zero modules collapse to intro, innovate, transform.
func (c *Composer) buildCBLSequence(req ComposeRequest, challengeID string) []SessionSpec {
	lectures := req.Experience.SortedLectures()
	cur := NewCursor(req.StartDate, req.StartSlot)

	introTitle := req.Experience.Title
	if len(lectures) > 0 {
		introTitle = lectures[0].Title
	}

	specs := []SessionSpec{c.memberSpec(cur, sessiontype.ChallengeIntro, introTitle, challengeID)}

	cur = c.advance(cur, req.SlotsPerDay)
	specs = append(specs, c.memberSpec(cur, sessiontype.Innovate, req.Experience.Title, challengeID))

	if len(lectures) > 1 {
		for _, lecture := range lectures[1:] {
			cur = c.advance(cur, req.SlotsPerDay)
			specs = append(specs, c.memberSpec(cur, sessiontype.Learn, lecture.Title, challengeID))

			cur = c.advance(cur, req.SlotsPerDay)
			specs = append(specs, c.memberSpec(cur, sessiontype.Innovate, req.Experience.Title, challengeID))
		}
	}

	cur = c.advance(cur, req.SlotsPerDay)
	specs = append(specs, c.memberSpec(cur, sessiontype.Transform, req.Experience.Title, challengeID))

	return specs
}

// buildMockSequence expands a mock challenge into its two-slot shape:
// intro-plus-innovate in the first cell, transform-plus-reflection in the
// second.
func (c *Composer) buildMockSequence(req ComposeRequest, challengeID string) []SessionSpec {
	cur := NewCursor(req.StartDate, req.StartSlot)
	specs := []SessionSpec{c.memberSpec(cur, sessiontype.ChallengeIntro, req.Experience.Title, challengeID)}

	cur = c.advance(cur, req.SlotsPerDay)
	specs = append(specs, c.memberSpec(cur, sessiontype.Transform, req.Experience.Title, challengeID))

	return specs
}

// composeStandalone plans a single unlinked session through the same
// validate-then-write pipeline.
func (c *Composer) composeStandalone(ctx context.Context, req ComposeRequest) ([]store.Session, error) {
	cur := NewCursor(req.StartDate, req.StartSlot)
	spec := SessionSpec{
		Date:  cur.Date,
		Slot:  cur.Slot,
		Type:  req.Experience.SessionType(),
		Title: req.Experience.Title,
	}

	if err := c.validator.Validate(ctx, req.CohortID, req.EpicID, []SlotRef{{Date: spec.Date, Slot: spec.Slot}}); err != nil {
		return nil, err
	}

	start, end, err := resolveSlotTimes(ctx, c.defaults, req.CohortID, spec.Date, spec.Slot)
	if err != nil {
		return nil, err
	}
	spec.StartTime = start
	spec.EndTime = end

	return c.writer.WriteBatch(ctx, req.CohortID, req.EpicID, []SessionSpec{spec}, "")
}

func (c *Composer) memberSpec(cur Cursor, t sessiontype.Type, title, challengeID string) SessionSpec {
	return SessionSpec{
		Date:           cur.Date,
		Slot:           cur.Slot,
		Type:           t,
		Title:          title,
		ChallengeID:    challengeID,
		OriginalMember: true,
	}
}

func (c *Composer) advance(cur Cursor, slotsPerDay int) Cursor {
	if c.hasSkipWeekday {
		return cur.NextSkipping(slotsPerDay, c.skipWeekday)
	}
	return cur.Next(slotsPerDay)
}

func (c *Composer) requireElevated(ctx context.Context, actorID string) error {
	if c.checker == nil {
		return &AuthorizationError{ActorID: actorID, Action: "create a mock challenge"}
	}
	ok, err := c.checker.HasRole(ctx, actorID, auth.ElevatedRoles())
	if err != nil {
		return &StoreError{Op: "check actor role", Err: err}
	}
	if !ok {
		return &AuthorizationError{ActorID: actorID, Action: "create a mock challenge"}
	}
	return nil
}

// cleanupChallenge best-effort deletes a challenge whose sessions never
// made it to the store. A failed delete leaves an inert orphan row for the
// sweeper; the original failure stays the user-visible error.
func (c *Composer) cleanupChallenge(ctx context.Context, id string) {
	if err := c.challenges.Delete(ctx, id); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to delete orphaned challenge %s: %v\n", id, err)
	}
}
