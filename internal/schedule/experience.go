package schedule

import (
	"sort"

	"github.com/lmehta/cohortplan/internal/sessiontype"
)

// Kind classifies an experience by how it expands into sessions.
type Kind string

const (
	// KindCBL is a challenge-based-learning unit: an intro, alternating
	// learn/innovate sessions per lecture module, and a closing transform.
	KindCBL Kind = "cbl"

	// KindMock is the lighter two-slot practice variant of a challenge.
	KindMock Kind = "mock-challenge"

	KindMasterclass Kind = "masterclass"
	KindWorkshop    Kind = "workshop"
	KindGap         Kind = "gap"
)

// LectureModule is one ordered lecture within a CBL experience.
type LectureModule struct {
	Title string
	Order int
}

// Experience is a reusable definition of a learning unit that expands into
// one or more sessions.
type Experience struct {
	ID       string
	Kind     Kind
	Title    string
	Lectures []LectureModule

	// Singleton plans a mock challenge as one unlinked mock-challenge
	// session instead of the two-slot group. Ignored for other kinds.
	Singleton bool
}

// SortedLectures returns the experience's lecture modules in declared order.
func (e Experience) SortedLectures() []LectureModule {
	out := make([]LectureModule, len(e.Lectures))
	copy(out, e.Lectures)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Standalone reports whether the experience plans exactly one session with
// no challenge linkage.
func (e Experience) Standalone() bool {
	switch e.Kind {
	case KindMasterclass, KindWorkshop, KindGap:
		return true
	case KindMock:
		return e.Singleton
	default:
		return false
	}
}

// SessionType returns the session type a standalone experience produces.
func (e Experience) SessionType() sessiontype.Type {
	switch e.Kind {
	case KindMasterclass:
		return sessiontype.Masterclass
	case KindWorkshop:
		return sessiontype.Workshop
	case KindGap:
		return sessiontype.Gap
	case KindMock:
		return sessiontype.MockChallenge
	default:
		return sessiontype.GenericCBL
	}
}
