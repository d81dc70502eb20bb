package boundary

import (
	"testing"

	"github.com/lmehta/cohortplan/internal/sessiontype"
)

func TestCanMove(t *testing.T) {
	tests := []struct {
		name         string
		typ          sessiontype.Type
		sourceWithin bool
		destWithin   bool
		want         bool
	}{
		{"learn leaving its envelope", sessiontype.Learn, true, false, false},
		{"innovate leaving its envelope", sessiontype.Innovate, true, false, false},
		{"learn moving inside", sessiontype.Learn, true, true, true},
		{"learn outside to outside", sessiontype.Learn, false, false, true},
		{"intro resizing the boundary", sessiontype.ChallengeIntro, true, false, true},
		{"transform resizing the boundary", sessiontype.Transform, true, false, true},
		{"workshop anywhere", sessiontype.Workshop, true, false, true},
		{"masterclass anywhere", sessiontype.Masterclass, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.typ, tt.sourceWithin, tt.destWithin); got != tt.want {
				t.Errorf("CanMove(%s, %v, %v) = %v, want %v", tt.typ, tt.sourceWithin, tt.destWithin, got, tt.want)
			}
		})
	}
}

func TestCanPlaceNew(t *testing.T) {
	// Dropping a learn from the palette outside any envelope is rejected;
	// dropping an intro on the same cell is fine.
	if CanPlaceNew(sessiontype.Learn, false) {
		t.Error("new learn outside an envelope must be rejected")
	}
	if !CanPlaceNew(sessiontype.ChallengeIntro, false) {
		t.Error("new intro may land anywhere")
	}
	if !CanPlaceNew(sessiontype.Learn, true) {
		t.Error("new learn inside an envelope is allowed")
	}
	if !CanPlaceNew(sessiontype.Gap, false) {
		t.Error("non-challenge types are never restricted")
	}
}
