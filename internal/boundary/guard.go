package boundary

import "github.com/lmehta/cohortplan/internal/sessiontype"

// CanMove decides whether an existing session may be relocated given the
// envelope membership of its current and target cells. Interior sessions
// (learn, innovate) must stay inside their challenge; anchors define the
// envelope and move freely, since moving them is how a user resizes it.
// Non-challenge types are never restricted.
func CanMove(t sessiontype.Type, sourceWithin, destWithin bool) bool {
	if !t.Interior() {
		return true
	}
	if sourceWithin && !destWithin {
		return false
	}
	return true
}

// CanPlaceNew decides whether a not-yet-existing session dropped from the
// palette may land on the target cell. Interior types need an envelope to
// live inside; everything else lands anywhere.
func CanPlaceNew(t sessiontype.Type, destWithin bool) bool {
	if !t.Interior() {
		return true
	}
	return destWithin
}
