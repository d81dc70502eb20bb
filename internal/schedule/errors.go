package schedule

import (
	"fmt"
	"time"
)

// ConflictError reports the first required (date, slot) that is already
// occupied. The caller can recover by re-choosing a start point.
type ConflictError struct {
	Date time.Time
	Slot int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %d on %s is already occupied", e.Slot, e.Date.Format("2006-01-02"))
}

// AuthorizationError reports that the actor lacks the role required for a
// restricted operation.
type AuthorizationError struct {
	ActorID string
	Action  string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor %s is not allowed to %s", e.ActorID, e.Action)
}

// StoreError wraps a failed store operation with the operation name.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
