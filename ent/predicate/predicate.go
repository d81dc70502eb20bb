// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Challenge is the predicate function for challenge builders.
type Challenge func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SlotDefault is the predicate function for slotdefault builders.
type SlotDefault func(*sql.Selector)
