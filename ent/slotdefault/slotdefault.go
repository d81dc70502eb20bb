// Code generated by ent, DO NOT EDIT.

package slotdefault

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slotdefault type in the database.
	Label = "slot_default"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCohortID holds the string denoting the cohort_id field in the database.
	FieldCohortID = "cohort_id"
	// FieldSlot holds the string denoting the slot field in the database.
	FieldSlot = "slot"
	// FieldStartAt holds the string denoting the start_at field in the database.
	FieldStartAt = "start_at"
	// FieldEndAt holds the string denoting the end_at field in the database.
	FieldEndAt = "end_at"
	// Table holds the table name of the slotdefault in the database.
	Table = "slot_defaults"
)

// Columns holds all SQL columns for slotdefault fields.
var Columns = []string{
	FieldID,
	FieldCohortID,
	FieldSlot,
	FieldStartAt,
	FieldEndAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CohortIDValidator is a validator for the "cohort_id" field. It is called by the builders before save.
	CohortIDValidator func(string) error
	// SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	SlotValidator func(int) error
	// StartAtValidator is a validator for the "start_at" field. It is called by the builders before save.
	StartAtValidator func(string) error
	// EndAtValidator is a validator for the "end_at" field. It is called by the builders before save.
	EndAtValidator func(string) error
)

// OrderOption defines the ordering options for the SlotDefault queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCohortID orders the results by the cohort_id field.
func ByCohortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohortID, opts...).ToFunc()
}

// BySlot orders the results by the slot field.
func BySlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlot, opts...).ToFunc()
}

// ByStartAt orders the results by the start_at field.
func ByStartAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartAt, opts...).ToFunc()
}

// ByEndAt orders the results by the end_at field.
func ByEndAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAt, opts...).ToFunc()
}
