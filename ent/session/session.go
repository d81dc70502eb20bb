// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCohortID holds the string denoting the cohort_id field in the database.
	FieldCohortID = "cohort_id"
	// FieldEpicID holds the string denoting the epic_id field in the database.
	FieldEpicID = "epic_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldSlot holds the string denoting the slot field in the database.
	FieldSlot = "slot"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldIsOriginalChallengeMember holds the string denoting the is_original_challenge_member field in the database.
	FieldIsOriginalChallengeMember = "is_original_challenge_member"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCohortID,
	FieldEpicID,
	FieldDate,
	FieldSlot,
	FieldSessionType,
	FieldTitle,
	FieldStartTime,
	FieldEndTime,
	FieldChallengeID,
	FieldIsOriginalChallengeMember,
	FieldCreatedAt,
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
	// EpicIDValidator is a validator for the "epic_id" field. It is called by the builders before save.
	EpicIDValidator func(string) error
	// SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	SlotValidator func(int) error
	// SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	SessionTypeValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsOriginalChallengeMember holds the default value on creation for the "is_original_challenge_member" field.
	DefaultIsOriginalChallengeMember bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCohortID orders the results by the cohort_id field.
func ByCohortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohortID, opts...).ToFunc()
}

// ByEpicID orders the results by the epic_id field.
func ByEpicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpicID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// BySlot orders the results by the slot field.
func BySlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlot, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByIsOriginalChallengeMember orders the results by the is_original_challenge_member field.
func ByIsOriginalChallengeMember(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOriginalChallengeMember, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
