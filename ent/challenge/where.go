// Code generated by ent, DO NOT EDIT.

package challenge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lmehta/cohortplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldID, id))
}

// CohortID applies equality check predicate on the "cohort_id" field. It's identical to CohortIDEQ.
func CohortID(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCohortID, v))
}

// EpicID applies equality check predicate on the "epic_id" field. It's identical to EpicIDEQ.
func EpicID(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldEpicID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldTitle, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedBy, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldStatus, v))
}

// IsMock applies equality check predicate on the "is_mock" field. It's identical to IsMockEQ.
func IsMock(v bool) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldIsMock, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// CohortIDEQ applies the EQ predicate on the "cohort_id" field.
func CohortIDEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCohortID, v))
}

// CohortIDNEQ applies the NEQ predicate on the "cohort_id" field.
func CohortIDNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCohortID, v))
}

// CohortIDIn applies the In predicate on the "cohort_id" field.
func CohortIDIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCohortID, vs...))
}

// CohortIDNotIn applies the NotIn predicate on the "cohort_id" field.
func CohortIDNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCohortID, vs...))
}

// CohortIDGT applies the GT predicate on the "cohort_id" field.
func CohortIDGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCohortID, v))
}

// CohortIDGTE applies the GTE predicate on the "cohort_id" field.
func CohortIDGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCohortID, v))
}

// CohortIDLT applies the LT predicate on the "cohort_id" field.
func CohortIDLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCohortID, v))
}

// CohortIDLTE applies the LTE predicate on the "cohort_id" field.
func CohortIDLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCohortID, v))
}

// CohortIDContains applies the Contains predicate on the "cohort_id" field.
func CohortIDContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldCohortID, v))
}

// CohortIDHasPrefix applies the HasPrefix predicate on the "cohort_id" field.
func CohortIDHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldCohortID, v))
}

// CohortIDHasSuffix applies the HasSuffix predicate on the "cohort_id" field.
func CohortIDHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldCohortID, v))
}

// CohortIDEqualFold applies the EqualFold predicate on the "cohort_id" field.
func CohortIDEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldCohortID, v))
}

// CohortIDContainsFold applies the ContainsFold predicate on the "cohort_id" field.
func CohortIDContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldCohortID, v))
}

// EpicIDEQ applies the EQ predicate on the "epic_id" field.
func EpicIDEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldEpicID, v))
}

// EpicIDNEQ applies the NEQ predicate on the "epic_id" field.
func EpicIDNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldEpicID, v))
}

// EpicIDIn applies the In predicate on the "epic_id" field.
func EpicIDIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldEpicID, vs...))
}

// EpicIDNotIn applies the NotIn predicate on the "epic_id" field.
func EpicIDNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldEpicID, vs...))
}

// EpicIDGT applies the GT predicate on the "epic_id" field.
func EpicIDGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldEpicID, v))
}

// EpicIDGTE applies the GTE predicate on the "epic_id" field.
func EpicIDGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldEpicID, v))
}

// EpicIDLT applies the LT predicate on the "epic_id" field.
func EpicIDLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldEpicID, v))
}

// EpicIDLTE applies the LTE predicate on the "epic_id" field.
func EpicIDLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldEpicID, v))
}

// EpicIDContains applies the Contains predicate on the "epic_id" field.
func EpicIDContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldEpicID, v))
}

// EpicIDHasPrefix applies the HasPrefix predicate on the "epic_id" field.
func EpicIDHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldEpicID, v))
}

// EpicIDHasSuffix applies the HasSuffix predicate on the "epic_id" field.
func EpicIDHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldEpicID, v))
}

// EpicIDEqualFold applies the EqualFold predicate on the "epic_id" field.
func EpicIDEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldEpicID, v))
}

// EpicIDContainsFold applies the ContainsFold predicate on the "epic_id" field.
func EpicIDContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldEpicID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldTitle, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldCreatedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldStatus, v))
}

// IsMockEQ applies the EQ predicate on the "is_mock" field.
func IsMockEQ(v bool) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldIsMock, v))
}

// IsMockNEQ applies the NEQ predicate on the "is_mock" field.
func IsMockNEQ(v bool) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldIsMock, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.NotPredicates(p))
}
