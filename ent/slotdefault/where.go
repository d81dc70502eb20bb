// Code generated by ent, DO NOT EDIT.

package slotdefault

import (
	"entgo.io/ent/dialect/sql"
	"github.com/lmehta/cohortplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLTE(FieldID, id))
}

// CohortID applies equality check predicate on the "cohort_id" field. It's identical to CohortIDEQ.
func CohortID(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldCohortID, v))
}

// Slot applies equality check predicate on the "slot" field. It's identical to SlotEQ.
func Slot(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldSlot, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldStartAt, v))
}

// EndAt applies equality check predicate on the "end_at" field. It's identical to EndAtEQ.
func EndAt(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldEndAt, v))
}

// CohortIDEQ applies the EQ predicate on the "cohort_id" field.
func CohortIDEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldCohortID, v))
}

// CohortIDNEQ applies the NEQ predicate on the "cohort_id" field.
func CohortIDNEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNEQ(FieldCohortID, v))
}

// CohortIDIn applies the In predicate on the "cohort_id" field.
func CohortIDIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldIn(FieldCohortID, vs...))
}

// CohortIDNotIn applies the NotIn predicate on the "cohort_id" field.
func CohortIDNotIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNotIn(FieldCohortID, vs...))
}

// CohortIDGT applies the GT predicate on the "cohort_id" field.
func CohortIDGT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGT(FieldCohortID, v))
}

// CohortIDGTE applies the GTE predicate on the "cohort_id" field.
func CohortIDGTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGTE(FieldCohortID, v))
}

// CohortIDLT applies the LT predicate on the "cohort_id" field.
func CohortIDLT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLT(FieldCohortID, v))
}

// CohortIDLTE applies the LTE predicate on the "cohort_id" field.
func CohortIDLTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLTE(FieldCohortID, v))
}

// CohortIDContains applies the Contains predicate on the "cohort_id" field.
func CohortIDContains(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContains(FieldCohortID, v))
}

// CohortIDHasPrefix applies the HasPrefix predicate on the "cohort_id" field.
func CohortIDHasPrefix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasPrefix(FieldCohortID, v))
}

// CohortIDHasSuffix applies the HasSuffix predicate on the "cohort_id" field.
func CohortIDHasSuffix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasSuffix(FieldCohortID, v))
}

// CohortIDEqualFold applies the EqualFold predicate on the "cohort_id" field.
func CohortIDEqualFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEqualFold(FieldCohortID, v))
}

// CohortIDContainsFold applies the ContainsFold predicate on the "cohort_id" field.
func CohortIDContainsFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContainsFold(FieldCohortID, v))
}

// SlotEQ applies the EQ predicate on the "slot" field.
func SlotEQ(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldSlot, v))
}

// SlotNEQ applies the NEQ predicate on the "slot" field.
func SlotNEQ(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNEQ(FieldSlot, v))
}

// SlotIn applies the In predicate on the "slot" field.
func SlotIn(vs ...int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldIn(FieldSlot, vs...))
}

// SlotNotIn applies the NotIn predicate on the "slot" field.
func SlotNotIn(vs ...int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNotIn(FieldSlot, vs...))
}

// SlotGT applies the GT predicate on the "slot" field.
func SlotGT(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGT(FieldSlot, v))
}

// SlotGTE applies the GTE predicate on the "slot" field.
func SlotGTE(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGTE(FieldSlot, v))
}

// SlotLT applies the LT predicate on the "slot" field.
func SlotLT(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLT(FieldSlot, v))
}

// SlotLTE applies the LTE predicate on the "slot" field.
func SlotLTE(v int) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLTE(FieldSlot, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLTE(FieldStartAt, v))
}

// StartAtContains applies the Contains predicate on the "start_at" field.
func StartAtContains(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContains(FieldStartAt, v))
}

// StartAtHasPrefix applies the HasPrefix predicate on the "start_at" field.
func StartAtHasPrefix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasPrefix(FieldStartAt, v))
}

// StartAtHasSuffix applies the HasSuffix predicate on the "start_at" field.
func StartAtHasSuffix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasSuffix(FieldStartAt, v))
}

// StartAtEqualFold applies the EqualFold predicate on the "start_at" field.
func StartAtEqualFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEqualFold(FieldStartAt, v))
}

// StartAtContainsFold applies the ContainsFold predicate on the "start_at" field.
func StartAtContainsFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContainsFold(FieldStartAt, v))
}

// EndAtEQ applies the EQ predicate on the "end_at" field.
func EndAtEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEQ(FieldEndAt, v))
}

// EndAtNEQ applies the NEQ predicate on the "end_at" field.
func EndAtNEQ(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNEQ(FieldEndAt, v))
}

// EndAtIn applies the In predicate on the "end_at" field.
func EndAtIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldIn(FieldEndAt, vs...))
}

// EndAtNotIn applies the NotIn predicate on the "end_at" field.
func EndAtNotIn(vs ...string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldNotIn(FieldEndAt, vs...))
}

// EndAtGT applies the GT predicate on the "end_at" field.
func EndAtGT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGT(FieldEndAt, v))
}

// EndAtGTE applies the GTE predicate on the "end_at" field.
func EndAtGTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldGTE(FieldEndAt, v))
}

// EndAtLT applies the LT predicate on the "end_at" field.
func EndAtLT(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLT(FieldEndAt, v))
}

// EndAtLTE applies the LTE predicate on the "end_at" field.
func EndAtLTE(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldLTE(FieldEndAt, v))
}

// EndAtContains applies the Contains predicate on the "end_at" field.
func EndAtContains(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContains(FieldEndAt, v))
}

// EndAtHasPrefix applies the HasPrefix predicate on the "end_at" field.
func EndAtHasPrefix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasPrefix(FieldEndAt, v))
}

// EndAtHasSuffix applies the HasSuffix predicate on the "end_at" field.
func EndAtHasSuffix(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldHasSuffix(FieldEndAt, v))
}

// EndAtEqualFold applies the EqualFold predicate on the "end_at" field.
func EndAtEqualFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldEqualFold(FieldEndAt, v))
}

// EndAtContainsFold applies the ContainsFold predicate on the "end_at" field.
func EndAtContainsFold(v string) predicate.SlotDefault {
	return predicate.SlotDefault(sql.FieldContainsFold(FieldEndAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlotDefault) predicate.SlotDefault {
	return predicate.SlotDefault(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlotDefault) predicate.SlotDefault {
	return predicate.SlotDefault(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlotDefault) predicate.SlotDefault {
	return predicate.SlotDefault(sql.NotPredicates(p))
}
