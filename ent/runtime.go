// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lmehta/cohortplan/ent/challenge"
	"github.com/lmehta/cohortplan/ent/schema"
	"github.com/lmehta/cohortplan/ent/session"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeFields := schema.Challenge{}.Fields()
	_ = challengeFields
	// challengeDescCohortID is the schema descriptor for cohort_id field.
	challengeDescCohortID := challengeFields[1].Descriptor()
	// challenge.CohortIDValidator is a validator for the "cohort_id" field. It is called by the builders before save.
	challenge.CohortIDValidator = challengeDescCohortID.Validators[0].(func(string) error)
	// challengeDescEpicID is the schema descriptor for epic_id field.
	challengeDescEpicID := challengeFields[2].Descriptor()
	// challenge.EpicIDValidator is a validator for the "epic_id" field. It is called by the builders before save.
	challenge.EpicIDValidator = challengeDescEpicID.Validators[0].(func(string) error)
	// challengeDescTitle is the schema descriptor for title field.
	challengeDescTitle := challengeFields[3].Descriptor()
	// challenge.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	challenge.TitleValidator = challengeDescTitle.Validators[0].(func(string) error)
	// challengeDescCreatedBy is the schema descriptor for created_by field.
	challengeDescCreatedBy := challengeFields[4].Descriptor()
	// challenge.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	challenge.CreatedByValidator = challengeDescCreatedBy.Validators[0].(func(string) error)
	// challengeDescStatus is the schema descriptor for status field.
	challengeDescStatus := challengeFields[5].Descriptor()
	// challenge.DefaultStatus holds the default value on creation for the status field.
	challenge.DefaultStatus = challengeDescStatus.Default.(string)
	// challengeDescIsMock is the schema descriptor for is_mock field.
	challengeDescIsMock := challengeFields[6].Descriptor()
	// challenge.DefaultIsMock holds the default value on creation for the is_mock field.
	challenge.DefaultIsMock = challengeDescIsMock.Default.(bool)
	// challengeDescCreatedAt is the schema descriptor for created_at field.
	challengeDescCreatedAt := challengeFields[7].Descriptor()
	// challenge.DefaultCreatedAt holds the default value on creation for the created_at field.
	challenge.DefaultCreatedAt = challengeDescCreatedAt.Default.(func() time.Time)
	// challengeDescID is the schema descriptor for id field.
	challengeDescID := challengeFields[0].Descriptor()
	// challenge.IDValidator is a validator for the "id" field. It is called by the builders before save.
	challenge.IDValidator = challengeDescID.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCohortID is the schema descriptor for cohort_id field.
	sessionDescCohortID := sessionFields[0].Descriptor()
	// session.CohortIDValidator is a validator for the "cohort_id" field. It is called by the builders before save.
	session.CohortIDValidator = sessionDescCohortID.Validators[0].(func(string) error)
	// sessionDescEpicID is the schema descriptor for epic_id field.
	sessionDescEpicID := sessionFields[1].Descriptor()
	// session.EpicIDValidator is a validator for the "epic_id" field. It is called by the builders before save.
	session.EpicIDValidator = sessionDescEpicID.Validators[0].(func(string) error)
	// sessionDescSlot is the schema descriptor for slot field.
	sessionDescSlot := sessionFields[3].Descriptor()
	// session.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	session.SlotValidator = sessionDescSlot.Validators[0].(func(int) error)
	// sessionDescSessionType is the schema descriptor for session_type field.
	sessionDescSessionType := sessionFields[4].Descriptor()
	// session.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	session.SessionTypeValidator = sessionDescSessionType.Validators[0].(func(string) error)
	// sessionDescTitle is the schema descriptor for title field.
	sessionDescTitle := sessionFields[5].Descriptor()
	// session.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	session.TitleValidator = sessionDescTitle.Validators[0].(func(string) error)
	// sessionDescIsOriginalChallengeMember is the schema descriptor for is_original_challenge_member field.
	sessionDescIsOriginalChallengeMember := sessionFields[9].Descriptor()
	// session.DefaultIsOriginalChallengeMember holds the default value on creation for the is_original_challenge_member field.
	session.DefaultIsOriginalChallengeMember = sessionDescIsOriginalChallengeMember.Default.(bool)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[10].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	slotdefaultFields := schema.SlotDefault{}.Fields()
	_ = slotdefaultFields
	// slotdefaultDescCohortID is the schema descriptor for cohort_id field.
	slotdefaultDescCohortID := slotdefaultFields[0].Descriptor()
	// slotdefault.CohortIDValidator is a validator for the "cohort_id" field. It is called by the builders before save.
	slotdefault.CohortIDValidator = slotdefaultDescCohortID.Validators[0].(func(string) error)
	// slotdefaultDescSlot is the schema descriptor for slot field.
	slotdefaultDescSlot := slotdefaultFields[1].Descriptor()
	// slotdefault.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	slotdefault.SlotValidator = slotdefaultDescSlot.Validators[0].(func(int) error)
	// slotdefaultDescStartAt is the schema descriptor for start_at field.
	slotdefaultDescStartAt := slotdefaultFields[2].Descriptor()
	// slotdefault.StartAtValidator is a validator for the "start_at" field. It is called by the builders before save.
	slotdefault.StartAtValidator = slotdefaultDescStartAt.Validators[0].(func(string) error)
	// slotdefaultDescEndAt is the schema descriptor for end_at field.
	slotdefaultDescEndAt := slotdefaultFields[3].Descriptor()
	// slotdefault.EndAtValidator is a validator for the "end_at" field. It is called by the builders before save.
	slotdefault.EndAtValidator = slotdefaultDescEndAt.Validators[0].(func(string) error)
}
