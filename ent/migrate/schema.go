// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengesColumns holds the columns for the "challenges" table.
	ChallengesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "cohort_id", Type: field.TypeString},
		{Name: "epic_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "is_mock", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChallengesTable holds the schema information for the "challenges" table.
	ChallengesTable = &schema.Table{
		Name:       "challenges",
		Columns:    ChallengesColumns,
		PrimaryKey: []*schema.Column{ChallengesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challenge_cohort_id_epic_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengesColumns[1], ChallengesColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cohort_id", Type: field.TypeString},
		{Name: "epic_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "slot", Type: field.TypeInt},
		{Name: "session_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "challenge_id", Type: field.TypeString, Nullable: true},
		{Name: "is_original_challenge_member", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_cohort_id_epic_id_date_slot",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2], SessionsColumns[3], SessionsColumns[4]},
			},
			{
				Name:    "session_cohort_id_epic_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2]},
			},
			{
				Name:    "session_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[9]},
			},
		},
	}
	// SlotDefaultsColumns holds the columns for the "slot_defaults" table.
	SlotDefaultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cohort_id", Type: field.TypeString},
		{Name: "slot", Type: field.TypeInt},
		{Name: "start_at", Type: field.TypeString},
		{Name: "end_at", Type: field.TypeString},
	}
	// SlotDefaultsTable holds the schema information for the "slot_defaults" table.
	SlotDefaultsTable = &schema.Table{
		Name:       "slot_defaults",
		Columns:    SlotDefaultsColumns,
		PrimaryKey: []*schema.Column{SlotDefaultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slotdefault_cohort_id_slot",
				Unique:  true,
				Columns: []*schema.Column{SlotDefaultsColumns[1], SlotDefaultsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengesTable,
		SessionsTable,
		SlotDefaultsTable,
	}
)

func init() {
}
