package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Challenge is the parent grouping record for a multi-session experience.
// It is created before its member sessions so they have an id to link to;
// if the batch write fails the composer deletes it again (best effort).
type Challenge struct {
	ent.Schema
}

func (Challenge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Client-assigned UUID"),
		field.String("cohort_id").
			NotEmpty().
			Immutable(),
		field.String("epic_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("created_by").
			NotEmpty(),
		field.String("status").
			Default("active"),
		field.Bool("is_mock").
			Default(false).
			Comment("Lighter two-slot practice variant"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Challenge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cohort_id", "epic_id"),
	}
}
