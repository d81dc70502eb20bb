package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one bookable unit of learning content occupying a (date, slot)
// cell of a cohort's calendar for a given epic.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("cohort_id").
			NotEmpty().
			Immutable(),
		field.String("epic_id").
			NotEmpty().
			Immutable(),
		field.Time("date").
			Comment("Calendar day, truncated to midnight UTC"),
		field.Int("slot").
			Min(1).
			Comment("1-based position within the day's bookable slots"),
		field.String("session_type").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("challenge_id").
			Optional().
			Comment("Parent challenge; empty for standalone sessions"),
		field.Bool("is_original_challenge_member").
			Default(false).
			Comment("True only for sessions created with the challenge's canonical group"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// The availability invariant: one session per calendar cell.
		// Concurrent composers that both pass pre-validation race on this
		// index; exactly one insert wins.
		index.Fields("cohort_id", "epic_id", "date", "slot").
			Unique(),
		index.Fields("cohort_id", "epic_id"),
		index.Fields("challenge_id"),
	}
}
