package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlotDefault holds a cohort's default wall-clock times for one slot
// position. Sessions created in that slot inherit these times; a slot with
// no row produces sessions without a fixed time.
type SlotDefault struct {
	ent.Schema
}

func (SlotDefault) Fields() []ent.Field {
	return []ent.Field{
		field.String("cohort_id").
			NotEmpty().
			Immutable(),
		field.Int("slot").
			Min(1).
			Immutable(),
		field.String("start_at").
			NotEmpty().
			Comment("HH:mm, 24-hour"),
		field.String("end_at").
			NotEmpty().
			Comment("HH:mm, 24-hour"),
	}
}

func (SlotDefault) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cohort_id", "slot").
			Unique(),
	}
}
