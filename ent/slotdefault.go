// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// SlotDefault is the model entity for the SlotDefault schema.
type SlotDefault struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CohortID holds the value of the "cohort_id" field.
	CohortID string `json:"cohort_id,omitempty"`
	// Slot holds the value of the "slot" field.
	Slot int `json:"slot,omitempty"`
	// HH:mm, 24-hour
	StartAt string `json:"start_at,omitempty"`
	// HH:mm, 24-hour
	EndAt        string `json:"end_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlotDefault) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slotdefault.FieldID, slotdefault.FieldSlot:
			values[i] = new(sql.NullInt64)
		case slotdefault.FieldCohortID, slotdefault.FieldStartAt, slotdefault.FieldEndAt:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlotDefault fields.
func (sd *SlotDefault) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slotdefault.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sd.ID = int(value.Int64)
		case slotdefault.FieldCohortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cohort_id", values[i])
			} else if value.Valid {
				sd.CohortID = value.String
			}
		case slotdefault.FieldSlot:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot", values[i])
			} else if value.Valid {
				sd.Slot = int(value.Int64)
			}
		case slotdefault.FieldStartAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_at", values[i])
			} else if value.Valid {
				sd.StartAt = value.String
			}
		case slotdefault.FieldEndAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_at", values[i])
			} else if value.Valid {
				sd.EndAt = value.String
			}
		default:
			sd.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SlotDefault.
// This includes values selected through modifiers, order, etc.
func (sd *SlotDefault) Value(name string) (ent.Value, error) {
	return sd.selectValues.Get(name)
}

// Update returns a builder for updating this SlotDefault.
// Note that you need to call SlotDefault.Unwrap() before calling this method if this SlotDefault
// was returned from a transaction, and the transaction was committed or rolled back.
func (sd *SlotDefault) Update() *SlotDefaultUpdateOne {
	return NewSlotDefaultClient(sd.config).UpdateOne(sd)
}

// Unwrap unwraps the SlotDefault entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sd *SlotDefault) Unwrap() *SlotDefault {
	_tx, ok := sd.config.driver.(*txDriver)
	if !ok {
		panic("ent: SlotDefault is not a transactional entity")
	}
	sd.config.driver = _tx.drv
	return sd
}

// String implements the fmt.Stringer.
func (sd *SlotDefault) String() string {
	var builder strings.Builder
	builder.WriteString("SlotDefault(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sd.ID))
	builder.WriteString("cohort_id=")
	builder.WriteString(sd.CohortID)
	builder.WriteString(", ")
	builder.WriteString("slot=")
	builder.WriteString(fmt.Sprintf("%v", sd.Slot))
	builder.WriteString(", ")
	builder.WriteString("start_at=")
	builder.WriteString(sd.StartAt)
	builder.WriteString(", ")
	builder.WriteString("end_at=")
	builder.WriteString(sd.EndAt)
	builder.WriteByte(')')
	return builder.String()
}

// SlotDefaults is a parsable slice of SlotDefault.
type SlotDefaults []*SlotDefault
