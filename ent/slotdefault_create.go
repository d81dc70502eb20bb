// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// SlotDefaultCreate is the builder for creating a SlotDefault entity.
type SlotDefaultCreate struct {
	config
	mutation *SlotDefaultMutation
	hooks    []Hook
}

// SetCohortID sets the "cohort_id" field.
func (sdc *SlotDefaultCreate) SetCohortID(s string) *SlotDefaultCreate {
	sdc.mutation.SetCohortID(s)
	return sdc
}

// SetSlot sets the "slot" field.
func (sdc *SlotDefaultCreate) SetSlot(i int) *SlotDefaultCreate {
	sdc.mutation.SetSlot(i)
	return sdc
}

// SetStartAt sets the "start_at" field.
func (sdc *SlotDefaultCreate) SetStartAt(s string) *SlotDefaultCreate {
	sdc.mutation.SetStartAt(s)
	return sdc
}

// SetEndAt sets the "end_at" field.
func (sdc *SlotDefaultCreate) SetEndAt(s string) *SlotDefaultCreate {
	sdc.mutation.SetEndAt(s)
	return sdc
}

// Mutation returns the SlotDefaultMutation object of the builder.
func (sdc *SlotDefaultCreate) Mutation() *SlotDefaultMutation {
	return sdc.mutation
}

// Save creates the SlotDefault in the database.
func (sdc *SlotDefaultCreate) Save(ctx context.Context) (*SlotDefault, error) {
	return withHooks(ctx, sdc.sqlSave, sdc.mutation, sdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sdc *SlotDefaultCreate) SaveX(ctx context.Context) *SlotDefault {
	v, err := sdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdc *SlotDefaultCreate) Exec(ctx context.Context) error {
	_, err := sdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdc *SlotDefaultCreate) ExecX(ctx context.Context) {
	if err := sdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdc *SlotDefaultCreate) check() error {
	if _, ok := sdc.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "SlotDefault.cohort_id"`)}
	}
	if v, ok := sdc.mutation.CohortID(); ok {
		if err := slotdefault.CohortIDValidator(v); err != nil {
			return &ValidationError{Name: "cohort_id", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.cohort_id": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.Slot(); !ok {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required field "SlotDefault.slot"`)}
	}
	if v, ok := sdc.mutation.Slot(); ok {
		if err := slotdefault.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.slot": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.StartAt(); !ok {
		return &ValidationError{Name: "start_at", err: errors.New(`ent: missing required field "SlotDefault.start_at"`)}
	}
	if v, ok := sdc.mutation.StartAt(); ok {
		if err := slotdefault.StartAtValidator(v); err != nil {
			return &ValidationError{Name: "start_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.start_at": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.EndAt(); !ok {
		return &ValidationError{Name: "end_at", err: errors.New(`ent: missing required field "SlotDefault.end_at"`)}
	}
	if v, ok := sdc.mutation.EndAt(); ok {
		if err := slotdefault.EndAtValidator(v); err != nil {
			return &ValidationError{Name: "end_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.end_at": %w`, err)}
		}
	}
	return nil
}

func (sdc *SlotDefaultCreate) sqlSave(ctx context.Context) (*SlotDefault, error) {
	if err := sdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sdc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sdc.mutation.id = &_node.ID
	sdc.mutation.done = true
	return _node, nil
}

func (sdc *SlotDefaultCreate) createSpec() (*SlotDefault, *sqlgraph.CreateSpec) {
	var (
		_node = &SlotDefault{config: sdc.config}
		_spec = sqlgraph.NewCreateSpec(slotdefault.Table, sqlgraph.NewFieldSpec(slotdefault.FieldID, field.TypeInt))
	)
	if value, ok := sdc.mutation.CohortID(); ok {
		_spec.SetField(slotdefault.FieldCohortID, field.TypeString, value)
		_node.CohortID = value
	}
	if value, ok := sdc.mutation.Slot(); ok {
		_spec.SetField(slotdefault.FieldSlot, field.TypeInt, value)
		_node.Slot = value
	}
	if value, ok := sdc.mutation.StartAt(); ok {
		_spec.SetField(slotdefault.FieldStartAt, field.TypeString, value)
		_node.StartAt = value
	}
	if value, ok := sdc.mutation.EndAt(); ok {
		_spec.SetField(slotdefault.FieldEndAt, field.TypeString, value)
		_node.EndAt = value
	}
	return _node, _spec
}

// SlotDefaultCreateBulk is the builder for creating many SlotDefault entities in bulk.
type SlotDefaultCreateBulk struct {
	config
	err      error
	builders []*SlotDefaultCreate
}

// Save creates the SlotDefault entities in the database.
func (sdcb *SlotDefaultCreateBulk) Save(ctx context.Context) ([]*SlotDefault, error) {
	if sdcb.err != nil {
		return nil, sdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sdcb.builders))
	nodes := make([]*SlotDefault, len(sdcb.builders))
	mutators := make([]Mutator, len(sdcb.builders))
	for i := range sdcb.builders {
		func(i int, root context.Context) {
			builder := sdcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlotDefaultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, sdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sdcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, sdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sdcb *SlotDefaultCreateBulk) SaveX(ctx context.Context) []*SlotDefault {
	v, err := sdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdcb *SlotDefaultCreateBulk) Exec(ctx context.Context) error {
	_, err := sdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdcb *SlotDefaultCreateBulk) ExecX(ctx context.Context) {
	if err := sdcb.Exec(ctx); err != nil {
		panic(err)
	}
}
