// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/predicate"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// SlotDefaultDelete is the builder for deleting a SlotDefault entity.
type SlotDefaultDelete struct {
	config
	hooks    []Hook
	mutation *SlotDefaultMutation
}

// Where appends a list predicates to the SlotDefaultDelete builder.
func (sdd *SlotDefaultDelete) Where(ps ...predicate.SlotDefault) *SlotDefaultDelete {
	sdd.mutation.Where(ps...)
	return sdd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sdd *SlotDefaultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sdd.sqlExec, sdd.mutation, sdd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sdd *SlotDefaultDelete) ExecX(ctx context.Context) int {
	n, err := sdd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sdd *SlotDefaultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(slotdefault.Table, sqlgraph.NewFieldSpec(slotdefault.FieldID, field.TypeInt))
	if ps := sdd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sdd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sdd.mutation.done = true
	return affected, err
}

// SlotDefaultDeleteOne is the builder for deleting a single SlotDefault entity.
type SlotDefaultDeleteOne struct {
	sdd *SlotDefaultDelete
}

// Where appends a list predicates to the SlotDefaultDelete builder.
func (sddo *SlotDefaultDeleteOne) Where(ps ...predicate.SlotDefault) *SlotDefaultDeleteOne {
	sddo.sdd.mutation.Where(ps...)
	return sddo
}

// Exec executes the deletion query.
func (sddo *SlotDefaultDeleteOne) Exec(ctx context.Context) error {
	n, err := sddo.sdd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{slotdefault.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sddo *SlotDefaultDeleteOne) ExecX(ctx context.Context) {
	if err := sddo.Exec(ctx); err != nil {
		panic(err)
	}
}
