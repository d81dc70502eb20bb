// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/predicate"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// SlotDefaultUpdate is the builder for updating SlotDefault entities.
type SlotDefaultUpdate struct {
	config
	hooks    []Hook
	mutation *SlotDefaultMutation
}

// Where appends a list predicates to the SlotDefaultUpdate builder.
func (sdu *SlotDefaultUpdate) Where(ps ...predicate.SlotDefault) *SlotDefaultUpdate {
	sdu.mutation.Where(ps...)
	return sdu
}

// SetStartAt sets the "start_at" field.
func (sdu *SlotDefaultUpdate) SetStartAt(s string) *SlotDefaultUpdate {
	sdu.mutation.SetStartAt(s)
	return sdu
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (sdu *SlotDefaultUpdate) SetNillableStartAt(s *string) *SlotDefaultUpdate {
	if s != nil {
		sdu.SetStartAt(*s)
	}
	return sdu
}

// SetEndAt sets the "end_at" field.
func (sdu *SlotDefaultUpdate) SetEndAt(s string) *SlotDefaultUpdate {
	sdu.mutation.SetEndAt(s)
	return sdu
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (sdu *SlotDefaultUpdate) SetNillableEndAt(s *string) *SlotDefaultUpdate {
	if s != nil {
		sdu.SetEndAt(*s)
	}
	return sdu
}

// Mutation returns the SlotDefaultMutation object of the builder.
func (sdu *SlotDefaultUpdate) Mutation() *SlotDefaultMutation {
	return sdu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sdu *SlotDefaultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sdu.sqlSave, sdu.mutation, sdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sdu *SlotDefaultUpdate) SaveX(ctx context.Context) int {
	affected, err := sdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sdu *SlotDefaultUpdate) Exec(ctx context.Context) error {
	_, err := sdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdu *SlotDefaultUpdate) ExecX(ctx context.Context) {
	if err := sdu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdu *SlotDefaultUpdate) check() error {
	if v, ok := sdu.mutation.StartAt(); ok {
		if err := slotdefault.StartAtValidator(v); err != nil {
			return &ValidationError{Name: "start_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.start_at": %w`, err)}
		}
	}
	if v, ok := sdu.mutation.EndAt(); ok {
		if err := slotdefault.EndAtValidator(v); err != nil {
			return &ValidationError{Name: "end_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.end_at": %w`, err)}
		}
	}
	return nil
}

func (sdu *SlotDefaultUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sdu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(slotdefault.Table, slotdefault.Columns, sqlgraph.NewFieldSpec(slotdefault.FieldID, field.TypeInt))
	if ps := sdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sdu.mutation.StartAt(); ok {
		_spec.SetField(slotdefault.FieldStartAt, field.TypeString, value)
	}
	if value, ok := sdu.mutation.EndAt(); ok {
		_spec.SetField(slotdefault.FieldEndAt, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slotdefault.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sdu.mutation.done = true
	return n, nil
}

// SlotDefaultUpdateOne is the builder for updating a single SlotDefault entity.
type SlotDefaultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlotDefaultMutation
}

// SetStartAt sets the "start_at" field.
func (sduo *SlotDefaultUpdateOne) SetStartAt(s string) *SlotDefaultUpdateOne {
	sduo.mutation.SetStartAt(s)
	return sduo
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (sduo *SlotDefaultUpdateOne) SetNillableStartAt(s *string) *SlotDefaultUpdateOne {
	if s != nil {
		sduo.SetStartAt(*s)
	}
	return sduo
}

// SetEndAt sets the "end_at" field.
func (sduo *SlotDefaultUpdateOne) SetEndAt(s string) *SlotDefaultUpdateOne {
	sduo.mutation.SetEndAt(s)
	return sduo
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (sduo *SlotDefaultUpdateOne) SetNillableEndAt(s *string) *SlotDefaultUpdateOne {
	if s != nil {
		sduo.SetEndAt(*s)
	}
	return sduo
}

// Mutation returns the SlotDefaultMutation object of the builder.
func (sduo *SlotDefaultUpdateOne) Mutation() *SlotDefaultMutation {
	return sduo.mutation
}

// Where appends a list predicates to the SlotDefaultUpdate builder.
func (sduo *SlotDefaultUpdateOne) Where(ps ...predicate.SlotDefault) *SlotDefaultUpdateOne {
	sduo.mutation.Where(ps...)
	return sduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sduo *SlotDefaultUpdateOne) Select(field string, fields ...string) *SlotDefaultUpdateOne {
	sduo.fields = append([]string{field}, fields...)
	return sduo
}

// Save executes the query and returns the updated SlotDefault entity.
func (sduo *SlotDefaultUpdateOne) Save(ctx context.Context) (*SlotDefault, error) {
	return withHooks(ctx, sduo.sqlSave, sduo.mutation, sduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sduo *SlotDefaultUpdateOne) SaveX(ctx context.Context) *SlotDefault {
	node, err := sduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sduo *SlotDefaultUpdateOne) Exec(ctx context.Context) error {
	_, err := sduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sduo *SlotDefaultUpdateOne) ExecX(ctx context.Context) {
	if err := sduo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sduo *SlotDefaultUpdateOne) check() error {
	if v, ok := sduo.mutation.StartAt(); ok {
		if err := slotdefault.StartAtValidator(v); err != nil {
			return &ValidationError{Name: "start_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.start_at": %w`, err)}
		}
	}
	if v, ok := sduo.mutation.EndAt(); ok {
		if err := slotdefault.EndAtValidator(v); err != nil {
			return &ValidationError{Name: "end_at", err: fmt.Errorf(`ent: validator failed for field "SlotDefault.end_at": %w`, err)}
		}
	}
	return nil
}

func (sduo *SlotDefaultUpdateOne) sqlSave(ctx context.Context) (_node *SlotDefault, err error) {
	if err := sduo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slotdefault.Table, slotdefault.Columns, sqlgraph.NewFieldSpec(slotdefault.FieldID, field.TypeInt))
	id, ok := sduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SlotDefault.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slotdefault.FieldID)
		for _, f := range fields {
			if !slotdefault.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slotdefault.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sduo.mutation.StartAt(); ok {
		_spec.SetField(slotdefault.FieldStartAt, field.TypeString, value)
	}
	if value, ok := sduo.mutation.EndAt(); ok {
		_spec.SetField(slotdefault.FieldEndAt, field.TypeString, value)
	}
	_node = &SlotDefault{config: sduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slotdefault.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sduo.mutation.done = true
	return _node, nil
}
