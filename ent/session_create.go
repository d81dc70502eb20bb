// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetCohortID sets the "cohort_id" field.
func (sc *SessionCreate) SetCohortID(s string) *SessionCreate {
	sc.mutation.SetCohortID(s)
	return sc
}

// SetEpicID sets the "epic_id" field.
func (sc *SessionCreate) SetEpicID(s string) *SessionCreate {
	sc.mutation.SetEpicID(s)
	return sc
}

// SetDate sets the "date" field.
func (sc *SessionCreate) SetDate(t time.Time) *SessionCreate {
	sc.mutation.SetDate(t)
	return sc
}

// SetSlot sets the "slot" field.
func (sc *SessionCreate) SetSlot(i int) *SessionCreate {
	sc.mutation.SetSlot(i)
	return sc
}

// SetSessionType sets the "session_type" field.
func (sc *SessionCreate) SetSessionType(s string) *SessionCreate {
	sc.mutation.SetSessionType(s)
	return sc
}

// SetTitle sets the "title" field.
func (sc *SessionCreate) SetTitle(s string) *SessionCreate {
	sc.mutation.SetTitle(s)
	return sc
}

// SetStartTime sets the "start_time" field.
func (sc *SessionCreate) SetStartTime(t time.Time) *SessionCreate {
	sc.mutation.SetStartTime(t)
	return sc
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (sc *SessionCreate) SetNillableStartTime(t *time.Time) *SessionCreate {
	if t != nil {
		sc.SetStartTime(*t)
	}
	return sc
}

// SetEndTime sets the "end_time" field.
func (sc *SessionCreate) SetEndTime(t time.Time) *SessionCreate {
	sc.mutation.SetEndTime(t)
	return sc
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (sc *SessionCreate) SetNillableEndTime(t *time.Time) *SessionCreate {
	if t != nil {
		sc.SetEndTime(*t)
	}
	return sc
}

// SetChallengeID sets the "challenge_id" field.
func (sc *SessionCreate) SetChallengeID(s string) *SessionCreate {
	sc.mutation.SetChallengeID(s)
	return sc
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (sc *SessionCreate) SetNillableChallengeID(s *string) *SessionCreate {
	if s != nil {
		sc.SetChallengeID(*s)
	}
	return sc
}

// SetIsOriginalChallengeMember sets the "is_original_challenge_member" field.
func (sc *SessionCreate) SetIsOriginalChallengeMember(b bool) *SessionCreate {
	sc.mutation.SetIsOriginalChallengeMember(b)
	return sc
}

// SetNillableIsOriginalChallengeMember sets the "is_original_challenge_member" field if the given value is not nil.
func (sc *SessionCreate) SetNillableIsOriginalChallengeMember(b *bool) *SessionCreate {
	if b != nil {
		sc.SetIsOriginalChallengeMember(*b)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *SessionCreate) SetCreatedAt(t time.Time) *SessionCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *SessionCreate) SetNillableCreatedAt(t *time.Time) *SessionCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// Mutation returns the SessionMutation object of the builder.
func (sc *SessionCreate) Mutation() *SessionMutation {
	return sc.mutation
}

// Save creates the Session in the database.
func (sc *SessionCreate) Save(ctx context.Context) (*Session, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SessionCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SessionCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SessionCreate) defaults() {
	if _, ok := sc.mutation.IsOriginalChallengeMember(); !ok {
		v := session.DefaultIsOriginalChallengeMember
		sc.mutation.SetIsOriginalChallengeMember(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SessionCreate) check() error {
	if _, ok := sc.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "Session.cohort_id"`)}
	}
	if v, ok := sc.mutation.CohortID(); ok {
		if err := session.CohortIDValidator(v); err != nil {
			return &ValidationError{Name: "cohort_id", err: fmt.Errorf(`ent: validator failed for field "Session.cohort_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.EpicID(); !ok {
		return &ValidationError{Name: "epic_id", err: errors.New(`ent: missing required field "Session.epic_id"`)}
	}
	if v, ok := sc.mutation.EpicID(); ok {
		if err := session.EpicIDValidator(v); err != nil {
			return &ValidationError{Name: "epic_id", err: fmt.Errorf(`ent: validator failed for field "Session.epic_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Session.date"`)}
	}
	if _, ok := sc.mutation.Slot(); !ok {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required field "Session.slot"`)}
	}
	if v, ok := sc.mutation.Slot(); ok {
		if err := session.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "Session.slot": %w`, err)}
		}
	}
	if _, ok := sc.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "Session.session_type"`)}
	}
	if v, ok := sc.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Session.title"`)}
	}
	if v, ok := sc.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if _, ok := sc.mutation.IsOriginalChallengeMember(); !ok {
		return &ValidationError{Name: "is_original_challenge_member", err: errors.New(`ent: missing required field "Session.is_original_challenge_member"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	return nil
}

func (sc *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.CohortID(); ok {
		_spec.SetField(session.FieldCohortID, field.TypeString, value)
		_node.CohortID = value
	}
	if value, ok := sc.mutation.EpicID(); ok {
		_spec.SetField(session.FieldEpicID, field.TypeString, value)
		_node.EpicID = value
	}
	if value, ok := sc.mutation.Date(); ok {
		_spec.SetField(session.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := sc.mutation.Slot(); ok {
		_spec.SetField(session.FieldSlot, field.TypeInt, value)
		_node.Slot = value
	}
	if value, ok := sc.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeString, value)
		_node.SessionType = value
	}
	if value, ok := sc.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := sc.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := sc.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := sc.mutation.ChallengeID(); ok {
		_spec.SetField(session.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := sc.mutation.IsOriginalChallengeMember(); ok {
		_spec.SetField(session.FieldIsOriginalChallengeMember, field.TypeBool, value)
		_node.IsOriginalChallengeMember = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (scb *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Session, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
