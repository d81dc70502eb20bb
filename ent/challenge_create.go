// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/challenge"
)

// ChallengeCreate is the builder for creating a Challenge entity.
type ChallengeCreate struct {
	config
	mutation *ChallengeMutation
	hooks    []Hook
}

// SetCohortID sets the "cohort_id" field.
func (cc *ChallengeCreate) SetCohortID(s string) *ChallengeCreate {
	cc.mutation.SetCohortID(s)
	return cc
}

// SetEpicID sets the "epic_id" field.
func (cc *ChallengeCreate) SetEpicID(s string) *ChallengeCreate {
	cc.mutation.SetEpicID(s)
	return cc
}

// SetTitle sets the "title" field.
func (cc *ChallengeCreate) SetTitle(s string) *ChallengeCreate {
	cc.mutation.SetTitle(s)
	return cc
}

// SetCreatedBy sets the "created_by" field.
func (cc *ChallengeCreate) SetCreatedBy(s string) *ChallengeCreate {
	cc.mutation.SetCreatedBy(s)
	return cc
}

// SetStatus sets the "status" field.
func (cc *ChallengeCreate) SetStatus(s string) *ChallengeCreate {
	cc.mutation.SetStatus(s)
	return cc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cc *ChallengeCreate) SetNillableStatus(s *string) *ChallengeCreate {
	if s != nil {
		cc.SetStatus(*s)
	}
	return cc
}

// SetIsMock sets the "is_mock" field.
func (cc *ChallengeCreate) SetIsMock(b bool) *ChallengeCreate {
	cc.mutation.SetIsMock(b)
	return cc
}

// SetNillableIsMock sets the "is_mock" field if the given value is not nil.
func (cc *ChallengeCreate) SetNillableIsMock(b *bool) *ChallengeCreate {
	if b != nil {
		cc.SetIsMock(*b)
	}
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *ChallengeCreate) SetCreatedAt(t time.Time) *ChallengeCreate {
	cc.mutation.SetCreatedAt(t)
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *ChallengeCreate) SetNillableCreatedAt(t *time.Time) *ChallengeCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *ChallengeCreate) SetID(s string) *ChallengeCreate {
	cc.mutation.SetID(s)
	return cc
}

// Mutation returns the ChallengeMutation object of the builder.
func (cc *ChallengeCreate) Mutation() *ChallengeMutation {
	return cc.mutation
}

// Save creates the Challenge in the database.
func (cc *ChallengeCreate) Save(ctx context.Context) (*Challenge, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *ChallengeCreate) SaveX(ctx context.Context) *Challenge {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *ChallengeCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *ChallengeCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *ChallengeCreate) defaults() {
	if _, ok := cc.mutation.Status(); !ok {
		v := challenge.DefaultStatus
		cc.mutation.SetStatus(v)
	}
	if _, ok := cc.mutation.IsMock(); !ok {
		v := challenge.DefaultIsMock
		cc.mutation.SetIsMock(v)
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		v := challenge.DefaultCreatedAt()
		cc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *ChallengeCreate) check() error {
	if _, ok := cc.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "Challenge.cohort_id"`)}
	}
	if v, ok := cc.mutation.CohortID(); ok {
		if err := challenge.CohortIDValidator(v); err != nil {
			return &ValidationError{Name: "cohort_id", err: fmt.Errorf(`ent: validator failed for field "Challenge.cohort_id": %w`, err)}
		}
	}
	if _, ok := cc.mutation.EpicID(); !ok {
		return &ValidationError{Name: "epic_id", err: errors.New(`ent: missing required field "Challenge.epic_id"`)}
	}
	if v, ok := cc.mutation.EpicID(); ok {
		if err := challenge.EpicIDValidator(v); err != nil {
			return &ValidationError{Name: "epic_id", err: fmt.Errorf(`ent: validator failed for field "Challenge.epic_id": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Challenge.title"`)}
	}
	if v, ok := cc.mutation.Title(); ok {
		if err := challenge.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Challenge.title": %w`, err)}
		}
	}
	if _, ok := cc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Challenge.created_by"`)}
	}
	if v, ok := cc.mutation.CreatedBy(); ok {
		if err := challenge.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Challenge.created_by": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Challenge.status"`)}
	}
	if _, ok := cc.mutation.IsMock(); !ok {
		return &ValidationError{Name: "is_mock", err: errors.New(`ent: missing required field "Challenge.is_mock"`)}
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Challenge.created_at"`)}
	}
	if v, ok := cc.mutation.ID(); ok {
		if err := challenge.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Challenge.id": %w`, err)}
		}
	}
	return nil
}

func (cc *ChallengeCreate) sqlSave(ctx context.Context) (*Challenge, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Challenge.ID type: %T", _spec.ID.Value)
		}
	}
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *ChallengeCreate) createSpec() (*Challenge, *sqlgraph.CreateSpec) {
	var (
		_node = &Challenge{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(challenge.Table, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeString))
	)
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cc.mutation.CohortID(); ok {
		_spec.SetField(challenge.FieldCohortID, field.TypeString, value)
		_node.CohortID = value
	}
	if value, ok := cc.mutation.EpicID(); ok {
		_spec.SetField(challenge.FieldEpicID, field.TypeString, value)
		_node.EpicID = value
	}
	if value, ok := cc.mutation.Title(); ok {
		_spec.SetField(challenge.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cc.mutation.CreatedBy(); ok {
		_spec.SetField(challenge.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := cc.mutation.Status(); ok {
		_spec.SetField(challenge.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cc.mutation.IsMock(); ok {
		_spec.SetField(challenge.FieldIsMock, field.TypeBool, value)
		_node.IsMock = value
	}
	if value, ok := cc.mutation.CreatedAt(); ok {
		_spec.SetField(challenge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChallengeCreateBulk is the builder for creating many Challenge entities in bulk.
type ChallengeCreateBulk struct {
	config
	err      error
	builders []*ChallengeCreate
}

// Save creates the Challenge entities in the database.
func (ccb *ChallengeCreateBulk) Save(ctx context.Context) ([]*Challenge, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Challenge, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *ChallengeCreateBulk) SaveX(ctx context.Context) []*Challenge {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *ChallengeCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *ChallengeCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
