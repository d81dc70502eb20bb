// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/predicate"
	"github.com/lmehta/cohortplan/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (su *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetDate sets the "date" field.
func (su *SessionUpdate) SetDate(t time.Time) *SessionUpdate {
	su.mutation.SetDate(t)
	return su
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (su *SessionUpdate) SetNillableDate(t *time.Time) *SessionUpdate {
	if t != nil {
		su.SetDate(*t)
	}
	return su
}

// SetSlot sets the "slot" field.
func (su *SessionUpdate) SetSlot(i int) *SessionUpdate {
	su.mutation.ResetSlot()
	su.mutation.SetSlot(i)
	return su
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (su *SessionUpdate) SetNillableSlot(i *int) *SessionUpdate {
	if i != nil {
		su.SetSlot(*i)
	}
	return su
}

// AddSlot adds i to the "slot" field.
func (su *SessionUpdate) AddSlot(i int) *SessionUpdate {
	su.mutation.AddSlot(i)
	return su
}

// SetSessionType sets the "session_type" field.
func (su *SessionUpdate) SetSessionType(s string) *SessionUpdate {
	su.mutation.SetSessionType(s)
	return su
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (su *SessionUpdate) SetNillableSessionType(s *string) *SessionUpdate {
	if s != nil {
		su.SetSessionType(*s)
	}
	return su
}

// SetTitle sets the "title" field.
func (su *SessionUpdate) SetTitle(s string) *SessionUpdate {
	su.mutation.SetTitle(s)
	return su
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (su *SessionUpdate) SetNillableTitle(s *string) *SessionUpdate {
	if s != nil {
		su.SetTitle(*s)
	}
	return su
}

// SetStartTime sets the "start_time" field.
func (su *SessionUpdate) SetStartTime(t time.Time) *SessionUpdate {
	su.mutation.SetStartTime(t)
	return su
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (su *SessionUpdate) SetNillableStartTime(t *time.Time) *SessionUpdate {
	if t != nil {
		su.SetStartTime(*t)
	}
	return su
}

// ClearStartTime clears the value of the "start_time" field.
func (su *SessionUpdate) ClearStartTime() *SessionUpdate {
	su.mutation.ClearStartTime()
	return su
}

// SetEndTime sets the "end_time" field.
func (su *SessionUpdate) SetEndTime(t time.Time) *SessionUpdate {
	su.mutation.SetEndTime(t)
	return su
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (su *SessionUpdate) SetNillableEndTime(t *time.Time) *SessionUpdate {
	if t != nil {
		su.SetEndTime(*t)
	}
	return su
}

// ClearEndTime clears the value of the "end_time" field.
func (su *SessionUpdate) ClearEndTime() *SessionUpdate {
	su.mutation.ClearEndTime()
	return su
}

// SetChallengeID sets the "challenge_id" field.
func (su *SessionUpdate) SetChallengeID(s string) *SessionUpdate {
	su.mutation.SetChallengeID(s)
	return su
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (su *SessionUpdate) SetNillableChallengeID(s *string) *SessionUpdate {
	if s != nil {
		su.SetChallengeID(*s)
	}
	return su
}

// ClearChallengeID clears the value of the "challenge_id" field.
func (su *SessionUpdate) ClearChallengeID() *SessionUpdate {
	su.mutation.ClearChallengeID()
	return su
}

// SetIsOriginalChallengeMember sets the "is_original_challenge_member" field.
func (su *SessionUpdate) SetIsOriginalChallengeMember(b bool) *SessionUpdate {
	su.mutation.SetIsOriginalChallengeMember(b)
	return su
}

// SetNillableIsOriginalChallengeMember sets the "is_original_challenge_member" field if the given value is not nil.
func (su *SessionUpdate) SetNillableIsOriginalChallengeMember(b *bool) *SessionUpdate {
	if b != nil {
		su.SetIsOriginalChallengeMember(*b)
	}
	return su
}

// Mutation returns the SessionMutation object of the builder.
func (su *SessionUpdate) Mutation() *SessionMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SessionUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SessionUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SessionUpdate) check() error {
	if v, ok := su.mutation.Slot(); ok {
		if err := session.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "Session.slot": %w`, err)}
		}
	}
	if v, ok := su.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := su.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	return nil
}

func (su *SessionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Date(); ok {
		_spec.SetField(session.FieldDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.Slot(); ok {
		_spec.SetField(session.FieldSlot, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedSlot(); ok {
		_spec.AddField(session.FieldSlot, field.TypeInt, value)
	}
	if value, ok := su.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeString, value)
	}
	if value, ok := su.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := su.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if su.mutation.StartTimeCleared() {
		_spec.ClearField(session.FieldStartTime, field.TypeTime)
	}
	if value, ok := su.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if su.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := su.mutation.ChallengeID(); ok {
		_spec.SetField(session.FieldChallengeID, field.TypeString, value)
	}
	if su.mutation.ChallengeIDCleared() {
		_spec.ClearField(session.FieldChallengeID, field.TypeString)
	}
	if value, ok := su.mutation.IsOriginalChallengeMember(); ok {
		_spec.SetField(session.FieldIsOriginalChallengeMember, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetDate sets the "date" field.
func (suo *SessionUpdateOne) SetDate(t time.Time) *SessionUpdateOne {
	suo.mutation.SetDate(t)
	return suo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableDate(t *time.Time) *SessionUpdateOne {
	if t != nil {
		suo.SetDate(*t)
	}
	return suo
}

// SetSlot sets the "slot" field.
func (suo *SessionUpdateOne) SetSlot(i int) *SessionUpdateOne {
	suo.mutation.ResetSlot()
	suo.mutation.SetSlot(i)
	return suo
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableSlot(i *int) *SessionUpdateOne {
	if i != nil {
		suo.SetSlot(*i)
	}
	return suo
}

// AddSlot adds i to the "slot" field.
func (suo *SessionUpdateOne) AddSlot(i int) *SessionUpdateOne {
	suo.mutation.AddSlot(i)
	return suo
}

// SetSessionType sets the "session_type" field.
func (suo *SessionUpdateOne) SetSessionType(s string) *SessionUpdateOne {
	suo.mutation.SetSessionType(s)
	return suo
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableSessionType(s *string) *SessionUpdateOne {
	if s != nil {
		suo.SetSessionType(*s)
	}
	return suo
}

// SetTitle sets the "title" field.
func (suo *SessionUpdateOne) SetTitle(s string) *SessionUpdateOne {
	suo.mutation.SetTitle(s)
	return suo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableTitle(s *string) *SessionUpdateOne {
	if s != nil {
		suo.SetTitle(*s)
	}
	return suo
}

// SetStartTime sets the "start_time" field.
func (suo *SessionUpdateOne) SetStartTime(t time.Time) *SessionUpdateOne {
	suo.mutation.SetStartTime(t)
	return suo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableStartTime(t *time.Time) *SessionUpdateOne {
	if t != nil {
		suo.SetStartTime(*t)
	}
	return suo
}

// ClearStartTime clears the value of the "start_time" field.
func (suo *SessionUpdateOne) ClearStartTime() *SessionUpdateOne {
	suo.mutation.ClearStartTime()
	return suo
}

// SetEndTime sets the "end_time" field.
func (suo *SessionUpdateOne) SetEndTime(t time.Time) *SessionUpdateOne {
	suo.mutation.SetEndTime(t)
	return suo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableEndTime(t *time.Time) *SessionUpdateOne {
	if t != nil {
		suo.SetEndTime(*t)
	}
	return suo
}

// ClearEndTime clears the value of the "end_time" field.
func (suo *SessionUpdateOne) ClearEndTime() *SessionUpdateOne {
	suo.mutation.ClearEndTime()
	return suo
}

// SetChallengeID sets the "challenge_id" field.
func (suo *SessionUpdateOne) SetChallengeID(s string) *SessionUpdateOne {
	suo.mutation.SetChallengeID(s)
	return suo
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableChallengeID(s *string) *SessionUpdateOne {
	if s != nil {
		suo.SetChallengeID(*s)
	}
	return suo
}

// ClearChallengeID clears the value of the "challenge_id" field.
func (suo *SessionUpdateOne) ClearChallengeID() *SessionUpdateOne {
	suo.mutation.ClearChallengeID()
	return suo
}

// SetIsOriginalChallengeMember sets the "is_original_challenge_member" field.
func (suo *SessionUpdateOne) SetIsOriginalChallengeMember(b bool) *SessionUpdateOne {
	suo.mutation.SetIsOriginalChallengeMember(b)
	return suo
}

// SetNillableIsOriginalChallengeMember sets the "is_original_challenge_member" field if the given value is not nil.
func (suo *SessionUpdateOne) SetNillableIsOriginalChallengeMember(b *bool) *SessionUpdateOne {
	if b != nil {
		suo.SetIsOriginalChallengeMember(*b)
	}
	return suo
}

// Mutation returns the SessionMutation object of the builder.
func (suo *SessionUpdateOne) Mutation() *SessionMutation {
	return suo.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (suo *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Session entity.
func (suo *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SessionUpdateOne) check() error {
	if v, ok := suo.mutation.Slot(); ok {
		if err := session.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "Session.slot": %w`, err)}
		}
	}
	if v, ok := suo.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	return nil
}

func (suo *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Date(); ok {
		_spec.SetField(session.FieldDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Slot(); ok {
		_spec.SetField(session.FieldSlot, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedSlot(); ok {
		_spec.AddField(session.FieldSlot, field.TypeInt, value)
	}
	if value, ok := suo.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeString, value)
	}
	if value, ok := suo.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := suo.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if suo.mutation.StartTimeCleared() {
		_spec.ClearField(session.FieldStartTime, field.TypeTime)
	}
	if value, ok := suo.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if suo.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := suo.mutation.ChallengeID(); ok {
		_spec.SetField(session.FieldChallengeID, field.TypeString, value)
	}
	if suo.mutation.ChallengeIDCleared() {
		_spec.ClearField(session.FieldChallengeID, field.TypeString)
	}
	if value, ok := suo.mutation.IsOriginalChallengeMember(); ok {
		_spec.SetField(session.FieldIsOriginalChallengeMember, field.TypeBool, value)
	}
	_node = &Session{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
