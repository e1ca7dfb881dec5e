// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/masteryevent"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdate) SetUserID(v string) *MasteryEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableUserID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryEventUpdate) SetTopicID(v string) *MasteryEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTopicID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdate) SetFromLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdate) SetToLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryEventUpdate) SetAccuracy(v float64) *MasteryEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableAccuracy(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryEventUpdate) AddAccuracy(v float64) *MasteryEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masteryevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := masteryevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := masteryevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masteryevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdateOne) SetUserID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableUserID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryEventUpdateOne) SetTopicID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTopicID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdateOne) SetFromLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdateOne) SetToLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryEventUpdateOne) SetAccuracy(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableAccuracy(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryEventUpdateOne) AddAccuracy(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masteryevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := masteryevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := masteryevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masteryevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
