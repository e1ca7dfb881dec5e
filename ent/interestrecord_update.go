// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/interestrecord"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// InterestRecordUpdate is the builder for updating InterestRecord entities.
type InterestRecordUpdate struct {
	config
	hooks    []Hook
	mutation *InterestRecordMutation
}

// Where appends a list predicates to the InterestRecordUpdate builder.
func (_u *InterestRecordUpdate) Where(ps ...predicate.InterestRecord) *InterestRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterestRecordUpdate) SetUserID(v string) *InterestRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterestRecordUpdate) SetNillableUserID(v *string) *InterestRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *InterestRecordUpdate) SetTopicID(v string) *InterestRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *InterestRecordUpdate) SetNillableTopicID(v *string) *InterestRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterestRecordUpdate) SetScore(v float64) *InterestRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterestRecordUpdate) SetNillableScore(v *float64) *InterestRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterestRecordUpdate) AddScore(v float64) *InterestRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRecentEventKeys sets the "recent_event_keys" field.
func (_u *InterestRecordUpdate) SetRecentEventKeys(v []string) *InterestRecordUpdate {
	_u.mutation.SetRecentEventKeys(v)
	return _u
}

// AppendRecentEventKeys appends value to the "recent_event_keys" field.
func (_u *InterestRecordUpdate) AppendRecentEventKeys(v []string) *InterestRecordUpdate {
	_u.mutation.AppendRecentEventKeys(v)
	return _u
}

// ClearRecentEventKeys clears the value of the "recent_event_keys" field.
func (_u *InterestRecordUpdate) ClearRecentEventKeys() *InterestRecordUpdate {
	_u.mutation.ClearRecentEventKeys()
	return _u
}

// SetVersion sets the "version" field.
func (_u *InterestRecordUpdate) SetVersion(v int64) *InterestRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *InterestRecordUpdate) SetNillableVersion(v *int64) *InterestRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *InterestRecordUpdate) AddVersion(v int64) *InterestRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterestRecordUpdate) SetUpdatedAt(v time.Time) *InterestRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InterestRecordMutation object of the builder.
func (_u *InterestRecordUpdate) Mutation() *InterestRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterestRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterestRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterestRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterestRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterestRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interestrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterestRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interestrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := interestrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterestRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interestrecord.Table, interestrecord.Columns, sqlgraph.NewFieldSpec(interestrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interestrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(interestrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interestrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interestrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentEventKeys(); ok {
		_spec.SetField(interestrecord.FieldRecentEventKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentEventKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interestrecord.FieldRecentEventKeys, value)
		})
	}
	if _u.mutation.RecentEventKeysCleared() {
		_spec.ClearField(interestrecord.FieldRecentEventKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(interestrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(interestrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interestrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interestrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterestRecordUpdateOne is the builder for updating a single InterestRecord entity.
type InterestRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterestRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *InterestRecordUpdateOne) SetUserID(v string) *InterestRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterestRecordUpdateOne) SetNillableUserID(v *string) *InterestRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *InterestRecordUpdateOne) SetTopicID(v string) *InterestRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *InterestRecordUpdateOne) SetNillableTopicID(v *string) *InterestRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterestRecordUpdateOne) SetScore(v float64) *InterestRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterestRecordUpdateOne) SetNillableScore(v *float64) *InterestRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterestRecordUpdateOne) AddScore(v float64) *InterestRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRecentEventKeys sets the "recent_event_keys" field.
func (_u *InterestRecordUpdateOne) SetRecentEventKeys(v []string) *InterestRecordUpdateOne {
	_u.mutation.SetRecentEventKeys(v)
	return _u
}

// AppendRecentEventKeys appends value to the "recent_event_keys" field.
func (_u *InterestRecordUpdateOne) AppendRecentEventKeys(v []string) *InterestRecordUpdateOne {
	_u.mutation.AppendRecentEventKeys(v)
	return _u
}

// ClearRecentEventKeys clears the value of the "recent_event_keys" field.
func (_u *InterestRecordUpdateOne) ClearRecentEventKeys() *InterestRecordUpdateOne {
	_u.mutation.ClearRecentEventKeys()
	return _u
}

// SetVersion sets the "version" field.
func (_u *InterestRecordUpdateOne) SetVersion(v int64) *InterestRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *InterestRecordUpdateOne) SetNillableVersion(v *int64) *InterestRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *InterestRecordUpdateOne) AddVersion(v int64) *InterestRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterestRecordUpdateOne) SetUpdatedAt(v time.Time) *InterestRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InterestRecordMutation object of the builder.
func (_u *InterestRecordUpdateOne) Mutation() *InterestRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterestRecordUpdate builder.
func (_u *InterestRecordUpdateOne) Where(ps ...predicate.InterestRecord) *InterestRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterestRecordUpdateOne) Select(field string, fields ...string) *InterestRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterestRecord entity.
func (_u *InterestRecordUpdateOne) Save(ctx context.Context) (*InterestRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterestRecordUpdateOne) SaveX(ctx context.Context) *InterestRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterestRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterestRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterestRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interestrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterestRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interestrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := interestrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterestRecordUpdateOne) sqlSave(ctx context.Context) (_node *InterestRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interestrecord.Table, interestrecord.Columns, sqlgraph.NewFieldSpec(interestrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterestRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interestrecord.FieldID)
		for _, f := range fields {
			if !interestrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interestrecord.FieldID {
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
		_spec.SetField(interestrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(interestrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interestrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interestrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentEventKeys(); ok {
		_spec.SetField(interestrecord.FieldRecentEventKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentEventKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interestrecord.FieldRecentEventKeys, value)
		})
	}
	if _u.mutation.RecentEventKeysCleared() {
		_spec.ClearField(interestrecord.FieldRecentEventKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(interestrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(interestrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interestrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InterestRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interestrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
