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
	"github.com/acarerdinc/relevia/ent/expansionattempt"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ExpansionAttemptUpdate is the builder for updating ExpansionAttempt entities.
type ExpansionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ExpansionAttemptMutation
}

// Where appends a list predicates to the ExpansionAttemptUpdate builder.
func (_u *ExpansionAttemptUpdate) Where(ps ...predicate.ExpansionAttempt) *ExpansionAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExpansionAttemptUpdate) SetUserID(v string) *ExpansionAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpansionAttemptUpdate) SetNillableUserID(v *string) *ExpansionAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ExpansionAttemptUpdate) SetTopicID(v string) *ExpansionAttemptUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ExpansionAttemptUpdate) SetNillableTopicID(v *string) *ExpansionAttemptUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpansionAttemptUpdate) SetStatus(v string) *ExpansionAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpansionAttemptUpdate) SetNillableStatus(v *string) *ExpansionAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExpansionAttemptUpdate) SetDetail(v string) *ExpansionAttemptUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExpansionAttemptUpdate) SetNillableDetail(v *string) *ExpansionAttemptUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExpansionAttemptUpdate) SetExpiresAt(v time.Time) *ExpansionAttemptUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExpansionAttemptUpdate) SetNillableExpiresAt(v *time.Time) *ExpansionAttemptUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ExpansionAttemptMutation object of the builder.
func (_u *ExpansionAttemptUpdate) Mutation() *ExpansionAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpansionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpansionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpansionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpansionAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpansionAttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := expansionattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := expansionattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpansionAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expansionattempt.Table, expansionattempt.Columns, sqlgraph.NewFieldSpec(expansionattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(expansionattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(expansionattempt.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expansionattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(expansionattempt.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(expansionattempt.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expansionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpansionAttemptUpdateOne is the builder for updating a single ExpansionAttempt entity.
type ExpansionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpansionAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExpansionAttemptUpdateOne) SetUserID(v string) *ExpansionAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpansionAttemptUpdateOne) SetNillableUserID(v *string) *ExpansionAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ExpansionAttemptUpdateOne) SetTopicID(v string) *ExpansionAttemptUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ExpansionAttemptUpdateOne) SetNillableTopicID(v *string) *ExpansionAttemptUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpansionAttemptUpdateOne) SetStatus(v string) *ExpansionAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpansionAttemptUpdateOne) SetNillableStatus(v *string) *ExpansionAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExpansionAttemptUpdateOne) SetDetail(v string) *ExpansionAttemptUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExpansionAttemptUpdateOne) SetNillableDetail(v *string) *ExpansionAttemptUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExpansionAttemptUpdateOne) SetExpiresAt(v time.Time) *ExpansionAttemptUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExpansionAttemptUpdateOne) SetNillableExpiresAt(v *time.Time) *ExpansionAttemptUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ExpansionAttemptMutation object of the builder.
func (_u *ExpansionAttemptUpdateOne) Mutation() *ExpansionAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExpansionAttemptUpdate builder.
func (_u *ExpansionAttemptUpdateOne) Where(ps ...predicate.ExpansionAttempt) *ExpansionAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpansionAttemptUpdateOne) Select(field string, fields ...string) *ExpansionAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExpansionAttempt entity.
func (_u *ExpansionAttemptUpdateOne) Save(ctx context.Context) (*ExpansionAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpansionAttemptUpdateOne) SaveX(ctx context.Context) *ExpansionAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpansionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpansionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpansionAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := expansionattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := expansionattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpansionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ExpansionAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expansionattempt.Table, expansionattempt.Columns, sqlgraph.NewFieldSpec(expansionattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExpansionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expansionattempt.FieldID)
		for _, f := range fields {
			if !expansionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expansionattempt.FieldID {
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
		_spec.SetField(expansionattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(expansionattempt.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expansionattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(expansionattempt.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(expansionattempt.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ExpansionAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expansionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
