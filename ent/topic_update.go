// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/predicate"
	"github.com/acarerdinc/relevia/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicUpdate) SetTopicID(v string) *TopicUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTopicID(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TopicUpdate) SetParentID(v string) *TopicUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableParentID(v *string) *TopicUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdate) SetName(v string) *TopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdate) SetDescription(v string) *TopicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDescription(v *string) *TopicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *TopicUpdate) SetDepth(v int) *TopicUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDepth(v *int) *TopicUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *TopicUpdate) AddDepth(v int) *TopicUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetDifficultyMin sets the "difficulty_min" field.
func (_u *TopicUpdate) SetDifficultyMin(v int) *TopicUpdate {
	_u.mutation.ResetDifficultyMin()
	_u.mutation.SetDifficultyMin(v)
	return _u
}

// SetNillableDifficultyMin sets the "difficulty_min" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDifficultyMin(v *int) *TopicUpdate {
	if v != nil {
		_u.SetDifficultyMin(*v)
	}
	return _u
}

// AddDifficultyMin adds value to the "difficulty_min" field.
func (_u *TopicUpdate) AddDifficultyMin(v int) *TopicUpdate {
	_u.mutation.AddDifficultyMin(v)
	return _u
}

// SetDifficultyMax sets the "difficulty_max" field.
func (_u *TopicUpdate) SetDifficultyMax(v int) *TopicUpdate {
	_u.mutation.ResetDifficultyMax()
	_u.mutation.SetDifficultyMax(v)
	return _u
}

// SetNillableDifficultyMax sets the "difficulty_max" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDifficultyMax(v *int) *TopicUpdate {
	if v != nil {
		_u.SetDifficultyMax(*v)
	}
	return _u
}

// AddDifficultyMax adds value to the "difficulty_max" field.
func (_u *TopicUpdate) AddDifficultyMax(v int) *TopicUpdate {
	_u.mutation.AddDifficultyMax(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *TopicUpdate) SetGenerated(v bool) *TopicUpdate {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableGenerated(v *bool) *TopicUpdate {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Topic.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(topic.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(topic.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(topic.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyMin(); ok {
		_spec.SetField(topic.FieldDifficultyMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyMin(); ok {
		_spec.AddField(topic.FieldDifficultyMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyMax(); ok {
		_spec.SetField(topic.FieldDifficultyMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyMax(); ok {
		_spec.AddField(topic.FieldDifficultyMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(topic.FieldGenerated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicUpdateOne) SetTopicID(v string) *TopicUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTopicID(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TopicUpdateOne) SetParentID(v string) *TopicUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableParentID(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdateOne) SetName(v string) *TopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdateOne) SetDescription(v string) *TopicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDescription(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *TopicUpdateOne) SetDepth(v int) *TopicUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDepth(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *TopicUpdateOne) AddDepth(v int) *TopicUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetDifficultyMin sets the "difficulty_min" field.
func (_u *TopicUpdateOne) SetDifficultyMin(v int) *TopicUpdateOne {
	_u.mutation.ResetDifficultyMin()
	_u.mutation.SetDifficultyMin(v)
	return _u
}

// SetNillableDifficultyMin sets the "difficulty_min" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDifficultyMin(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetDifficultyMin(*v)
	}
	return _u
}

// AddDifficultyMin adds value to the "difficulty_min" field.
func (_u *TopicUpdateOne) AddDifficultyMin(v int) *TopicUpdateOne {
	_u.mutation.AddDifficultyMin(v)
	return _u
}

// SetDifficultyMax sets the "difficulty_max" field.
func (_u *TopicUpdateOne) SetDifficultyMax(v int) *TopicUpdateOne {
	_u.mutation.ResetDifficultyMax()
	_u.mutation.SetDifficultyMax(v)
	return _u
}

// SetNillableDifficultyMax sets the "difficulty_max" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDifficultyMax(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetDifficultyMax(*v)
	}
	return _u
}

// AddDifficultyMax adds value to the "difficulty_max" field.
func (_u *TopicUpdateOne) AddDifficultyMax(v int) *TopicUpdateOne {
	_u.mutation.AddDifficultyMax(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *TopicUpdateOne) SetGenerated(v bool) *TopicUpdateOne {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableGenerated(v *bool) *TopicUpdateOne {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Topic.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(topic.FieldParentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(topic.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(topic.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyMin(); ok {
		_spec.SetField(topic.FieldDifficultyMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyMin(); ok {
		_spec.AddField(topic.FieldDifficultyMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyMax(); ok {
		_spec.SetField(topic.FieldDifficultyMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyMax(); ok {
		_spec.AddField(topic.FieldDifficultyMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(topic.FieldGenerated, field.TypeBool, value)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
