// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/concepthistory"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ConceptHistoryUpdate is the builder for updating ConceptHistory entities.
type ConceptHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptHistoryMutation
}

// Where appends a list predicates to the ConceptHistoryUpdate builder.
func (_u *ConceptHistoryUpdate) Where(ps ...predicate.ConceptHistory) *ConceptHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConceptHistoryUpdate) SetUserID(v string) *ConceptHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdate) SetNillableUserID(v *string) *ConceptHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ConceptHistoryUpdate) SetTopicID(v string) *ConceptHistoryUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdate) SetNillableTopicID(v *string) *ConceptHistoryUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ConceptHistoryUpdate) SetQuestionID(v string) *ConceptHistoryUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdate) SetNillableQuestionID(v *string) *ConceptHistoryUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *ConceptHistoryUpdate) SetConcepts(v []string) *ConceptHistoryUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *ConceptHistoryUpdate) AppendConcepts(v []string) *ConceptHistoryUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// Mutation returns the ConceptHistoryMutation object of the builder.
func (_u *ConceptHistoryUpdate) Mutation() *ConceptHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptHistoryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := concepthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := concepthistory.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := concepthistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concepthistory.Table, concepthistory.Columns, sqlgraph.NewFieldSpec(concepthistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(concepthistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(concepthistory.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(concepthistory.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(concepthistory.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concepthistory.FieldConcepts, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concepthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptHistoryUpdateOne is the builder for updating a single ConceptHistory entity.
type ConceptHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConceptHistoryUpdateOne) SetUserID(v string) *ConceptHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdateOne) SetNillableUserID(v *string) *ConceptHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ConceptHistoryUpdateOne) SetTopicID(v string) *ConceptHistoryUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdateOne) SetNillableTopicID(v *string) *ConceptHistoryUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ConceptHistoryUpdateOne) SetQuestionID(v string) *ConceptHistoryUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ConceptHistoryUpdateOne) SetNillableQuestionID(v *string) *ConceptHistoryUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *ConceptHistoryUpdateOne) SetConcepts(v []string) *ConceptHistoryUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *ConceptHistoryUpdateOne) AppendConcepts(v []string) *ConceptHistoryUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// Mutation returns the ConceptHistoryMutation object of the builder.
func (_u *ConceptHistoryUpdateOne) Mutation() *ConceptHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptHistoryUpdate builder.
func (_u *ConceptHistoryUpdateOne) Where(ps ...predicate.ConceptHistory) *ConceptHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptHistoryUpdateOne) Select(field string, fields ...string) *ConceptHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptHistory entity.
func (_u *ConceptHistoryUpdateOne) Save(ctx context.Context) (*ConceptHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptHistoryUpdateOne) SaveX(ctx context.Context) *ConceptHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := concepthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := concepthistory.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := concepthistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ConceptHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concepthistory.Table, concepthistory.Columns, sqlgraph.NewFieldSpec(concepthistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concepthistory.FieldID)
		for _, f := range fields {
			if !concepthistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concepthistory.FieldID {
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
		_spec.SetField(concepthistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(concepthistory.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(concepthistory.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(concepthistory.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concepthistory.FieldConcepts, value)
		})
	}
	_node = &ConceptHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concepthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
