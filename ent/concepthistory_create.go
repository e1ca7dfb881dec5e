// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/concepthistory"
)

// ConceptHistoryCreate is the builder for creating a ConceptHistory entity.
type ConceptHistoryCreate struct {
	config
	mutation *ConceptHistoryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConceptHistoryCreate) SetUserID(v string) *ConceptHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ConceptHistoryCreate) SetTopicID(v string) *ConceptHistoryCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ConceptHistoryCreate) SetQuestionID(v string) *ConceptHistoryCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *ConceptHistoryCreate) SetConcepts(v []string) *ConceptHistoryCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetShownAt sets the "shown_at" field.
func (_c *ConceptHistoryCreate) SetShownAt(v time.Time) *ConceptHistoryCreate {
	_c.mutation.SetShownAt(v)
	return _c
}

// SetNillableShownAt sets the "shown_at" field if the given value is not nil.
func (_c *ConceptHistoryCreate) SetNillableShownAt(v *time.Time) *ConceptHistoryCreate {
	if v != nil {
		_c.SetShownAt(*v)
	}
	return _c
}

// Mutation returns the ConceptHistoryMutation object of the builder.
func (_c *ConceptHistoryCreate) Mutation() *ConceptHistoryMutation {
	return _c.mutation
}

// Save creates the ConceptHistory in the database.
func (_c *ConceptHistoryCreate) Save(ctx context.Context) (*ConceptHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptHistoryCreate) SaveX(ctx context.Context) *ConceptHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptHistoryCreate) defaults() {
	if _, ok := _c.mutation.ShownAt(); !ok {
		v := concepthistory.DefaultShownAt()
		_c.mutation.SetShownAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptHistoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConceptHistory.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := concepthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ConceptHistory.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := concepthistory.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ConceptHistory.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := concepthistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ConceptHistory.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concepts(); !ok {
		return &ValidationError{Name: "concepts", err: errors.New(`ent: missing required field "ConceptHistory.concepts"`)}
	}
	if _, ok := _c.mutation.ShownAt(); !ok {
		return &ValidationError{Name: "shown_at", err: errors.New(`ent: missing required field "ConceptHistory.shown_at"`)}
	}
	return nil
}

func (_c *ConceptHistoryCreate) sqlSave(ctx context.Context) (*ConceptHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptHistoryCreate) createSpec() (*ConceptHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(concepthistory.Table, sqlgraph.NewFieldSpec(concepthistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(concepthistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(concepthistory.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(concepthistory.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(concepthistory.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.ShownAt(); ok {
		_spec.SetField(concepthistory.FieldShownAt, field.TypeTime, value)
		_node.ShownAt = value
	}
	return _node, _spec
}

// ConceptHistoryCreateBulk is the builder for creating many ConceptHistory entities in bulk.
type ConceptHistoryCreateBulk struct {
	config
	err      error
	builders []*ConceptHistoryCreate
}

// Save creates the ConceptHistory entities in the database.
func (_c *ConceptHistoryCreateBulk) Save(ctx context.Context) ([]*ConceptHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptHistoryMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConceptHistoryCreateBulk) SaveX(ctx context.Context) []*ConceptHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
