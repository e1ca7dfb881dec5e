// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/topic"
)

// TopicCreate is the builder for creating a Topic entity.
type TopicCreate struct {
	config
	mutation *TopicMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicCreate) SetTopicID(v string) *TopicCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *TopicCreate) SetParentID(v string) *TopicCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *TopicCreate) SetNillableParentID(v *string) *TopicCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TopicCreate) SetName(v string) *TopicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TopicCreate) SetDescription(v string) *TopicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TopicCreate) SetNillableDescription(v *string) *TopicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *TopicCreate) SetDepth(v int) *TopicCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *TopicCreate) SetNillableDepth(v *int) *TopicCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetDifficultyMin sets the "difficulty_min" field.
func (_c *TopicCreate) SetDifficultyMin(v int) *TopicCreate {
	_c.mutation.SetDifficultyMin(v)
	return _c
}

// SetNillableDifficultyMin sets the "difficulty_min" field if the given value is not nil.
func (_c *TopicCreate) SetNillableDifficultyMin(v *int) *TopicCreate {
	if v != nil {
		_c.SetDifficultyMin(*v)
	}
	return _c
}

// SetDifficultyMax sets the "difficulty_max" field.
func (_c *TopicCreate) SetDifficultyMax(v int) *TopicCreate {
	_c.mutation.SetDifficultyMax(v)
	return _c
}

// SetNillableDifficultyMax sets the "difficulty_max" field if the given value is not nil.
func (_c *TopicCreate) SetNillableDifficultyMax(v *int) *TopicCreate {
	if v != nil {
		_c.SetDifficultyMax(*v)
	}
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *TopicCreate) SetGenerated(v bool) *TopicCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *TopicCreate) SetNillableGenerated(v *bool) *TopicCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicCreate) SetCreatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCreatedAt(v *time.Time) *TopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TopicMutation object of the builder.
func (_c *TopicCreate) Mutation() *TopicMutation {
	return _c.mutation
}

// Save creates the Topic in the database.
func (_c *TopicCreate) Save(ctx context.Context) (*Topic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicCreate) SaveX(ctx context.Context) *Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicCreate) defaults() {
	if _, ok := _c.mutation.ParentID(); !ok {
		v := topic.DefaultParentID
		_c.mutation.SetParentID(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := topic.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := topic.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.DifficultyMin(); !ok {
		v := topic.DefaultDifficultyMin
		_c.mutation.SetDifficultyMin(v)
	}
	if _, ok := _c.mutation.DifficultyMax(); !ok {
		v := topic.DefaultDifficultyMax
		_c.mutation.SetDifficultyMax(v)
	}
	if _, ok := _c.mutation.Generated(); !ok {
		v := topic.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Topic.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := topic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Topic.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "Topic.parent_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Topic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Topic.description"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "Topic.depth"`)}
	}
	if _, ok := _c.mutation.DifficultyMin(); !ok {
		return &ValidationError{Name: "difficulty_min", err: errors.New(`ent: missing required field "Topic.difficulty_min"`)}
	}
	if _, ok := _c.mutation.DifficultyMax(); !ok {
		return &ValidationError{Name: "difficulty_max", err: errors.New(`ent: missing required field "Topic.difficulty_max"`)}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "Topic.generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Topic.created_at"`)}
	}
	return nil
}

func (_c *TopicCreate) sqlSave(ctx context.Context) (*Topic, error) {
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

func (_c *TopicCreate) createSpec() (*Topic, *sqlgraph.CreateSpec) {
	var (
		_node = &Topic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topic.Table, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(topic.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(topic.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(topic.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.DifficultyMin(); ok {
		_spec.SetField(topic.FieldDifficultyMin, field.TypeInt, value)
		_node.DifficultyMin = value
	}
	if value, ok := _c.mutation.DifficultyMax(); ok {
		_spec.SetField(topic.FieldDifficultyMax, field.TypeInt, value)
		_node.DifficultyMax = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(topic.FieldGenerated, field.TypeBool, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TopicCreateBulk is the builder for creating many Topic entities in bulk.
type TopicCreateBulk struct {
	config
	err      error
	builders []*TopicCreate
}

// Save creates the Topic entities in the database.
func (_c *TopicCreateBulk) Save(ctx context.Context) ([]*Topic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Topic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMutation)
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
func (_c *TopicCreateBulk) SaveX(ctx context.Context) []*Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
