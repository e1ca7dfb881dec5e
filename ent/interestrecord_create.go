// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/interestrecord"
)

// InterestRecordCreate is the builder for creating a InterestRecord entity.
type InterestRecordCreate struct {
	config
	mutation *InterestRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InterestRecordCreate) SetUserID(v string) *InterestRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *InterestRecordCreate) SetTopicID(v string) *InterestRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *InterestRecordCreate) SetScore(v float64) *InterestRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *InterestRecordCreate) SetNillableScore(v *float64) *InterestRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetRecentEventKeys sets the "recent_event_keys" field.
func (_c *InterestRecordCreate) SetRecentEventKeys(v []string) *InterestRecordCreate {
	_c.mutation.SetRecentEventKeys(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *InterestRecordCreate) SetVersion(v int64) *InterestRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *InterestRecordCreate) SetNillableVersion(v *int64) *InterestRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterestRecordCreate) SetUpdatedAt(v time.Time) *InterestRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterestRecordCreate) SetNillableUpdatedAt(v *time.Time) *InterestRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the InterestRecordMutation object of the builder.
func (_c *InterestRecordCreate) Mutation() *InterestRecordMutation {
	return _c.mutation
}

// Save creates the InterestRecord in the database.
func (_c *InterestRecordCreate) Save(ctx context.Context) (*InterestRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterestRecordCreate) SaveX(ctx context.Context) *InterestRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterestRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterestRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterestRecordCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := interestrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := interestrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interestrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterestRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterestRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interestrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "InterestRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := interestrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "InterestRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "InterestRecord.score"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "InterestRecord.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InterestRecord.updated_at"`)}
	}
	return nil
}

func (_c *InterestRecordCreate) sqlSave(ctx context.Context) (*InterestRecord, error) {
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

func (_c *InterestRecordCreate) createSpec() (*InterestRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &InterestRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interestrecord.Table, sqlgraph.NewFieldSpec(interestrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interestrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(interestrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(interestrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RecentEventKeys(); ok {
		_spec.SetField(interestrecord.FieldRecentEventKeys, field.TypeJSON, value)
		_node.RecentEventKeys = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(interestrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interestrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InterestRecordCreateBulk is the builder for creating many InterestRecord entities in bulk.
type InterestRecordCreateBulk struct {
	config
	err      error
	builders []*InterestRecordCreate
}

// Save creates the InterestRecord entities in the database.
func (_c *InterestRecordCreateBulk) Save(ctx context.Context) ([]*InterestRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterestRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterestRecordMutation)
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
func (_c *InterestRecordCreateBulk) SaveX(ctx context.Context) []*InterestRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterestRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterestRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
