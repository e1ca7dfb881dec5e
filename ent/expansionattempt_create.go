// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/expansionattempt"
)

// ExpansionAttemptCreate is the builder for creating a ExpansionAttempt entity.
type ExpansionAttemptCreate struct {
	config
	mutation *ExpansionAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExpansionAttemptCreate) SetUserID(v string) *ExpansionAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ExpansionAttemptCreate) SetTopicID(v string) *ExpansionAttemptCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExpansionAttemptCreate) SetStatus(v string) *ExpansionAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExpansionAttemptCreate) SetNillableStatus(v *string) *ExpansionAttemptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ExpansionAttemptCreate) SetDetail(v string) *ExpansionAttemptCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ExpansionAttemptCreate) SetNillableDetail(v *string) *ExpansionAttemptCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExpansionAttemptCreate) SetStartedAt(v time.Time) *ExpansionAttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExpansionAttemptCreate) SetNillableStartedAt(v *time.Time) *ExpansionAttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ExpansionAttemptCreate) SetExpiresAt(v time.Time) *ExpansionAttemptCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the ExpansionAttemptMutation object of the builder.
func (_c *ExpansionAttemptCreate) Mutation() *ExpansionAttemptMutation {
	return _c.mutation
}

// Save creates the ExpansionAttempt in the database.
func (_c *ExpansionAttemptCreate) Save(ctx context.Context) (*ExpansionAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpansionAttemptCreate) SaveX(ctx context.Context) *ExpansionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpansionAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpansionAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpansionAttemptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := expansionattempt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := expansionattempt.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := expansionattempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpansionAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExpansionAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := expansionattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ExpansionAttempt.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := expansionattempt.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ExpansionAttempt.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExpansionAttempt.status"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ExpansionAttempt.detail"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExpansionAttempt.started_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ExpansionAttempt.expires_at"`)}
	}
	return nil
}

func (_c *ExpansionAttemptCreate) sqlSave(ctx context.Context) (*ExpansionAttempt, error) {
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

func (_c *ExpansionAttemptCreate) createSpec() (*ExpansionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExpansionAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expansionattempt.Table, sqlgraph.NewFieldSpec(expansionattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(expansionattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(expansionattempt.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(expansionattempt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(expansionattempt.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(expansionattempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(expansionattempt.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// ExpansionAttemptCreateBulk is the builder for creating many ExpansionAttempt entities in bulk.
type ExpansionAttemptCreateBulk struct {
	config
	err      error
	builders []*ExpansionAttemptCreate
}

// Save creates the ExpansionAttempt entities in the database.
func (_c *ExpansionAttemptCreateBulk) Save(ctx context.Context) ([]*ExpansionAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExpansionAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpansionAttemptMutation)
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
func (_c *ExpansionAttemptCreateBulk) SaveX(ctx context.Context) []*ExpansionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpansionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpansionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
