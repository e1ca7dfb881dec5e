// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/expansionattempt"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ExpansionAttemptDelete is the builder for deleting a ExpansionAttempt entity.
type ExpansionAttemptDelete struct {
	config
	hooks    []Hook
	mutation *ExpansionAttemptMutation
}

// Where appends a list predicates to the ExpansionAttemptDelete builder.
func (_d *ExpansionAttemptDelete) Where(ps ...predicate.ExpansionAttempt) *ExpansionAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExpansionAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExpansionAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExpansionAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(expansionattempt.Table, sqlgraph.NewFieldSpec(expansionattempt.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExpansionAttemptDeleteOne is the builder for deleting a single ExpansionAttempt entity.
type ExpansionAttemptDeleteOne struct {
	_d *ExpansionAttemptDelete
}

// Where appends a list predicates to the ExpansionAttemptDelete builder.
func (_d *ExpansionAttemptDeleteOne) Where(ps ...predicate.ExpansionAttempt) *ExpansionAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExpansionAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{expansionattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExpansionAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
