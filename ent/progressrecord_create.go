// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressRecordCreate) SetUserID(v string) *ProgressRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ProgressRecordCreate) SetTopicID(v string) *ProgressRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ProgressRecordCreate) SetMasteryLevel(v string) *ProgressRecordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableMasteryLevel(v *string) *ProgressRecordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetCorrectByLevel sets the "correct_by_level" field.
func (_c *ProgressRecordCreate) SetCorrectByLevel(v map[string]int) *ProgressRecordCreate {
	_c.mutation.SetCorrectByLevel(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *ProgressRecordCreate) SetQuestionsAnswered(v int) *ProgressRecordCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableQuestionsAnswered(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ProgressRecordCreate) SetCorrectAnswers(v int) *ProgressRecordCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCorrectAnswers(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetSkillEstimate sets the "skill_estimate" field.
func (_c *ProgressRecordCreate) SetSkillEstimate(v float64) *ProgressRecordCreate {
	_c.mutation.SetSkillEstimate(v)
	return _c
}

// SetNillableSkillEstimate sets the "skill_estimate" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableSkillEstimate(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetSkillEstimate(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProgressRecordCreate) SetConfidence(v float64) *ProgressRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableConfidence(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetUnlocked sets the "unlocked" field.
func (_c *ProgressRecordCreate) SetUnlocked(v bool) *ProgressRecordCreate {
	_c.mutation.SetUnlocked(v)
	return _c
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUnlocked(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetUnlocked(*v)
	}
	return _c
}

// SetCanUnlockSubtopics sets the "can_unlock_subtopics" field.
func (_c *ProgressRecordCreate) SetCanUnlockSubtopics(v bool) *ProgressRecordCreate {
	_c.mutation.SetCanUnlockSubtopics(v)
	return _c
}

// SetNillableCanUnlockSubtopics sets the "can_unlock_subtopics" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCanUnlockSubtopics(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetCanUnlockSubtopics(*v)
	}
	return _c
}

// SetSelectionCount sets the "selection_count" field.
func (_c *ProgressRecordCreate) SetSelectionCount(v int) *ProgressRecordCreate {
	_c.mutation.SetSelectionCount(v)
	return _c
}

// SetNillableSelectionCount sets the "selection_count" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableSelectionCount(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetSelectionCount(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ProgressRecordCreate) SetLastSeenAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastSeenAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProgressRecordCreate) SetVersion(v int64) *ProgressRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableVersion(v *int64) *ProgressRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressRecordCreate) SetUpdatedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUpdatedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := progressrecord.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := progressrecord.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := progressrecord.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.SkillEstimate(); !ok {
		v := progressrecord.DefaultSkillEstimate
		_c.mutation.SetSkillEstimate(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := progressrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		v := progressrecord.DefaultUnlocked
		_c.mutation.SetUnlocked(v)
	}
	if _, ok := _c.mutation.CanUnlockSubtopics(); !ok {
		v := progressrecord.DefaultCanUnlockSubtopics
		_c.mutation.SetCanUnlockSubtopics(v)
	}
	if _, ok := _c.mutation.SelectionCount(); !ok {
		v := progressrecord.DefaultSelectionCount
		_c.mutation.SetSelectionCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := progressrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProgressRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ProgressRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := progressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ProgressRecord.mastery_level"`)}
	}
	if _, ok := _c.mutation.CorrectByLevel(); !ok {
		return &ValidationError{Name: "correct_by_level", err: errors.New(`ent: missing required field "ProgressRecord.correct_by_level"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "ProgressRecord.questions_answered"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ProgressRecord.correct_answers"`)}
	}
	if _, ok := _c.mutation.SkillEstimate(); !ok {
		return &ValidationError{Name: "skill_estimate", err: errors.New(`ent: missing required field "ProgressRecord.skill_estimate"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ProgressRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		return &ValidationError{Name: "unlocked", err: errors.New(`ent: missing required field "ProgressRecord.unlocked"`)}
	}
	if _, ok := _c.mutation.CanUnlockSubtopics(); !ok {
		return &ValidationError{Name: "can_unlock_subtopics", err: errors.New(`ent: missing required field "ProgressRecord.can_unlock_subtopics"`)}
	}
	if _, ok := _c.mutation.SelectionCount(); !ok {
		return &ValidationError{Name: "selection_count", err: errors.New(`ent: missing required field "ProgressRecord.selection_count"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProgressRecord.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressRecord.updated_at"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(progressrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.CorrectByLevel(); ok {
		_spec.SetField(progressrecord.FieldCorrectByLevel, field.TypeJSON, value)
		_node.CorrectByLevel = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(progressrecord.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.SkillEstimate(); ok {
		_spec.SetField(progressrecord.FieldSkillEstimate, field.TypeFloat64, value)
		_node.SkillEstimate = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(progressrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Unlocked(); ok {
		_spec.SetField(progressrecord.FieldUnlocked, field.TypeBool, value)
		_node.Unlocked = value
	}
	if value, ok := _c.mutation.CanUnlockSubtopics(); ok {
		_spec.SetField(progressrecord.FieldCanUnlockSubtopics, field.TypeBool, value)
		_node.CanUnlockSubtopics = value
	}
	if value, ok := _c.mutation.SelectionCount(); ok {
		_spec.SetField(progressrecord.FieldSelectionCount, field.TypeInt, value)
		_node.SelectionCount = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(progressrecord.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
