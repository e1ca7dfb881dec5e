// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/questionrecord"
)

// QuestionRecordCreate is the builder for creating a QuestionRecord entity.
type QuestionRecordCreate struct {
	config
	mutation *QuestionRecordMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionRecordCreate) SetQuestionID(v string) *QuestionRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *QuestionRecordCreate) SetTopicID(v string) *QuestionRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *QuestionRecordCreate) SetQuestionText(v string) *QuestionRecordCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionRecordCreate) SetOptions(v []string) *QuestionRecordCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionRecordCreate) SetCorrectAnswer(v string) *QuestionRecordCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionRecordCreate) SetExplanation(v string) *QuestionRecordCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionRecordCreate) SetNillableExplanation(v *string) *QuestionRecordCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionRecordCreate) SetDifficulty(v int) *QuestionRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionRecordCreate) SetNillableDifficulty(v *int) *QuestionRecordCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *QuestionRecordCreate) SetMasteryLevel(v string) *QuestionRecordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *QuestionRecordCreate) SetNillableMasteryLevel(v *string) *QuestionRecordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *QuestionRecordCreate) SetConcepts(v []string) *QuestionRecordCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionRecordCreate) SetCreatedAt(v time.Time) *QuestionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionRecordCreate) SetNillableCreatedAt(v *time.Time) *QuestionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionRecordMutation object of the builder.
func (_c *QuestionRecordCreate) Mutation() *QuestionRecordMutation {
	return _c.mutation
}

// Save creates the QuestionRecord in the database.
func (_c *QuestionRecordCreate) Save(ctx context.Context) (*QuestionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionRecordCreate) SaveX(ctx context.Context) *QuestionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionRecordCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := questionrecord.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := questionrecord.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := questionrecord.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionRecordCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "QuestionRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := questionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "QuestionRecord.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := questionrecord.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "QuestionRecord.options"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuestionRecord.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := questionrecord.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "QuestionRecord.explanation"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuestionRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "QuestionRecord.mastery_level"`)}
	}
	if _, ok := _c.mutation.Concepts(); !ok {
		return &ValidationError{Name: "concepts", err: errors.New(`ent: missing required field "QuestionRecord.concepts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionRecord.created_at"`)}
	}
	return nil
}

func (_c *QuestionRecordCreate) sqlSave(ctx context.Context) (*QuestionRecord, error) {
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

func (_c *QuestionRecordCreate) createSpec() (*QuestionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionrecord.Table, sqlgraph.NewFieldSpec(questionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionrecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(questionrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(questionrecord.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(questionrecord.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionrecord.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(questionrecord.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(questionrecord.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(questionrecord.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(questionrecord.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionRecordCreateBulk is the builder for creating many QuestionRecord entities in bulk.
type QuestionRecordCreateBulk struct {
	config
	err      error
	builders []*QuestionRecordCreate
}

// Save creates the QuestionRecord entities in the database.
func (_c *QuestionRecordCreateBulk) Save(ctx context.Context) ([]*QuestionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionRecordMutation)
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
func (_c *QuestionRecordCreateBulk) SaveX(ctx context.Context) []*QuestionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
