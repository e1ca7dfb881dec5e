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
	"github.com/acarerdinc/relevia/ent/predicate"
	"github.com/acarerdinc/relevia/ent/questionrecord"
)

// QuestionRecordUpdate is the builder for updating QuestionRecord entities.
type QuestionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionRecordMutation
}

// Where appends a list predicates to the QuestionRecordUpdate builder.
func (_u *QuestionRecordUpdate) Where(ps ...predicate.QuestionRecord) *QuestionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionRecordUpdate) SetQuestionID(v string) *QuestionRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableQuestionID(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionRecordUpdate) SetTopicID(v string) *QuestionRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableTopicID(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionRecordUpdate) SetQuestionText(v string) *QuestionRecordUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableQuestionText(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionRecordUpdate) SetOptions(v []string) *QuestionRecordUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionRecordUpdate) AppendOptions(v []string) *QuestionRecordUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionRecordUpdate) SetCorrectAnswer(v string) *QuestionRecordUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableCorrectAnswer(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionRecordUpdate) SetExplanation(v string) *QuestionRecordUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableExplanation(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionRecordUpdate) SetDifficulty(v int) *QuestionRecordUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableDifficulty(v *int) *QuestionRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionRecordUpdate) AddDifficulty(v int) *QuestionRecordUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *QuestionRecordUpdate) SetMasteryLevel(v string) *QuestionRecordUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *QuestionRecordUpdate) SetNillableMasteryLevel(v *string) *QuestionRecordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *QuestionRecordUpdate) SetConcepts(v []string) *QuestionRecordUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *QuestionRecordUpdate) AppendConcepts(v []string) *QuestionRecordUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// Mutation returns the QuestionRecordMutation object of the builder.
func (_u *QuestionRecordUpdate) Mutation() *QuestionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionRecordUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := questionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := questionrecord.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := questionrecord.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionrecord.Table, questionrecord.Columns, sqlgraph.NewFieldSpec(questionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(questionrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(questionrecord.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(questionrecord.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionrecord.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionrecord.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(questionrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questionrecord.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(questionrecord.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(questionrecord.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(questionrecord.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionrecord.FieldConcepts, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionRecordUpdateOne is the builder for updating a single QuestionRecord entity.
type QuestionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionRecordMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionRecordUpdateOne) SetQuestionID(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableQuestionID(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionRecordUpdateOne) SetTopicID(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableTopicID(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionRecordUpdateOne) SetQuestionText(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableQuestionText(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionRecordUpdateOne) SetOptions(v []string) *QuestionRecordUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionRecordUpdateOne) AppendOptions(v []string) *QuestionRecordUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionRecordUpdateOne) SetCorrectAnswer(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionRecordUpdateOne) SetExplanation(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableExplanation(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionRecordUpdateOne) SetDifficulty(v int) *QuestionRecordUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableDifficulty(v *int) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionRecordUpdateOne) AddDifficulty(v int) *QuestionRecordUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *QuestionRecordUpdateOne) SetMasteryLevel(v string) *QuestionRecordUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *QuestionRecordUpdateOne) SetNillableMasteryLevel(v *string) *QuestionRecordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *QuestionRecordUpdateOne) SetConcepts(v []string) *QuestionRecordUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *QuestionRecordUpdateOne) AppendConcepts(v []string) *QuestionRecordUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// Mutation returns the QuestionRecordMutation object of the builder.
func (_u *QuestionRecordUpdateOne) Mutation() *QuestionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionRecordUpdate builder.
func (_u *QuestionRecordUpdateOne) Where(ps ...predicate.QuestionRecord) *QuestionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionRecordUpdateOne) Select(field string, fields ...string) *QuestionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionRecord entity.
func (_u *QuestionRecordUpdateOne) Save(ctx context.Context) (*QuestionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionRecordUpdateOne) SaveX(ctx context.Context) *QuestionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := questionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := questionrecord.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := questionrecord.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionRecord.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionRecordUpdateOne) sqlSave(ctx context.Context) (_node *QuestionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionrecord.Table, questionrecord.Columns, sqlgraph.NewFieldSpec(questionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionrecord.FieldID)
		for _, f := range fields {
			if !questionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionrecord.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(questionrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(questionrecord.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(questionrecord.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionrecord.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionrecord.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(questionrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questionrecord.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(questionrecord.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(questionrecord.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(questionrecord.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionrecord.FieldConcepts, value)
		})
	}
	_node = &QuestionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
