// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acarerdinc/relevia/ent/predicate"
	"github.com/acarerdinc/relevia/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdate) SetUserID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUserID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ProgressRecordUpdate) SetTopicID(v string) *ProgressRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTopicID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdate) SetMasteryLevel(v string) *ProgressRecordUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableMasteryLevel(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetCorrectByLevel sets the "correct_by_level" field.
func (_u *ProgressRecordUpdate) SetCorrectByLevel(v map[string]int) *ProgressRecordUpdate {
	_u.mutation.SetCorrectByLevel(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *ProgressRecordUpdate) SetQuestionsAnswered(v int) *ProgressRecordUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableQuestionsAnswered(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *ProgressRecordUpdate) AddQuestionsAnswered(v int) *ProgressRecordUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressRecordUpdate) SetCorrectAnswers(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCorrectAnswers(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressRecordUpdate) AddCorrectAnswers(v int) *ProgressRecordUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetSkillEstimate sets the "skill_estimate" field.
func (_u *ProgressRecordUpdate) SetSkillEstimate(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetSkillEstimate()
	_u.mutation.SetSkillEstimate(v)
	return _u
}

// SetNillableSkillEstimate sets the "skill_estimate" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSkillEstimate(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSkillEstimate(*v)
	}
	return _u
}

// AddSkillEstimate adds value to the "skill_estimate" field.
func (_u *ProgressRecordUpdate) AddSkillEstimate(v float64) *ProgressRecordUpdate {
	_u.mutation.AddSkillEstimate(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProgressRecordUpdate) SetConfidence(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableConfidence(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProgressRecordUpdate) AddConfidence(v float64) *ProgressRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *ProgressRecordUpdate) SetUnlocked(v bool) *ProgressRecordUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUnlocked(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetCanUnlockSubtopics sets the "can_unlock_subtopics" field.
func (_u *ProgressRecordUpdate) SetCanUnlockSubtopics(v bool) *ProgressRecordUpdate {
	_u.mutation.SetCanUnlockSubtopics(v)
	return _u
}

// SetNillableCanUnlockSubtopics sets the "can_unlock_subtopics" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCanUnlockSubtopics(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCanUnlockSubtopics(*v)
	}
	return _u
}

// SetSelectionCount sets the "selection_count" field.
func (_u *ProgressRecordUpdate) SetSelectionCount(v int) *ProgressRecordUpdate {
	_u.mutation.ResetSelectionCount()
	_u.mutation.SetSelectionCount(v)
	return _u
}

// SetNillableSelectionCount sets the "selection_count" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSelectionCount(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSelectionCount(*v)
	}
	return _u
}

// AddSelectionCount adds value to the "selection_count" field.
func (_u *ProgressRecordUpdate) AddSelectionCount(v int) *ProgressRecordUpdate {
	_u.mutation.AddSelectionCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ProgressRecordUpdate) SetLastSeenAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastSeenAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *ProgressRecordUpdate) ClearLastSeenAt() *ProgressRecordUpdate {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdate) SetVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableVersion(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdate) AddVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := progressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(progressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectByLevel(); ok {
		_spec.SetField(progressrecord.FieldCorrectByLevel, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(progressrecord.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(progressrecord.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillEstimate(); ok {
		_spec.SetField(progressrecord.FieldSkillEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkillEstimate(); ok {
		_spec.AddField(progressrecord.FieldSkillEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(progressrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(progressrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(progressrecord.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanUnlockSubtopics(); ok {
		_spec.SetField(progressrecord.FieldCanUnlockSubtopics, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SelectionCount(); ok {
		_spec.SetField(progressrecord.FieldSelectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectionCount(); ok {
		_spec.AddField(progressrecord.FieldSelectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(progressrecord.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(progressrecord.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdateOne) SetUserID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUserID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ProgressRecordUpdateOne) SetTopicID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTopicID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdateOne) SetMasteryLevel(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableMasteryLevel(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetCorrectByLevel sets the "correct_by_level" field.
func (_u *ProgressRecordUpdateOne) SetCorrectByLevel(v map[string]int) *ProgressRecordUpdateOne {
	_u.mutation.SetCorrectByLevel(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *ProgressRecordUpdateOne) SetQuestionsAnswered(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableQuestionsAnswered(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *ProgressRecordUpdateOne) AddQuestionsAnswered(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressRecordUpdateOne) SetCorrectAnswers(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCorrectAnswers(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressRecordUpdateOne) AddCorrectAnswers(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetSkillEstimate sets the "skill_estimate" field.
func (_u *ProgressRecordUpdateOne) SetSkillEstimate(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetSkillEstimate()
	_u.mutation.SetSkillEstimate(v)
	return _u
}

// SetNillableSkillEstimate sets the "skill_estimate" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSkillEstimate(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSkillEstimate(*v)
	}
	return _u
}

// AddSkillEstimate adds value to the "skill_estimate" field.
func (_u *ProgressRecordUpdateOne) AddSkillEstimate(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddSkillEstimate(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProgressRecordUpdateOne) SetConfidence(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableConfidence(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProgressRecordUpdateOne) AddConfidence(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *ProgressRecordUpdateOne) SetUnlocked(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUnlocked(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetCanUnlockSubtopics sets the "can_unlock_subtopics" field.
func (_u *ProgressRecordUpdateOne) SetCanUnlockSubtopics(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetCanUnlockSubtopics(v)
	return _u
}

// SetNillableCanUnlockSubtopics sets the "can_unlock_subtopics" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCanUnlockSubtopics(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCanUnlockSubtopics(*v)
	}
	return _u
}

// SetSelectionCount sets the "selection_count" field.
func (_u *ProgressRecordUpdateOne) SetSelectionCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetSelectionCount()
	_u.mutation.SetSelectionCount(v)
	return _u
}

// SetNillableSelectionCount sets the "selection_count" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSelectionCount(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSelectionCount(*v)
	}
	return _u
}

// AddSelectionCount adds value to the "selection_count" field.
func (_u *ProgressRecordUpdateOne) AddSelectionCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddSelectionCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ProgressRecordUpdateOne) SetLastSeenAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastSeenAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *ProgressRecordUpdateOne) ClearLastSeenAt() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdateOne) SetVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableVersion(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdateOne) AddVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := progressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(progressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectByLevel(); ok {
		_spec.SetField(progressrecord.FieldCorrectByLevel, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(progressrecord.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(progressrecord.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillEstimate(); ok {
		_spec.SetField(progressrecord.FieldSkillEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkillEstimate(); ok {
		_spec.AddField(progressrecord.FieldSkillEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(progressrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(progressrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(progressrecord.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanUnlockSubtopics(); ok {
		_spec.SetField(progressrecord.FieldCanUnlockSubtopics, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SelectionCount(); ok {
		_spec.SetField(progressrecord.FieldSelectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectionCount(); ok {
		_spec.AddField(progressrecord.FieldSelectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(progressrecord.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(progressrecord.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
