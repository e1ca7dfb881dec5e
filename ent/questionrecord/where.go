// Code generated by ent, DO NOT EDIT.

package questionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldQuestionID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldTopicID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldExplanation, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldDifficulty, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldTopicID, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldQuestionText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldExplanation, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldDifficulty, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionRecord) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionRecord) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionRecord) predicate.QuestionRecord {
	return predicate.QuestionRecord(sql.NotPredicates(p))
}
