// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTopicID, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCorrectAnswers, v))
}

// SkillEstimate applies equality check predicate on the "skill_estimate" field. It's identical to SkillEstimateEQ.
func SkillEstimate(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSkillEstimate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldConfidence, v))
}

// Unlocked applies equality check predicate on the "unlocked" field. It's identical to UnlockedEQ.
func Unlocked(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUnlocked, v))
}

// CanUnlockSubtopics applies equality check predicate on the "can_unlock_subtopics" field. It's identical to CanUnlockSubtopicsEQ.
func CanUnlockSubtopics(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCanUnlockSubtopics, v))
}

// SelectionCount applies equality check predicate on the "selection_count" field. It's identical to SelectionCountEQ.
func SelectionCount(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSelectionCount, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastSeenAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldVersion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldTopicID, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldCorrectAnswers, v))
}

// SkillEstimateEQ applies the EQ predicate on the "skill_estimate" field.
func SkillEstimateEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSkillEstimate, v))
}

// SkillEstimateNEQ applies the NEQ predicate on the "skill_estimate" field.
func SkillEstimateNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldSkillEstimate, v))
}

// SkillEstimateIn applies the In predicate on the "skill_estimate" field.
func SkillEstimateIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldSkillEstimate, vs...))
}

// SkillEstimateNotIn applies the NotIn predicate on the "skill_estimate" field.
func SkillEstimateNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldSkillEstimate, vs...))
}

// SkillEstimateGT applies the GT predicate on the "skill_estimate" field.
func SkillEstimateGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldSkillEstimate, v))
}

// SkillEstimateGTE applies the GTE predicate on the "skill_estimate" field.
func SkillEstimateGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldSkillEstimate, v))
}

// SkillEstimateLT applies the LT predicate on the "skill_estimate" field.
func SkillEstimateLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldSkillEstimate, v))
}

// SkillEstimateLTE applies the LTE predicate on the "skill_estimate" field.
func SkillEstimateLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldSkillEstimate, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldConfidence, v))
}

// UnlockedEQ applies the EQ predicate on the "unlocked" field.
func UnlockedEQ(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUnlocked, v))
}

// UnlockedNEQ applies the NEQ predicate on the "unlocked" field.
func UnlockedNEQ(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUnlocked, v))
}

// CanUnlockSubtopicsEQ applies the EQ predicate on the "can_unlock_subtopics" field.
func CanUnlockSubtopicsEQ(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCanUnlockSubtopics, v))
}

// CanUnlockSubtopicsNEQ applies the NEQ predicate on the "can_unlock_subtopics" field.
func CanUnlockSubtopicsNEQ(v bool) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCanUnlockSubtopics, v))
}

// SelectionCountEQ applies the EQ predicate on the "selection_count" field.
func SelectionCountEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSelectionCount, v))
}

// SelectionCountNEQ applies the NEQ predicate on the "selection_count" field.
func SelectionCountNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldSelectionCount, v))
}

// SelectionCountIn applies the In predicate on the "selection_count" field.
func SelectionCountIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldSelectionCount, vs...))
}

// SelectionCountNotIn applies the NotIn predicate on the "selection_count" field.
func SelectionCountNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldSelectionCount, vs...))
}

// SelectionCountGT applies the GT predicate on the "selection_count" field.
func SelectionCountGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldSelectionCount, v))
}

// SelectionCountGTE applies the GTE predicate on the "selection_count" field.
func SelectionCountGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldSelectionCount, v))
}

// SelectionCountLT applies the LT predicate on the "selection_count" field.
func SelectionCountLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldSelectionCount, v))
}

// SelectionCountLTE applies the LTE predicate on the "selection_count" field.
func SelectionCountLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldSelectionCount, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldLastSeenAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldVersion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.NotPredicates(p))
}
