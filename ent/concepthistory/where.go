// Code generated by ent, DO NOT EDIT.

package concepthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldTopicID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldQuestionID, v))
}

// ShownAt applies equality check predicate on the "shown_at" field. It's identical to ShownAtEQ.
func ShownAt(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldShownAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContainsFold(FieldTopicID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldContainsFold(FieldQuestionID, v))
}

// ShownAtEQ applies the EQ predicate on the "shown_at" field.
func ShownAtEQ(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldEQ(FieldShownAt, v))
}

// ShownAtNEQ applies the NEQ predicate on the "shown_at" field.
func ShownAtNEQ(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNEQ(FieldShownAt, v))
}

// ShownAtIn applies the In predicate on the "shown_at" field.
func ShownAtIn(vs ...time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldIn(FieldShownAt, vs...))
}

// ShownAtNotIn applies the NotIn predicate on the "shown_at" field.
func ShownAtNotIn(vs ...time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldNotIn(FieldShownAt, vs...))
}

// ShownAtGT applies the GT predicate on the "shown_at" field.
func ShownAtGT(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGT(FieldShownAt, v))
}

// ShownAtGTE applies the GTE predicate on the "shown_at" field.
func ShownAtGTE(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldGTE(FieldShownAt, v))
}

// ShownAtLT applies the LT predicate on the "shown_at" field.
func ShownAtLT(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLT(FieldShownAt, v))
}

// ShownAtLTE applies the LTE predicate on the "shown_at" field.
func ShownAtLTE(v time.Time) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.FieldLTE(FieldShownAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptHistory) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptHistory) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptHistory) predicate.ConceptHistory {
	return predicate.ConceptHistory(sql.NotPredicates(p))
}
