// Code generated by ent, DO NOT EDIT.

package concepthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the concepthistory type in the database.
	Label = "concept_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldConcepts holds the string denoting the concepts field in the database.
	FieldConcepts = "concepts"
	// FieldShownAt holds the string denoting the shown_at field in the database.
	FieldShownAt = "shown_at"
	// Table holds the table name of the concepthistory in the database.
	Table = "concept_histories"
)

// Columns holds all SQL columns for concepthistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopicID,
	FieldQuestionID,
	FieldConcepts,
	FieldShownAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultShownAt holds the default value on creation for the "shown_at" field.
	DefaultShownAt func() time.Time
)

// OrderOption defines the ordering options for the ConceptHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByShownAt orders the results by the shown_at field.
func ByShownAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShownAt, opts...).ToFunc()
}
