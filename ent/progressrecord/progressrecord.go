// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldCorrectByLevel holds the string denoting the correct_by_level field in the database.
	FieldCorrectByLevel = "correct_by_level"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldSkillEstimate holds the string denoting the skill_estimate field in the database.
	FieldSkillEstimate = "skill_estimate"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldUnlocked holds the string denoting the unlocked field in the database.
	FieldUnlocked = "unlocked"
	// FieldCanUnlockSubtopics holds the string denoting the can_unlock_subtopics field in the database.
	FieldCanUnlockSubtopics = "can_unlock_subtopics"
	// FieldSelectionCount holds the string denoting the selection_count field in the database.
	FieldSelectionCount = "selection_count"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopicID,
	FieldMasteryLevel,
	FieldCorrectByLevel,
	FieldQuestionsAnswered,
	FieldCorrectAnswers,
	FieldSkillEstimate,
	FieldConfidence,
	FieldUnlocked,
	FieldCanUnlockSubtopics,
	FieldSelectionCount,
	FieldLastSeenAt,
	FieldVersion,
	FieldUpdatedAt,
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
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel string
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultSkillEstimate holds the default value on creation for the "skill_estimate" field.
	DefaultSkillEstimate float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultUnlocked holds the default value on creation for the "unlocked" field.
	DefaultUnlocked bool
	// DefaultCanUnlockSubtopics holds the default value on creation for the "can_unlock_subtopics" field.
	DefaultCanUnlockSubtopics bool
	// DefaultSelectionCount holds the default value on creation for the "selection_count" field.
	DefaultSelectionCount int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressRecord queries.
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

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// BySkillEstimate orders the results by the skill_estimate field.
func BySkillEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillEstimate, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByUnlocked orders the results by the unlocked field.
func ByUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlocked, opts...).ToFunc()
}

// ByCanUnlockSubtopics orders the results by the can_unlock_subtopics field.
func ByCanUnlockSubtopics(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanUnlockSubtopics, opts...).ToFunc()
}

// BySelectionCount orders the results by the selection_count field.
func BySelectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectionCount, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
