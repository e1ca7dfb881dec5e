// Code generated by ent, DO NOT EDIT.

package topic

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topic type in the database.
	Label = "topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldDifficultyMin holds the string denoting the difficulty_min field in the database.
	FieldDifficultyMin = "difficulty_min"
	// FieldDifficultyMax holds the string denoting the difficulty_max field in the database.
	FieldDifficultyMax = "difficulty_max"
	// FieldGenerated holds the string denoting the generated field in the database.
	FieldGenerated = "generated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the topic in the database.
	Table = "topics"
)

// Columns holds all SQL columns for topic fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldParentID,
	FieldName,
	FieldDescription,
	FieldDepth,
	FieldDifficultyMin,
	FieldDifficultyMax,
	FieldGenerated,
	FieldCreatedAt,
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
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultParentID holds the default value on creation for the "parent_id" field.
	DefaultParentID string
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultDifficultyMin holds the default value on creation for the "difficulty_min" field.
	DefaultDifficultyMin int
	// DefaultDifficultyMax holds the default value on creation for the "difficulty_max" field.
	DefaultDifficultyMax int
	// DefaultGenerated holds the default value on creation for the "generated" field.
	DefaultGenerated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Topic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByDifficultyMin orders the results by the difficulty_min field.
func ByDifficultyMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyMin, opts...).ToFunc()
}

// ByDifficultyMax orders the results by the difficulty_max field.
func ByDifficultyMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyMax, opts...).ToFunc()
}

// ByGenerated orders the results by the generated field.
func ByGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
