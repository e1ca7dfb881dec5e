// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/concepthistory"
)

// ConceptHistory is the model entity for the ConceptHistory schema.
type ConceptHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Concepts holds the value of the "concepts" field.
	Concepts []string `json:"concepts,omitempty"`
	// ShownAt holds the value of the "shown_at" field.
	ShownAt      time.Time `json:"shown_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case concepthistory.FieldConcepts:
			values[i] = new([]byte)
		case concepthistory.FieldID:
			values[i] = new(sql.NullInt64)
		case concepthistory.FieldUserID, concepthistory.FieldTopicID, concepthistory.FieldQuestionID:
			values[i] = new(sql.NullString)
		case concepthistory.FieldShownAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptHistory fields.
func (_m *ConceptHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case concepthistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case concepthistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case concepthistory.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case concepthistory.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case concepthistory.FieldConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concepts); err != nil {
					return fmt.Errorf("unmarshal field concepts: %w", err)
				}
			}
		case concepthistory.FieldShownAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field shown_at", values[i])
			} else if value.Valid {
				_m.ShownAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptHistory.
// Note that you need to call ConceptHistory.Unwrap() before calling this method if this ConceptHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptHistory) Update() *ConceptHistoryUpdateOne {
	return NewConceptHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptHistory) Unwrap() *ConceptHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concepts))
	builder.WriteString(", ")
	builder.WriteString("shown_at=")
	builder.WriteString(_m.ShownAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptHistories is a parsable slice of ConceptHistory.
type ConceptHistories []*ConceptHistory
