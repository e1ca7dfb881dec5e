// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/progressrecord"
)

// ProgressRecord is the model entity for the ProgressRecord schema.
type ProgressRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// novice, competent, proficient, expert, or master
	MasteryLevel string `json:"mastery_level,omitempty"`
	// Correct-answer counters keyed by mastery level
	CorrectByLevel map[string]int `json:"correct_by_level,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// SkillEstimate holds the value of the "skill_estimate" field.
	SkillEstimate float64 `json:"skill_estimate,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Unlocked holds the value of the "unlocked" field.
	Unlocked bool `json:"unlocked,omitempty"`
	// CanUnlockSubtopics holds the value of the "can_unlock_subtopics" field.
	CanUnlockSubtopics bool `json:"can_unlock_subtopics,omitempty"`
	// Times the bandit served this topic to the learner
	SelectionCount int `json:"selection_count,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	// Optimistic concurrency counter
	Version int64 `json:"version,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldCorrectByLevel:
			values[i] = new([]byte)
		case progressrecord.FieldUnlocked, progressrecord.FieldCanUnlockSubtopics:
			values[i] = new(sql.NullBool)
		case progressrecord.FieldSkillEstimate, progressrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case progressrecord.FieldID, progressrecord.FieldQuestionsAnswered, progressrecord.FieldCorrectAnswers, progressrecord.FieldSelectionCount, progressrecord.FieldVersion:
			values[i] = new(sql.NullInt64)
		case progressrecord.FieldUserID, progressrecord.FieldTopicID, progressrecord.FieldMasteryLevel:
			values[i] = new(sql.NullString)
		case progressrecord.FieldLastSeenAt, progressrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressRecord fields.
func (_m *ProgressRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case progressrecord.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case progressrecord.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.String
			}
		case progressrecord.FieldCorrectByLevel:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correct_by_level", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectByLevel); err != nil {
					return fmt.Errorf("unmarshal field correct_by_level: %w", err)
				}
			}
		case progressrecord.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case progressrecord.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case progressrecord.FieldSkillEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skill_estimate", values[i])
			} else if value.Valid {
				_m.SkillEstimate = value.Float64
			}
		case progressrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case progressrecord.FieldUnlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked", values[i])
			} else if value.Valid {
				_m.Unlocked = value.Bool
			}
		case progressrecord.FieldCanUnlockSubtopics:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_unlock_subtopics", values[i])
			} else if value.Valid {
				_m.CanUnlockSubtopics = value.Bool
			}
		case progressrecord.FieldSelectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selection_count", values[i])
			} else if value.Valid {
				_m.SelectionCount = int(value.Int64)
			}
		case progressrecord.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = new(time.Time)
				*_m.LastSeenAt = value.Time
			}
		case progressrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case progressrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressRecord.
// Note that you need to call ProgressRecord.Unwrap() before calling this method if this ProgressRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressRecord) Update() *ProgressRecordUpdateOne {
	return NewProgressRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressRecord) Unwrap() *ProgressRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(_m.MasteryLevel)
	builder.WriteString(", ")
	builder.WriteString("correct_by_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectByLevel))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("skill_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillEstimate))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unlocked))
	builder.WriteString(", ")
	builder.WriteString("can_unlock_subtopics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanUnlockSubtopics))
	builder.WriteString(", ")
	builder.WriteString("selection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectionCount))
	builder.WriteString(", ")
	if v := _m.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressRecords is a parsable slice of ProgressRecord.
type ProgressRecords []*ProgressRecord
