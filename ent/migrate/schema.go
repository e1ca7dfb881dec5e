// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// ConceptHistoriesColumns holds the columns for the "concept_histories" table.
	ConceptHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "concepts", Type: field.TypeJSON},
		{Name: "shown_at", Type: field.TypeTime},
	}
	// ConceptHistoriesTable holds the schema information for the "concept_histories" table.
	ConceptHistoriesTable = &schema.Table{
		Name:       "concept_histories",
		Columns:    ConceptHistoriesColumns,
		PrimaryKey: []*schema.Column{ConceptHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concepthistory_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptHistoriesColumns[1], ConceptHistoriesColumns[2]},
			},
			{
				Name:    "concepthistory_shown_at",
				Unique:  false,
				Columns: []*schema.Column{ConceptHistoriesColumns[5]},
			},
		},
	}
	// ExpansionAttemptsColumns holds the columns for the "expansion_attempts" table.
	ExpansionAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ExpansionAttemptsTable holds the schema information for the "expansion_attempts" table.
	ExpansionAttemptsTable = &schema.Table{
		Name:       "expansion_attempts",
		Columns:    ExpansionAttemptsColumns,
		PrimaryKey: []*schema.Column{ExpansionAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "expansionattempt_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{ExpansionAttemptsColumns[1], ExpansionAttemptsColumns[2]},
			},
			{
				Name:    "expansionattempt_status",
				Unique:  false,
				Columns: []*schema.Column{ExpansionAttemptsColumns[3]},
			},
		},
	}
	// InterestRecordsColumns holds the columns for the "interest_records" table.
	InterestRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "recent_event_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InterestRecordsTable holds the schema information for the "interest_records" table.
	InterestRecordsTable = &schema.Table{
		Name:       "interest_records",
		Columns:    InterestRecordsColumns,
		PrimaryKey: []*schema.Column{InterestRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interestrecord_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{InterestRecordsColumns[1], InterestRecordsColumns[2]},
			},
			{
				Name:    "interestrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{InterestRecordsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeString},
		{Name: "to_level", Type: field.TypeString},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeString, Default: "novice"},
		{Name: "correct_by_level", Type: field.TypeJSON},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "skill_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "unlocked", Type: field.TypeBool, Default: false},
		{Name: "can_unlock_subtopics", Type: field.TypeBool, Default: false},
		{Name: "selection_count", Type: field.TypeInt, Default: 0},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1]},
			},
		},
	}
	// QuestionRecordsColumns holds the columns for the "question_records" table.
	QuestionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 5},
		{Name: "mastery_level", Type: field.TypeString, Default: "novice"},
		{Name: "concepts", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionRecordsTable holds the schema information for the "question_records" table.
	QuestionRecordsTable = &schema.Table{
		Name:       "question_records",
		Columns:    QuestionRecordsColumns,
		PrimaryKey: []*schema.Column{QuestionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionrecord_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionRecordsColumns[1]},
			},
			{
				Name:    "questionrecord_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionRecordsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "difficulty_min", Type: field.TypeInt, Default: 1},
		{Name: "difficulty_max", Type: field.TypeInt, Default: 10},
		{Name: "generated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_parent_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ConceptHistoriesTable,
		ExpansionAttemptsTable,
		InterestRecordsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		ProgressRecordsTable,
		QuestionRecordsTable,
		TopicsTable,
	}
)

func init() {
}
