package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionRecord stores a generated question so it can be re-served
// when the generator is unavailable.
type QuestionRecord struct {
	ent.Schema
}

func (QuestionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("question_text").
			NotEmpty(),
		field.JSON("options", []string{}).
			Comment("Multiple-choice options in display order"),
		field.String("correct_answer").
			NotEmpty(),
		field.String("explanation").
			Default(""),
		field.Int("difficulty").
			Default(5).
			Comment("1 through 10"),
		field.String("mastery_level").
			Default("novice").
			Comment("Level the question was generated for"),
		field.JSON("concepts", []string{}).
			Comment("Concept terms extracted for diversity checks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("topic_id"),
	}
}
