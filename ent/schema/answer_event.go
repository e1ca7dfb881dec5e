package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single learner action on a served question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the question was served for"),
		field.String("question_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("answer, skip, or teach_me"),
		field.String("learner_answer").
			Default("").
			Comment("Empty for skip and teach_me"),
		field.Bool("correct"),
		field.Int("difficulty").
			Comment("Difficulty of the question, 1 through 10"),
		field.Int("time_ms").
			Comment("Milliseconds from serve to action"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "topic_id"),
		index.Fields("correct"),
	}
}
