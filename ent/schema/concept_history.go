package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptHistory records the concepts of a question actually shown to a
// learner on a topic. The diversity window reads the most recent rows.
type ConceptHistory struct {
	ent.Schema
}

func (ConceptHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.JSON("concepts", []string{}),
		field.Time("shown_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ConceptHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id"),
		index.Fields("shown_at"),
	}
}
