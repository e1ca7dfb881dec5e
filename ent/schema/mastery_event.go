package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a mastery level transition for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.String("from_level").NotEmpty(),
		field.String("to_level").NotEmpty(),
		field.Float("accuracy"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id"),
	}
}
