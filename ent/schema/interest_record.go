package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterestRecord holds one learner's interest score for one topic,
// nudged by answer and skip signals.
type InterestRecord struct {
	ent.Schema
}

func (InterestRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Float("score").
			Default(0.5).
			Comment("Interest in [0,1], neutral start at 0.5"),
		field.JSON("recent_event_keys", []string{}).
			Optional().
			Comment("Dedup keys of recently applied signals, oldest first"),
		field.Int64("version").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (InterestRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id"),
	}
}
