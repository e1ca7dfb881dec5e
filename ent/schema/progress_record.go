package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord holds one learner's mastery state for one topic.
// Updated under optimistic concurrency: writers re-read on a version
// mismatch instead of clobbering each other.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("mastery_level").
			Default("novice").
			Comment("novice, competent, proficient, expert, or master"),
		field.JSON("correct_by_level", map[string]int{}).
			Comment("Correct-answer counters keyed by mastery level"),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Float("skill_estimate").
			Default(0),
		field.Float("confidence").
			Default(0),
		field.Bool("unlocked").
			Default(false),
		field.Bool("can_unlock_subtopics").
			Default(false),
		field.Int("selection_count").
			Default(0).
			Comment("Times the bandit served this topic to the learner"),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
		field.Int64("version").
			Default(0).
			Comment("Optimistic concurrency counter"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id"),
	}
}
