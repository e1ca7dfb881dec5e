package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a node in the dynamically grown topic ontology. The graph is
// global: every learner sees the same nodes, while unlock state and
// progress live in per-learner records.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Unique().
			NotEmpty().
			Comment("Stable slug identifier, e.g. machine-learning"),
		field.String("parent_id").
			Default("").
			Comment("topic_id of the parent, empty for the root"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Int("depth").
			Default(0).
			Comment("Root is 0, children are parent depth + 1"),
		field.Int("difficulty_min").
			Default(1),
		field.Int("difficulty_max").
			Default(10),
		field.Bool("generated").
			Default(false).
			Comment("True when the node came from ontology expansion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("parent_id"),
	}
}
