package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExpansionAttempt marks an in-flight or finished ontology expansion
// for a (user, topic) pair. A live pending marker suppresses duplicate
// expansions; markers past their TTL are treated as dead.
type ExpansionAttempt struct {
	ent.Schema
}

func (ExpansionAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("status").
			Default("pending").
			Comment("pending, succeeded, or failed"),
		field.String("detail").
			Default("").
			Comment("Failure reason when status is failed"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Comment("Pending markers past this instant no longer block"),
	}
}

func (ExpansionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id"),
		index.Fields("status"),
	}
}
