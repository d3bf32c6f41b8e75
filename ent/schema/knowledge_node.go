package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeNode is the canonical, deduplicated identity of a concept across
// all sessions for one learner. current_mastery is always the aggregator's
// output over mastery_history, never set independently.
type KnowledgeNode struct {
	ent.Schema
}

func (KnowledgeNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("canonical_name").
			NotEmpty().
			Comment("Lowercased dedup key"),
		field.String("display_name").
			NotEmpty(),
		field.String("definition").
			Optional(),
		field.String("current_mastery").
			Default("revisit").
			Comment("solid, developing, shaky, revisit"),
		field.JSON("mastery_history", json.RawMessage{}).
			Optional().
			Comment("Append-only, chronologically ordered entries"),
		field.JSON("session_ids", []string{}).
			Optional(),
		field.Int("session_count").
			Default(0),
		field.String("topic_id").
			Optional(),
		field.String("topic_name").
			Optional(),
		field.String("synthesis_cache").
			Optional().
			Comment("Cached synthesis text; invalidated when mastery changes"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
	}
}

func (KnowledgeNode) Indexes() []ent.Index {
	return []ent.Index{
		// At most one node per learner per canonical name.
		index.Fields("learner_id", "canonical_name").
			Unique(),
		index.Fields("learner_id", "topic_id"),
	}
}
