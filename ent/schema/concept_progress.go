package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptProgress tracks one concept within one learning session: its
// generated plan and where the learner stands against it.
type ConceptProgress struct {
	ent.Schema
}

func (ConceptProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("concept_id").
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("concept_name").
			NotEmpty(),
		field.String("status").
			Default("not_started").
			Comment("not_started, in_progress, completed"),
		field.JSON("plan", json.RawMessage{}).
			Optional().
			Comment("ConceptPlan generated once per concept per session"),
		field.String("curriculum_id").
			Optional().
			Comment("Set when the concept is sourced from a curriculum"),
		field.String("node_id").
			Optional().
			Comment("Canonical knowledge node this concept resolved to"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ConceptProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "concept_id").
			Unique(),
		index.Fields("learner_id"),
	}
}
