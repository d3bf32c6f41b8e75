package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptTopic is a named cluster of knowledge nodes. Derived and maintained
// by the registry's clustering pass, never independently authored.
type ConceptTopic struct {
	ent.Schema
}

func (ConceptTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int("concept_count").
			Default(0),
		field.String("dominant_mastery").
			Default("revisit").
			Comment("Majority vote over member current_mastery values"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ConceptTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "name").
			Unique(),
	}
}
