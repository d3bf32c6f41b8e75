package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Curriculum is an externally managed ordered sequence of concepts. The
// engine only appends to its completed set, advances the cursor, and flips
// the status once every concept is done.
type Curriculum struct {
	ent.Schema
}

func (Curriculum) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			Optional(),
		field.JSON("concept_ids", []string{}).
			Comment("Ordered concept sequence"),
		field.JSON("completed_ids", []string{}).
			Optional(),
		field.Int("cursor").
			Default(0).
			Comment("Index of the next incomplete concept"),
		field.String("status").
			Default("active").
			Comment("active, completed"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Curriculum) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
