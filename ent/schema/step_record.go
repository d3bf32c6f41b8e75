package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepRecord is one entry in the append-only, per-concept Flow Mode step log.
// A record is pending until a user response is attached; the terminal
// "completed" marker never receives one.
type StepRecord struct {
	ent.Schema
}

func (StepRecord) Fields() []ent.Field {
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
		field.Int("step_number").
			Positive().
			Immutable().
			Comment("1-based, contiguous per (session, concept)"),
		field.String("step_type").
			NotEmpty().
			Immutable().
			Comment("orient, build_layer, anchor, check, reinforce, confirm, completed"),
		field.JSON("content", json.RawMessage{}).
			Comment("Step payload as produced by the sequencer"),
		field.String("user_response").
			Optional().
			Nillable(),
		field.String("response_type").
			Optional(),
		field.JSON("evaluation", json.RawMessage{}).
			Optional().
			Comment("Grading attached by the evaluation caller"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StepRecord) Indexes() []ent.Index {
	return []ent.Index{
		// The unique triple doubles as the optimistic write guard: two
		// racing advances compute the same next step number and the
		// second insert fails the constraint.
		index.Fields("session_id", "concept_id", "step_number").
			Unique(),
		index.Fields("session_id", "concept_id"),
	}
}
