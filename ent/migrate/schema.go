// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptProgressesColumns holds the columns for the "concept_progresses" table.
	ConceptProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "curriculum_id", Type: field.TypeString, Nullable: true},
		{Name: "node_id", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConceptProgressesTable holds the schema information for the "concept_progresses" table.
	ConceptProgressesTable = &schema.Table{
		Name:       "concept_progresses",
		Columns:    ConceptProgressesColumns,
		PrimaryKey: []*schema.Column{ConceptProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptprogress_session_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ConceptProgressesColumns[1], ConceptProgressesColumns[2]},
			},
			{
				Name:    "conceptprogress_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptProgressesColumns[3]},
			},
		},
	}
	// ConceptTopicsColumns holds the columns for the "concept_topics" table.
	ConceptTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "concept_count", Type: field.TypeInt, Default: 0},
		{Name: "dominant_mastery", Type: field.TypeString, Default: "revisit"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConceptTopicsTable holds the schema information for the "concept_topics" table.
	ConceptTopicsTable = &schema.Table{
		Name:       "concept_topics",
		Columns:    ConceptTopicsColumns,
		PrimaryKey: []*schema.Column{ConceptTopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concepttopic_learner_id_name",
				Unique:  true,
				Columns: []*schema.Column{ConceptTopicsColumns[1], ConceptTopicsColumns[2]},
			},
		},
	}
	// CurriculumsColumns holds the columns for the "curriculums" table.
	CurriculumsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "concept_ids", Type: field.TypeJSON},
		{Name: "completed_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "cursor", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CurriculumsTable holds the schema information for the "curriculums" table.
	CurriculumsTable = &schema.Table{
		Name:       "curriculums",
		Columns:    CurriculumsColumns,
		PrimaryKey: []*schema.Column{CurriculumsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "curriculum_learner_id",
				Unique:  false,
				Columns: []*schema.Column{CurriculumsColumns[1]},
			},
		},
	}
	// KnowledgeNodesColumns holds the columns for the "knowledge_nodes" table.
	KnowledgeNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "canonical_name", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "definition", Type: field.TypeString, Nullable: true},
		{Name: "current_mastery", Type: field.TypeString, Default: "revisit"},
		{Name: "mastery_history", Type: field.TypeJSON, Nullable: true},
		{Name: "session_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "topic_name", Type: field.TypeString, Nullable: true},
		{Name: "synthesis_cache", Type: field.TypeString, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// KnowledgeNodesTable holds the schema information for the "knowledge_nodes" table.
	KnowledgeNodesTable = &schema.Table{
		Name:       "knowledge_nodes",
		Columns:    KnowledgeNodesColumns,
		PrimaryKey: []*schema.Column{KnowledgeNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgenode_learner_id_canonical_name",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeNodesColumns[1], KnowledgeNodesColumns[2]},
			},
			{
				Name:    "knowledgenode_learner_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeNodesColumns[1], KnowledgeNodesColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// StepRecordsColumns holds the columns for the "step_records" table.
	StepRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON},
		{Name: "user_response", Type: field.TypeString, Nullable: true},
		{Name: "response_type", Type: field.TypeString, Nullable: true},
		{Name: "evaluation", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StepRecordsTable holds the schema information for the "step_records" table.
	StepRecordsTable = &schema.Table{
		Name:       "step_records",
		Columns:    StepRecordsColumns,
		PrimaryKey: []*schema.Column{StepRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "steprecord_session_id_concept_id_step_number",
				Unique:  true,
				Columns: []*schema.Column{StepRecordsColumns[1], StepRecordsColumns[2], StepRecordsColumns[3]},
			},
			{
				Name:    "steprecord_session_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{StepRecordsColumns[1], StepRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptProgressesTable,
		ConceptTopicsTable,
		CurriculumsTable,
		KnowledgeNodesTable,
		LlmRequestEventsTable,
		StepRecordsTable,
	}
)

func init() {
}
