// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConceptProgress is the predicate function for conceptprogress builders.
type ConceptProgress func(*sql.Selector)

// ConceptTopic is the predicate function for concepttopic builders.
type ConceptTopic func(*sql.Selector)

// Curriculum is the predicate function for curriculum builders.
type Curriculum func(*sql.Selector)

// KnowledgeNode is the predicate function for knowledgenode builders.
type KnowledgeNode func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// StepRecord is the predicate function for steprecord builders.
type StepRecord func(*sql.Selector)
