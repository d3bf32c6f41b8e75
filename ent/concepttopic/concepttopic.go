// Code generated by ent, DO NOT EDIT.

package concepttopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the concepttopic type in the database.
	Label = "concept_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldConceptCount holds the string denoting the concept_count field in the database.
	FieldConceptCount = "concept_count"
	// FieldDominantMastery holds the string denoting the dominant_mastery field in the database.
	FieldDominantMastery = "dominant_mastery"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the concepttopic in the database.
	Table = "concept_topics"
)

// Columns holds all SQL columns for concepttopic fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldName,
	FieldConceptCount,
	FieldDominantMastery,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultConceptCount holds the default value on creation for the "concept_count" field.
	DefaultConceptCount int
	// DefaultDominantMastery holds the default value on creation for the "dominant_mastery" field.
	DefaultDominantMastery string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ConceptTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByConceptCount orders the results by the concept_count field.
func ByConceptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptCount, opts...).ToFunc()
}

// ByDominantMastery orders the results by the dominant_mastery field.
func ByDominantMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDominantMastery, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
