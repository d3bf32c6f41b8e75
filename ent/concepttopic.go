// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/concepttopic"
)

// ConceptTopic is the model entity for the ConceptTopic schema.
type ConceptTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ConceptCount holds the value of the "concept_count" field.
	ConceptCount int `json:"concept_count,omitempty"`
	// Majority vote over member current_mastery values
	DominantMastery string `json:"dominant_mastery,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case concepttopic.FieldConceptCount:
			values[i] = new(sql.NullInt64)
		case concepttopic.FieldID, concepttopic.FieldLearnerID, concepttopic.FieldName, concepttopic.FieldDominantMastery:
			values[i] = new(sql.NullString)
		case concepttopic.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptTopic fields.
func (_m *ConceptTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case concepttopic.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case concepttopic.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case concepttopic.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case concepttopic.FieldConceptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_count", values[i])
			} else if value.Valid {
				_m.ConceptCount = int(value.Int64)
			}
		case concepttopic.FieldDominantMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dominant_mastery", values[i])
			} else if value.Valid {
				_m.DominantMastery = value.String
			}
		case concepttopic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptTopic.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptTopic.
// Note that you need to call ConceptTopic.Unwrap() before calling this method if this ConceptTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptTopic) Update() *ConceptTopicUpdateOne {
	return NewConceptTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptTopic) Unwrap() *ConceptTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptTopic) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptTopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("concept_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptCount))
	builder.WriteString(", ")
	builder.WriteString("dominant_mastery=")
	builder.WriteString(_m.DominantMastery)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptTopics is a parsable slice of ConceptTopic.
type ConceptTopics []*ConceptTopic
