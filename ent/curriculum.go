// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/curriculum"
)

// Curriculum is the model entity for the Curriculum schema.
type Curriculum struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Ordered concept sequence
	ConceptIds []string `json:"concept_ids,omitempty"`
	// CompletedIds holds the value of the "completed_ids" field.
	CompletedIds []string `json:"completed_ids,omitempty"`
	// Index of the next incomplete concept
	Cursor int `json:"cursor,omitempty"`
	// active, completed
	Status string `json:"status,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Curriculum) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curriculum.FieldConceptIds, curriculum.FieldCompletedIds:
			values[i] = new([]byte)
		case curriculum.FieldCursor:
			values[i] = new(sql.NullInt64)
		case curriculum.FieldID, curriculum.FieldLearnerID, curriculum.FieldTitle, curriculum.FieldStatus:
			values[i] = new(sql.NullString)
		case curriculum.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Curriculum fields.
func (_m *Curriculum) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curriculum.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case curriculum.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case curriculum.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case curriculum.FieldConceptIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptIds); err != nil {
					return fmt.Errorf("unmarshal field concept_ids: %w", err)
				}
			}
		case curriculum.FieldCompletedIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedIds); err != nil {
					return fmt.Errorf("unmarshal field completed_ids: %w", err)
				}
			}
		case curriculum.FieldCursor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cursor", values[i])
			} else if value.Valid {
				_m.Cursor = int(value.Int64)
			}
		case curriculum.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case curriculum.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Curriculum.
// This includes values selected through modifiers, order, etc.
func (_m *Curriculum) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Curriculum.
// Note that you need to call Curriculum.Unwrap() before calling this method if this Curriculum
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Curriculum) Update() *CurriculumUpdateOne {
	return NewCurriculumClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Curriculum entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Curriculum) Unwrap() *Curriculum {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Curriculum is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Curriculum) String() string {
	var builder strings.Builder
	builder.WriteString("Curriculum(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("concept_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptIds))
	builder.WriteString(", ")
	builder.WriteString("completed_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedIds))
	builder.WriteString(", ")
	builder.WriteString("cursor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cursor))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Curriculums is a parsable slice of Curriculum.
type Curriculums []*Curriculum
