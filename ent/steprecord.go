// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/steprecord"
)

// StepRecord is the model entity for the StepRecord schema.
type StepRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// 1-based, contiguous per (session, concept)
	StepNumber int `json:"step_number,omitempty"`
	// orient, build_layer, anchor, check, reinforce, confirm, completed
	StepType string `json:"step_type,omitempty"`
	// Step payload as produced by the sequencer
	Content json.RawMessage `json:"content,omitempty"`
	// UserResponse holds the value of the "user_response" field.
	UserResponse *string `json:"user_response,omitempty"`
	// ResponseType holds the value of the "response_type" field.
	ResponseType string `json:"response_type,omitempty"`
	// Grading attached by the evaluation caller
	Evaluation json.RawMessage `json:"evaluation,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case steprecord.FieldContent, steprecord.FieldEvaluation:
			values[i] = new([]byte)
		case steprecord.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case steprecord.FieldID, steprecord.FieldSessionID, steprecord.FieldConceptID, steprecord.FieldStepType, steprecord.FieldUserResponse, steprecord.FieldResponseType:
			values[i] = new(sql.NullString)
		case steprecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepRecord fields.
func (_m *StepRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case steprecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case steprecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case steprecord.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case steprecord.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case steprecord.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = value.String
			}
		case steprecord.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case steprecord.FieldUserResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_response", values[i])
			} else if value.Valid {
				_m.UserResponse = new(string)
				*_m.UserResponse = value.String
			}
		case steprecord.FieldResponseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_type", values[i])
			} else if value.Valid {
				_m.ResponseType = value.String
			}
		case steprecord.FieldEvaluation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evaluation); err != nil {
					return fmt.Errorf("unmarshal field evaluation: %w", err)
				}
			}
		case steprecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StepRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StepRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepRecord.
// Note that you need to call StepRecord.Unwrap() before calling this method if this StepRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepRecord) Update() *StepRecordUpdateOne {
	return NewStepRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepRecord) Unwrap() *StepRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StepRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(_m.StepType)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	if v := _m.UserResponse; v != nil {
		builder.WriteString("user_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_type=")
	builder.WriteString(_m.ResponseType)
	builder.WriteString(", ")
	builder.WriteString("evaluation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evaluation))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepRecords is a parsable slice of StepRecord.
type StepRecords []*StepRecord
