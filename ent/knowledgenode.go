// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/knowledgenode"
)

// KnowledgeNode is the model entity for the KnowledgeNode schema.
type KnowledgeNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Lowercased dedup key
	CanonicalName string `json:"canonical_name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Definition holds the value of the "definition" field.
	Definition string `json:"definition,omitempty"`
	// solid, developing, shaky, revisit
	CurrentMastery string `json:"current_mastery,omitempty"`
	// Append-only, chronologically ordered entries
	MasteryHistory json.RawMessage `json:"mastery_history,omitempty"`
	// SessionIds holds the value of the "session_ids" field.
	SessionIds []string `json:"session_ids,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// Cached synthesis text; invalidated when mastery changes
	SynthesisCache string `json:"synthesis_cache,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgenode.FieldMasteryHistory, knowledgenode.FieldSessionIds:
			values[i] = new([]byte)
		case knowledgenode.FieldSessionCount:
			values[i] = new(sql.NullInt64)
		case knowledgenode.FieldID, knowledgenode.FieldLearnerID, knowledgenode.FieldCanonicalName, knowledgenode.FieldDisplayName, knowledgenode.FieldDefinition, knowledgenode.FieldCurrentMastery, knowledgenode.FieldTopicID, knowledgenode.FieldTopicName, knowledgenode.FieldSynthesisCache:
			values[i] = new(sql.NullString)
		case knowledgenode.FieldFirstSeen, knowledgenode.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeNode fields.
func (_m *KnowledgeNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgenode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgenode.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case knowledgenode.FieldCanonicalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_name", values[i])
			} else if value.Valid {
				_m.CanonicalName = value.String
			}
		case knowledgenode.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case knowledgenode.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case knowledgenode.FieldCurrentMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_mastery", values[i])
			} else if value.Valid {
				_m.CurrentMastery = value.String
			}
		case knowledgenode.FieldMasteryHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MasteryHistory); err != nil {
					return fmt.Errorf("unmarshal field mastery_history: %w", err)
				}
			}
		case knowledgenode.FieldSessionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionIds); err != nil {
					return fmt.Errorf("unmarshal field session_ids: %w", err)
				}
			}
		case knowledgenode.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case knowledgenode.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case knowledgenode.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case knowledgenode.FieldSynthesisCache:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis_cache", values[i])
			} else if value.Valid {
				_m.SynthesisCache = value.String
			}
		case knowledgenode.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case knowledgenode.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeNode.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeNode.
// Note that you need to call KnowledgeNode.Unwrap() before calling this method if this KnowledgeNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeNode) Update() *KnowledgeNodeUpdateOne {
	return NewKnowledgeNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeNode) Unwrap() *KnowledgeNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeNode) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("canonical_name=")
	builder.WriteString(_m.CanonicalName)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("current_mastery=")
	builder.WriteString(_m.CurrentMastery)
	builder.WriteString(", ")
	builder.WriteString("mastery_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryHistory))
	builder.WriteString(", ")
	builder.WriteString("session_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionIds))
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("synthesis_cache=")
	builder.WriteString(_m.SynthesisCache)
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeNodes is a parsable slice of KnowledgeNode.
type KnowledgeNodes []*KnowledgeNode
