// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/conceptprogress"
	"github.com/reflowhq/reflow/ent/concepttopic"
	"github.com/reflowhq/reflow/ent/curriculum"
	"github.com/reflowhq/reflow/ent/knowledgenode"
	"github.com/reflowhq/reflow/ent/llmrequestevent"
	"github.com/reflowhq/reflow/ent/predicate"
	"github.com/reflowhq/reflow/ent/steprecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConceptProgress = "ConceptProgress"
	TypeConceptTopic    = "ConceptTopic"
	TypeCurriculum      = "Curriculum"
	TypeKnowledgeNode   = "KnowledgeNode"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeStepRecord      = "StepRecord"
)

// ConceptProgressMutation represents an operation that mutates the ConceptProgress nodes in the graph.
type ConceptProgressMutation struct {
	config
	op            Op
	typ           string
	id            *string
	session_id    *string
	concept_id    *string
	learner_id    *string
	concept_name  *string
	status        *string
	plan          *json.RawMessage
	appendplan    json.RawMessage
	curriculum_id *string
	node_id       *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ConceptProgress, error)
	predicates    []predicate.ConceptProgress
}

var _ ent.Mutation = (*ConceptProgressMutation)(nil)

// conceptprogressOption allows management of the mutation configuration using functional options.
type conceptprogressOption func(*ConceptProgressMutation)

// newConceptProgressMutation creates new mutation for the ConceptProgress entity.
func newConceptProgressMutation(c config, op Op, opts ...conceptprogressOption) *ConceptProgressMutation {
	m := &ConceptProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeConceptProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptProgressID sets the ID field of the mutation.
func withConceptProgressID(id string) conceptprogressOption {
	return func(m *ConceptProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *ConceptProgress
		)
		m.oldValue = func(ctx context.Context) (*ConceptProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConceptProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConceptProgress sets the old ConceptProgress of the mutation.
func withConceptProgress(node *ConceptProgress) conceptprogressOption {
	return func(m *ConceptProgressMutation) {
		m.oldValue = func(context.Context) (*ConceptProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConceptProgress entities.
func (m *ConceptProgressMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptProgressMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptProgressMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConceptProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ConceptProgressMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConceptProgressMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConceptProgressMutation) ResetSessionID() {
	m.session_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ConceptProgressMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ConceptProgressMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ConceptProgressMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ConceptProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ConceptProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ConceptProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetConceptName sets the "concept_name" field.
func (m *ConceptProgressMutation) SetConceptName(s string) {
	m.concept_name = &s
}

// ConceptName returns the value of the "concept_name" field in the mutation.
func (m *ConceptProgressMutation) ConceptName() (r string, exists bool) {
	v := m.concept_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptName returns the old "concept_name" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldConceptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptName: %w", err)
	}
	return oldValue.ConceptName, nil
}

// ResetConceptName resets all changes to the "concept_name" field.
func (m *ConceptProgressMutation) ResetConceptName() {
	m.concept_name = nil
}

// SetStatus sets the "status" field.
func (m *ConceptProgressMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ConceptProgressMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConceptProgressMutation) ResetStatus() {
	m.status = nil
}

// SetPlan sets the "plan" field.
func (m *ConceptProgressMutation) SetPlan(jm json.RawMessage) {
	m.plan = &jm
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *ConceptProgressMutation) Plan() (r json.RawMessage, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldPlan(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds jm to the "plan" field.
func (m *ConceptProgressMutation) AppendPlan(jm json.RawMessage) {
	m.appendplan = append(m.appendplan, jm...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *ConceptProgressMutation) AppendedPlan() (json.RawMessage, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *ConceptProgressMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[conceptprogress.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *ConceptProgressMutation) PlanCleared() bool {
	_, ok := m.clearedFields[conceptprogress.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *ConceptProgressMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, conceptprogress.FieldPlan)
}

// SetCurriculumID sets the "curriculum_id" field.
func (m *ConceptProgressMutation) SetCurriculumID(s string) {
	m.curriculum_id = &s
}

// CurriculumID returns the value of the "curriculum_id" field in the mutation.
func (m *ConceptProgressMutation) CurriculumID() (r string, exists bool) {
	v := m.curriculum_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurriculumID returns the old "curriculum_id" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldCurriculumID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurriculumID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurriculumID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurriculumID: %w", err)
	}
	return oldValue.CurriculumID, nil
}

// ClearCurriculumID clears the value of the "curriculum_id" field.
func (m *ConceptProgressMutation) ClearCurriculumID() {
	m.curriculum_id = nil
	m.clearedFields[conceptprogress.FieldCurriculumID] = struct{}{}
}

// CurriculumIDCleared returns if the "curriculum_id" field was cleared in this mutation.
func (m *ConceptProgressMutation) CurriculumIDCleared() bool {
	_, ok := m.clearedFields[conceptprogress.FieldCurriculumID]
	return ok
}

// ResetCurriculumID resets all changes to the "curriculum_id" field.
func (m *ConceptProgressMutation) ResetCurriculumID() {
	m.curriculum_id = nil
	delete(m.clearedFields, conceptprogress.FieldCurriculumID)
}

// SetNodeID sets the "node_id" field.
func (m *ConceptProgressMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *ConceptProgressMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ClearNodeID clears the value of the "node_id" field.
func (m *ConceptProgressMutation) ClearNodeID() {
	m.node_id = nil
	m.clearedFields[conceptprogress.FieldNodeID] = struct{}{}
}

// NodeIDCleared returns if the "node_id" field was cleared in this mutation.
func (m *ConceptProgressMutation) NodeIDCleared() bool {
	_, ok := m.clearedFields[conceptprogress.FieldNodeID]
	return ok
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *ConceptProgressMutation) ResetNodeID() {
	m.node_id = nil
	delete(m.clearedFields, conceptprogress.FieldNodeID)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConceptProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConceptProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConceptProgress entity.
// If the ConceptProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConceptProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConceptProgressMutation builder.
func (m *ConceptProgressMutation) Where(ps ...predicate.ConceptProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConceptProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConceptProgress).
func (m *ConceptProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, conceptprogress.FieldSessionID)
	}
	if m.concept_id != nil {
		fields = append(fields, conceptprogress.FieldConceptID)
	}
	if m.learner_id != nil {
		fields = append(fields, conceptprogress.FieldLearnerID)
	}
	if m.concept_name != nil {
		fields = append(fields, conceptprogress.FieldConceptName)
	}
	if m.status != nil {
		fields = append(fields, conceptprogress.FieldStatus)
	}
	if m.plan != nil {
		fields = append(fields, conceptprogress.FieldPlan)
	}
	if m.curriculum_id != nil {
		fields = append(fields, conceptprogress.FieldCurriculumID)
	}
	if m.node_id != nil {
		fields = append(fields, conceptprogress.FieldNodeID)
	}
	if m.updated_at != nil {
		fields = append(fields, conceptprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conceptprogress.FieldSessionID:
		return m.SessionID()
	case conceptprogress.FieldConceptID:
		return m.ConceptID()
	case conceptprogress.FieldLearnerID:
		return m.LearnerID()
	case conceptprogress.FieldConceptName:
		return m.ConceptName()
	case conceptprogress.FieldStatus:
		return m.Status()
	case conceptprogress.FieldPlan:
		return m.Plan()
	case conceptprogress.FieldCurriculumID:
		return m.CurriculumID()
	case conceptprogress.FieldNodeID:
		return m.NodeID()
	case conceptprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conceptprogress.FieldSessionID:
		return m.OldSessionID(ctx)
	case conceptprogress.FieldConceptID:
		return m.OldConceptID(ctx)
	case conceptprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case conceptprogress.FieldConceptName:
		return m.OldConceptName(ctx)
	case conceptprogress.FieldStatus:
		return m.OldStatus(ctx)
	case conceptprogress.FieldPlan:
		return m.OldPlan(ctx)
	case conceptprogress.FieldCurriculumID:
		return m.OldCurriculumID(ctx)
	case conceptprogress.FieldNodeID:
		return m.OldNodeID(ctx)
	case conceptprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConceptProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conceptprogress.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conceptprogress.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case conceptprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case conceptprogress.FieldConceptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptName(v)
		return nil
	case conceptprogress.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conceptprogress.FieldPlan:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case conceptprogress.FieldCurriculumID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurriculumID(v)
		return nil
	case conceptprogress.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case conceptprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptProgressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptProgressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConceptProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conceptprogress.FieldPlan) {
		fields = append(fields, conceptprogress.FieldPlan)
	}
	if m.FieldCleared(conceptprogress.FieldCurriculumID) {
		fields = append(fields, conceptprogress.FieldCurriculumID)
	}
	if m.FieldCleared(conceptprogress.FieldNodeID) {
		fields = append(fields, conceptprogress.FieldNodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptProgressMutation) ClearField(name string) error {
	switch name {
	case conceptprogress.FieldPlan:
		m.ClearPlan()
		return nil
	case conceptprogress.FieldCurriculumID:
		m.ClearCurriculumID()
		return nil
	case conceptprogress.FieldNodeID:
		m.ClearNodeID()
		return nil
	}
	return fmt.Errorf("unknown ConceptProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptProgressMutation) ResetField(name string) error {
	switch name {
	case conceptprogress.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conceptprogress.FieldConceptID:
		m.ResetConceptID()
		return nil
	case conceptprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case conceptprogress.FieldConceptName:
		m.ResetConceptName()
		return nil
	case conceptprogress.FieldStatus:
		m.ResetStatus()
		return nil
	case conceptprogress.FieldPlan:
		m.ResetPlan()
		return nil
	case conceptprogress.FieldCurriculumID:
		m.ResetCurriculumID()
		return nil
	case conceptprogress.FieldNodeID:
		m.ResetNodeID()
		return nil
	case conceptprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConceptProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConceptProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConceptProgress edge %s", name)
}

// ConceptTopicMutation represents an operation that mutates the ConceptTopic nodes in the graph.
type ConceptTopicMutation struct {
	config
	op               Op
	typ              string
	id               *string
	learner_id       *string
	name             *string
	concept_count    *int
	addconcept_count *int
	dominant_mastery *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ConceptTopic, error)
	predicates       []predicate.ConceptTopic
}

var _ ent.Mutation = (*ConceptTopicMutation)(nil)

// concepttopicOption allows management of the mutation configuration using functional options.
type concepttopicOption func(*ConceptTopicMutation)

// newConceptTopicMutation creates new mutation for the ConceptTopic entity.
func newConceptTopicMutation(c config, op Op, opts ...concepttopicOption) *ConceptTopicMutation {
	m := &ConceptTopicMutation{
		config:        c,
		op:            op,
		typ:           TypeConceptTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptTopicID sets the ID field of the mutation.
func withConceptTopicID(id string) concepttopicOption {
	return func(m *ConceptTopicMutation) {
		var (
			err   error
			once  sync.Once
			value *ConceptTopic
		)
		m.oldValue = func(ctx context.Context) (*ConceptTopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConceptTopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConceptTopic sets the old ConceptTopic of the mutation.
func withConceptTopic(node *ConceptTopic) concepttopicOption {
	return func(m *ConceptTopicMutation) {
		m.oldValue = func(context.Context) (*ConceptTopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptTopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptTopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConceptTopic entities.
func (m *ConceptTopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptTopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptTopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConceptTopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ConceptTopicMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ConceptTopicMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ConceptTopic entity.
// If the ConceptTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptTopicMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ConceptTopicMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetName sets the "name" field.
func (m *ConceptTopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConceptTopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConceptTopic entity.
// If the ConceptTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptTopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConceptTopicMutation) ResetName() {
	m.name = nil
}

// SetConceptCount sets the "concept_count" field.
func (m *ConceptTopicMutation) SetConceptCount(i int) {
	m.concept_count = &i
	m.addconcept_count = nil
}

// ConceptCount returns the value of the "concept_count" field in the mutation.
func (m *ConceptTopicMutation) ConceptCount() (r int, exists bool) {
	v := m.concept_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptCount returns the old "concept_count" field's value of the ConceptTopic entity.
// If the ConceptTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptTopicMutation) OldConceptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptCount: %w", err)
	}
	return oldValue.ConceptCount, nil
}

// AddConceptCount adds i to the "concept_count" field.
func (m *ConceptTopicMutation) AddConceptCount(i int) {
	if m.addconcept_count != nil {
		*m.addconcept_count += i
	} else {
		m.addconcept_count = &i
	}
}

// AddedConceptCount returns the value that was added to the "concept_count" field in this mutation.
func (m *ConceptTopicMutation) AddedConceptCount() (r int, exists bool) {
	v := m.addconcept_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptCount resets all changes to the "concept_count" field.
func (m *ConceptTopicMutation) ResetConceptCount() {
	m.concept_count = nil
	m.addconcept_count = nil
}

// SetDominantMastery sets the "dominant_mastery" field.
func (m *ConceptTopicMutation) SetDominantMastery(s string) {
	m.dominant_mastery = &s
}

// DominantMastery returns the value of the "dominant_mastery" field in the mutation.
func (m *ConceptTopicMutation) DominantMastery() (r string, exists bool) {
	v := m.dominant_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldDominantMastery returns the old "dominant_mastery" field's value of the ConceptTopic entity.
// If the ConceptTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptTopicMutation) OldDominantMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDominantMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDominantMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDominantMastery: %w", err)
	}
	return oldValue.DominantMastery, nil
}

// ResetDominantMastery resets all changes to the "dominant_mastery" field.
func (m *ConceptTopicMutation) ResetDominantMastery() {
	m.dominant_mastery = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConceptTopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConceptTopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConceptTopic entity.
// If the ConceptTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptTopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConceptTopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ConceptTopicMutation builder.
func (m *ConceptTopicMutation) Where(ps ...predicate.ConceptTopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptTopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptTopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConceptTopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptTopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptTopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConceptTopic).
func (m *ConceptTopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptTopicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.learner_id != nil {
		fields = append(fields, concepttopic.FieldLearnerID)
	}
	if m.name != nil {
		fields = append(fields, concepttopic.FieldName)
	}
	if m.concept_count != nil {
		fields = append(fields, concepttopic.FieldConceptCount)
	}
	if m.dominant_mastery != nil {
		fields = append(fields, concepttopic.FieldDominantMastery)
	}
	if m.created_at != nil {
		fields = append(fields, concepttopic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptTopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case concepttopic.FieldLearnerID:
		return m.LearnerID()
	case concepttopic.FieldName:
		return m.Name()
	case concepttopic.FieldConceptCount:
		return m.ConceptCount()
	case concepttopic.FieldDominantMastery:
		return m.DominantMastery()
	case concepttopic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptTopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case concepttopic.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case concepttopic.FieldName:
		return m.OldName(ctx)
	case concepttopic.FieldConceptCount:
		return m.OldConceptCount(ctx)
	case concepttopic.FieldDominantMastery:
		return m.OldDominantMastery(ctx)
	case concepttopic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConceptTopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptTopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case concepttopic.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case concepttopic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case concepttopic.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptCount(v)
		return nil
	case concepttopic.FieldDominantMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDominantMastery(v)
		return nil
	case concepttopic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptTopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptTopicMutation) AddedFields() []string {
	var fields []string
	if m.addconcept_count != nil {
		fields = append(fields, concepttopic.FieldConceptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptTopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case concepttopic.FieldConceptCount:
		return m.AddedConceptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptTopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case concepttopic.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptTopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptTopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptTopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptTopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConceptTopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptTopicMutation) ResetField(name string) error {
	switch name {
	case concepttopic.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case concepttopic.FieldName:
		m.ResetName()
		return nil
	case concepttopic.FieldConceptCount:
		m.ResetConceptCount()
		return nil
	case concepttopic.FieldDominantMastery:
		m.ResetDominantMastery()
		return nil
	case concepttopic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConceptTopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptTopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptTopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptTopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptTopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptTopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptTopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptTopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConceptTopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptTopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConceptTopic edge %s", name)
}

// CurriculumMutation represents an operation that mutates the Curriculum nodes in the graph.
type CurriculumMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	learner_id          *string
	title               *string
	concept_ids         *[]string
	appendconcept_ids   []string
	completed_ids       *[]string
	appendcompleted_ids []string
	cursor              *int
	addcursor           *int
	status              *string
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Curriculum, error)
	predicates          []predicate.Curriculum
}

var _ ent.Mutation = (*CurriculumMutation)(nil)

// curriculumOption allows management of the mutation configuration using functional options.
type curriculumOption func(*CurriculumMutation)

// newCurriculumMutation creates new mutation for the Curriculum entity.
func newCurriculumMutation(c config, op Op, opts ...curriculumOption) *CurriculumMutation {
	m := &CurriculumMutation{
		config:        c,
		op:            op,
		typ:           TypeCurriculum,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCurriculumID sets the ID field of the mutation.
func withCurriculumID(id string) curriculumOption {
	return func(m *CurriculumMutation) {
		var (
			err   error
			once  sync.Once
			value *Curriculum
		)
		m.oldValue = func(ctx context.Context) (*Curriculum, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Curriculum.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCurriculum sets the old Curriculum of the mutation.
func withCurriculum(node *Curriculum) curriculumOption {
	return func(m *CurriculumMutation) {
		m.oldValue = func(context.Context) (*Curriculum, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CurriculumMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CurriculumMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Curriculum entities.
func (m *CurriculumMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CurriculumMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CurriculumMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Curriculum.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *CurriculumMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *CurriculumMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *CurriculumMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTitle sets the "title" field.
func (m *CurriculumMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CurriculumMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CurriculumMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[curriculum.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CurriculumMutation) TitleCleared() bool {
	_, ok := m.clearedFields[curriculum.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CurriculumMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, curriculum.FieldTitle)
}

// SetConceptIds sets the "concept_ids" field.
func (m *CurriculumMutation) SetConceptIds(s []string) {
	m.concept_ids = &s
	m.appendconcept_ids = nil
}

// ConceptIds returns the value of the "concept_ids" field in the mutation.
func (m *CurriculumMutation) ConceptIds() (r []string, exists bool) {
	v := m.concept_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptIds returns the old "concept_ids" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldConceptIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptIds: %w", err)
	}
	return oldValue.ConceptIds, nil
}

// AppendConceptIds adds s to the "concept_ids" field.
func (m *CurriculumMutation) AppendConceptIds(s []string) {
	m.appendconcept_ids = append(m.appendconcept_ids, s...)
}

// AppendedConceptIds returns the list of values that were appended to the "concept_ids" field in this mutation.
func (m *CurriculumMutation) AppendedConceptIds() ([]string, bool) {
	if len(m.appendconcept_ids) == 0 {
		return nil, false
	}
	return m.appendconcept_ids, true
}

// ResetConceptIds resets all changes to the "concept_ids" field.
func (m *CurriculumMutation) ResetConceptIds() {
	m.concept_ids = nil
	m.appendconcept_ids = nil
}

// SetCompletedIds sets the "completed_ids" field.
func (m *CurriculumMutation) SetCompletedIds(s []string) {
	m.completed_ids = &s
	m.appendcompleted_ids = nil
}

// CompletedIds returns the value of the "completed_ids" field in the mutation.
func (m *CurriculumMutation) CompletedIds() (r []string, exists bool) {
	v := m.completed_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedIds returns the old "completed_ids" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldCompletedIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedIds: %w", err)
	}
	return oldValue.CompletedIds, nil
}

// AppendCompletedIds adds s to the "completed_ids" field.
func (m *CurriculumMutation) AppendCompletedIds(s []string) {
	m.appendcompleted_ids = append(m.appendcompleted_ids, s...)
}

// AppendedCompletedIds returns the list of values that were appended to the "completed_ids" field in this mutation.
func (m *CurriculumMutation) AppendedCompletedIds() ([]string, bool) {
	if len(m.appendcompleted_ids) == 0 {
		return nil, false
	}
	return m.appendcompleted_ids, true
}

// ClearCompletedIds clears the value of the "completed_ids" field.
func (m *CurriculumMutation) ClearCompletedIds() {
	m.completed_ids = nil
	m.appendcompleted_ids = nil
	m.clearedFields[curriculum.FieldCompletedIds] = struct{}{}
}

// CompletedIdsCleared returns if the "completed_ids" field was cleared in this mutation.
func (m *CurriculumMutation) CompletedIdsCleared() bool {
	_, ok := m.clearedFields[curriculum.FieldCompletedIds]
	return ok
}

// ResetCompletedIds resets all changes to the "completed_ids" field.
func (m *CurriculumMutation) ResetCompletedIds() {
	m.completed_ids = nil
	m.appendcompleted_ids = nil
	delete(m.clearedFields, curriculum.FieldCompletedIds)
}

// SetCursor sets the "cursor" field.
func (m *CurriculumMutation) SetCursor(i int) {
	m.cursor = &i
	m.addcursor = nil
}

// Cursor returns the value of the "cursor" field in the mutation.
func (m *CurriculumMutation) Cursor() (r int, exists bool) {
	v := m.cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldCursor returns the old "cursor" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldCursor(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCursor: %w", err)
	}
	return oldValue.Cursor, nil
}

// AddCursor adds i to the "cursor" field.
func (m *CurriculumMutation) AddCursor(i int) {
	if m.addcursor != nil {
		*m.addcursor += i
	} else {
		m.addcursor = &i
	}
}

// AddedCursor returns the value that was added to the "cursor" field in this mutation.
func (m *CurriculumMutation) AddedCursor() (r int, exists bool) {
	v := m.addcursor
	if v == nil {
		return
	}
	return *v, true
}

// ResetCursor resets all changes to the "cursor" field.
func (m *CurriculumMutation) ResetCursor() {
	m.cursor = nil
	m.addcursor = nil
}

// SetStatus sets the "status" field.
func (m *CurriculumMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CurriculumMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CurriculumMutation) ResetStatus() {
	m.status = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CurriculumMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CurriculumMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CurriculumMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CurriculumMutation builder.
func (m *CurriculumMutation) Where(ps ...predicate.Curriculum) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CurriculumMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CurriculumMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Curriculum, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CurriculumMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CurriculumMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Curriculum).
func (m *CurriculumMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CurriculumMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.learner_id != nil {
		fields = append(fields, curriculum.FieldLearnerID)
	}
	if m.title != nil {
		fields = append(fields, curriculum.FieldTitle)
	}
	if m.concept_ids != nil {
		fields = append(fields, curriculum.FieldConceptIds)
	}
	if m.completed_ids != nil {
		fields = append(fields, curriculum.FieldCompletedIds)
	}
	if m.cursor != nil {
		fields = append(fields, curriculum.FieldCursor)
	}
	if m.status != nil {
		fields = append(fields, curriculum.FieldStatus)
	}
	if m.updated_at != nil {
		fields = append(fields, curriculum.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CurriculumMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case curriculum.FieldLearnerID:
		return m.LearnerID()
	case curriculum.FieldTitle:
		return m.Title()
	case curriculum.FieldConceptIds:
		return m.ConceptIds()
	case curriculum.FieldCompletedIds:
		return m.CompletedIds()
	case curriculum.FieldCursor:
		return m.Cursor()
	case curriculum.FieldStatus:
		return m.Status()
	case curriculum.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CurriculumMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case curriculum.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case curriculum.FieldTitle:
		return m.OldTitle(ctx)
	case curriculum.FieldConceptIds:
		return m.OldConceptIds(ctx)
	case curriculum.FieldCompletedIds:
		return m.OldCompletedIds(ctx)
	case curriculum.FieldCursor:
		return m.OldCursor(ctx)
	case curriculum.FieldStatus:
		return m.OldStatus(ctx)
	case curriculum.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Curriculum field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumMutation) SetField(name string, value ent.Value) error {
	switch name {
	case curriculum.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case curriculum.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case curriculum.FieldConceptIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptIds(v)
		return nil
	case curriculum.FieldCompletedIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedIds(v)
		return nil
	case curriculum.FieldCursor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCursor(v)
		return nil
	case curriculum.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case curriculum.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Curriculum field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CurriculumMutation) AddedFields() []string {
	var fields []string
	if m.addcursor != nil {
		fields = append(fields, curriculum.FieldCursor)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CurriculumMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case curriculum.FieldCursor:
		return m.AddedCursor()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumMutation) AddField(name string, value ent.Value) error {
	switch name {
	case curriculum.FieldCursor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCursor(v)
		return nil
	}
	return fmt.Errorf("unknown Curriculum numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CurriculumMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(curriculum.FieldTitle) {
		fields = append(fields, curriculum.FieldTitle)
	}
	if m.FieldCleared(curriculum.FieldCompletedIds) {
		fields = append(fields, curriculum.FieldCompletedIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CurriculumMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CurriculumMutation) ClearField(name string) error {
	switch name {
	case curriculum.FieldTitle:
		m.ClearTitle()
		return nil
	case curriculum.FieldCompletedIds:
		m.ClearCompletedIds()
		return nil
	}
	return fmt.Errorf("unknown Curriculum nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CurriculumMutation) ResetField(name string) error {
	switch name {
	case curriculum.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case curriculum.FieldTitle:
		m.ResetTitle()
		return nil
	case curriculum.FieldConceptIds:
		m.ResetConceptIds()
		return nil
	case curriculum.FieldCompletedIds:
		m.ResetCompletedIds()
		return nil
	case curriculum.FieldCursor:
		m.ResetCursor()
		return nil
	case curriculum.FieldStatus:
		m.ResetStatus()
		return nil
	case curriculum.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Curriculum field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CurriculumMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CurriculumMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CurriculumMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CurriculumMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CurriculumMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CurriculumMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CurriculumMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Curriculum unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CurriculumMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Curriculum edge %s", name)
}

// KnowledgeNodeMutation represents an operation that mutates the KnowledgeNode nodes in the graph.
type KnowledgeNodeMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	learner_id            *string
	canonical_name        *string
	display_name          *string
	definition            *string
	current_mastery       *string
	mastery_history       *json.RawMessage
	appendmastery_history json.RawMessage
	session_ids           *[]string
	appendsession_ids     []string
	session_count         *int
	addsession_count      *int
	topic_id              *string
	topic_name            *string
	synthesis_cache       *string
	first_seen            *time.Time
	last_seen             *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*KnowledgeNode, error)
	predicates            []predicate.KnowledgeNode
}

var _ ent.Mutation = (*KnowledgeNodeMutation)(nil)

// knowledgenodeOption allows management of the mutation configuration using functional options.
type knowledgenodeOption func(*KnowledgeNodeMutation)

// newKnowledgeNodeMutation creates new mutation for the KnowledgeNode entity.
func newKnowledgeNodeMutation(c config, op Op, opts ...knowledgenodeOption) *KnowledgeNodeMutation {
	m := &KnowledgeNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeNodeID sets the ID field of the mutation.
func withKnowledgeNodeID(id string) knowledgenodeOption {
	return func(m *KnowledgeNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeNode
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeNode sets the old KnowledgeNode of the mutation.
func withKnowledgeNode(node *KnowledgeNode) knowledgenodeOption {
	return func(m *KnowledgeNodeMutation) {
		m.oldValue = func(context.Context) (*KnowledgeNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeNode entities.
func (m *KnowledgeNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *KnowledgeNodeMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *KnowledgeNodeMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *KnowledgeNodeMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetCanonicalName sets the "canonical_name" field.
func (m *KnowledgeNodeMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *KnowledgeNodeMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *KnowledgeNodeMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *KnowledgeNodeMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *KnowledgeNodeMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *KnowledgeNodeMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetDefinition sets the "definition" field.
func (m *KnowledgeNodeMutation) SetDefinition(s string) {
	m.definition = &s
}

// Definition returns the value of the "definition" field in the mutation.
func (m *KnowledgeNodeMutation) Definition() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ClearDefinition clears the value of the "definition" field.
func (m *KnowledgeNodeMutation) ClearDefinition() {
	m.definition = nil
	m.clearedFields[knowledgenode.FieldDefinition] = struct{}{}
}

// DefinitionCleared returns if the "definition" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) DefinitionCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldDefinition]
	return ok
}

// ResetDefinition resets all changes to the "definition" field.
func (m *KnowledgeNodeMutation) ResetDefinition() {
	m.definition = nil
	delete(m.clearedFields, knowledgenode.FieldDefinition)
}

// SetCurrentMastery sets the "current_mastery" field.
func (m *KnowledgeNodeMutation) SetCurrentMastery(s string) {
	m.current_mastery = &s
}

// CurrentMastery returns the value of the "current_mastery" field in the mutation.
func (m *KnowledgeNodeMutation) CurrentMastery() (r string, exists bool) {
	v := m.current_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentMastery returns the old "current_mastery" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldCurrentMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentMastery: %w", err)
	}
	return oldValue.CurrentMastery, nil
}

// ResetCurrentMastery resets all changes to the "current_mastery" field.
func (m *KnowledgeNodeMutation) ResetCurrentMastery() {
	m.current_mastery = nil
}

// SetMasteryHistory sets the "mastery_history" field.
func (m *KnowledgeNodeMutation) SetMasteryHistory(jm json.RawMessage) {
	m.mastery_history = &jm
	m.appendmastery_history = nil
}

// MasteryHistory returns the value of the "mastery_history" field in the mutation.
func (m *KnowledgeNodeMutation) MasteryHistory() (r json.RawMessage, exists bool) {
	v := m.mastery_history
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryHistory returns the old "mastery_history" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldMasteryHistory(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryHistory: %w", err)
	}
	return oldValue.MasteryHistory, nil
}

// AppendMasteryHistory adds jm to the "mastery_history" field.
func (m *KnowledgeNodeMutation) AppendMasteryHistory(jm json.RawMessage) {
	m.appendmastery_history = append(m.appendmastery_history, jm...)
}

// AppendedMasteryHistory returns the list of values that were appended to the "mastery_history" field in this mutation.
func (m *KnowledgeNodeMutation) AppendedMasteryHistory() (json.RawMessage, bool) {
	if len(m.appendmastery_history) == 0 {
		return nil, false
	}
	return m.appendmastery_history, true
}

// ClearMasteryHistory clears the value of the "mastery_history" field.
func (m *KnowledgeNodeMutation) ClearMasteryHistory() {
	m.mastery_history = nil
	m.appendmastery_history = nil
	m.clearedFields[knowledgenode.FieldMasteryHistory] = struct{}{}
}

// MasteryHistoryCleared returns if the "mastery_history" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) MasteryHistoryCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldMasteryHistory]
	return ok
}

// ResetMasteryHistory resets all changes to the "mastery_history" field.
func (m *KnowledgeNodeMutation) ResetMasteryHistory() {
	m.mastery_history = nil
	m.appendmastery_history = nil
	delete(m.clearedFields, knowledgenode.FieldMasteryHistory)
}

// SetSessionIds sets the "session_ids" field.
func (m *KnowledgeNodeMutation) SetSessionIds(s []string) {
	m.session_ids = &s
	m.appendsession_ids = nil
}

// SessionIds returns the value of the "session_ids" field in the mutation.
func (m *KnowledgeNodeMutation) SessionIds() (r []string, exists bool) {
	v := m.session_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionIds returns the old "session_ids" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldSessionIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionIds: %w", err)
	}
	return oldValue.SessionIds, nil
}

// AppendSessionIds adds s to the "session_ids" field.
func (m *KnowledgeNodeMutation) AppendSessionIds(s []string) {
	m.appendsession_ids = append(m.appendsession_ids, s...)
}

// AppendedSessionIds returns the list of values that were appended to the "session_ids" field in this mutation.
func (m *KnowledgeNodeMutation) AppendedSessionIds() ([]string, bool) {
	if len(m.appendsession_ids) == 0 {
		return nil, false
	}
	return m.appendsession_ids, true
}

// ClearSessionIds clears the value of the "session_ids" field.
func (m *KnowledgeNodeMutation) ClearSessionIds() {
	m.session_ids = nil
	m.appendsession_ids = nil
	m.clearedFields[knowledgenode.FieldSessionIds] = struct{}{}
}

// SessionIdsCleared returns if the "session_ids" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) SessionIdsCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldSessionIds]
	return ok
}

// ResetSessionIds resets all changes to the "session_ids" field.
func (m *KnowledgeNodeMutation) ResetSessionIds() {
	m.session_ids = nil
	m.appendsession_ids = nil
	delete(m.clearedFields, knowledgenode.FieldSessionIds)
}

// SetSessionCount sets the "session_count" field.
func (m *KnowledgeNodeMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *KnowledgeNodeMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *KnowledgeNodeMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *KnowledgeNodeMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *KnowledgeNodeMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetTopicID sets the "topic_id" field.
func (m *KnowledgeNodeMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *KnowledgeNodeMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *KnowledgeNodeMutation) ClearTopicID() {
	m.topic_id = nil
	m.clearedFields[knowledgenode.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *KnowledgeNodeMutation) ResetTopicID() {
	m.topic_id = nil
	delete(m.clearedFields, knowledgenode.FieldTopicID)
}

// SetTopicName sets the "topic_name" field.
func (m *KnowledgeNodeMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *KnowledgeNodeMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ClearTopicName clears the value of the "topic_name" field.
func (m *KnowledgeNodeMutation) ClearTopicName() {
	m.topic_name = nil
	m.clearedFields[knowledgenode.FieldTopicName] = struct{}{}
}

// TopicNameCleared returns if the "topic_name" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) TopicNameCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldTopicName]
	return ok
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *KnowledgeNodeMutation) ResetTopicName() {
	m.topic_name = nil
	delete(m.clearedFields, knowledgenode.FieldTopicName)
}

// SetSynthesisCache sets the "synthesis_cache" field.
func (m *KnowledgeNodeMutation) SetSynthesisCache(s string) {
	m.synthesis_cache = &s
}

// SynthesisCache returns the value of the "synthesis_cache" field in the mutation.
func (m *KnowledgeNodeMutation) SynthesisCache() (r string, exists bool) {
	v := m.synthesis_cache
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesisCache returns the old "synthesis_cache" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldSynthesisCache(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesisCache is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesisCache requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesisCache: %w", err)
	}
	return oldValue.SynthesisCache, nil
}

// ClearSynthesisCache clears the value of the "synthesis_cache" field.
func (m *KnowledgeNodeMutation) ClearSynthesisCache() {
	m.synthesis_cache = nil
	m.clearedFields[knowledgenode.FieldSynthesisCache] = struct{}{}
}

// SynthesisCacheCleared returns if the "synthesis_cache" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) SynthesisCacheCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldSynthesisCache]
	return ok
}

// ResetSynthesisCache resets all changes to the "synthesis_cache" field.
func (m *KnowledgeNodeMutation) ResetSynthesisCache() {
	m.synthesis_cache = nil
	delete(m.clearedFields, knowledgenode.FieldSynthesisCache)
}

// SetFirstSeen sets the "first_seen" field.
func (m *KnowledgeNodeMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *KnowledgeNodeMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *KnowledgeNodeMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *KnowledgeNodeMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *KnowledgeNodeMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *KnowledgeNodeMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the KnowledgeNodeMutation builder.
func (m *KnowledgeNodeMutation) Where(ps ...predicate.KnowledgeNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeNode).
func (m *KnowledgeNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeNodeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.learner_id != nil {
		fields = append(fields, knowledgenode.FieldLearnerID)
	}
	if m.canonical_name != nil {
		fields = append(fields, knowledgenode.FieldCanonicalName)
	}
	if m.display_name != nil {
		fields = append(fields, knowledgenode.FieldDisplayName)
	}
	if m.definition != nil {
		fields = append(fields, knowledgenode.FieldDefinition)
	}
	if m.current_mastery != nil {
		fields = append(fields, knowledgenode.FieldCurrentMastery)
	}
	if m.mastery_history != nil {
		fields = append(fields, knowledgenode.FieldMasteryHistory)
	}
	if m.session_ids != nil {
		fields = append(fields, knowledgenode.FieldSessionIds)
	}
	if m.session_count != nil {
		fields = append(fields, knowledgenode.FieldSessionCount)
	}
	if m.topic_id != nil {
		fields = append(fields, knowledgenode.FieldTopicID)
	}
	if m.topic_name != nil {
		fields = append(fields, knowledgenode.FieldTopicName)
	}
	if m.synthesis_cache != nil {
		fields = append(fields, knowledgenode.FieldSynthesisCache)
	}
	if m.first_seen != nil {
		fields = append(fields, knowledgenode.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, knowledgenode.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgenode.FieldLearnerID:
		return m.LearnerID()
	case knowledgenode.FieldCanonicalName:
		return m.CanonicalName()
	case knowledgenode.FieldDisplayName:
		return m.DisplayName()
	case knowledgenode.FieldDefinition:
		return m.Definition()
	case knowledgenode.FieldCurrentMastery:
		return m.CurrentMastery()
	case knowledgenode.FieldMasteryHistory:
		return m.MasteryHistory()
	case knowledgenode.FieldSessionIds:
		return m.SessionIds()
	case knowledgenode.FieldSessionCount:
		return m.SessionCount()
	case knowledgenode.FieldTopicID:
		return m.TopicID()
	case knowledgenode.FieldTopicName:
		return m.TopicName()
	case knowledgenode.FieldSynthesisCache:
		return m.SynthesisCache()
	case knowledgenode.FieldFirstSeen:
		return m.FirstSeen()
	case knowledgenode.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgenode.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case knowledgenode.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case knowledgenode.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case knowledgenode.FieldDefinition:
		return m.OldDefinition(ctx)
	case knowledgenode.FieldCurrentMastery:
		return m.OldCurrentMastery(ctx)
	case knowledgenode.FieldMasteryHistory:
		return m.OldMasteryHistory(ctx)
	case knowledgenode.FieldSessionIds:
		return m.OldSessionIds(ctx)
	case knowledgenode.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case knowledgenode.FieldTopicID:
		return m.OldTopicID(ctx)
	case knowledgenode.FieldTopicName:
		return m.OldTopicName(ctx)
	case knowledgenode.FieldSynthesisCache:
		return m.OldSynthesisCache(ctx)
	case knowledgenode.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case knowledgenode.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgenode.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case knowledgenode.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case knowledgenode.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case knowledgenode.FieldDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case knowledgenode.FieldCurrentMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentMastery(v)
		return nil
	case knowledgenode.FieldMasteryHistory:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryHistory(v)
		return nil
	case knowledgenode.FieldSessionIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionIds(v)
		return nil
	case knowledgenode.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case knowledgenode.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case knowledgenode.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case knowledgenode.FieldSynthesisCache:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesisCache(v)
		return nil
	case knowledgenode.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case knowledgenode.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeNodeMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, knowledgenode.FieldSessionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgenode.FieldSessionCount:
		return m.AddedSessionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgenode.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgenode.FieldDefinition) {
		fields = append(fields, knowledgenode.FieldDefinition)
	}
	if m.FieldCleared(knowledgenode.FieldMasteryHistory) {
		fields = append(fields, knowledgenode.FieldMasteryHistory)
	}
	if m.FieldCleared(knowledgenode.FieldSessionIds) {
		fields = append(fields, knowledgenode.FieldSessionIds)
	}
	if m.FieldCleared(knowledgenode.FieldTopicID) {
		fields = append(fields, knowledgenode.FieldTopicID)
	}
	if m.FieldCleared(knowledgenode.FieldTopicName) {
		fields = append(fields, knowledgenode.FieldTopicName)
	}
	if m.FieldCleared(knowledgenode.FieldSynthesisCache) {
		fields = append(fields, knowledgenode.FieldSynthesisCache)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeNodeMutation) ClearField(name string) error {
	switch name {
	case knowledgenode.FieldDefinition:
		m.ClearDefinition()
		return nil
	case knowledgenode.FieldMasteryHistory:
		m.ClearMasteryHistory()
		return nil
	case knowledgenode.FieldSessionIds:
		m.ClearSessionIds()
		return nil
	case knowledgenode.FieldTopicID:
		m.ClearTopicID()
		return nil
	case knowledgenode.FieldTopicName:
		m.ClearTopicName()
		return nil
	case knowledgenode.FieldSynthesisCache:
		m.ClearSynthesisCache()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeNodeMutation) ResetField(name string) error {
	switch name {
	case knowledgenode.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case knowledgenode.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case knowledgenode.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case knowledgenode.FieldDefinition:
		m.ResetDefinition()
		return nil
	case knowledgenode.FieldCurrentMastery:
		m.ResetCurrentMastery()
		return nil
	case knowledgenode.FieldMasteryHistory:
		m.ResetMasteryHistory()
		return nil
	case knowledgenode.FieldSessionIds:
		m.ResetSessionIds()
		return nil
	case knowledgenode.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case knowledgenode.FieldTopicID:
		m.ResetTopicID()
		return nil
	case knowledgenode.FieldTopicName:
		m.ResetTopicName()
		return nil
	case knowledgenode.FieldSynthesisCache:
		m.ResetSynthesisCache()
		return nil
	case knowledgenode.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case knowledgenode.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeNode edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// StepRecordMutation represents an operation that mutates the StepRecord nodes in the graph.
type StepRecordMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	concept_id       *string
	step_number      *int
	addstep_number   *int
	step_type        *string
	content          *json.RawMessage
	appendcontent    json.RawMessage
	user_response    *string
	response_type    *string
	evaluation       *json.RawMessage
	appendevaluation json.RawMessage
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StepRecord, error)
	predicates       []predicate.StepRecord
}

var _ ent.Mutation = (*StepRecordMutation)(nil)

// steprecordOption allows management of the mutation configuration using functional options.
type steprecordOption func(*StepRecordMutation)

// newStepRecordMutation creates new mutation for the StepRecord entity.
func newStepRecordMutation(c config, op Op, opts ...steprecordOption) *StepRecordMutation {
	m := &StepRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeStepRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepRecordID sets the ID field of the mutation.
func withStepRecordID(id string) steprecordOption {
	return func(m *StepRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *StepRecord
		)
		m.oldValue = func(ctx context.Context) (*StepRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepRecord sets the old StepRecord of the mutation.
func withStepRecord(node *StepRecord) steprecordOption {
	return func(m *StepRecordMutation) {
		m.oldValue = func(context.Context) (*StepRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepRecord entities.
func (m *StepRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StepRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StepRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StepRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *StepRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *StepRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *StepRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetStepNumber sets the "step_number" field.
func (m *StepRecordMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *StepRecordMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *StepRecordMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *StepRecordMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *StepRecordMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetStepType sets the "step_type" field.
func (m *StepRecordMutation) SetStepType(s string) {
	m.step_type = &s
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *StepRecordMutation) StepType() (r string, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldStepType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *StepRecordMutation) ResetStepType() {
	m.step_type = nil
}

// SetContent sets the "content" field.
func (m *StepRecordMutation) SetContent(jm json.RawMessage) {
	m.content = &jm
	m.appendcontent = nil
}

// Content returns the value of the "content" field in the mutation.
func (m *StepRecordMutation) Content() (r json.RawMessage, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// AppendContent adds jm to the "content" field.
func (m *StepRecordMutation) AppendContent(jm json.RawMessage) {
	m.appendcontent = append(m.appendcontent, jm...)
}

// AppendedContent returns the list of values that were appended to the "content" field in this mutation.
func (m *StepRecordMutation) AppendedContent() (json.RawMessage, bool) {
	if len(m.appendcontent) == 0 {
		return nil, false
	}
	return m.appendcontent, true
}

// ResetContent resets all changes to the "content" field.
func (m *StepRecordMutation) ResetContent() {
	m.content = nil
	m.appendcontent = nil
}

// SetUserResponse sets the "user_response" field.
func (m *StepRecordMutation) SetUserResponse(s string) {
	m.user_response = &s
}

// UserResponse returns the value of the "user_response" field in the mutation.
func (m *StepRecordMutation) UserResponse() (r string, exists bool) {
	v := m.user_response
	if v == nil {
		return
	}
	return *v, true
}

// OldUserResponse returns the old "user_response" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldUserResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserResponse: %w", err)
	}
	return oldValue.UserResponse, nil
}

// ClearUserResponse clears the value of the "user_response" field.
func (m *StepRecordMutation) ClearUserResponse() {
	m.user_response = nil
	m.clearedFields[steprecord.FieldUserResponse] = struct{}{}
}

// UserResponseCleared returns if the "user_response" field was cleared in this mutation.
func (m *StepRecordMutation) UserResponseCleared() bool {
	_, ok := m.clearedFields[steprecord.FieldUserResponse]
	return ok
}

// ResetUserResponse resets all changes to the "user_response" field.
func (m *StepRecordMutation) ResetUserResponse() {
	m.user_response = nil
	delete(m.clearedFields, steprecord.FieldUserResponse)
}

// SetResponseType sets the "response_type" field.
func (m *StepRecordMutation) SetResponseType(s string) {
	m.response_type = &s
}

// ResponseType returns the value of the "response_type" field in the mutation.
func (m *StepRecordMutation) ResponseType() (r string, exists bool) {
	v := m.response_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseType returns the old "response_type" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldResponseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseType: %w", err)
	}
	return oldValue.ResponseType, nil
}

// ClearResponseType clears the value of the "response_type" field.
func (m *StepRecordMutation) ClearResponseType() {
	m.response_type = nil
	m.clearedFields[steprecord.FieldResponseType] = struct{}{}
}

// ResponseTypeCleared returns if the "response_type" field was cleared in this mutation.
func (m *StepRecordMutation) ResponseTypeCleared() bool {
	_, ok := m.clearedFields[steprecord.FieldResponseType]
	return ok
}

// ResetResponseType resets all changes to the "response_type" field.
func (m *StepRecordMutation) ResetResponseType() {
	m.response_type = nil
	delete(m.clearedFields, steprecord.FieldResponseType)
}

// SetEvaluation sets the "evaluation" field.
func (m *StepRecordMutation) SetEvaluation(jm json.RawMessage) {
	m.evaluation = &jm
	m.appendevaluation = nil
}

// Evaluation returns the value of the "evaluation" field in the mutation.
func (m *StepRecordMutation) Evaluation() (r json.RawMessage, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluation returns the old "evaluation" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldEvaluation(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluation: %w", err)
	}
	return oldValue.Evaluation, nil
}

// AppendEvaluation adds jm to the "evaluation" field.
func (m *StepRecordMutation) AppendEvaluation(jm json.RawMessage) {
	m.appendevaluation = append(m.appendevaluation, jm...)
}

// AppendedEvaluation returns the list of values that were appended to the "evaluation" field in this mutation.
func (m *StepRecordMutation) AppendedEvaluation() (json.RawMessage, bool) {
	if len(m.appendevaluation) == 0 {
		return nil, false
	}
	return m.appendevaluation, true
}

// ClearEvaluation clears the value of the "evaluation" field.
func (m *StepRecordMutation) ClearEvaluation() {
	m.evaluation = nil
	m.appendevaluation = nil
	m.clearedFields[steprecord.FieldEvaluation] = struct{}{}
}

// EvaluationCleared returns if the "evaluation" field was cleared in this mutation.
func (m *StepRecordMutation) EvaluationCleared() bool {
	_, ok := m.clearedFields[steprecord.FieldEvaluation]
	return ok
}

// ResetEvaluation resets all changes to the "evaluation" field.
func (m *StepRecordMutation) ResetEvaluation() {
	m.evaluation = nil
	m.appendevaluation = nil
	delete(m.clearedFields, steprecord.FieldEvaluation)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepRecord entity.
// If the StepRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StepRecordMutation builder.
func (m *StepRecordMutation) Where(ps ...predicate.StepRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepRecord).
func (m *StepRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, steprecord.FieldSessionID)
	}
	if m.concept_id != nil {
		fields = append(fields, steprecord.FieldConceptID)
	}
	if m.step_number != nil {
		fields = append(fields, steprecord.FieldStepNumber)
	}
	if m.step_type != nil {
		fields = append(fields, steprecord.FieldStepType)
	}
	if m.content != nil {
		fields = append(fields, steprecord.FieldContent)
	}
	if m.user_response != nil {
		fields = append(fields, steprecord.FieldUserResponse)
	}
	if m.response_type != nil {
		fields = append(fields, steprecord.FieldResponseType)
	}
	if m.evaluation != nil {
		fields = append(fields, steprecord.FieldEvaluation)
	}
	if m.created_at != nil {
		fields = append(fields, steprecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case steprecord.FieldSessionID:
		return m.SessionID()
	case steprecord.FieldConceptID:
		return m.ConceptID()
	case steprecord.FieldStepNumber:
		return m.StepNumber()
	case steprecord.FieldStepType:
		return m.StepType()
	case steprecord.FieldContent:
		return m.Content()
	case steprecord.FieldUserResponse:
		return m.UserResponse()
	case steprecord.FieldResponseType:
		return m.ResponseType()
	case steprecord.FieldEvaluation:
		return m.Evaluation()
	case steprecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case steprecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case steprecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case steprecord.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case steprecord.FieldStepType:
		return m.OldStepType(ctx)
	case steprecord.FieldContent:
		return m.OldContent(ctx)
	case steprecord.FieldUserResponse:
		return m.OldUserResponse(ctx)
	case steprecord.FieldResponseType:
		return m.OldResponseType(ctx)
	case steprecord.FieldEvaluation:
		return m.OldEvaluation(ctx)
	case steprecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case steprecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case steprecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case steprecord.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case steprecord.FieldStepType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case steprecord.FieldContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case steprecord.FieldUserResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserResponse(v)
		return nil
	case steprecord.FieldResponseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseType(v)
		return nil
	case steprecord.FieldEvaluation:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluation(v)
		return nil
	case steprecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstep_number != nil {
		fields = append(fields, steprecord.FieldStepNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case steprecord.FieldStepNumber:
		return m.AddedStepNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case steprecord.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	}
	return fmt.Errorf("unknown StepRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(steprecord.FieldUserResponse) {
		fields = append(fields, steprecord.FieldUserResponse)
	}
	if m.FieldCleared(steprecord.FieldResponseType) {
		fields = append(fields, steprecord.FieldResponseType)
	}
	if m.FieldCleared(steprecord.FieldEvaluation) {
		fields = append(fields, steprecord.FieldEvaluation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepRecordMutation) ClearField(name string) error {
	switch name {
	case steprecord.FieldUserResponse:
		m.ClearUserResponse()
		return nil
	case steprecord.FieldResponseType:
		m.ClearResponseType()
		return nil
	case steprecord.FieldEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown StepRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepRecordMutation) ResetField(name string) error {
	switch name {
	case steprecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case steprecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case steprecord.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case steprecord.FieldStepType:
		m.ResetStepType()
		return nil
	case steprecord.FieldContent:
		m.ResetContent()
		return nil
	case steprecord.FieldUserResponse:
		m.ResetUserResponse()
		return nil
	case steprecord.FieldResponseType:
		m.ResetResponseType()
		return nil
	case steprecord.FieldEvaluation:
		m.ResetEvaluation()
		return nil
	case steprecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepRecord edge %s", name)
}
