// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/knowledgenode"
	"github.com/reflowhq/reflow/ent/predicate"
)

// KnowledgeNodeUpdate is the builder for updating KnowledgeNode entities.
type KnowledgeNodeUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdate) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *KnowledgeNodeUpdate) SetCanonicalName(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableCanonicalName(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *KnowledgeNodeUpdate) SetDisplayName(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableDisplayName(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *KnowledgeNodeUpdate) SetDefinition(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableDefinition(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// ClearDefinition clears the value of the "definition" field.
func (_u *KnowledgeNodeUpdate) ClearDefinition() *KnowledgeNodeUpdate {
	_u.mutation.ClearDefinition()
	return _u
}

// SetCurrentMastery sets the "current_mastery" field.
func (_u *KnowledgeNodeUpdate) SetCurrentMastery(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetCurrentMastery(v)
	return _u
}

// SetNillableCurrentMastery sets the "current_mastery" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableCurrentMastery(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetCurrentMastery(*v)
	}
	return _u
}

// SetMasteryHistory sets the "mastery_history" field.
func (_u *KnowledgeNodeUpdate) SetMasteryHistory(v json.RawMessage) *KnowledgeNodeUpdate {
	_u.mutation.SetMasteryHistory(v)
	return _u
}

// AppendMasteryHistory appends value to the "mastery_history" field.
func (_u *KnowledgeNodeUpdate) AppendMasteryHistory(v json.RawMessage) *KnowledgeNodeUpdate {
	_u.mutation.AppendMasteryHistory(v)
	return _u
}

// ClearMasteryHistory clears the value of the "mastery_history" field.
func (_u *KnowledgeNodeUpdate) ClearMasteryHistory() *KnowledgeNodeUpdate {
	_u.mutation.ClearMasteryHistory()
	return _u
}

// SetSessionIds sets the "session_ids" field.
func (_u *KnowledgeNodeUpdate) SetSessionIds(v []string) *KnowledgeNodeUpdate {
	_u.mutation.SetSessionIds(v)
	return _u
}

// AppendSessionIds appends value to the "session_ids" field.
func (_u *KnowledgeNodeUpdate) AppendSessionIds(v []string) *KnowledgeNodeUpdate {
	_u.mutation.AppendSessionIds(v)
	return _u
}

// ClearSessionIds clears the value of the "session_ids" field.
func (_u *KnowledgeNodeUpdate) ClearSessionIds() *KnowledgeNodeUpdate {
	_u.mutation.ClearSessionIds()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *KnowledgeNodeUpdate) SetSessionCount(v int) *KnowledgeNodeUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableSessionCount(v *int) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *KnowledgeNodeUpdate) AddSessionCount(v int) *KnowledgeNodeUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *KnowledgeNodeUpdate) SetTopicID(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableTopicID(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *KnowledgeNodeUpdate) ClearTopicID() *KnowledgeNodeUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *KnowledgeNodeUpdate) SetTopicName(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableTopicName(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// ClearTopicName clears the value of the "topic_name" field.
func (_u *KnowledgeNodeUpdate) ClearTopicName() *KnowledgeNodeUpdate {
	_u.mutation.ClearTopicName()
	return _u
}

// SetSynthesisCache sets the "synthesis_cache" field.
func (_u *KnowledgeNodeUpdate) SetSynthesisCache(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetSynthesisCache(v)
	return _u
}

// SetNillableSynthesisCache sets the "synthesis_cache" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableSynthesisCache(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetSynthesisCache(*v)
	}
	return _u
}

// ClearSynthesisCache clears the value of the "synthesis_cache" field.
func (_u *KnowledgeNodeUpdate) ClearSynthesisCache() *KnowledgeNodeUpdate {
	_u.mutation.ClearSynthesisCache()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *KnowledgeNodeUpdate) SetLastSeen(v time.Time) *KnowledgeNodeUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableLastSeen(v *time.Time) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdate) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdate) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := knowledgenode.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.canonical_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := knowledgenode.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(knowledgenode.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(knowledgenode.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(knowledgenode.FieldDefinition, field.TypeString, value)
	}
	if _u.mutation.DefinitionCleared() {
		_spec.ClearField(knowledgenode.FieldDefinition, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentMastery(); ok {
		_spec.SetField(knowledgenode.FieldCurrentMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryHistory(); ok {
		_spec.SetField(knowledgenode.FieldMasteryHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMasteryHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgenode.FieldMasteryHistory, value)
		})
	}
	if _u.mutation.MasteryHistoryCleared() {
		_spec.ClearField(knowledgenode.FieldMasteryHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionIds(); ok {
		_spec.SetField(knowledgenode.FieldSessionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgenode.FieldSessionIds, value)
		})
	}
	if _u.mutation.SessionIdsCleared() {
		_spec.ClearField(knowledgenode.FieldSessionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(knowledgenode.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(knowledgenode.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(knowledgenode.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(knowledgenode.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(knowledgenode.FieldTopicName, field.TypeString, value)
	}
	if _u.mutation.TopicNameCleared() {
		_spec.ClearField(knowledgenode.FieldTopicName, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisCache(); ok {
		_spec.SetField(knowledgenode.FieldSynthesisCache, field.TypeString, value)
	}
	if _u.mutation.SynthesisCacheCleared() {
		_spec.ClearField(knowledgenode.FieldSynthesisCache, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(knowledgenode.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeNodeUpdateOne is the builder for updating a single KnowledgeNode entity.
type KnowledgeNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *KnowledgeNodeUpdateOne) SetCanonicalName(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableCanonicalName(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *KnowledgeNodeUpdateOne) SetDisplayName(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableDisplayName(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *KnowledgeNodeUpdateOne) SetDefinition(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableDefinition(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// ClearDefinition clears the value of the "definition" field.
func (_u *KnowledgeNodeUpdateOne) ClearDefinition() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearDefinition()
	return _u
}

// SetCurrentMastery sets the "current_mastery" field.
func (_u *KnowledgeNodeUpdateOne) SetCurrentMastery(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetCurrentMastery(v)
	return _u
}

// SetNillableCurrentMastery sets the "current_mastery" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableCurrentMastery(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetCurrentMastery(*v)
	}
	return _u
}

// SetMasteryHistory sets the "mastery_history" field.
func (_u *KnowledgeNodeUpdateOne) SetMasteryHistory(v json.RawMessage) *KnowledgeNodeUpdateOne {
	_u.mutation.SetMasteryHistory(v)
	return _u
}

// AppendMasteryHistory appends value to the "mastery_history" field.
func (_u *KnowledgeNodeUpdateOne) AppendMasteryHistory(v json.RawMessage) *KnowledgeNodeUpdateOne {
	_u.mutation.AppendMasteryHistory(v)
	return _u
}

// ClearMasteryHistory clears the value of the "mastery_history" field.
func (_u *KnowledgeNodeUpdateOne) ClearMasteryHistory() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearMasteryHistory()
	return _u
}

// SetSessionIds sets the "session_ids" field.
func (_u *KnowledgeNodeUpdateOne) SetSessionIds(v []string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetSessionIds(v)
	return _u
}

// AppendSessionIds appends value to the "session_ids" field.
func (_u *KnowledgeNodeUpdateOne) AppendSessionIds(v []string) *KnowledgeNodeUpdateOne {
	_u.mutation.AppendSessionIds(v)
	return _u
}

// ClearSessionIds clears the value of the "session_ids" field.
func (_u *KnowledgeNodeUpdateOne) ClearSessionIds() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearSessionIds()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *KnowledgeNodeUpdateOne) SetSessionCount(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableSessionCount(v *int) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *KnowledgeNodeUpdateOne) AddSessionCount(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *KnowledgeNodeUpdateOne) SetTopicID(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableTopicID(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *KnowledgeNodeUpdateOne) ClearTopicID() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *KnowledgeNodeUpdateOne) SetTopicName(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableTopicName(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// ClearTopicName clears the value of the "topic_name" field.
func (_u *KnowledgeNodeUpdateOne) ClearTopicName() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearTopicName()
	return _u
}

// SetSynthesisCache sets the "synthesis_cache" field.
func (_u *KnowledgeNodeUpdateOne) SetSynthesisCache(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetSynthesisCache(v)
	return _u
}

// SetNillableSynthesisCache sets the "synthesis_cache" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableSynthesisCache(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetSynthesisCache(*v)
	}
	return _u
}

// ClearSynthesisCache clears the value of the "synthesis_cache" field.
func (_u *KnowledgeNodeUpdateOne) ClearSynthesisCache() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearSynthesisCache()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *KnowledgeNodeUpdateOne) SetLastSeen(v time.Time) *KnowledgeNodeUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableLastSeen(v *time.Time) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdateOne) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdateOne) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeNodeUpdateOne) Select(field string, fields ...string) *KnowledgeNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeNode entity.
func (_u *KnowledgeNodeUpdateOne) Save(ctx context.Context) (*KnowledgeNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) SaveX(ctx context.Context) *KnowledgeNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdateOne) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := knowledgenode.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.canonical_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := knowledgenode.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeNodeUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgenode.FieldID)
		for _, f := range fields {
			if !knowledgenode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgenode.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(knowledgenode.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(knowledgenode.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(knowledgenode.FieldDefinition, field.TypeString, value)
	}
	if _u.mutation.DefinitionCleared() {
		_spec.ClearField(knowledgenode.FieldDefinition, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentMastery(); ok {
		_spec.SetField(knowledgenode.FieldCurrentMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryHistory(); ok {
		_spec.SetField(knowledgenode.FieldMasteryHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMasteryHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgenode.FieldMasteryHistory, value)
		})
	}
	if _u.mutation.MasteryHistoryCleared() {
		_spec.ClearField(knowledgenode.FieldMasteryHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionIds(); ok {
		_spec.SetField(knowledgenode.FieldSessionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgenode.FieldSessionIds, value)
		})
	}
	if _u.mutation.SessionIdsCleared() {
		_spec.ClearField(knowledgenode.FieldSessionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(knowledgenode.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(knowledgenode.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(knowledgenode.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(knowledgenode.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(knowledgenode.FieldTopicName, field.TypeString, value)
	}
	if _u.mutation.TopicNameCleared() {
		_spec.ClearField(knowledgenode.FieldTopicName, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisCache(); ok {
		_spec.SetField(knowledgenode.FieldSynthesisCache, field.TypeString, value)
	}
	if _u.mutation.SynthesisCacheCleared() {
		_spec.ClearField(knowledgenode.FieldSynthesisCache, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(knowledgenode.FieldLastSeen, field.TypeTime, value)
	}
	_node = &KnowledgeNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
