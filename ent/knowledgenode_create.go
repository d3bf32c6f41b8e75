// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/knowledgenode"
)

// KnowledgeNodeCreate is the builder for creating a KnowledgeNode entity.
type KnowledgeNodeCreate struct {
	config
	mutation *KnowledgeNodeMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *KnowledgeNodeCreate) SetLearnerID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCanonicalName sets the "canonical_name" field.
func (_c *KnowledgeNodeCreate) SetCanonicalName(v string) *KnowledgeNodeCreate {
	_c.mutation.SetCanonicalName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *KnowledgeNodeCreate) SetDisplayName(v string) *KnowledgeNodeCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *KnowledgeNodeCreate) SetDefinition(v string) *KnowledgeNodeCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableDefinition(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetDefinition(*v)
	}
	return _c
}

// SetCurrentMastery sets the "current_mastery" field.
func (_c *KnowledgeNodeCreate) SetCurrentMastery(v string) *KnowledgeNodeCreate {
	_c.mutation.SetCurrentMastery(v)
	return _c
}

// SetNillableCurrentMastery sets the "current_mastery" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableCurrentMastery(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetCurrentMastery(*v)
	}
	return _c
}

// SetMasteryHistory sets the "mastery_history" field.
func (_c *KnowledgeNodeCreate) SetMasteryHistory(v json.RawMessage) *KnowledgeNodeCreate {
	_c.mutation.SetMasteryHistory(v)
	return _c
}

// SetSessionIds sets the "session_ids" field.
func (_c *KnowledgeNodeCreate) SetSessionIds(v []string) *KnowledgeNodeCreate {
	_c.mutation.SetSessionIds(v)
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *KnowledgeNodeCreate) SetSessionCount(v int) *KnowledgeNodeCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableSessionCount(v *int) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *KnowledgeNodeCreate) SetTopicID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableTopicID(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *KnowledgeNodeCreate) SetTopicName(v string) *KnowledgeNodeCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableTopicName(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetTopicName(*v)
	}
	return _c
}

// SetSynthesisCache sets the "synthesis_cache" field.
func (_c *KnowledgeNodeCreate) SetSynthesisCache(v string) *KnowledgeNodeCreate {
	_c.mutation.SetSynthesisCache(v)
	return _c
}

// SetNillableSynthesisCache sets the "synthesis_cache" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableSynthesisCache(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetSynthesisCache(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *KnowledgeNodeCreate) SetFirstSeen(v time.Time) *KnowledgeNodeCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableFirstSeen(v *time.Time) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *KnowledgeNodeCreate) SetLastSeen(v time.Time) *KnowledgeNodeCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableLastSeen(v *time.Time) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeNodeCreate) SetID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_c *KnowledgeNodeCreate) Mutation() *KnowledgeNodeMutation {
	return _c.mutation
}

// Save creates the KnowledgeNode in the database.
func (_c *KnowledgeNodeCreate) Save(ctx context.Context) (*KnowledgeNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeNodeCreate) SaveX(ctx context.Context) *KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeNodeCreate) defaults() {
	if _, ok := _c.mutation.CurrentMastery(); !ok {
		v := knowledgenode.DefaultCurrentMastery
		_c.mutation.SetCurrentMastery(v)
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := knowledgenode.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := knowledgenode.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := knowledgenode.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeNodeCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "KnowledgeNode.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := knowledgenode.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalName(); !ok {
		return &ValidationError{Name: "canonical_name", err: errors.New(`ent: missing required field "KnowledgeNode.canonical_name"`)}
	}
	if v, ok := _c.mutation.CanonicalName(); ok {
		if err := knowledgenode.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.canonical_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "KnowledgeNode.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := knowledgenode.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentMastery(); !ok {
		return &ValidationError{Name: "current_mastery", err: errors.New(`ent: missing required field "KnowledgeNode.current_mastery"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "KnowledgeNode.session_count"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "KnowledgeNode.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "KnowledgeNode.last_seen"`)}
	}
	return nil
}

func (_c *KnowledgeNodeCreate) sqlSave(ctx context.Context) (*KnowledgeNode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected KnowledgeNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeNodeCreate) createSpec() (*KnowledgeNode, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgenode.Table, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(knowledgenode.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CanonicalName(); ok {
		_spec.SetField(knowledgenode.FieldCanonicalName, field.TypeString, value)
		_node.CanonicalName = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(knowledgenode.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(knowledgenode.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.CurrentMastery(); ok {
		_spec.SetField(knowledgenode.FieldCurrentMastery, field.TypeString, value)
		_node.CurrentMastery = value
	}
	if value, ok := _c.mutation.MasteryHistory(); ok {
		_spec.SetField(knowledgenode.FieldMasteryHistory, field.TypeJSON, value)
		_node.MasteryHistory = value
	}
	if value, ok := _c.mutation.SessionIds(); ok {
		_spec.SetField(knowledgenode.FieldSessionIds, field.TypeJSON, value)
		_node.SessionIds = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(knowledgenode.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(knowledgenode.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(knowledgenode.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.SynthesisCache(); ok {
		_spec.SetField(knowledgenode.FieldSynthesisCache, field.TypeString, value)
		_node.SynthesisCache = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(knowledgenode.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(knowledgenode.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// KnowledgeNodeCreateBulk is the builder for creating many KnowledgeNode entities in bulk.
type KnowledgeNodeCreateBulk struct {
	config
	err      error
	builders []*KnowledgeNodeCreate
}

// Save creates the KnowledgeNode entities in the database.
func (_c *KnowledgeNodeCreateBulk) Save(ctx context.Context) ([]*KnowledgeNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeNodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *KnowledgeNodeCreateBulk) SaveX(ctx context.Context) []*KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
