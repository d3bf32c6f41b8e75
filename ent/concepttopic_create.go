// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/concepttopic"
)

// ConceptTopicCreate is the builder for creating a ConceptTopic entity.
type ConceptTopicCreate struct {
	config
	mutation *ConceptTopicMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ConceptTopicCreate) SetLearnerID(v string) *ConceptTopicCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConceptTopicCreate) SetName(v string) *ConceptTopicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConceptCount sets the "concept_count" field.
func (_c *ConceptTopicCreate) SetConceptCount(v int) *ConceptTopicCreate {
	_c.mutation.SetConceptCount(v)
	return _c
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_c *ConceptTopicCreate) SetNillableConceptCount(v *int) *ConceptTopicCreate {
	if v != nil {
		_c.SetConceptCount(*v)
	}
	return _c
}

// SetDominantMastery sets the "dominant_mastery" field.
func (_c *ConceptTopicCreate) SetDominantMastery(v string) *ConceptTopicCreate {
	_c.mutation.SetDominantMastery(v)
	return _c
}

// SetNillableDominantMastery sets the "dominant_mastery" field if the given value is not nil.
func (_c *ConceptTopicCreate) SetNillableDominantMastery(v *string) *ConceptTopicCreate {
	if v != nil {
		_c.SetDominantMastery(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConceptTopicCreate) SetCreatedAt(v time.Time) *ConceptTopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConceptTopicCreate) SetNillableCreatedAt(v *time.Time) *ConceptTopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptTopicCreate) SetID(v string) *ConceptTopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConceptTopicMutation object of the builder.
func (_c *ConceptTopicCreate) Mutation() *ConceptTopicMutation {
	return _c.mutation
}

// Save creates the ConceptTopic in the database.
func (_c *ConceptTopicCreate) Save(ctx context.Context) (*ConceptTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptTopicCreate) SaveX(ctx context.Context) *ConceptTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptTopicCreate) defaults() {
	if _, ok := _c.mutation.ConceptCount(); !ok {
		v := concepttopic.DefaultConceptCount
		_c.mutation.SetConceptCount(v)
	}
	if _, ok := _c.mutation.DominantMastery(); !ok {
		v := concepttopic.DefaultDominantMastery
		_c.mutation.SetDominantMastery(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := concepttopic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptTopicCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ConceptTopic.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := concepttopic.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConceptTopic.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConceptTopic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := concepttopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptTopic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		return &ValidationError{Name: "concept_count", err: errors.New(`ent: missing required field "ConceptTopic.concept_count"`)}
	}
	if _, ok := _c.mutation.DominantMastery(); !ok {
		return &ValidationError{Name: "dominant_mastery", err: errors.New(`ent: missing required field "ConceptTopic.dominant_mastery"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConceptTopic.created_at"`)}
	}
	return nil
}

func (_c *ConceptTopicCreate) sqlSave(ctx context.Context) (*ConceptTopic, error) {
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
			return nil, fmt.Errorf("unexpected ConceptTopic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptTopicCreate) createSpec() (*ConceptTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(concepttopic.Table, sqlgraph.NewFieldSpec(concepttopic.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(concepttopic.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(concepttopic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ConceptCount(); ok {
		_spec.SetField(concepttopic.FieldConceptCount, field.TypeInt, value)
		_node.ConceptCount = value
	}
	if value, ok := _c.mutation.DominantMastery(); ok {
		_spec.SetField(concepttopic.FieldDominantMastery, field.TypeString, value)
		_node.DominantMastery = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(concepttopic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ConceptTopicCreateBulk is the builder for creating many ConceptTopic entities in bulk.
type ConceptTopicCreateBulk struct {
	config
	err      error
	builders []*ConceptTopicCreate
}

// Save creates the ConceptTopic entities in the database.
func (_c *ConceptTopicCreateBulk) Save(ctx context.Context) ([]*ConceptTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptTopicMutation)
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
func (_c *ConceptTopicCreateBulk) SaveX(ctx context.Context) []*ConceptTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
