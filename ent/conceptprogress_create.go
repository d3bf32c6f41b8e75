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
	"github.com/reflowhq/reflow/ent/conceptprogress"
)

// ConceptProgressCreate is the builder for creating a ConceptProgress entity.
type ConceptProgressCreate struct {
	config
	mutation *ConceptProgressMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ConceptProgressCreate) SetSessionID(v string) *ConceptProgressCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ConceptProgressCreate) SetConceptID(v string) *ConceptProgressCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ConceptProgressCreate) SetLearnerID(v string) *ConceptProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptName sets the "concept_name" field.
func (_c *ConceptProgressCreate) SetConceptName(v string) *ConceptProgressCreate {
	_c.mutation.SetConceptName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConceptProgressCreate) SetStatus(v string) *ConceptProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableStatus(v *string) *ConceptProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *ConceptProgressCreate) SetPlan(v json.RawMessage) *ConceptProgressCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetCurriculumID sets the "curriculum_id" field.
func (_c *ConceptProgressCreate) SetCurriculumID(v string) *ConceptProgressCreate {
	_c.mutation.SetCurriculumID(v)
	return _c
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableCurriculumID(v *string) *ConceptProgressCreate {
	if v != nil {
		_c.SetCurriculumID(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *ConceptProgressCreate) SetNodeID(v string) *ConceptProgressCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableNodeID(v *string) *ConceptProgressCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConceptProgressCreate) SetUpdatedAt(v time.Time) *ConceptProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableUpdatedAt(v *time.Time) *ConceptProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptProgressCreate) SetID(v string) *ConceptProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_c *ConceptProgressCreate) Mutation() *ConceptProgressMutation {
	return _c.mutation
}

// Save creates the ConceptProgress in the database.
func (_c *ConceptProgressCreate) Save(ctx context.Context) (*ConceptProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptProgressCreate) SaveX(ctx context.Context) *ConceptProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conceptprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conceptprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptProgressCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConceptProgress.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := conceptprogress.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ConceptProgress.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := conceptprogress.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ConceptProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := conceptprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptName(); !ok {
		return &ValidationError{Name: "concept_name", err: errors.New(`ent: missing required field "ConceptProgress.concept_name"`)}
	}
	if v, ok := _c.mutation.ConceptName(); ok {
		if err := conceptprogress.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConceptProgress.status"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConceptProgress.updated_at"`)}
	}
	return nil
}

func (_c *ConceptProgressCreate) sqlSave(ctx context.Context) (*ConceptProgress, error) {
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
			return nil, fmt.Errorf("unexpected ConceptProgress.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptProgressCreate) createSpec() (*ConceptProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptprogress.Table, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(conceptprogress.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(conceptprogress.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(conceptprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptName(); ok {
		_spec.SetField(conceptprogress.FieldConceptName, field.TypeString, value)
		_node.ConceptName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conceptprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(conceptprogress.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CurriculumID(); ok {
		_spec.SetField(conceptprogress.FieldCurriculumID, field.TypeString, value)
		_node.CurriculumID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(conceptprogress.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conceptprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConceptProgressCreateBulk is the builder for creating many ConceptProgress entities in bulk.
type ConceptProgressCreateBulk struct {
	config
	err      error
	builders []*ConceptProgressCreate
}

// Save creates the ConceptProgress entities in the database.
func (_c *ConceptProgressCreateBulk) Save(ctx context.Context) ([]*ConceptProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptProgressMutation)
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
func (_c *ConceptProgressCreateBulk) SaveX(ctx context.Context) []*ConceptProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
