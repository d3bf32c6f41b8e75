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
	"github.com/reflowhq/reflow/ent/steprecord"
)

// StepRecordCreate is the builder for creating a StepRecord entity.
type StepRecordCreate struct {
	config
	mutation *StepRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StepRecordCreate) SetSessionID(v string) *StepRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *StepRecordCreate) SetConceptID(v string) *StepRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *StepRecordCreate) SetStepNumber(v int) *StepRecordCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *StepRecordCreate) SetStepType(v string) *StepRecordCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *StepRecordCreate) SetContent(v json.RawMessage) *StepRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUserResponse sets the "user_response" field.
func (_c *StepRecordCreate) SetUserResponse(v string) *StepRecordCreate {
	_c.mutation.SetUserResponse(v)
	return _c
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_c *StepRecordCreate) SetNillableUserResponse(v *string) *StepRecordCreate {
	if v != nil {
		_c.SetUserResponse(*v)
	}
	return _c
}

// SetResponseType sets the "response_type" field.
func (_c *StepRecordCreate) SetResponseType(v string) *StepRecordCreate {
	_c.mutation.SetResponseType(v)
	return _c
}

// SetNillableResponseType sets the "response_type" field if the given value is not nil.
func (_c *StepRecordCreate) SetNillableResponseType(v *string) *StepRecordCreate {
	if v != nil {
		_c.SetResponseType(*v)
	}
	return _c
}

// SetEvaluation sets the "evaluation" field.
func (_c *StepRecordCreate) SetEvaluation(v json.RawMessage) *StepRecordCreate {
	_c.mutation.SetEvaluation(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepRecordCreate) SetCreatedAt(v time.Time) *StepRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepRecordCreate) SetNillableCreatedAt(v *time.Time) *StepRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepRecordCreate) SetID(v string) *StepRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StepRecordMutation object of the builder.
func (_c *StepRecordCreate) Mutation() *StepRecordMutation {
	return _c.mutation
}

// Save creates the StepRecord in the database.
func (_c *StepRecordCreate) Save(ctx context.Context) (*StepRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepRecordCreate) SaveX(ctx context.Context) *StepRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := steprecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StepRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := steprecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "StepRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := steprecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "StepRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "StepRecord.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := steprecord.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "StepRecord.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "StepRecord.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := steprecord.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "StepRecord.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StepRecord.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepRecord.created_at"`)}
	}
	return nil
}

func (_c *StepRecordCreate) sqlSave(ctx context.Context) (*StepRecord, error) {
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
			return nil, fmt.Errorf("unexpected StepRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepRecordCreate) createSpec() (*StepRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StepRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(steprecord.Table, sqlgraph.NewFieldSpec(steprecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(steprecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(steprecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(steprecord.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(steprecord.FieldStepType, field.TypeString, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(steprecord.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UserResponse(); ok {
		_spec.SetField(steprecord.FieldUserResponse, field.TypeString, value)
		_node.UserResponse = &value
	}
	if value, ok := _c.mutation.ResponseType(); ok {
		_spec.SetField(steprecord.FieldResponseType, field.TypeString, value)
		_node.ResponseType = value
	}
	if value, ok := _c.mutation.Evaluation(); ok {
		_spec.SetField(steprecord.FieldEvaluation, field.TypeJSON, value)
		_node.Evaluation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(steprecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StepRecordCreateBulk is the builder for creating many StepRecord entities in bulk.
type StepRecordCreateBulk struct {
	config
	err      error
	builders []*StepRecordCreate
}

// Save creates the StepRecord entities in the database.
func (_c *StepRecordCreateBulk) Save(ctx context.Context) ([]*StepRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepRecordMutation)
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
func (_c *StepRecordCreateBulk) SaveX(ctx context.Context) []*StepRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
