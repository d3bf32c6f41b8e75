// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/curriculum"
)

// CurriculumCreate is the builder for creating a Curriculum entity.
type CurriculumCreate struct {
	config
	mutation *CurriculumMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *CurriculumCreate) SetLearnerID(v string) *CurriculumCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CurriculumCreate) SetTitle(v string) *CurriculumCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableTitle(v *string) *CurriculumCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetConceptIds sets the "concept_ids" field.
func (_c *CurriculumCreate) SetConceptIds(v []string) *CurriculumCreate {
	_c.mutation.SetConceptIds(v)
	return _c
}

// SetCompletedIds sets the "completed_ids" field.
func (_c *CurriculumCreate) SetCompletedIds(v []string) *CurriculumCreate {
	_c.mutation.SetCompletedIds(v)
	return _c
}

// SetCursor sets the "cursor" field.
func (_c *CurriculumCreate) SetCursor(v int) *CurriculumCreate {
	_c.mutation.SetCursor(v)
	return _c
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableCursor(v *int) *CurriculumCreate {
	if v != nil {
		_c.SetCursor(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CurriculumCreate) SetStatus(v string) *CurriculumCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableStatus(v *string) *CurriculumCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CurriculumCreate) SetUpdatedAt(v time.Time) *CurriculumCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableUpdatedAt(v *time.Time) *CurriculumCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CurriculumCreate) SetID(v string) *CurriculumCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CurriculumMutation object of the builder.
func (_c *CurriculumCreate) Mutation() *CurriculumMutation {
	return _c.mutation
}

// Save creates the Curriculum in the database.
func (_c *CurriculumCreate) Save(ctx context.Context) (*Curriculum, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurriculumCreate) SaveX(ctx context.Context) *Curriculum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurriculumCreate) defaults() {
	if _, ok := _c.mutation.Cursor(); !ok {
		v := curriculum.DefaultCursor
		_c.mutation.SetCursor(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := curriculum.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := curriculum.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurriculumCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Curriculum.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := curriculum.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Curriculum.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptIds(); !ok {
		return &ValidationError{Name: "concept_ids", err: errors.New(`ent: missing required field "Curriculum.concept_ids"`)}
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		return &ValidationError{Name: "cursor", err: errors.New(`ent: missing required field "Curriculum.cursor"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Curriculum.status"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Curriculum.updated_at"`)}
	}
	return nil
}

func (_c *CurriculumCreate) sqlSave(ctx context.Context) (*Curriculum, error) {
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
			return nil, fmt.Errorf("unexpected Curriculum.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CurriculumCreate) createSpec() (*Curriculum, *sqlgraph.CreateSpec) {
	var (
		_node = &Curriculum{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curriculum.Table, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(curriculum.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ConceptIds(); ok {
		_spec.SetField(curriculum.FieldConceptIds, field.TypeJSON, value)
		_node.ConceptIds = value
	}
	if value, ok := _c.mutation.CompletedIds(); ok {
		_spec.SetField(curriculum.FieldCompletedIds, field.TypeJSON, value)
		_node.CompletedIds = value
	}
	if value, ok := _c.mutation.Cursor(); ok {
		_spec.SetField(curriculum.FieldCursor, field.TypeInt, value)
		_node.Cursor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(curriculum.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CurriculumCreateBulk is the builder for creating many Curriculum entities in bulk.
type CurriculumCreateBulk struct {
	config
	err      error
	builders []*CurriculumCreate
}

// Save creates the Curriculum entities in the database.
func (_c *CurriculumCreateBulk) Save(ctx context.Context) ([]*Curriculum, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Curriculum, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurriculumMutation)
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
func (_c *CurriculumCreateBulk) SaveX(ctx context.Context) []*Curriculum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
