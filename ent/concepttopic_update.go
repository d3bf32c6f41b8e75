// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/concepttopic"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ConceptTopicUpdate is the builder for updating ConceptTopic entities.
type ConceptTopicUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptTopicMutation
}

// Where appends a list predicates to the ConceptTopicUpdate builder.
func (_u *ConceptTopicUpdate) Where(ps ...predicate.ConceptTopic) *ConceptTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptTopicUpdate) SetName(v string) *ConceptTopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptTopicUpdate) SetNillableName(v *string) *ConceptTopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ConceptTopicUpdate) SetConceptCount(v int) *ConceptTopicUpdate {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ConceptTopicUpdate) SetNillableConceptCount(v *int) *ConceptTopicUpdate {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ConceptTopicUpdate) AddConceptCount(v int) *ConceptTopicUpdate {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetDominantMastery sets the "dominant_mastery" field.
func (_u *ConceptTopicUpdate) SetDominantMastery(v string) *ConceptTopicUpdate {
	_u.mutation.SetDominantMastery(v)
	return _u
}

// SetNillableDominantMastery sets the "dominant_mastery" field if the given value is not nil.
func (_u *ConceptTopicUpdate) SetNillableDominantMastery(v *string) *ConceptTopicUpdate {
	if v != nil {
		_u.SetDominantMastery(*v)
	}
	return _u
}

// Mutation returns the ConceptTopicMutation object of the builder.
func (_u *ConceptTopicUpdate) Mutation() *ConceptTopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptTopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptTopicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concepttopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptTopic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concepttopic.Table, concepttopic.Columns, sqlgraph.NewFieldSpec(concepttopic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concepttopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(concepttopic.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(concepttopic.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DominantMastery(); ok {
		_spec.SetField(concepttopic.FieldDominantMastery, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concepttopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptTopicUpdateOne is the builder for updating a single ConceptTopic entity.
type ConceptTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptTopicMutation
}

// SetName sets the "name" field.
func (_u *ConceptTopicUpdateOne) SetName(v string) *ConceptTopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptTopicUpdateOne) SetNillableName(v *string) *ConceptTopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ConceptTopicUpdateOne) SetConceptCount(v int) *ConceptTopicUpdateOne {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ConceptTopicUpdateOne) SetNillableConceptCount(v *int) *ConceptTopicUpdateOne {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ConceptTopicUpdateOne) AddConceptCount(v int) *ConceptTopicUpdateOne {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetDominantMastery sets the "dominant_mastery" field.
func (_u *ConceptTopicUpdateOne) SetDominantMastery(v string) *ConceptTopicUpdateOne {
	_u.mutation.SetDominantMastery(v)
	return _u
}

// SetNillableDominantMastery sets the "dominant_mastery" field if the given value is not nil.
func (_u *ConceptTopicUpdateOne) SetNillableDominantMastery(v *string) *ConceptTopicUpdateOne {
	if v != nil {
		_u.SetDominantMastery(*v)
	}
	return _u
}

// Mutation returns the ConceptTopicMutation object of the builder.
func (_u *ConceptTopicUpdateOne) Mutation() *ConceptTopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptTopicUpdate builder.
func (_u *ConceptTopicUpdateOne) Where(ps ...predicate.ConceptTopic) *ConceptTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptTopicUpdateOne) Select(field string, fields ...string) *ConceptTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptTopic entity.
func (_u *ConceptTopicUpdateOne) Save(ctx context.Context) (*ConceptTopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptTopicUpdateOne) SaveX(ctx context.Context) *ConceptTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptTopicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concepttopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptTopic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptTopicUpdateOne) sqlSave(ctx context.Context) (_node *ConceptTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concepttopic.Table, concepttopic.Columns, sqlgraph.NewFieldSpec(concepttopic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concepttopic.FieldID)
		for _, f := range fields {
			if !concepttopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concepttopic.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concepttopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(concepttopic.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(concepttopic.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DominantMastery(); ok {
		_spec.SetField(concepttopic.FieldDominantMastery, field.TypeString, value)
	}
	_node = &ConceptTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concepttopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
