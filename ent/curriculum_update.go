// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/curriculum"
	"github.com/reflowhq/reflow/ent/predicate"
)

// CurriculumUpdate is the builder for updating Curriculum entities.
type CurriculumUpdate struct {
	config
	hooks    []Hook
	mutation *CurriculumMutation
}

// Where appends a list predicates to the CurriculumUpdate builder.
func (_u *CurriculumUpdate) Where(ps ...predicate.Curriculum) *CurriculumUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CurriculumUpdate) SetTitle(v string) *CurriculumUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableTitle(v *string) *CurriculumUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CurriculumUpdate) ClearTitle() *CurriculumUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *CurriculumUpdate) SetConceptIds(v []string) *CurriculumUpdate {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *CurriculumUpdate) AppendConceptIds(v []string) *CurriculumUpdate {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetCompletedIds sets the "completed_ids" field.
func (_u *CurriculumUpdate) SetCompletedIds(v []string) *CurriculumUpdate {
	_u.mutation.SetCompletedIds(v)
	return _u
}

// AppendCompletedIds appends value to the "completed_ids" field.
func (_u *CurriculumUpdate) AppendCompletedIds(v []string) *CurriculumUpdate {
	_u.mutation.AppendCompletedIds(v)
	return _u
}

// ClearCompletedIds clears the value of the "completed_ids" field.
func (_u *CurriculumUpdate) ClearCompletedIds() *CurriculumUpdate {
	_u.mutation.ClearCompletedIds()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *CurriculumUpdate) SetCursor(v int) *CurriculumUpdate {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableCursor(v *int) *CurriculumUpdate {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *CurriculumUpdate) AddCursor(v int) *CurriculumUpdate {
	_u.mutation.AddCursor(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CurriculumUpdate) SetStatus(v string) *CurriculumUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableStatus(v *string) *CurriculumUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumUpdate) SetUpdatedAt(v time.Time) *CurriculumUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CurriculumMutation object of the builder.
func (_u *CurriculumUpdate) Mutation() *CurriculumMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurriculumUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurriculumUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CurriculumUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := curriculum.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CurriculumUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(curriculum.Table, curriculum.Columns, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(curriculum.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(curriculum.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculum.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedIds(); ok {
		_spec.SetField(curriculum.FieldCompletedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculum.FieldCompletedIds, value)
		})
	}
	if _u.mutation.CompletedIdsCleared() {
		_spec.ClearField(curriculum.FieldCompletedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(curriculum.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(curriculum.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(curriculum.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurriculumUpdateOne is the builder for updating a single Curriculum entity.
type CurriculumUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurriculumMutation
}

// SetTitle sets the "title" field.
func (_u *CurriculumUpdateOne) SetTitle(v string) *CurriculumUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableTitle(v *string) *CurriculumUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CurriculumUpdateOne) ClearTitle() *CurriculumUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *CurriculumUpdateOne) SetConceptIds(v []string) *CurriculumUpdateOne {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *CurriculumUpdateOne) AppendConceptIds(v []string) *CurriculumUpdateOne {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetCompletedIds sets the "completed_ids" field.
func (_u *CurriculumUpdateOne) SetCompletedIds(v []string) *CurriculumUpdateOne {
	_u.mutation.SetCompletedIds(v)
	return _u
}

// AppendCompletedIds appends value to the "completed_ids" field.
func (_u *CurriculumUpdateOne) AppendCompletedIds(v []string) *CurriculumUpdateOne {
	_u.mutation.AppendCompletedIds(v)
	return _u
}

// ClearCompletedIds clears the value of the "completed_ids" field.
func (_u *CurriculumUpdateOne) ClearCompletedIds() *CurriculumUpdateOne {
	_u.mutation.ClearCompletedIds()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *CurriculumUpdateOne) SetCursor(v int) *CurriculumUpdateOne {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableCursor(v *int) *CurriculumUpdateOne {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *CurriculumUpdateOne) AddCursor(v int) *CurriculumUpdateOne {
	_u.mutation.AddCursor(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CurriculumUpdateOne) SetStatus(v string) *CurriculumUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableStatus(v *string) *CurriculumUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumUpdateOne) SetUpdatedAt(v time.Time) *CurriculumUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CurriculumMutation object of the builder.
func (_u *CurriculumUpdateOne) Mutation() *CurriculumMutation {
	return _u.mutation
}

// Where appends a list predicates to the CurriculumUpdate builder.
func (_u *CurriculumUpdateOne) Where(ps ...predicate.Curriculum) *CurriculumUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurriculumUpdateOne) Select(field string, fields ...string) *CurriculumUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Curriculum entity.
func (_u *CurriculumUpdateOne) Save(ctx context.Context) (*Curriculum, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumUpdateOne) SaveX(ctx context.Context) *Curriculum {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurriculumUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CurriculumUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := curriculum.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CurriculumUpdateOne) sqlSave(ctx context.Context) (_node *Curriculum, err error) {
	_spec := sqlgraph.NewUpdateSpec(curriculum.Table, curriculum.Columns, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Curriculum.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculum.FieldID)
		for _, f := range fields {
			if !curriculum.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curriculum.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(curriculum.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(curriculum.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculum.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedIds(); ok {
		_spec.SetField(curriculum.FieldCompletedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculum.FieldCompletedIds, value)
		})
	}
	if _u.mutation.CompletedIdsCleared() {
		_spec.ClearField(curriculum.FieldCompletedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(curriculum.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(curriculum.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(curriculum.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Curriculum{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
