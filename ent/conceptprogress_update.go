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
	"github.com/reflowhq/reflow/ent/conceptprogress"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ConceptProgressUpdate is the builder for updating ConceptProgress entities.
type ConceptProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptProgressMutation
}

// Where appends a list predicates to the ConceptProgressUpdate builder.
func (_u *ConceptProgressUpdate) Where(ps ...predicate.ConceptProgress) *ConceptProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *ConceptProgressUpdate) SetConceptName(v string) *ConceptProgressUpdate {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableConceptName(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConceptProgressUpdate) SetStatus(v string) *ConceptProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableStatus(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ConceptProgressUpdate) SetPlan(v json.RawMessage) *ConceptProgressUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *ConceptProgressUpdate) AppendPlan(v json.RawMessage) *ConceptProgressUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *ConceptProgressUpdate) ClearPlan() *ConceptProgressUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *ConceptProgressUpdate) SetCurriculumID(v string) *ConceptProgressUpdate {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableCurriculumID(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// ClearCurriculumID clears the value of the "curriculum_id" field.
func (_u *ConceptProgressUpdate) ClearCurriculumID() *ConceptProgressUpdate {
	_u.mutation.ClearCurriculumID()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ConceptProgressUpdate) SetNodeID(v string) *ConceptProgressUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableNodeID(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *ConceptProgressUpdate) ClearNodeID() *ConceptProgressUpdate {
	_u.mutation.ClearNodeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConceptProgressUpdate) SetUpdatedAt(v time.Time) *ConceptProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_u *ConceptProgressUpdate) Mutation() *ConceptProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConceptProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conceptprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptProgressUpdate) check() error {
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := conceptprogress.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptprogress.Table, conceptprogress.Columns, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(conceptprogress.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conceptprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(conceptprogress.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptprogress.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(conceptprogress.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(conceptprogress.FieldCurriculumID, field.TypeString, value)
	}
	if _u.mutation.CurriculumIDCleared() {
		_spec.ClearField(conceptprogress.FieldCurriculumID, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(conceptprogress.FieldNodeID, field.TypeString, value)
	}
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(conceptprogress.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conceptprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptProgressUpdateOne is the builder for updating a single ConceptProgress entity.
type ConceptProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptProgressMutation
}

// SetConceptName sets the "concept_name" field.
func (_u *ConceptProgressUpdateOne) SetConceptName(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableConceptName(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConceptProgressUpdateOne) SetStatus(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableStatus(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ConceptProgressUpdateOne) SetPlan(v json.RawMessage) *ConceptProgressUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *ConceptProgressUpdateOne) AppendPlan(v json.RawMessage) *ConceptProgressUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *ConceptProgressUpdateOne) ClearPlan() *ConceptProgressUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurriculumID sets the "curriculum_id" field.
func (_u *ConceptProgressUpdateOne) SetCurriculumID(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetCurriculumID(v)
	return _u
}

// SetNillableCurriculumID sets the "curriculum_id" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableCurriculumID(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetCurriculumID(*v)
	}
	return _u
}

// ClearCurriculumID clears the value of the "curriculum_id" field.
func (_u *ConceptProgressUpdateOne) ClearCurriculumID() *ConceptProgressUpdateOne {
	_u.mutation.ClearCurriculumID()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ConceptProgressUpdateOne) SetNodeID(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableNodeID(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *ConceptProgressUpdateOne) ClearNodeID() *ConceptProgressUpdateOne {
	_u.mutation.ClearNodeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConceptProgressUpdateOne) SetUpdatedAt(v time.Time) *ConceptProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_u *ConceptProgressUpdateOne) Mutation() *ConceptProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptProgressUpdate builder.
func (_u *ConceptProgressUpdateOne) Where(ps ...predicate.ConceptProgress) *ConceptProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptProgressUpdateOne) Select(field string, fields ...string) *ConceptProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptProgress entity.
func (_u *ConceptProgressUpdateOne) Save(ctx context.Context) (*ConceptProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptProgressUpdateOne) SaveX(ctx context.Context) *ConceptProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConceptProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conceptprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptProgressUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := conceptprogress.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptProgressUpdateOne) sqlSave(ctx context.Context) (_node *ConceptProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptprogress.Table, conceptprogress.Columns, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptprogress.FieldID)
		for _, f := range fields {
			if !conceptprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptprogress.FieldID {
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
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(conceptprogress.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conceptprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(conceptprogress.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptprogress.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(conceptprogress.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurriculumID(); ok {
		_spec.SetField(conceptprogress.FieldCurriculumID, field.TypeString, value)
	}
	if _u.mutation.CurriculumIDCleared() {
		_spec.ClearField(conceptprogress.FieldCurriculumID, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(conceptprogress.FieldNodeID, field.TypeString, value)
	}
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(conceptprogress.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conceptprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConceptProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
