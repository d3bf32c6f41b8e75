// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflowhq/reflow/ent/predicate"
	"github.com/reflowhq/reflow/ent/steprecord"
)

// StepRecordUpdate is the builder for updating StepRecord entities.
type StepRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StepRecordMutation
}

// Where appends a list predicates to the StepRecordUpdate builder.
func (_u *StepRecordUpdate) Where(ps ...predicate.StepRecord) *StepRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *StepRecordUpdate) SetContent(v json.RawMessage) *StepRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *StepRecordUpdate) AppendContent(v json.RawMessage) *StepRecordUpdate {
	_u.mutation.AppendContent(v)
	return _u
}

// SetUserResponse sets the "user_response" field.
func (_u *StepRecordUpdate) SetUserResponse(v string) *StepRecordUpdate {
	_u.mutation.SetUserResponse(v)
	return _u
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_u *StepRecordUpdate) SetNillableUserResponse(v *string) *StepRecordUpdate {
	if v != nil {
		_u.SetUserResponse(*v)
	}
	return _u
}

// ClearUserResponse clears the value of the "user_response" field.
func (_u *StepRecordUpdate) ClearUserResponse() *StepRecordUpdate {
	_u.mutation.ClearUserResponse()
	return _u
}

// SetResponseType sets the "response_type" field.
func (_u *StepRecordUpdate) SetResponseType(v string) *StepRecordUpdate {
	_u.mutation.SetResponseType(v)
	return _u
}

// SetNillableResponseType sets the "response_type" field if the given value is not nil.
func (_u *StepRecordUpdate) SetNillableResponseType(v *string) *StepRecordUpdate {
	if v != nil {
		_u.SetResponseType(*v)
	}
	return _u
}

// ClearResponseType clears the value of the "response_type" field.
func (_u *StepRecordUpdate) ClearResponseType() *StepRecordUpdate {
	_u.mutation.ClearResponseType()
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *StepRecordUpdate) SetEvaluation(v json.RawMessage) *StepRecordUpdate {
	_u.mutation.SetEvaluation(v)
	return _u
}

// AppendEvaluation appends value to the "evaluation" field.
func (_u *StepRecordUpdate) AppendEvaluation(v json.RawMessage) *StepRecordUpdate {
	_u.mutation.AppendEvaluation(v)
	return _u
}

// ClearEvaluation clears the value of the "evaluation" field.
func (_u *StepRecordUpdate) ClearEvaluation() *StepRecordUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// Mutation returns the StepRecordMutation object of the builder.
func (_u *StepRecordUpdate) Mutation() *StepRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StepRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(steprecord.Table, steprecord.Columns, sqlgraph.NewFieldSpec(steprecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(steprecord.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steprecord.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.UserResponse(); ok {
		_spec.SetField(steprecord.FieldUserResponse, field.TypeString, value)
	}
	if _u.mutation.UserResponseCleared() {
		_spec.ClearField(steprecord.FieldUserResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseType(); ok {
		_spec.SetField(steprecord.FieldResponseType, field.TypeString, value)
	}
	if _u.mutation.ResponseTypeCleared() {
		_spec.ClearField(steprecord.FieldResponseType, field.TypeString)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(steprecord.FieldEvaluation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steprecord.FieldEvaluation, value)
		})
	}
	if _u.mutation.EvaluationCleared() {
		_spec.ClearField(steprecord.FieldEvaluation, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steprecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepRecordUpdateOne is the builder for updating a single StepRecord entity.
type StepRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepRecordMutation
}

// SetContent sets the "content" field.
func (_u *StepRecordUpdateOne) SetContent(v json.RawMessage) *StepRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *StepRecordUpdateOne) AppendContent(v json.RawMessage) *StepRecordUpdateOne {
	_u.mutation.AppendContent(v)
	return _u
}

// SetUserResponse sets the "user_response" field.
func (_u *StepRecordUpdateOne) SetUserResponse(v string) *StepRecordUpdateOne {
	_u.mutation.SetUserResponse(v)
	return _u
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_u *StepRecordUpdateOne) SetNillableUserResponse(v *string) *StepRecordUpdateOne {
	if v != nil {
		_u.SetUserResponse(*v)
	}
	return _u
}

// ClearUserResponse clears the value of the "user_response" field.
func (_u *StepRecordUpdateOne) ClearUserResponse() *StepRecordUpdateOne {
	_u.mutation.ClearUserResponse()
	return _u
}

// SetResponseType sets the "response_type" field.
func (_u *StepRecordUpdateOne) SetResponseType(v string) *StepRecordUpdateOne {
	_u.mutation.SetResponseType(v)
	return _u
}

// SetNillableResponseType sets the "response_type" field if the given value is not nil.
func (_u *StepRecordUpdateOne) SetNillableResponseType(v *string) *StepRecordUpdateOne {
	if v != nil {
		_u.SetResponseType(*v)
	}
	return _u
}

// ClearResponseType clears the value of the "response_type" field.
func (_u *StepRecordUpdateOne) ClearResponseType() *StepRecordUpdateOne {
	_u.mutation.ClearResponseType()
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *StepRecordUpdateOne) SetEvaluation(v json.RawMessage) *StepRecordUpdateOne {
	_u.mutation.SetEvaluation(v)
	return _u
}

// AppendEvaluation appends value to the "evaluation" field.
func (_u *StepRecordUpdateOne) AppendEvaluation(v json.RawMessage) *StepRecordUpdateOne {
	_u.mutation.AppendEvaluation(v)
	return _u
}

// ClearEvaluation clears the value of the "evaluation" field.
func (_u *StepRecordUpdateOne) ClearEvaluation() *StepRecordUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// Mutation returns the StepRecordMutation object of the builder.
func (_u *StepRecordUpdateOne) Mutation() *StepRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepRecordUpdate builder.
func (_u *StepRecordUpdateOne) Where(ps ...predicate.StepRecord) *StepRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepRecordUpdateOne) Select(field string, fields ...string) *StepRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepRecord entity.
func (_u *StepRecordUpdateOne) Save(ctx context.Context) (*StepRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepRecordUpdateOne) SaveX(ctx context.Context) *StepRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StepRecordUpdateOne) sqlSave(ctx context.Context) (_node *StepRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(steprecord.Table, steprecord.Columns, sqlgraph.NewFieldSpec(steprecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, steprecord.FieldID)
		for _, f := range fields {
			if !steprecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != steprecord.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(steprecord.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steprecord.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.UserResponse(); ok {
		_spec.SetField(steprecord.FieldUserResponse, field.TypeString, value)
	}
	if _u.mutation.UserResponseCleared() {
		_spec.ClearField(steprecord.FieldUserResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseType(); ok {
		_spec.SetField(steprecord.FieldResponseType, field.TypeString, value)
	}
	if _u.mutation.ResponseTypeCleared() {
		_spec.ClearField(steprecord.FieldResponseType, field.TypeString)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(steprecord.FieldEvaluation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, steprecord.FieldEvaluation, value)
		})
	}
	if _u.mutation.EvaluationCleared() {
		_spec.ClearField(steprecord.FieldEvaluation, field.TypeJSON)
	}
	_node = &StepRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steprecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
