// Code generated by ent, DO NOT EDIT.

package steprecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldSessionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldConceptID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldStepNumber, v))
}

// StepType applies equality check predicate on the "step_type" field. It's identical to StepTypeEQ.
func StepType(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldStepType, v))
}

// UserResponse applies equality check predicate on the "user_response" field. It's identical to UserResponseEQ.
func UserResponse(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldUserResponse, v))
}

// ResponseType applies equality check predicate on the "response_type" field. It's identical to ResponseTypeEQ.
func ResponseType(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldResponseType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldConceptID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldStepNumber, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldStepType, vs...))
}

// StepTypeGT applies the GT predicate on the "step_type" field.
func StepTypeGT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldStepType, v))
}

// StepTypeGTE applies the GTE predicate on the "step_type" field.
func StepTypeGTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldStepType, v))
}

// StepTypeLT applies the LT predicate on the "step_type" field.
func StepTypeLT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldStepType, v))
}

// StepTypeLTE applies the LTE predicate on the "step_type" field.
func StepTypeLTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldStepType, v))
}

// StepTypeContains applies the Contains predicate on the "step_type" field.
func StepTypeContains(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContains(FieldStepType, v))
}

// StepTypeHasPrefix applies the HasPrefix predicate on the "step_type" field.
func StepTypeHasPrefix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasPrefix(FieldStepType, v))
}

// StepTypeHasSuffix applies the HasSuffix predicate on the "step_type" field.
func StepTypeHasSuffix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasSuffix(FieldStepType, v))
}

// StepTypeEqualFold applies the EqualFold predicate on the "step_type" field.
func StepTypeEqualFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldStepType, v))
}

// StepTypeContainsFold applies the ContainsFold predicate on the "step_type" field.
func StepTypeContainsFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldStepType, v))
}

// UserResponseEQ applies the EQ predicate on the "user_response" field.
func UserResponseEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldUserResponse, v))
}

// UserResponseNEQ applies the NEQ predicate on the "user_response" field.
func UserResponseNEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldUserResponse, v))
}

// UserResponseIn applies the In predicate on the "user_response" field.
func UserResponseIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldUserResponse, vs...))
}

// UserResponseNotIn applies the NotIn predicate on the "user_response" field.
func UserResponseNotIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldUserResponse, vs...))
}

// UserResponseGT applies the GT predicate on the "user_response" field.
func UserResponseGT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldUserResponse, v))
}

// UserResponseGTE applies the GTE predicate on the "user_response" field.
func UserResponseGTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldUserResponse, v))
}

// UserResponseLT applies the LT predicate on the "user_response" field.
func UserResponseLT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldUserResponse, v))
}

// UserResponseLTE applies the LTE predicate on the "user_response" field.
func UserResponseLTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldUserResponse, v))
}

// UserResponseContains applies the Contains predicate on the "user_response" field.
func UserResponseContains(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContains(FieldUserResponse, v))
}

// UserResponseHasPrefix applies the HasPrefix predicate on the "user_response" field.
func UserResponseHasPrefix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasPrefix(FieldUserResponse, v))
}

// UserResponseHasSuffix applies the HasSuffix predicate on the "user_response" field.
func UserResponseHasSuffix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasSuffix(FieldUserResponse, v))
}

// UserResponseIsNil applies the IsNil predicate on the "user_response" field.
func UserResponseIsNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIsNull(FieldUserResponse))
}

// UserResponseNotNil applies the NotNil predicate on the "user_response" field.
func UserResponseNotNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotNull(FieldUserResponse))
}

// UserResponseEqualFold applies the EqualFold predicate on the "user_response" field.
func UserResponseEqualFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldUserResponse, v))
}

// UserResponseContainsFold applies the ContainsFold predicate on the "user_response" field.
func UserResponseContainsFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldUserResponse, v))
}

// ResponseTypeEQ applies the EQ predicate on the "response_type" field.
func ResponseTypeEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldResponseType, v))
}

// ResponseTypeNEQ applies the NEQ predicate on the "response_type" field.
func ResponseTypeNEQ(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldResponseType, v))
}

// ResponseTypeIn applies the In predicate on the "response_type" field.
func ResponseTypeIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldResponseType, vs...))
}

// ResponseTypeNotIn applies the NotIn predicate on the "response_type" field.
func ResponseTypeNotIn(vs ...string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldResponseType, vs...))
}

// ResponseTypeGT applies the GT predicate on the "response_type" field.
func ResponseTypeGT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldResponseType, v))
}

// ResponseTypeGTE applies the GTE predicate on the "response_type" field.
func ResponseTypeGTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldResponseType, v))
}

// ResponseTypeLT applies the LT predicate on the "response_type" field.
func ResponseTypeLT(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldResponseType, v))
}

// ResponseTypeLTE applies the LTE predicate on the "response_type" field.
func ResponseTypeLTE(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldResponseType, v))
}

// ResponseTypeContains applies the Contains predicate on the "response_type" field.
func ResponseTypeContains(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContains(FieldResponseType, v))
}

// ResponseTypeHasPrefix applies the HasPrefix predicate on the "response_type" field.
func ResponseTypeHasPrefix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasPrefix(FieldResponseType, v))
}

// ResponseTypeHasSuffix applies the HasSuffix predicate on the "response_type" field.
func ResponseTypeHasSuffix(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldHasSuffix(FieldResponseType, v))
}

// ResponseTypeIsNil applies the IsNil predicate on the "response_type" field.
func ResponseTypeIsNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIsNull(FieldResponseType))
}

// ResponseTypeNotNil applies the NotNil predicate on the "response_type" field.
func ResponseTypeNotNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotNull(FieldResponseType))
}

// ResponseTypeEqualFold applies the EqualFold predicate on the "response_type" field.
func ResponseTypeEqualFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEqualFold(FieldResponseType, v))
}

// ResponseTypeContainsFold applies the ContainsFold predicate on the "response_type" field.
func ResponseTypeContainsFold(v string) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldContainsFold(FieldResponseType, v))
}

// EvaluationIsNil applies the IsNil predicate on the "evaluation" field.
func EvaluationIsNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIsNull(FieldEvaluation))
}

// EvaluationNotNil applies the NotNil predicate on the "evaluation" field.
func EvaluationNotNil() predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotNull(FieldEvaluation))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepRecord {
	return predicate.StepRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepRecord) predicate.StepRecord {
	return predicate.StepRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepRecord) predicate.StepRecord {
	return predicate.StepRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepRecord) predicate.StepRecord {
	return predicate.StepRecord(sql.NotPredicates(p))
}
