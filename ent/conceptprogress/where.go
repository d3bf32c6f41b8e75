// Code generated by ent, DO NOT EDIT.

package conceptprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldSessionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptName applies equality check predicate on the "concept_name" field. It's identical to ConceptNameEQ.
func ConceptName(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldStatus, v))
}

// CurriculumID applies equality check predicate on the "curriculum_id" field. It's identical to CurriculumIDEQ.
func CurriculumID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldCurriculumID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldNodeID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldConceptID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptNameEQ applies the EQ predicate on the "concept_name" field.
func ConceptNameEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptName, v))
}

// ConceptNameNEQ applies the NEQ predicate on the "concept_name" field.
func ConceptNameNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldConceptName, v))
}

// ConceptNameIn applies the In predicate on the "concept_name" field.
func ConceptNameIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldConceptName, vs...))
}

// ConceptNameNotIn applies the NotIn predicate on the "concept_name" field.
func ConceptNameNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldConceptName, vs...))
}

// ConceptNameGT applies the GT predicate on the "concept_name" field.
func ConceptNameGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldConceptName, v))
}

// ConceptNameGTE applies the GTE predicate on the "concept_name" field.
func ConceptNameGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldConceptName, v))
}

// ConceptNameLT applies the LT predicate on the "concept_name" field.
func ConceptNameLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldConceptName, v))
}

// ConceptNameLTE applies the LTE predicate on the "concept_name" field.
func ConceptNameLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldConceptName, v))
}

// ConceptNameContains applies the Contains predicate on the "concept_name" field.
func ConceptNameContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldConceptName, v))
}

// ConceptNameHasPrefix applies the HasPrefix predicate on the "concept_name" field.
func ConceptNameHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldConceptName, v))
}

// ConceptNameHasSuffix applies the HasSuffix predicate on the "concept_name" field.
func ConceptNameHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldConceptName, v))
}

// ConceptNameEqualFold applies the EqualFold predicate on the "concept_name" field.
func ConceptNameEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldConceptName, v))
}

// ConceptNameContainsFold applies the ContainsFold predicate on the "concept_name" field.
func ConceptNameContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldConceptName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldStatus, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotNull(FieldPlan))
}

// CurriculumIDEQ applies the EQ predicate on the "curriculum_id" field.
func CurriculumIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldCurriculumID, v))
}

// CurriculumIDNEQ applies the NEQ predicate on the "curriculum_id" field.
func CurriculumIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldCurriculumID, v))
}

// CurriculumIDIn applies the In predicate on the "curriculum_id" field.
func CurriculumIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldCurriculumID, vs...))
}

// CurriculumIDNotIn applies the NotIn predicate on the "curriculum_id" field.
func CurriculumIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldCurriculumID, vs...))
}

// CurriculumIDGT applies the GT predicate on the "curriculum_id" field.
func CurriculumIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldCurriculumID, v))
}

// CurriculumIDGTE applies the GTE predicate on the "curriculum_id" field.
func CurriculumIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldCurriculumID, v))
}

// CurriculumIDLT applies the LT predicate on the "curriculum_id" field.
func CurriculumIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldCurriculumID, v))
}

// CurriculumIDLTE applies the LTE predicate on the "curriculum_id" field.
func CurriculumIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldCurriculumID, v))
}

// CurriculumIDContains applies the Contains predicate on the "curriculum_id" field.
func CurriculumIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldCurriculumID, v))
}

// CurriculumIDHasPrefix applies the HasPrefix predicate on the "curriculum_id" field.
func CurriculumIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldCurriculumID, v))
}

// CurriculumIDHasSuffix applies the HasSuffix predicate on the "curriculum_id" field.
func CurriculumIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldCurriculumID, v))
}

// CurriculumIDIsNil applies the IsNil predicate on the "curriculum_id" field.
func CurriculumIDIsNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIsNull(FieldCurriculumID))
}

// CurriculumIDNotNil applies the NotNil predicate on the "curriculum_id" field.
func CurriculumIDNotNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotNull(FieldCurriculumID))
}

// CurriculumIDEqualFold applies the EqualFold predicate on the "curriculum_id" field.
func CurriculumIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldCurriculumID, v))
}

// CurriculumIDContainsFold applies the ContainsFold predicate on the "curriculum_id" field.
func CurriculumIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldCurriculumID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDIsNil applies the IsNil predicate on the "node_id" field.
func NodeIDIsNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIsNull(FieldNodeID))
}

// NodeIDNotNil applies the NotNil predicate on the "node_id" field.
func NodeIDNotNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotNull(FieldNodeID))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldNodeID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.NotPredicates(p))
}
