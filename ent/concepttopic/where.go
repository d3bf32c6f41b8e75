// Code generated by ent, DO NOT EDIT.

package concepttopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContainsFold(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldLearnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldName, v))
}

// ConceptCount applies equality check predicate on the "concept_count" field. It's identical to ConceptCountEQ.
func ConceptCount(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldConceptCount, v))
}

// DominantMastery applies equality check predicate on the "dominant_mastery" field. It's identical to DominantMasteryEQ.
func DominantMastery(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldDominantMastery, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContainsFold(FieldLearnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContainsFold(FieldName, v))
}

// ConceptCountEQ applies the EQ predicate on the "concept_count" field.
func ConceptCountEQ(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldConceptCount, v))
}

// ConceptCountNEQ applies the NEQ predicate on the "concept_count" field.
func ConceptCountNEQ(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldConceptCount, v))
}

// ConceptCountIn applies the In predicate on the "concept_count" field.
func ConceptCountIn(vs ...int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldConceptCount, vs...))
}

// ConceptCountNotIn applies the NotIn predicate on the "concept_count" field.
func ConceptCountNotIn(vs ...int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldConceptCount, vs...))
}

// ConceptCountGT applies the GT predicate on the "concept_count" field.
func ConceptCountGT(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldConceptCount, v))
}

// ConceptCountGTE applies the GTE predicate on the "concept_count" field.
func ConceptCountGTE(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldConceptCount, v))
}

// ConceptCountLT applies the LT predicate on the "concept_count" field.
func ConceptCountLT(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldConceptCount, v))
}

// ConceptCountLTE applies the LTE predicate on the "concept_count" field.
func ConceptCountLTE(v int) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldConceptCount, v))
}

// DominantMasteryEQ applies the EQ predicate on the "dominant_mastery" field.
func DominantMasteryEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldDominantMastery, v))
}

// DominantMasteryNEQ applies the NEQ predicate on the "dominant_mastery" field.
func DominantMasteryNEQ(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldDominantMastery, v))
}

// DominantMasteryIn applies the In predicate on the "dominant_mastery" field.
func DominantMasteryIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldDominantMastery, vs...))
}

// DominantMasteryNotIn applies the NotIn predicate on the "dominant_mastery" field.
func DominantMasteryNotIn(vs ...string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldDominantMastery, vs...))
}

// DominantMasteryGT applies the GT predicate on the "dominant_mastery" field.
func DominantMasteryGT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldDominantMastery, v))
}

// DominantMasteryGTE applies the GTE predicate on the "dominant_mastery" field.
func DominantMasteryGTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldDominantMastery, v))
}

// DominantMasteryLT applies the LT predicate on the "dominant_mastery" field.
func DominantMasteryLT(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldDominantMastery, v))
}

// DominantMasteryLTE applies the LTE predicate on the "dominant_mastery" field.
func DominantMasteryLTE(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldDominantMastery, v))
}

// DominantMasteryContains applies the Contains predicate on the "dominant_mastery" field.
func DominantMasteryContains(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContains(FieldDominantMastery, v))
}

// DominantMasteryHasPrefix applies the HasPrefix predicate on the "dominant_mastery" field.
func DominantMasteryHasPrefix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasPrefix(FieldDominantMastery, v))
}

// DominantMasteryHasSuffix applies the HasSuffix predicate on the "dominant_mastery" field.
func DominantMasteryHasSuffix(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldHasSuffix(FieldDominantMastery, v))
}

// DominantMasteryEqualFold applies the EqualFold predicate on the "dominant_mastery" field.
func DominantMasteryEqualFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEqualFold(FieldDominantMastery, v))
}

// DominantMasteryContainsFold applies the ContainsFold predicate on the "dominant_mastery" field.
func DominantMasteryContainsFold(v string) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldContainsFold(FieldDominantMastery, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptTopic) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptTopic) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptTopic) predicate.ConceptTopic {
	return predicate.ConceptTopic(sql.NotPredicates(p))
}
