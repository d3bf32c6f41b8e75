// Code generated by ent, DO NOT EDIT.

package knowledgenode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldLearnerID, v))
}

// CanonicalName applies equality check predicate on the "canonical_name" field. It's identical to CanonicalNameEQ.
func CanonicalName(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCanonicalName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDisplayName, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDefinition, v))
}

// CurrentMastery applies equality check predicate on the "current_mastery" field. It's identical to CurrentMasteryEQ.
func CurrentMastery(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCurrentMastery, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSessionCount, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTopicID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTopicName, v))
}

// SynthesisCache applies equality check predicate on the "synthesis_cache" field. It's identical to SynthesisCacheEQ.
func SynthesisCache(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSynthesisCache, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldLastSeen, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldLearnerID, v))
}

// CanonicalNameEQ applies the EQ predicate on the "canonical_name" field.
func CanonicalNameEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalNameNEQ applies the NEQ predicate on the "canonical_name" field.
func CanonicalNameNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldCanonicalName, v))
}

// CanonicalNameIn applies the In predicate on the "canonical_name" field.
func CanonicalNameIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldCanonicalName, vs...))
}

// CanonicalNameNotIn applies the NotIn predicate on the "canonical_name" field.
func CanonicalNameNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldCanonicalName, vs...))
}

// CanonicalNameGT applies the GT predicate on the "canonical_name" field.
func CanonicalNameGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldCanonicalName, v))
}

// CanonicalNameGTE applies the GTE predicate on the "canonical_name" field.
func CanonicalNameGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldCanonicalName, v))
}

// CanonicalNameLT applies the LT predicate on the "canonical_name" field.
func CanonicalNameLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldCanonicalName, v))
}

// CanonicalNameLTE applies the LTE predicate on the "canonical_name" field.
func CanonicalNameLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldCanonicalName, v))
}

// CanonicalNameContains applies the Contains predicate on the "canonical_name" field.
func CanonicalNameContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldCanonicalName, v))
}

// CanonicalNameHasPrefix applies the HasPrefix predicate on the "canonical_name" field.
func CanonicalNameHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldCanonicalName, v))
}

// CanonicalNameHasSuffix applies the HasSuffix predicate on the "canonical_name" field.
func CanonicalNameHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldCanonicalName, v))
}

// CanonicalNameEqualFold applies the EqualFold predicate on the "canonical_name" field.
func CanonicalNameEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldCanonicalName, v))
}

// CanonicalNameContainsFold applies the ContainsFold predicate on the "canonical_name" field.
func CanonicalNameContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldCanonicalName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldDisplayName, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionIsNil applies the IsNil predicate on the "definition" field.
func DefinitionIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldDefinition))
}

// DefinitionNotNil applies the NotNil predicate on the "definition" field.
func DefinitionNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldDefinition))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldDefinition, v))
}

// CurrentMasteryEQ applies the EQ predicate on the "current_mastery" field.
func CurrentMasteryEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCurrentMastery, v))
}

// CurrentMasteryNEQ applies the NEQ predicate on the "current_mastery" field.
func CurrentMasteryNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldCurrentMastery, v))
}

// CurrentMasteryIn applies the In predicate on the "current_mastery" field.
func CurrentMasteryIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldCurrentMastery, vs...))
}

// CurrentMasteryNotIn applies the NotIn predicate on the "current_mastery" field.
func CurrentMasteryNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldCurrentMastery, vs...))
}

// CurrentMasteryGT applies the GT predicate on the "current_mastery" field.
func CurrentMasteryGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldCurrentMastery, v))
}

// CurrentMasteryGTE applies the GTE predicate on the "current_mastery" field.
func CurrentMasteryGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldCurrentMastery, v))
}

// CurrentMasteryLT applies the LT predicate on the "current_mastery" field.
func CurrentMasteryLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldCurrentMastery, v))
}

// CurrentMasteryLTE applies the LTE predicate on the "current_mastery" field.
func CurrentMasteryLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldCurrentMastery, v))
}

// CurrentMasteryContains applies the Contains predicate on the "current_mastery" field.
func CurrentMasteryContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldCurrentMastery, v))
}

// CurrentMasteryHasPrefix applies the HasPrefix predicate on the "current_mastery" field.
func CurrentMasteryHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldCurrentMastery, v))
}

// CurrentMasteryHasSuffix applies the HasSuffix predicate on the "current_mastery" field.
func CurrentMasteryHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldCurrentMastery, v))
}

// CurrentMasteryEqualFold applies the EqualFold predicate on the "current_mastery" field.
func CurrentMasteryEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldCurrentMastery, v))
}

// CurrentMasteryContainsFold applies the ContainsFold predicate on the "current_mastery" field.
func CurrentMasteryContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldCurrentMastery, v))
}

// MasteryHistoryIsNil applies the IsNil predicate on the "mastery_history" field.
func MasteryHistoryIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldMasteryHistory))
}

// MasteryHistoryNotNil applies the NotNil predicate on the "mastery_history" field.
func MasteryHistoryNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldMasteryHistory))
}

// SessionIdsIsNil applies the IsNil predicate on the "session_ids" field.
func SessionIdsIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldSessionIds))
}

// SessionIdsNotNil applies the NotNil predicate on the "session_ids" field.
func SessionIdsNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldSessionIds))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldSessionCount, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldTopicID))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldTopicID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameIsNil applies the IsNil predicate on the "topic_name" field.
func TopicNameIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldTopicName))
}

// TopicNameNotNil applies the NotNil predicate on the "topic_name" field.
func TopicNameNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldTopicName))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldTopicName, v))
}

// SynthesisCacheEQ applies the EQ predicate on the "synthesis_cache" field.
func SynthesisCacheEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSynthesisCache, v))
}

// SynthesisCacheNEQ applies the NEQ predicate on the "synthesis_cache" field.
func SynthesisCacheNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldSynthesisCache, v))
}

// SynthesisCacheIn applies the In predicate on the "synthesis_cache" field.
func SynthesisCacheIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldSynthesisCache, vs...))
}

// SynthesisCacheNotIn applies the NotIn predicate on the "synthesis_cache" field.
func SynthesisCacheNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldSynthesisCache, vs...))
}

// SynthesisCacheGT applies the GT predicate on the "synthesis_cache" field.
func SynthesisCacheGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldSynthesisCache, v))
}

// SynthesisCacheGTE applies the GTE predicate on the "synthesis_cache" field.
func SynthesisCacheGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldSynthesisCache, v))
}

// SynthesisCacheLT applies the LT predicate on the "synthesis_cache" field.
func SynthesisCacheLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldSynthesisCache, v))
}

// SynthesisCacheLTE applies the LTE predicate on the "synthesis_cache" field.
func SynthesisCacheLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldSynthesisCache, v))
}

// SynthesisCacheContains applies the Contains predicate on the "synthesis_cache" field.
func SynthesisCacheContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldSynthesisCache, v))
}

// SynthesisCacheHasPrefix applies the HasPrefix predicate on the "synthesis_cache" field.
func SynthesisCacheHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldSynthesisCache, v))
}

// SynthesisCacheHasSuffix applies the HasSuffix predicate on the "synthesis_cache" field.
func SynthesisCacheHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldSynthesisCache, v))
}

// SynthesisCacheIsNil applies the IsNil predicate on the "synthesis_cache" field.
func SynthesisCacheIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldSynthesisCache))
}

// SynthesisCacheNotNil applies the NotNil predicate on the "synthesis_cache" field.
func SynthesisCacheNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldSynthesisCache))
}

// SynthesisCacheEqualFold applies the EqualFold predicate on the "synthesis_cache" field.
func SynthesisCacheEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldSynthesisCache, v))
}

// SynthesisCacheContainsFold applies the ContainsFold predicate on the "synthesis_cache" field.
func SynthesisCacheContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldSynthesisCache, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.NotPredicates(p))
}
