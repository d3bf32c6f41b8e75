// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reflowhq/reflow/ent/conceptprogress"
	"github.com/reflowhq/reflow/ent/concepttopic"
	"github.com/reflowhq/reflow/ent/curriculum"
	"github.com/reflowhq/reflow/ent/knowledgenode"
	"github.com/reflowhq/reflow/ent/llmrequestevent"
	"github.com/reflowhq/reflow/ent/schema"
	"github.com/reflowhq/reflow/ent/steprecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptprogressFields := schema.ConceptProgress{}.Fields()
	_ = conceptprogressFields
	// conceptprogressDescSessionID is the schema descriptor for session_id field.
	conceptprogressDescSessionID := conceptprogressFields[1].Descriptor()
	// conceptprogress.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	conceptprogress.SessionIDValidator = conceptprogressDescSessionID.Validators[0].(func(string) error)
	// conceptprogressDescConceptID is the schema descriptor for concept_id field.
	conceptprogressDescConceptID := conceptprogressFields[2].Descriptor()
	// conceptprogress.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	conceptprogress.ConceptIDValidator = conceptprogressDescConceptID.Validators[0].(func(string) error)
	// conceptprogressDescLearnerID is the schema descriptor for learner_id field.
	conceptprogressDescLearnerID := conceptprogressFields[3].Descriptor()
	// conceptprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	conceptprogress.LearnerIDValidator = conceptprogressDescLearnerID.Validators[0].(func(string) error)
	// conceptprogressDescConceptName is the schema descriptor for concept_name field.
	conceptprogressDescConceptName := conceptprogressFields[4].Descriptor()
	// conceptprogress.ConceptNameValidator is a validator for the "concept_name" field. It is called by the builders before save.
	conceptprogress.ConceptNameValidator = conceptprogressDescConceptName.Validators[0].(func(string) error)
	// conceptprogressDescStatus is the schema descriptor for status field.
	conceptprogressDescStatus := conceptprogressFields[5].Descriptor()
	// conceptprogress.DefaultStatus holds the default value on creation for the status field.
	conceptprogress.DefaultStatus = conceptprogressDescStatus.Default.(string)
	// conceptprogressDescUpdatedAt is the schema descriptor for updated_at field.
	conceptprogressDescUpdatedAt := conceptprogressFields[9].Descriptor()
	// conceptprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conceptprogress.DefaultUpdatedAt = conceptprogressDescUpdatedAt.Default.(func() time.Time)
	// conceptprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conceptprogress.UpdateDefaultUpdatedAt = conceptprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	concepttopicFields := schema.ConceptTopic{}.Fields()
	_ = concepttopicFields
	// concepttopicDescLearnerID is the schema descriptor for learner_id field.
	concepttopicDescLearnerID := concepttopicFields[1].Descriptor()
	// concepttopic.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	concepttopic.LearnerIDValidator = concepttopicDescLearnerID.Validators[0].(func(string) error)
	// concepttopicDescName is the schema descriptor for name field.
	concepttopicDescName := concepttopicFields[2].Descriptor()
	// concepttopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concepttopic.NameValidator = concepttopicDescName.Validators[0].(func(string) error)
	// concepttopicDescConceptCount is the schema descriptor for concept_count field.
	concepttopicDescConceptCount := concepttopicFields[3].Descriptor()
	// concepttopic.DefaultConceptCount holds the default value on creation for the concept_count field.
	concepttopic.DefaultConceptCount = concepttopicDescConceptCount.Default.(int)
	// concepttopicDescDominantMastery is the schema descriptor for dominant_mastery field.
	concepttopicDescDominantMastery := concepttopicFields[4].Descriptor()
	// concepttopic.DefaultDominantMastery holds the default value on creation for the dominant_mastery field.
	concepttopic.DefaultDominantMastery = concepttopicDescDominantMastery.Default.(string)
	// concepttopicDescCreatedAt is the schema descriptor for created_at field.
	concepttopicDescCreatedAt := concepttopicFields[5].Descriptor()
	// concepttopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	concepttopic.DefaultCreatedAt = concepttopicDescCreatedAt.Default.(func() time.Time)
	curriculumFields := schema.Curriculum{}.Fields()
	_ = curriculumFields
	// curriculumDescLearnerID is the schema descriptor for learner_id field.
	curriculumDescLearnerID := curriculumFields[1].Descriptor()
	// curriculum.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	curriculum.LearnerIDValidator = curriculumDescLearnerID.Validators[0].(func(string) error)
	// curriculumDescCursor is the schema descriptor for cursor field.
	curriculumDescCursor := curriculumFields[5].Descriptor()
	// curriculum.DefaultCursor holds the default value on creation for the cursor field.
	curriculum.DefaultCursor = curriculumDescCursor.Default.(int)
	// curriculumDescStatus is the schema descriptor for status field.
	curriculumDescStatus := curriculumFields[6].Descriptor()
	// curriculum.DefaultStatus holds the default value on creation for the status field.
	curriculum.DefaultStatus = curriculumDescStatus.Default.(string)
	// curriculumDescUpdatedAt is the schema descriptor for updated_at field.
	curriculumDescUpdatedAt := curriculumFields[7].Descriptor()
	// curriculum.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	curriculum.DefaultUpdatedAt = curriculumDescUpdatedAt.Default.(func() time.Time)
	// curriculum.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	curriculum.UpdateDefaultUpdatedAt = curriculumDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgenodeFields := schema.KnowledgeNode{}.Fields()
	_ = knowledgenodeFields
	// knowledgenodeDescLearnerID is the schema descriptor for learner_id field.
	knowledgenodeDescLearnerID := knowledgenodeFields[1].Descriptor()
	// knowledgenode.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	knowledgenode.LearnerIDValidator = knowledgenodeDescLearnerID.Validators[0].(func(string) error)
	// knowledgenodeDescCanonicalName is the schema descriptor for canonical_name field.
	knowledgenodeDescCanonicalName := knowledgenodeFields[2].Descriptor()
	// knowledgenode.CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	knowledgenode.CanonicalNameValidator = knowledgenodeDescCanonicalName.Validators[0].(func(string) error)
	// knowledgenodeDescDisplayName is the schema descriptor for display_name field.
	knowledgenodeDescDisplayName := knowledgenodeFields[3].Descriptor()
	// knowledgenode.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	knowledgenode.DisplayNameValidator = knowledgenodeDescDisplayName.Validators[0].(func(string) error)
	// knowledgenodeDescCurrentMastery is the schema descriptor for current_mastery field.
	knowledgenodeDescCurrentMastery := knowledgenodeFields[5].Descriptor()
	// knowledgenode.DefaultCurrentMastery holds the default value on creation for the current_mastery field.
	knowledgenode.DefaultCurrentMastery = knowledgenodeDescCurrentMastery.Default.(string)
	// knowledgenodeDescSessionCount is the schema descriptor for session_count field.
	knowledgenodeDescSessionCount := knowledgenodeFields[8].Descriptor()
	// knowledgenode.DefaultSessionCount holds the default value on creation for the session_count field.
	knowledgenode.DefaultSessionCount = knowledgenodeDescSessionCount.Default.(int)
	// knowledgenodeDescFirstSeen is the schema descriptor for first_seen field.
	knowledgenodeDescFirstSeen := knowledgenodeFields[12].Descriptor()
	// knowledgenode.DefaultFirstSeen holds the default value on creation for the first_seen field.
	knowledgenode.DefaultFirstSeen = knowledgenodeDescFirstSeen.Default.(func() time.Time)
	// knowledgenodeDescLastSeen is the schema descriptor for last_seen field.
	knowledgenodeDescLastSeen := knowledgenodeFields[13].Descriptor()
	// knowledgenode.DefaultLastSeen holds the default value on creation for the last_seen field.
	knowledgenode.DefaultLastSeen = knowledgenodeDescLastSeen.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	steprecordFields := schema.StepRecord{}.Fields()
	_ = steprecordFields
	// steprecordDescSessionID is the schema descriptor for session_id field.
	steprecordDescSessionID := steprecordFields[1].Descriptor()
	// steprecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	steprecord.SessionIDValidator = steprecordDescSessionID.Validators[0].(func(string) error)
	// steprecordDescConceptID is the schema descriptor for concept_id field.
	steprecordDescConceptID := steprecordFields[2].Descriptor()
	// steprecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	steprecord.ConceptIDValidator = steprecordDescConceptID.Validators[0].(func(string) error)
	// steprecordDescStepNumber is the schema descriptor for step_number field.
	steprecordDescStepNumber := steprecordFields[3].Descriptor()
	// steprecord.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	steprecord.StepNumberValidator = steprecordDescStepNumber.Validators[0].(func(int) error)
	// steprecordDescStepType is the schema descriptor for step_type field.
	steprecordDescStepType := steprecordFields[4].Descriptor()
	// steprecord.StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	steprecord.StepTypeValidator = steprecordDescStepType.Validators[0].(func(string) error)
	// steprecordDescCreatedAt is the schema descriptor for created_at field.
	steprecordDescCreatedAt := steprecordFields[9].Descriptor()
	// steprecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	steprecord.DefaultCreatedAt = steprecordDescCreatedAt.Default.(func() time.Time)
}
