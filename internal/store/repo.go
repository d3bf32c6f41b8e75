package store

import (
	"context"
	"encoding/json"
	"time"
)

// StepData is one row of the append-only Flow Mode step log.
type StepData struct {
	ID           string
	SessionID    string
	ConceptID    string
	StepNumber   int
	StepType     string
	Content      json.RawMessage
	UserResponse *string
	ResponseType string
	Evaluation   json.RawMessage
	CreatedAt    time.Time
}

// ProgressData is one (session, concept) progress row, holding the plan.
type ProgressData struct {
	ID           string
	SessionID    string
	ConceptID    string
	LearnerID    string
	ConceptName  string
	Status       string
	Plan         json.RawMessage
	CurriculumID string
	NodeID       string
	UpdatedAt    time.Time
}

// NodeData is a canonical knowledge node scoped to one learner.
type NodeData struct {
	ID             string
	LearnerID      string
	CanonicalName  string
	DisplayName    string
	Definition     string
	CurrentMastery string
	MasteryHistory json.RawMessage
	SessionIDs     []string
	SessionCount   int
	TopicID        string
	TopicName      string
	SynthesisCache string
	FirstSeen      time.Time
	LastSeen       time.Time
}

// TopicData is a named cluster of knowledge nodes.
type TopicData struct {
	ID              string
	LearnerID       string
	Name            string
	ConceptCount    int
	DominantMastery string
}

// CurriculumData is an externally authored ordered concept sequence.
type CurriculumData struct {
	ID           string
	LearnerID    string
	Title        string
	ConceptIDs   []string
	CompletedIDs []string
	Cursor       int
	Status       string
}

// LLMRequestEventData captures a single generative-collaborator call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// StepRepo provides access to the per-concept step log.
type StepRepo interface {
	// List returns the full ordered log for a concept, oldest first.
	List(ctx context.Context, sessionID, conceptID string) ([]StepData, error)

	// Append inserts a new step. Returns ErrConflict if another writer
	// already claimed the same step number.
	Append(ctx context.Context, step StepData) error

	// AttachResponse sets the learner response (and its evaluation, when
	// the step was graded) on an existing step.
	AttachResponse(ctx context.Context, stepID, response, responseType string, evaluation json.RawMessage) error
}

// ProgressRepo manages (session, concept) progress rows.
type ProgressRepo interface {
	// Get returns the progress row, or ErrNotFound.
	Get(ctx context.Context, sessionID, conceptID string) (*ProgressData, error)

	// Create inserts a new progress row.
	Create(ctx context.Context, p ProgressData) error

	// SavePlan stores the generated plan on the progress row.
	SavePlan(ctx context.Context, sessionID, conceptID string, plan json.RawMessage) error

	// SetStatus updates the progress status.
	SetStatus(ctx context.Context, sessionID, conceptID, status string) error

	// CompleteConcept appends the terminal step and flips the status to
	// completed inside a single transaction, so a crash cannot leave the
	// log and the status disagreeing.
	CompleteConcept(ctx context.Context, sessionID, conceptID string, terminal StepData) error
}

// NodeRepo manages canonical knowledge nodes.
type NodeRepo interface {
	ListByLearner(ctx context.Context, learnerID string) ([]NodeData, error)

	// GetByCanonical returns the node keyed by lowercased canonical name,
	// or ErrNotFound.
	GetByCanonical(ctx context.Context, learnerID, canonicalName string) (*NodeData, error)

	// Get returns the node by id, or ErrNotFound.
	Get(ctx context.Context, nodeID string) (*NodeData, error)

	Create(ctx context.Context, n NodeData) error

	// Merge updates the mutable merge fields after a fuzzy match.
	Merge(ctx context.Context, nodeID, displayName string, sessionIDs []string, sessionCount int, lastSeen time.Time) error

	// UpdateMastery persists a recomputed history and label and clears
	// any cached synthesis derived from the old value.
	UpdateMastery(ctx context.Context, nodeID string, history json.RawMessage, currentMastery string) error

	// AssignTopic bulk-assigns cluster membership to nodes.
	AssignTopic(ctx context.Context, nodeIDs []string, topicID, topicName string) error
}

// TopicRepo manages derived concept topics.
type TopicRepo interface {
	ListByLearner(ctx context.Context, learnerID string) ([]TopicData, error)

	// GetByName returns the learner's topic with the given name, or
	// ErrNotFound.
	GetByName(ctx context.Context, learnerID, name string) (*TopicData, error)

	Create(ctx context.Context, t TopicData) error

	// UpdateStats sets the derived member count and dominant mastery.
	UpdateStats(ctx context.Context, topicID string, conceptCount int, dominantMastery string) error
}

// CurriculumRepo manages curriculum completion state.
type CurriculumRepo interface {
	// Get returns the curriculum by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*CurriculumData, error)

	Create(ctx context.Context, c CurriculumData) error

	// SaveProgress persists the completed set, cursor, and status.
	SaveProgress(ctx context.Context, id string, completedIDs []string, cursor int, status string) error
}

// EventRepo provides append access to audit events.
type EventRepo interface {
	// AppendLLMRequest records a generative-collaborator call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
