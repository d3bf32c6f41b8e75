package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/registry"
	"github.com/reflowhq/reflow/internal/store"
)

const planSystemPrompt = `You are a learning designer. Produce a tight micro-lesson plan for teaching exactly one concept to an adult learner.

Rules:
- Orient in at most two sentences: why this matters, no fluff.
- 1 to 3 build layers, each self-contained, ordered mechanism -> example -> connection.
- The anchor is a single memorable hook. If no genuinely good anchor exists, set form to "skip" rather than forcing a weak one.
- 1 to 3 checks that probe understanding, not recall of your own wording.
- The confirm question asks the learner to demonstrate the concept end to end.`

// Service generates concept plans and initializes Flow Mode progress rows.
type Service struct {
	llm      llm.Provider
	progress store.ProgressRepo
	registry *registry.Service
	log      *logger.Logger
}

// NewService creates the planner service.
func NewService(provider llm.Provider, progress store.ProgressRepo, reg *registry.Service, log *logger.Logger) *Service {
	return &Service{
		llm:      provider,
		progress: progress,
		registry: reg,
		log:      log,
	}
}

// InitRequest describes one concept to prepare for Flow Mode.
type InitRequest struct {
	SessionID    string
	ConceptID    string
	LearnerID    string
	ConceptName  string
	Definition   string
	CurriculumID string
}

// InitResult reports the prepared plan and the registry node backing it.
type InitResult struct {
	Plan   *flow.ConceptPlan
	NodeID string

	// Reused is true when a plan already existed for this (session,
	// concept) and no new generation happened.
	Reused bool
}

// InitPlan registers the concept in the learner's knowledge graph,
// generates the micro-lesson plan, and persists both on the progress row.
//
// Calling it again for the same (session, concept) returns the existing
// plan without spending another generation. Plans are immutable for the
// life of the session.
func (s *Service) InitPlan(ctx context.Context, req InitRequest) (*InitResult, error) {
	if req.ConceptName == "" {
		return nil, errors.New("concept name is required")
	}

	prog, err := s.progress.Get(ctx, req.SessionID, req.ConceptID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if prog != nil && len(prog.Plan) > 0 {
		plan, err := flow.ParsePlan(prog.Plan)
		if err != nil {
			return nil, err
		}
		return &InitResult{Plan: plan, NodeID: prog.NodeID, Reused: true}, nil
	}

	resolved, err := s.registry.Resolve(ctx, req.LearnerID, req.ConceptName, req.Definition, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve concept %q: %w", req.ConceptName, err)
	}

	if prog == nil {
		prog = &store.ProgressData{
			ID:           uuid.NewString(),
			SessionID:    req.SessionID,
			ConceptID:    req.ConceptID,
			LearnerID:    req.LearnerID,
			ConceptName:  req.ConceptName,
			Status:       flow.StatusNotStarted,
			CurriculumID: req.CurriculumID,
			NodeID:       resolved.Node.ID,
		}
		if err := s.progress.Create(ctx, *prog); err != nil {
			return nil, fmt.Errorf("create progress row: %w", err)
		}
	}

	plan, raw, err := s.GeneratePlan(ctx, req.ConceptName, req.Definition)
	if err != nil {
		return nil, err
	}

	if err := s.progress.SavePlan(ctx, req.SessionID, req.ConceptID, raw); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	s.log.Info("initialized concept plan",
		"session_id", req.SessionID,
		"concept_id", req.ConceptID,
		"node_id", resolved.Node.ID,
		"layers", len(plan.Build.Layers),
		"checks", len(plan.Checks),
	)
	return &InitResult{Plan: plan, NodeID: resolved.Node.ID}, nil
}

// GeneratePlan asks the provider for a micro-lesson plan. It returns both
// the decoded plan and the raw JSON for persistence.
func (s *Service) GeneratePlan(ctx context.Context, conceptName, definition string) (*flow.ConceptPlan, json.RawMessage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", conceptName)
	if definition != "" {
		fmt.Fprintf(&b, "Working definition from the learner's session: %s\n", definition)
	}
	b.WriteString("Generate the lesson plan.")

	resp, err := s.llm.Generate(llm.WithPurpose(ctx, "plan-generation"), llm.Request{
		System:    planSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    planSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("generate plan for %q: %w", conceptName, err)
	}

	plan, err := flow.ParsePlan(resp.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("plan for %q: %w", conceptName, err)
	}
	return plan, resp.Content, nil
}
