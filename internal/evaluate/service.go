package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/store"
)

// Response types recorded on the step log.
const (
	ResponseAnswer          = "answer"
	ResponseAcknowledgement = "acknowledgement"
)

const evalSystemPrompt = `You grade a learner's answer to one step of a micro-lesson. Be encouraging but honest: a vague answer is needs_work, not strong. Feedback speaks directly to the learner in second person. When the answer has a specific fixable gap, write nextReinforceContent as a short re-explanation aimed at exactly that gap.`

// Service grades learner responses and attaches them to the step log.
type Service struct {
	llm      llm.Provider
	steps    store.StepRepo
	progress store.ProgressRepo
	log      *logger.Logger
}

// NewService creates the evaluation service.
func NewService(provider llm.Provider, steps store.StepRepo, progress store.ProgressRepo, log *logger.Logger) *Service {
	return &Service{
		llm:      provider,
		steps:    steps,
		progress: progress,
		log:      log,
	}
}

// SubmitResult is the recorded response and, for graded steps, its
// evaluation.
type SubmitResult struct {
	Step       flow.Step
	Evaluation *flow.Evaluation
}

// Submit records the learner's response against the concept's pending
// step. Question steps (anchor, check, confirm) are graded by the
// evaluation collaborator; exposition steps (orient, build_layer,
// reinforce) take the response as a plain acknowledgement.
//
// Returns flow.ErrNoPendingStep when every logged step already has a
// response.
func (s *Service) Submit(ctx context.Context, sessionID, conceptID, response string) (*SubmitResult, error) {
	rows, err := s.steps.List(ctx, sessionID, conceptID)
	if err != nil {
		return nil, err
	}
	steps, err := flow.StepsFromData(rows)
	if err != nil {
		return nil, err
	}

	if len(steps) == 0 {
		return nil, flow.ErrNoPendingStep
	}
	pending := steps[len(steps)-1]
	if !pending.Pending() {
		return nil, flow.ErrNoPendingStep
	}

	if !graded(pending.Type) {
		if err := s.steps.AttachResponse(ctx, pending.ID, response, ResponseAcknowledgement, nil); err != nil {
			return nil, err
		}
		pending.UserResponse = &response
		pending.ResponseType = ResponseAcknowledgement
		return &SubmitResult{Step: pending}, nil
	}

	ev, raw, err := s.grade(ctx, sessionID, conceptID, pending, response)
	if err != nil {
		return nil, err
	}
	if err := s.steps.AttachResponse(ctx, pending.ID, response, ResponseAnswer, raw); err != nil {
		return nil, err
	}

	pending.UserResponse = &response
	pending.ResponseType = ResponseAnswer
	pending.Evaluation = ev
	return &SubmitResult{Step: pending, Evaluation: ev}, nil
}

// graded reports whether a step type's response goes through the grading
// collaborator. Anchor responses count: whether the hook landed drives
// the alternative-anchor branch.
func graded(t flow.StepType) bool {
	switch t {
	case flow.StepAnchor, flow.StepCheck, flow.StepConfirm:
		return true
	default:
		return false
	}
}

func (s *Service) grade(ctx context.Context, sessionID, conceptID string, step flow.Step, response string) (*flow.Evaluation, json.RawMessage, error) {
	conceptName := conceptID
	if prog, err := s.progress.Get(ctx, sessionID, conceptID); err == nil && prog.ConceptName != "" {
		conceptName = prog.ConceptName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", conceptName)
	fmt.Fprintf(&b, "Step type: %s\n", step.Type)
	if step.Type == flow.StepAnchor {
		fmt.Fprintf(&b, "Anchor presented: %s\n", step.Content.Text)
		b.WriteString("Judge whether the anchor landed for the learner. A response showing the hook resonated is strong; confusion or indifference is needs_work.\n")
	} else {
		fmt.Fprintf(&b, "Question: %s\n", step.Content.Text)
	}
	if step.Type == flow.StepConfirm {
		b.WriteString("This is the final confirmation: include masterySignal.\n")
	}
	fmt.Fprintf(&b, "Learner's response: %s\n", response)

	resp, err := s.llm.Generate(llm.WithPurpose(ctx, "evaluation"), llm.Request{
		System:    evalSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    evalSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("grade %s step %d: %w", step.Type, step.StepNumber, err)
	}

	var ev flow.Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return nil, nil, fmt.Errorf("decode evaluation: %w", err)
	}
	return &ev, resp.Content, nil
}
