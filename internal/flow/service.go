package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflowhq/reflow/internal/curriculum"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

// Actions reported by an advance call.
const (
	ActionStep            = "step"
	ActionConceptComplete = "concept_complete"
)

// Progress status values.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// AdvanceResult is the outcome of one advance call.
type AdvanceResult struct {
	Action string

	// Step is the newly emitted or resumed step. Nil on completion.
	Step *Step

	// StepHistory is the full ordered log after this call.
	StepHistory []Step

	// TotalSparksSpent is reported on completion: one spark per graded
	// interaction plus one for plan generation.
	TotalSparksSpent int
}

// Service drives Flow Mode: it loads the plan and step log, runs the
// sequencer, persists its decision, and fans completion out to mastery
// history and curriculum progress.
type Service struct {
	steps      store.StepRepo
	progress   store.ProgressRepo
	mastery    *mastery.Service
	curriculum *curriculum.Sync
	log        *logger.Logger
}

// NewService creates the Flow Mode service.
func NewService(steps store.StepRepo, progress store.ProgressRepo, masterySvc *mastery.Service, curriculumSync *curriculum.Sync, log *logger.Logger) *Service {
	return &Service{
		steps:      steps,
		progress:   progress,
		mastery:    masterySvc,
		curriculum: curriculumSync,
		log:        log,
	}
}

// Advance moves a concept forward by exactly one step.
//
// Repeated calls without a new response are idempotent: a pending step is
// returned unchanged and nothing is written. One advance persists at most
// one new step; concurrent racers on the same concept lose the
// step-number unique constraint and get store.ErrConflict.
func (s *Service) Advance(ctx context.Context, sessionID, conceptID string) (*AdvanceResult, error) {
	prog, err := s.progress.Get(ctx, sessionID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("session %s concept %s: %w", sessionID, conceptID, err)
	}
	if len(prog.Plan) == 0 {
		return nil, ErrPlanNotInitialized
	}

	plan, err := ParsePlan(prog.Plan)
	if err != nil {
		return nil, fmt.Errorf("session %s concept %s: %w", sessionID, conceptID, err)
	}

	rows, err := s.steps.List(ctx, sessionID, conceptID)
	if err != nil {
		return nil, err
	}
	log, err := StepsFromData(rows)
	if err != nil {
		return nil, err
	}

	// Idempotent resume: the last step is still waiting on a response.
	if len(log) > 0 {
		if last := log[len(log)-1]; last.Pending() {
			return &AdvanceResult{
				Action:      ActionStep,
				Step:        &last,
				StepHistory: log,
			}, nil
		}
	}

	decision, err := Next(plan, log)
	if err != nil {
		return nil, err
	}

	if decision.Terminal {
		return &AdvanceResult{
			Action:           ActionConceptComplete,
			StepHistory:      log,
			TotalSparksSpent: sparksSpent(log),
		}, nil
	}

	next := Step{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		ConceptID:  conceptID,
		StepNumber: len(log) + 1,
		Type:       decision.StepType,
		Content:    decision.Content,
	}

	if decision.StepType == StepCompleted {
		return s.complete(ctx, prog, log, next, decision)
	}

	data, err := stepToData(next)
	if err != nil {
		return nil, err
	}
	if err := s.steps.Append(ctx, data); err != nil {
		return nil, err
	}

	if prog.Status == StatusNotStarted {
		if err := s.progress.SetStatus(ctx, sessionID, conceptID, StatusInProgress); err != nil {
			return nil, err
		}
	}

	return &AdvanceResult{
		Action:      ActionStep,
		Step:        &next,
		StepHistory: append(log, next),
	}, nil
}

// complete writes the terminal marker and the progress flip in one
// transaction, then folds the outcome into mastery history and notifies
// curriculum sync. The fan-out writes are not rolled back on failure; the
// idempotent terminal branch makes retries safe.
func (s *Service) complete(ctx context.Context, prog *store.ProgressData, log []Step, terminal Step, decision Decision) (*AdvanceResult, error) {
	if decision.Fallback {
		s.log.Warn("flow sequencer fallback: unexpected state completed",
			"session_id", prog.SessionID,
			"concept_id", prog.ConceptID,
			"log_length", len(log),
		)
	}

	data, err := stepToData(terminal)
	if err != nil {
		return nil, err
	}
	if err := s.progress.CompleteConcept(ctx, prog.SessionID, prog.ConceptID, data); err != nil {
		return nil, err
	}

	if prog.NodeID != "" {
		entry := mastery.Entry{
			Date:       time.Now().UTC(),
			State:      completionState(log, decision.ForceCompleted),
			SourceType: mastery.SourceSession,
			SourceID:   prog.SessionID,
		}
		if _, err := s.mastery.Record(ctx, prog.NodeID, entry); err != nil {
			return nil, fmt.Errorf("fold completion into mastery: %w", err)
		}
	}

	if prog.CurriculumID != "" {
		if err := s.curriculum.OnConceptComplete(ctx, prog.CurriculumID, prog.ConceptID); err != nil {
			return nil, fmt.Errorf("notify curriculum: %w", err)
		}
	}

	history := append(log, terminal)
	return &AdvanceResult{
		Action:           ActionConceptComplete,
		StepHistory:      history,
		TotalSparksSpent: sparksSpent(history),
	}, nil
}

// completionState derives the mastery entry for a finished concept from
// the final confirm evaluation.
func completionState(log []Step, forced bool) mastery.State {
	if forced {
		return mastery.StateShaky
	}
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Type != StepConfirm || log[i].Evaluation == nil {
			continue
		}
		ev := log[i].Evaluation
		if ev.MasterySignal.Valid() {
			return ev.MasterySignal
		}
		if ev.Passed() {
			return mastery.StateSolid
		}
		return mastery.StateDeveloping
	}
	return mastery.StateDeveloping
}

// sparksSpent counts the concept's graded interactions plus the plan
// generation call.
func sparksSpent(log []Step) int {
	n := 1
	for _, s := range log {
		if s.Evaluation != nil {
			n++
		}
	}
	return n
}
