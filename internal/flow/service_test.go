package flow

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/reflowhq/reflow/internal/curriculum"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

type fakeStepRepo struct {
	steps []store.StepData
}

func (f *fakeStepRepo) List(_ context.Context, sessionID, conceptID string) ([]store.StepData, error) {
	var out []store.StepData
	for _, s := range f.steps {
		if s.SessionID == sessionID && s.ConceptID == conceptID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStepRepo) Append(_ context.Context, step store.StepData) error {
	for _, s := range f.steps {
		if s.SessionID == step.SessionID && s.ConceptID == step.ConceptID && s.StepNumber == step.StepNumber {
			return store.ErrConflict
		}
	}
	step.CreatedAt = time.Now()
	f.steps = append(f.steps, step)
	return nil
}

func (f *fakeStepRepo) AttachResponse(_ context.Context, stepID, response, responseType string, evaluation json.RawMessage) error {
	for i := range f.steps {
		if f.steps[i].ID == stepID {
			f.steps[i].UserResponse = &response
			f.steps[i].ResponseType = responseType
			f.steps[i].Evaluation = evaluation
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeProgressRepo struct {
	rows      map[string]*store.ProgressData
	completed int
}

func progressKey(sessionID, conceptID string) string { return sessionID + "/" + conceptID }

func (f *fakeProgressRepo) Get(_ context.Context, sessionID, conceptID string) (*store.ProgressData, error) {
	p, ok := f.rows[progressKey(sessionID, conceptID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, p store.ProgressData) error {
	f.rows[progressKey(p.SessionID, p.ConceptID)] = &p
	return nil
}

func (f *fakeProgressRepo) SavePlan(_ context.Context, sessionID, conceptID string, plan json.RawMessage) error {
	p, ok := f.rows[progressKey(sessionID, conceptID)]
	if !ok {
		return store.ErrNotFound
	}
	p.Plan = plan
	return nil
}

func (f *fakeProgressRepo) SetStatus(_ context.Context, sessionID, conceptID, status string) error {
	p, ok := f.rows[progressKey(sessionID, conceptID)]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProgressRepo) CompleteConcept(_ context.Context, sessionID, conceptID string, terminal store.StepData) error {
	p, ok := f.rows[progressKey(sessionID, conceptID)]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = StatusCompleted
	f.completed++
	return nil
}

type fakeNodeRepo struct {
	store.NodeRepo
	node *store.NodeData
}

func (f *fakeNodeRepo) Get(_ context.Context, nodeID string) (*store.NodeData, error) {
	if f.node == nil || f.node.ID != nodeID {
		return nil, store.ErrNotFound
	}
	cp := *f.node
	return &cp, nil
}

func (f *fakeNodeRepo) UpdateMastery(_ context.Context, nodeID string, history json.RawMessage, currentMastery string) error {
	if f.node == nil || f.node.ID != nodeID {
		return store.ErrNotFound
	}
	f.node.MasteryHistory = history
	f.node.CurrentMastery = currentMastery
	return nil
}

type fakeCurriculumRepo struct {
	row   *store.CurriculumData
	saves int
}

func (f *fakeCurriculumRepo) Get(_ context.Context, id string) (*store.CurriculumData, error) {
	if f.row == nil || f.row.ID != id {
		return nil, store.ErrNotFound
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeCurriculumRepo) Create(_ context.Context, c store.CurriculumData) error {
	f.row = &c
	return nil
}

func (f *fakeCurriculumRepo) SaveProgress(_ context.Context, id string, completedIDs []string, cursor int, status string) error {
	if f.row == nil || f.row.ID != id {
		return store.ErrNotFound
	}
	f.row.CompletedIDs = completedIDs
	f.row.Cursor = cursor
	f.row.Status = status
	f.saves++
	return nil
}

type flowFixture struct {
	svc      *Service
	steps    *fakeStepRepo
	progress *fakeProgressRepo
	nodes    *fakeNodeRepo
	curr     *fakeCurriculumRepo
}

func newFlowFixture(t *testing.T, prog *store.ProgressData) *flowFixture {
	t.Helper()

	steps := &fakeStepRepo{}
	progress := &fakeProgressRepo{rows: map[string]*store.ProgressData{}}
	if prog != nil {
		progress.rows[progressKey(prog.SessionID, prog.ConceptID)] = prog
	}
	nodes := &fakeNodeRepo{node: &store.NodeData{ID: "node-1", CurrentMastery: "revisit"}}
	curr := &fakeCurriculumRepo{}

	log := logger.NewNop()
	svc := NewService(steps, progress, mastery.NewService(nodes), curriculum.NewSync(curr, log), log)
	return &flowFixture{svc: svc, steps: steps, progress: progress, nodes: nodes, curr: curr}
}

func planJSON(t *testing.T, plan *ConceptPlan) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal plan: %v", err)
	}
	return raw
}

func baseProgress(t *testing.T) *store.ProgressData {
	return &store.ProgressData{
		ID:        "prog-1",
		SessionID: "sess-1",
		ConceptID: "concept-1",
		LearnerID: "learner-1",
		Status:    StatusNotStarted,
		Plan:      planJSON(t, testPlan()),
		NodeID:    "node-1",
	}
}

// respond grades the concept's pending step directly through the step
// repo, standing in for the evaluation service.
func (fx *flowFixture) respond(t *testing.T, ev *Evaluation) {
	t.Helper()
	last := fx.steps.steps[len(fx.steps.steps)-1]
	var raw json.RawMessage
	if ev != nil {
		var err error
		raw, err = json.Marshal(ev)
		if err != nil {
			t.Fatalf("marshal evaluation: %v", err)
		}
	}
	if err := fx.steps.AttachResponse(context.Background(), last.ID, "an answer", "answer", raw); err != nil {
		t.Fatalf("attach response: %v", err)
	}
}

func TestAdvanceRequiresProgress(t *testing.T) {
	fx := newFlowFixture(t, nil)
	_, err := fx.svc.Advance(context.Background(), "sess-1", "concept-1")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAdvanceRequiresPlan(t *testing.T) {
	prog := baseProgress(t)
	prog.Plan = nil
	fx := newFlowFixture(t, prog)

	_, err := fx.svc.Advance(context.Background(), "sess-1", "concept-1")
	if !errors.Is(err, ErrPlanNotInitialized) {
		t.Fatalf("err = %v, want ErrPlanNotInitialized", err)
	}
}

func TestAdvanceFirstStepIsOrient(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))

	res, err := fx.svc.Advance(context.Background(), "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if res.Action != ActionStep || res.Step == nil {
		t.Fatalf("action = %s, step = %v", res.Action, res.Step)
	}
	if res.Step.Type != StepOrient || res.Step.StepNumber != 1 {
		t.Errorf("got %s number %d, want orient 1", res.Step.Type, res.Step.StepNumber)
	}

	prog, _ := fx.progress.Get(context.Background(), "sess-1", "concept-1")
	if prog.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress after first step", prog.Status)
	}
}

func TestAdvanceIdempotentWhilePending(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))
	ctx := context.Background()

	first, err := fx.svc.Advance(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	second, err := fx.svc.Advance(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if second.Step.ID != first.Step.ID {
		t.Errorf("repeat advance emitted a new step")
	}
	if len(fx.steps.steps) != 1 {
		t.Errorf("step log has %d rows, want 1", len(fx.steps.steps))
	}
}

func TestAdvanceStepNumbersAreSequential(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := fx.svc.Advance(ctx, "sess-1", "concept-1")
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if res.Step.StepNumber != i {
			t.Errorf("step %d has number %d", i, res.Step.StepNumber)
		}
		fx.respond(t, nil)
	}
}

func TestAdvanceFullConceptCompletion(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))
	fx.curr.row = &store.CurriculumData{
		ID:         "curr-1",
		LearnerID:  "learner-1",
		ConceptIDs: []string{"concept-1", "concept-2"},
		Status:     curriculum.StatusActive,
	}
	fx.progress.rows[progressKey("sess-1", "concept-1")].CurriculumID = "curr-1"

	ctx := context.Background()
	pass := &Evaluation{Outcome: OutcomeStrong, Path: PathA}

	// orient, build x2, anchor, check x2, confirm: answer everything
	// positively and drive to completion.
	var res *AdvanceResult
	var err error
	for i := 0; i < 10; i++ {
		res, err = fx.svc.Advance(ctx, "sess-1", "concept-1")
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if res.Action == ActionConceptComplete {
			break
		}
		switch res.Step.Type {
		case StepAnchor, StepCheck, StepConfirm:
			fx.respond(t, pass)
		default:
			fx.respond(t, nil)
		}
	}

	if res.Action != ActionConceptComplete {
		t.Fatalf("never completed; last action %s", res.Action)
	}

	// Sequence: orient, layer 1, layer 2, anchor, check 1, check 2,
	// confirm, completed marker via the transaction.
	if fx.progress.completed != 1 {
		t.Errorf("CompleteConcept called %d times, want 1", fx.progress.completed)
	}

	// Graded steps: anchor + 2 checks + confirm = 4, plus plan generation.
	if res.TotalSparksSpent != 5 {
		t.Errorf("sparks = %d, want 5", res.TotalSparksSpent)
	}

	// Completion folded into mastery as a session-sourced entry.
	history, err := mastery.ParseHistory(fx.nodes.node.MasteryHistory)
	if err != nil {
		t.Fatalf("parse history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].SourceType != mastery.SourceSession || history[0].State != mastery.StateSolid {
		t.Errorf("entry = %s/%s, want session/solid", history[0].SourceType, history[0].State)
	}

	// Curriculum advanced past the completed concept.
	if fx.curr.row.Cursor != 1 {
		t.Errorf("curriculum cursor = %d, want 1", fx.curr.row.Cursor)
	}
	if fx.curr.row.Status != curriculum.StatusActive {
		t.Errorf("curriculum status = %s, want active with one concept left", fx.curr.row.Status)
	}
}

func TestAdvanceForcedCompletionRecordsShaky(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))
	ctx := context.Background()
	fail := &Evaluation{Outcome: OutcomeNeedsWork, Path: PathC}

	var res *AdvanceResult
	var err error
	for i := 0; i < 12; i++ {
		res, err = fx.svc.Advance(ctx, "sess-1", "concept-1")
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if res.Action == ActionConceptComplete {
			break
		}
		switch res.Step.Type {
		case StepConfirm:
			fx.respond(t, fail)
		case StepAnchor, StepCheck:
			// Pass the earlier gates so the confirm cap is what ends it.
			fx.respond(t, &Evaluation{Outcome: OutcomeStrong, Path: PathA})
		default:
			fx.respond(t, nil)
		}
	}

	if res.Action != ActionConceptComplete {
		t.Fatalf("never completed")
	}

	history, err := mastery.ParseHistory(fx.nodes.node.MasteryHistory)
	if err != nil {
		t.Fatalf("parse history: %v", err)
	}
	if len(history) != 1 || history[0].State != mastery.StateShaky {
		t.Fatalf("history = %+v, want one shaky entry", history)
	}
}

func TestAdvanceTerminalLogReturnsSummary(t *testing.T) {
	fx := newFlowFixture(t, baseProgress(t))
	ctx := context.Background()

	terminal, err := stepToData(Step{
		ID: "s-1", SessionID: "sess-1", ConceptID: "concept-1",
		StepNumber: 1, Type: StepCompleted, Content: completedContent(),
	})
	if err != nil {
		t.Fatalf("stepToData: %v", err)
	}
	fx.steps.steps = append(fx.steps.steps, terminal)

	res, err := fx.svc.Advance(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if res.Action != ActionConceptComplete {
		t.Errorf("action = %s, want concept_complete", res.Action)
	}
	if len(fx.steps.steps) != 1 {
		t.Errorf("terminal advance wrote %d extra steps", len(fx.steps.steps)-1)
	}
	if fx.progress.completed != 0 {
		t.Errorf("terminal advance re-ran completion")
	}
}
