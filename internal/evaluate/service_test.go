package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/logger"
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
	prog *store.ProgressData
}

func (f *fakeProgressRepo) Get(_ context.Context, sessionID, conceptID string) (*store.ProgressData, error) {
	if f.prog == nil {
		return nil, store.ErrNotFound
	}
	cp := *f.prog
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, p store.ProgressData) error       { return nil }
func (f *fakeProgressRepo) SavePlan(_ context.Context, _, _ string, _ json.RawMessage) error {
	return nil
}
func (f *fakeProgressRepo) SetStatus(_ context.Context, _, _, _ string) error { return nil }
func (f *fakeProgressRepo) CompleteConcept(_ context.Context, _, _ string, _ store.StepData) error {
	return nil
}

func pendingStep(t *testing.T, stepType flow.StepType, text string) store.StepData {
	t.Helper()
	content, err := json.Marshal(flow.StepContent{Text: text})
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	return store.StepData{
		ID:         "step-1",
		SessionID:  "sess-1",
		ConceptID:  "concept-1",
		StepNumber: 1,
		StepType:   string(stepType),
		Content:    content,
	}
}

func evalJSON(t *testing.T, ev flow.Evaluation) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal evaluation: %v", err)
	}
	return raw
}

func newTestService(mock *llm.MockProvider, steps *fakeStepRepo) *Service {
	progress := &fakeProgressRepo{prog: &store.ProgressData{
		SessionID:   "sess-1",
		ConceptID:   "concept-1",
		ConceptName: "Chain Rule",
	}}
	return NewService(mock, steps, progress, logger.NewNop())
}

func TestSubmitNoSteps(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), &fakeStepRepo{})
	_, err := svc.Submit(context.Background(), "sess-1", "concept-1", "hello")
	if !errors.Is(err, flow.ErrNoPendingStep) {
		t.Fatalf("err = %v, want ErrNoPendingStep", err)
	}
}

func TestSubmitAlreadyAnswered(t *testing.T) {
	steps := &fakeStepRepo{}
	step := pendingStep(t, flow.StepCheck, "q1")
	resp := "earlier answer"
	step.UserResponse = &resp
	steps.steps = append(steps.steps, step)

	svc := newTestService(llm.NewMockProvider(), steps)
	_, err := svc.Submit(context.Background(), "sess-1", "concept-1", "another answer")
	if !errors.Is(err, flow.ErrNoPendingStep) {
		t.Fatalf("err = %v, want ErrNoPendingStep", err)
	}
}

func TestSubmitAcknowledgementSkipsGrading(t *testing.T) {
	for _, stepType := range []flow.StepType{flow.StepOrient, flow.StepBuildLayer, flow.StepReinforce} {
		mock := llm.NewMockProvider()
		steps := &fakeStepRepo{steps: []store.StepData{pendingStep(t, stepType, "some text")}}
		svc := newTestService(mock, steps)

		res, err := svc.Submit(context.Background(), "sess-1", "concept-1", "got it")
		if err != nil {
			t.Fatalf("%s: Submit: %v", stepType, err)
		}
		if mock.CallCount() != 0 {
			t.Errorf("%s: acknowledgement hit the LLM", stepType)
		}
		if res.Evaluation != nil {
			t.Errorf("%s: acknowledgement carries an evaluation", stepType)
		}
		if steps.steps[0].ResponseType != ResponseAcknowledgement {
			t.Errorf("%s: response type = %q", stepType, steps.steps[0].ResponseType)
		}
	}
}

func TestSubmitGradedStep(t *testing.T) {
	ev := flow.Evaluation{
		Outcome:      flow.OutcomeStrong,
		Path:         flow.PathA,
		FeedbackText: "Nailed it.",
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: evalJSON(t, ev)})
	steps := &fakeStepRepo{steps: []store.StepData{pendingStep(t, flow.StepCheck, "What is the inner derivative?")}}
	svc := newTestService(mock, steps)

	res, err := svc.Submit(context.Background(), "sess-1", "concept-1", "it multiplies the outer one")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Evaluation == nil || res.Evaluation.Outcome != flow.OutcomeStrong {
		t.Fatalf("evaluation = %+v", res.Evaluation)
	}
	if steps.steps[0].ResponseType != ResponseAnswer {
		t.Errorf("response type = %q, want answer", steps.steps[0].ResponseType)
	}
	if len(steps.steps[0].Evaluation) == 0 {
		t.Errorf("evaluation not persisted on the step")
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}

	// The grading prompt carries the question and the schema.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "response-evaluation" {
		t.Errorf("schema = %+v, want response-evaluation", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
}

func TestSubmitConfirmRequestsMasterySignal(t *testing.T) {
	ev := flow.Evaluation{
		Outcome:       flow.OutcomeStrong,
		Path:          flow.PathA,
		MasterySignal: "solid",
		FeedbackText:  "Complete walkthrough.",
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: evalJSON(t, ev)})
	steps := &fakeStepRepo{steps: []store.StepData{pendingStep(t, flow.StepConfirm, "Walk through it end to end.")}}
	svc := newTestService(mock, steps)

	res, err := svc.Submit(context.Background(), "sess-1", "concept-1", "full walkthrough")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Evaluation.MasterySignal != "solid" {
		t.Errorf("mastery signal = %q, want solid", res.Evaluation.MasterySignal)
	}
}

func TestSubmitProviderErrorLeavesStepPending(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	steps := &fakeStepRepo{steps: []store.StepData{pendingStep(t, flow.StepCheck, "q1")}}
	svc := newTestService(mock, steps)

	if _, err := svc.Submit(context.Background(), "sess-1", "concept-1", "an answer"); err == nil {
		t.Fatalf("provider failure swallowed")
	}
	if steps.steps[0].UserResponse != nil {
		t.Errorf("failed grading still recorded the response")
	}
}
