package planner

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/registry"
	"github.com/reflowhq/reflow/internal/store"
)

type fakeProgressRepo struct {
	rows map[string]*store.ProgressData
}

func key(sessionID, conceptID string) string { return sessionID + "/" + conceptID }

func (f *fakeProgressRepo) Get(_ context.Context, sessionID, conceptID string) (*store.ProgressData, error) {
	p, ok := f.rows[key(sessionID, conceptID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, p store.ProgressData) error {
	f.rows[key(p.SessionID, p.ConceptID)] = &p
	return nil
}

func (f *fakeProgressRepo) SavePlan(_ context.Context, sessionID, conceptID string, plan json.RawMessage) error {
	p, ok := f.rows[key(sessionID, conceptID)]
	if !ok {
		return store.ErrNotFound
	}
	p.Plan = plan
	return nil
}

func (f *fakeProgressRepo) SetStatus(_ context.Context, sessionID, conceptID, status string) error {
	p, ok := f.rows[key(sessionID, conceptID)]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProgressRepo) CompleteConcept(_ context.Context, sessionID, conceptID string, _ store.StepData) error {
	return f.SetStatus(nil, sessionID, conceptID, "completed")
}

type fakeNodeRepo struct {
	store.NodeRepo
	created []store.NodeData
}

func (f *fakeNodeRepo) ListByLearner(_ context.Context, learnerID string) ([]store.NodeData, error) {
	var out []store.NodeData
	for _, n := range f.created {
		if n.LearnerID == learnerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNodeRepo) GetByCanonical(_ context.Context, learnerID, canonicalName string) (*store.NodeData, error) {
	for i := range f.created {
		if f.created[i].LearnerID == learnerID && f.created[i].CanonicalName == canonicalName {
			cp := f.created[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeNodeRepo) Create(_ context.Context, n store.NodeData) error {
	f.created = append(f.created, n)
	return nil
}

type fakeTopicRepo struct {
	store.TopicRepo
}

func validPlanJSON(t *testing.T) json.RawMessage {
	t.Helper()
	plan := flow.ConceptPlan{
		Orient: flow.Orient{Text: "orient"},
		Build: flow.Build{Layers: []flow.BuildLayer{
			{LayerNumber: 1, LayerType: flow.LayerMechanism, Text: "layer"},
		}},
		Checks:  []flow.Check{{QuestionText: "q1", CheckType: "explain"}},
		Confirm: flow.Confirm{QuestionText: "confirm"},
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal plan: %v", err)
	}
	return raw
}

func newTestService(t *testing.T, mock *llm.MockProvider) (*Service, *fakeProgressRepo, *fakeNodeRepo) {
	t.Helper()
	progress := &fakeProgressRepo{rows: map[string]*store.ProgressData{}}
	nodes := &fakeNodeRepo{}
	log := logger.NewNop()
	reg := registry.NewService(nodes, &fakeTopicRepo{}, nil, mock, log)
	return NewService(mock, progress, reg, log), progress, nodes
}

func TestInitPlanCreatesProgressAndPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	svc, progress, nodes := newTestService(t, mock)

	res, err := svc.InitPlan(context.Background(), InitRequest{
		SessionID:   "sess-1",
		ConceptID:   "concept-1",
		LearnerID:   "learner-1",
		ConceptName: "Chain Rule",
		Definition:  "nested derivatives",
	})
	if err != nil {
		t.Fatalf("InitPlan: %v", err)
	}
	if res.Reused {
		t.Errorf("fresh init reported reuse")
	}
	if res.Plan == nil || res.Plan.Orient.Text != "orient" {
		t.Fatalf("plan not decoded: %+v", res.Plan)
	}

	// Concept registered in the knowledge graph.
	if len(nodes.created) != 1 {
		t.Fatalf("registered %d nodes, want 1", len(nodes.created))
	}
	if res.NodeID != nodes.created[0].ID {
		t.Errorf("result node id does not match registered node")
	}

	// Progress row holds the plan and links back to the node.
	prog, err := progress.Get(context.Background(), "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if len(prog.Plan) == 0 {
		t.Errorf("plan not persisted")
	}
	if prog.NodeID != res.NodeID {
		t.Errorf("progress node id = %q, want %q", prog.NodeID, res.NodeID)
	}
	if prog.Status != flow.StatusNotStarted {
		t.Errorf("status = %q, want not_started", prog.Status)
	}
}

func TestInitPlanIsIdempotent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	svc, _, _ := newTestService(t, mock)
	ctx := context.Background()

	req := InitRequest{
		SessionID:   "sess-1",
		ConceptID:   "concept-1",
		LearnerID:   "learner-1",
		ConceptName: "Chain Rule",
	}
	if _, err := svc.InitPlan(ctx, req); err != nil {
		t.Fatalf("first init: %v", err)
	}

	res, err := svc.InitPlan(ctx, req)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !res.Reused {
		t.Errorf("repeat init did not reuse the plan")
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
}

func TestInitPlanRejectsEmptyName(t *testing.T) {
	svc, _, _ := newTestService(t, llm.NewMockProvider())
	if _, err := svc.InitPlan(context.Background(), InitRequest{SessionID: "s", ConceptID: "c"}); err == nil {
		t.Fatalf("empty concept name accepted")
	}
}

func TestInitPlanPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	svc, progress, _ := newTestService(t, mock)

	_, err := svc.InitPlan(context.Background(), InitRequest{
		SessionID:   "sess-1",
		ConceptID:   "concept-1",
		LearnerID:   "learner-1",
		ConceptName: "Chain Rule",
	})
	if err == nil {
		t.Fatalf("provider failure swallowed")
	}

	// The progress row exists but carries no plan, so a retry generates.
	prog, err := progress.Get(context.Background(), "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("progress row missing after failed generation: %v", err)
	}
	if len(prog.Plan) != 0 {
		t.Errorf("failed generation persisted a plan")
	}
}

func TestGeneratePlanSendsSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON(t)})
	svc, _, _ := newTestService(t, mock)

	if _, _, err := svc.GeneratePlan(context.Background(), "Chain Rule", ""); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "concept-plan" {
		t.Errorf("request schema = %+v, want concept-plan", req.Schema)
	}
	if req.System == "" {
		t.Errorf("request has no system prompt")
	}
}
