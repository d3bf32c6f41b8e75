package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func stepFixture(id string, number int, stepType string) StepData {
	return StepData{
		ID:         id,
		SessionID:  "sess-1",
		ConceptID:  "concept-1",
		StepNumber: number,
		StepType:   stepType,
		Content:    json.RawMessage(`{"text":"step content"}`),
	}
}

func TestStepAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.StepRepo()
	ctx := context.Background()

	for i, stepType := range []string{"orient", "build_layer", "check"} {
		if err := repo.Append(ctx, stepFixture(string(rune('a'+i)), i+1, stepType)); err != nil {
			t.Fatalf("append %d: %v", i+1, err)
		}
	}

	steps, err := repo.List(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len = %d, want 3", len(steps))
	}
	for i, step := range steps {
		if step.StepNumber != i+1 {
			t.Errorf("step %d out of order: number %d", i, step.StepNumber)
		}
	}

	// Other concepts see nothing.
	other, err := repo.List(ctx, "sess-1", "concept-2")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("foreign concept sees %d steps", len(other))
	}
}

func TestStepAppendDuplicateNumberConflicts(t *testing.T) {
	s := openTestStore(t)
	repo := s.StepRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, stepFixture("a", 1, "orient")); err != nil {
		t.Fatalf("append: %v", err)
	}
	err := repo.Append(ctx, stepFixture("b", 1, "orient"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate step number: err = %v, want ErrConflict", err)
	}
}

func TestStepAttachResponse(t *testing.T) {
	s := openTestStore(t)
	repo := s.StepRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, stepFixture("a", 1, "check")); err != nil {
		t.Fatalf("append: %v", err)
	}
	ev := json.RawMessage(`{"outcome":"strong","path":"A"}`)
	if err := repo.AttachResponse(ctx, "a", "my answer", "answer", ev); err != nil {
		t.Fatalf("attach: %v", err)
	}

	steps, err := repo.List(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if steps[0].UserResponse == nil || *steps[0].UserResponse != "my answer" {
		t.Errorf("response = %v", steps[0].UserResponse)
	}
	if len(steps[0].Evaluation) == 0 {
		t.Errorf("evaluation not stored")
	}
}

func TestProgressLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "sess-1", "concept-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row: err = %v, want ErrNotFound", err)
	}

	err := repo.Create(ctx, ProgressData{
		ID:          "prog-1",
		SessionID:   "sess-1",
		ConceptID:   "concept-1",
		LearnerID:   "learner-1",
		ConceptName: "Chain Rule",
		Status:      "not_started",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SavePlan(ctx, "sess-1", "concept-1", json.RawMessage(`{"orient":{"text":"hi"}}`)); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if err := repo.SetStatus(ctx, "sess-1", "concept-1", "in_progress"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	p, err := repo.Get(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Status != "in_progress" || len(p.Plan) == 0 {
		t.Errorf("row = status %q plan %d bytes", p.Status, len(p.Plan))
	}
}

func TestCompleteConceptTransactional(t *testing.T) {
	s := openTestStore(t)
	progress := s.ProgressRepo()
	steps := s.StepRepo()
	ctx := context.Background()

	err := progress.Create(ctx, ProgressData{
		ID:        "prog-1",
		SessionID: "sess-1",
		ConceptID: "concept-1",
		LearnerID: "learner-1",
		Status:    "in_progress",
	})
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if err := steps.Append(ctx, stepFixture("a", 1, "confirm")); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := progress.CompleteConcept(ctx, "sess-1", "concept-1", stepFixture("b", 2, "completed")); err != nil {
		t.Fatalf("complete: %v", err)
	}

	p, err := progress.Get(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Status != "completed" {
		t.Errorf("status = %q, want completed", p.Status)
	}
	log, err := steps.List(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(log) != 2 || log[1].StepType != "completed" {
		t.Errorf("log = %d rows, want terminal marker at the end", len(log))
	}
}

func TestCompleteConceptConflictRollsBack(t *testing.T) {
	s := openTestStore(t)
	progress := s.ProgressRepo()
	steps := s.StepRepo()
	ctx := context.Background()

	err := progress.Create(ctx, ProgressData{
		ID:        "prog-1",
		SessionID: "sess-1",
		ConceptID: "concept-1",
		LearnerID: "learner-1",
		Status:    "in_progress",
	})
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if err := steps.Append(ctx, stepFixture("a", 1, "confirm")); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Terminal marker colliding with an existing step number: the whole
	// transaction fails and the status stays untouched.
	err = progress.CompleteConcept(ctx, "sess-1", "concept-1", stepFixture("b", 1, "completed"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	p, err := progress.Get(ctx, "sess-1", "concept-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Status != "in_progress" {
		t.Errorf("status = %q after failed completion, want in_progress", p.Status)
	}
}

func TestNodeCanonicalUniquePerLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.NodeRepo()
	ctx := context.Background()

	base := NodeData{
		ID:             "node-1",
		LearnerID:      "learner-1",
		CanonicalName:  "chain rule",
		DisplayName:    "Chain Rule",
		CurrentMastery: "revisit",
		SessionIDs:     []string{"sess-1"},
		SessionCount:   1,
	}
	if err := repo.Create(ctx, base); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := base
	dup.ID = "node-2"
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate canonical name: err = %v, want ErrConflict", err)
	}

	// Same name for another learner is fine.
	other := base
	other.ID = "node-3"
	other.LearnerID = "learner-2"
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create for other learner: %v", err)
	}

	got, err := repo.GetByCanonical(ctx, "learner-1", "chain rule")
	if err != nil {
		t.Fatalf("get by canonical: %v", err)
	}
	if got.ID != "node-1" {
		t.Errorf("resolved node %q, want node-1", got.ID)
	}
}

func TestNodeUpdateMasteryClearsSynthesisCache(t *testing.T) {
	s := openTestStore(t)
	repo := s.NodeRepo()
	ctx := context.Background()

	err := repo.Create(ctx, NodeData{
		ID:             "node-1",
		LearnerID:      "learner-1",
		CanonicalName:  "chain rule",
		DisplayName:    "Chain Rule",
		CurrentMastery: "revisit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = s.Client().KnowledgeNode.UpdateOneID("node-1").
		SetSynthesisCache("stale summary").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	history := json.RawMessage(`[{"date":"2026-08-28T00:00:00Z","state":"solid","sourceType":"session","sourceId":"sess-1"}]`)
	if err := repo.UpdateMastery(ctx, "node-1", history, "solid"); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	n, err := repo.Get(ctx, "node-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n.CurrentMastery != "solid" {
		t.Errorf("mastery = %q, want solid", n.CurrentMastery)
	}
	if n.SynthesisCache != "" {
		t.Errorf("synthesis cache survived a mastery change: %q", n.SynthesisCache)
	}
}

func TestCurriculumSaveProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	err := repo.Create(ctx, CurriculumData{
		ID:         "curr-1",
		LearnerID:  "learner-1",
		Title:      "Calculus I",
		ConceptIDs: []string{"a", "b"},
		Status:     "active",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SaveProgress(ctx, "curr-1", []string{"a"}, 1, "active"); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	c, err := repo.Get(ctx, "curr-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Cursor != 1 || len(c.CompletedIDs) != 1 {
		t.Errorf("cursor %d completed %v", c.Cursor, c.CompletedIDs)
	}
}

func TestLLMRequestEventSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      "evaluation",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("events = %d, want 3", len(rows))
	}
	seen := map[int64]bool{}
	for _, row := range rows {
		if seen[row.Sequence] {
			t.Errorf("duplicate sequence %d", row.Sequence)
		}
		seen[row.Sequence] = true
	}
}
