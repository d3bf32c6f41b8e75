package registry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/store"
)

type fakeNodeRepo struct {
	nodes map[string]*store.NodeData
}

func newFakeNodeRepo() *fakeNodeRepo {
	return &fakeNodeRepo{nodes: map[string]*store.NodeData{}}
}

func (f *fakeNodeRepo) ListByLearner(_ context.Context, learnerID string) ([]store.NodeData, error) {
	var out []store.NodeData
	for _, n := range f.nodes {
		if n.LearnerID == learnerID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNodeRepo) GetByCanonical(_ context.Context, learnerID, canonicalName string) (*store.NodeData, error) {
	for _, n := range f.nodes {
		if n.LearnerID == learnerID && n.CanonicalName == canonicalName {
			cp := *n
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeNodeRepo) Get(_ context.Context, nodeID string) (*store.NodeData, error) {
	n, ok := f.nodes[nodeID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNodeRepo) Create(_ context.Context, n store.NodeData) error {
	for _, existing := range f.nodes {
		if existing.LearnerID == n.LearnerID && existing.CanonicalName == n.CanonicalName {
			return store.ErrConflict
		}
	}
	f.nodes[n.ID] = &n
	return nil
}

func (f *fakeNodeRepo) Merge(_ context.Context, nodeID, displayName string, sessionIDs []string, sessionCount int, lastSeen time.Time) error {
	n, ok := f.nodes[nodeID]
	if !ok {
		return store.ErrNotFound
	}
	n.DisplayName = displayName
	n.SessionIDs = sessionIDs
	n.SessionCount = sessionCount
	n.LastSeen = lastSeen
	return nil
}

func (f *fakeNodeRepo) UpdateMastery(_ context.Context, nodeID string, history json.RawMessage, currentMastery string) error {
	n, ok := f.nodes[nodeID]
	if !ok {
		return store.ErrNotFound
	}
	n.MasteryHistory = history
	n.CurrentMastery = currentMastery
	return nil
}

func (f *fakeNodeRepo) AssignTopic(_ context.Context, nodeIDs []string, topicID, topicName string) error {
	for _, id := range nodeIDs {
		if n, ok := f.nodes[id]; ok {
			n.TopicID = topicID
			n.TopicName = topicName
		}
	}
	return nil
}

type fakeTopicRepo struct {
	topics map[string]*store.TopicData
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: map[string]*store.TopicData{}}
}

func (f *fakeTopicRepo) ListByLearner(_ context.Context, learnerID string) ([]store.TopicData, error) {
	var out []store.TopicData
	for _, t := range f.topics {
		if t.LearnerID == learnerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) GetByName(_ context.Context, learnerID, name string) (*store.TopicData, error) {
	for _, t := range f.topics {
		if t.LearnerID == learnerID && t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTopicRepo) Create(_ context.Context, t store.TopicData) error {
	f.topics[t.ID] = &t
	return nil
}

func (f *fakeTopicRepo) UpdateStats(_ context.Context, topicID string, conceptCount int, dominantMastery string) error {
	t, ok := f.topics[topicID]
	if !ok {
		return store.ErrNotFound
	}
	t.ConceptCount = conceptCount
	t.DominantMastery = dominantMastery
	return nil
}

func newTestService(llm clusterer) (*Service, *fakeNodeRepo, *fakeTopicRepo) {
	nodes := newFakeNodeRepo()
	topics := newFakeTopicRepo()
	svc := NewService(nodes, topics, nil, llm, logger.NewNop())
	return svc, nodes, topics
}

func TestResolveCreatesNewNode(t *testing.T) {
	svc, _, _ := newTestService(nil)

	res, err := svc.Resolve(context.Background(), "learner-1", "The Chain Rule", "how nested functions differentiate", "sess-1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Merged {
		t.Errorf("fresh concept reported as merged")
	}
	if res.Node.CanonicalName != "the chain rule" {
		t.Errorf("canonical = %q, want lowercased", res.Node.CanonicalName)
	}
	if res.Node.CurrentMastery != "revisit" {
		t.Errorf("initial mastery = %q, want revisit", res.Node.CurrentMastery)
	}
	if res.Node.SessionCount != 1 || len(res.Node.SessionIDs) != 1 {
		t.Errorf("session tracking = %d/%v, want 1/[sess-1]", res.Node.SessionCount, res.Node.SessionIDs)
	}
}

func TestResolveExactMatchMerges(t *testing.T) {
	svc, nodes, _ := newTestService(nil)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "def", "sess-1")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	second, err := svc.Resolve(ctx, "learner-1", "chain rule", "other def", "sess-2")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !second.Merged {
		t.Fatalf("exact repeat not merged")
	}
	if second.Node.ID != first.Node.ID {
		t.Errorf("merge created a second node")
	}
	if second.Node.SessionCount != 2 {
		t.Errorf("session count = %d, want 2", second.Node.SessionCount)
	}
	if len(nodes.nodes) != 1 {
		t.Errorf("store holds %d nodes, want 1", len(nodes.nodes))
	}
}

func TestResolveSameSessionIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-1"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	res, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-1")
	if err != nil {
		t.Fatalf("repeat resolve: %v", err)
	}
	if res.Node.SessionCount != 1 {
		t.Errorf("session count = %d after repeat in same session, want 1", res.Node.SessionCount)
	}
}

func TestResolveFuzzyMatchMerges(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-1")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	res, err := svc.Resolve(ctx, "learner-1", "The Chain Rule", "", "sess-2")
	if err != nil {
		t.Fatalf("fuzzy resolve: %v", err)
	}
	if !res.Merged || res.Node.ID != first.Node.ID {
		t.Errorf("superset name did not merge into existing node")
	}
}

func TestResolveScopedPerLearner(t *testing.T) {
	svc, nodes, _ := newTestService(nil)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, err := svc.Resolve(ctx, "learner-2", "Chain Rule", "", "sess-2")
	if err != nil {
		t.Fatalf("resolve for second learner: %v", err)
	}
	if res.Merged {
		t.Errorf("node leaked across learners")
	}
	if len(nodes.nodes) != 2 {
		t.Errorf("store holds %d nodes, want 2", len(nodes.nodes))
	}
}

func TestResolveLatestDisplayNameWins(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, err := svc.Resolve(ctx, "learner-1", "The Chain Rule For Derivatives", "", "sess-2")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.Merged {
		t.Fatalf("longer variant did not merge into the existing node")
	}
	if res.Node.DisplayName != "The Chain Rule For Derivatives" {
		t.Errorf("display name = %q, want the most recent variant", res.Node.DisplayName)
	}

	// A later shorter variant takes over again.
	res, err = svc.Resolve(ctx, "learner-1", "Chain Rule", "", "sess-3")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Node.DisplayName != "Chain Rule" {
		t.Errorf("display name = %q, want the most recent variant", res.Node.DisplayName)
	}
}

func TestResolveEmptyNameRejected(t *testing.T) {
	svc, _, _ := newTestService(nil)
	if _, err := svc.Resolve(context.Background(), "learner-1", "   ", "", "sess-1"); err == nil {
		t.Fatalf("blank name accepted")
	}
}
