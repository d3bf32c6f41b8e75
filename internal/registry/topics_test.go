package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

func seedNodes(t *testing.T, nodes *fakeNodeRepo, masteries ...string) []string {
	t.Helper()
	ids := make([]string, len(masteries))
	for i, m := range masteries {
		id := fmt.Sprintf("node-%d", i+1)
		nodes.nodes[id] = &store.NodeData{
			ID:             id,
			LearnerID:      "learner-1",
			CanonicalName:  fmt.Sprintf("concept %d", i+1),
			DisplayName:    fmt.Sprintf("Concept %d", i+1),
			CurrentMastery: m,
		}
		ids[i] = id
	}
	return ids
}

func clusteringJSON(t *testing.T, topics map[string][]string) json.RawMessage {
	t.Helper()
	var resp clusterResponse
	for name, ids := range topics {
		resp.Topics = append(resp.Topics, struct {
			Name       string   `json:"name"`
			ConceptIDs []string `json:"conceptIds"`
		}{Name: name, ConceptIDs: ids})
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal clustering response: %v", err)
	}
	return raw
}

func TestClusterSkipsSmallGraphs(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, nodes, _ := newTestService(mock)
	seedNodes(t, nodes, "solid", "shaky")

	if err := svc.ClusterIntoTopics(context.Background(), "learner-1"); err != nil {
		t.Fatalf("ClusterIntoTopics: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("clustering called the LLM for a 2-node graph")
	}
}

func TestClusterSkipsFullyAssignedGraphs(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, nodes, _ := newTestService(mock)
	ids := seedNodes(t, nodes, "solid", "shaky", "developing")
	for _, id := range ids {
		nodes.nodes[id].TopicID = "topic-existing"
	}

	if err := svc.ClusterIntoTopics(context.Background(), "learner-1"); err != nil {
		t.Fatalf("ClusterIntoTopics: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("clustering re-ran on a fully assigned graph")
	}
}

func TestClusterAssignsTopicsAndStats(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, nodes, topics := newTestService(mock)
	ids := seedNodes(t, nodes, "solid", "solid", "shaky", "revisit")

	mock.AddResponse(llm.MockResponse{Content: clusteringJSON(t, map[string][]string{
		"Differentiation": {ids[0], ids[1]},
		"Limits":          {ids[2], ids[3]},
	})})

	if err := svc.ClusterIntoTopics(context.Background(), "learner-1"); err != nil {
		t.Fatalf("ClusterIntoTopics: %v", err)
	}

	if nodes.nodes[ids[0]].TopicName != "Differentiation" {
		t.Errorf("node 1 topic = %q", nodes.nodes[ids[0]].TopicName)
	}
	if nodes.nodes[ids[2]].TopicName != "Limits" {
		t.Errorf("node 3 topic = %q", nodes.nodes[ids[2]].TopicName)
	}

	list, err := topics.ListByLearner(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("topic count = %d, want 2", len(list))
	}
	for _, topic := range list {
		if topic.ConceptCount != 2 {
			t.Errorf("topic %q concept count = %d, want 2", topic.Name, topic.ConceptCount)
		}
		switch topic.Name {
		case "Differentiation":
			if topic.DominantMastery != "solid" {
				t.Errorf("Differentiation dominant = %q, want solid", topic.DominantMastery)
			}
		case "Limits":
			// shaky and revisit tie; the stronger state wins.
			if topic.DominantMastery != "shaky" {
				t.Errorf("Limits dominant = %q, want shaky", topic.DominantMastery)
			}
		}
	}
}

func TestClusterIgnoresUnknownNodeIDs(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, nodes, topics := newTestService(mock)
	ids := seedNodes(t, nodes, "solid", "developing", "shaky")

	mock.AddResponse(llm.MockResponse{Content: clusteringJSON(t, map[string][]string{
		"Real":         {ids[0], "hallucinated-id"},
		"Hallucinated": {"another-fake"},
	})})

	if err := svc.ClusterIntoTopics(context.Background(), "learner-1"); err != nil {
		t.Fatalf("ClusterIntoTopics: %v", err)
	}

	list, err := topics.ListByLearner(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("topic count = %d, want only the topic with a real member", len(list))
	}
	if list[0].ConceptCount != 1 {
		t.Errorf("concept count = %d, want 1", list[0].ConceptCount)
	}
}

func TestDominantMastery(t *testing.T) {
	mk := func(states ...string) []store.NodeData {
		out := make([]store.NodeData, len(states))
		for i, s := range states {
			out[i] = store.NodeData{CurrentMastery: s}
		}
		return out
	}

	tests := []struct {
		name  string
		nodes []store.NodeData
		want  mastery.State
	}{
		{"empty", nil, mastery.StateRevisit},
		{"clear majority", mk("shaky", "shaky", "solid"), mastery.StateShaky},
		{"tie prefers stronger", mk("solid", "revisit"), mastery.StateSolid},
		{"three way tie", mk("developing", "shaky", "revisit"), mastery.StateDeveloping},
		{"unknown state counts as revisit", mk("bogus", "bogus", "solid"), mastery.StateRevisit},
	}
	for _, tt := range tests {
		if got := DominantMastery(tt.nodes); got != tt.want {
			t.Errorf("%s: DominantMastery = %s, want %s", tt.name, got, tt.want)
		}
	}
}
