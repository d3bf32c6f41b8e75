package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

// clusterer is the slice of llm.Provider the topic clustering needs.
type clusterer interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// minClusterSize is the node count below which clustering is skipped;
// grouping two concepts into topics is noise.
const minClusterSize = 3

// clusterSchema constrains the clustering response to named groups of
// known node ids.
var clusterSchema = &llm.Schema{
	Name:        "concept-topics",
	Description: "Grouping of a learner's concepts into a small set of named topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short human-readable topic name, e.g. 'Differentiation'",
						},
						"conceptIds": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []string{"name", "conceptIds"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"topics"},
		"additionalProperties": false,
	},
}

type clusterResponse struct {
	Topics []struct {
		Name       string   `json:"name"`
		ConceptIDs []string `json:"conceptIds"`
	} `json:"topics"`
}

// ClusterIntoTopics groups the learner's knowledge nodes into named
// topics and refreshes per-topic stats. It is a no-op when the learner
// has fewer than three nodes or every node already belongs to a topic.
//
// Clustering is advisory: a failed call leaves existing assignments
// untouched.
func (s *Service) ClusterIntoTopics(ctx context.Context, learnerID string) error {
	nodes, err := s.nodes.ListByLearner(ctx, learnerID)
	if err != nil {
		return err
	}
	if len(nodes) < minClusterSize {
		return nil
	}

	unassigned := 0
	for _, n := range nodes {
		if n.TopicID == "" {
			unassigned++
		}
	}
	if unassigned == 0 {
		return nil
	}

	groups, err := s.proposeTopics(ctx, nodes)
	if err != nil {
		return fmt.Errorf("propose topics for learner %s: %w", learnerID, err)
	}

	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}

	for _, group := range groups.Topics {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			continue
		}

		members := make([]string, 0, len(group.ConceptIDs))
		for _, id := range group.ConceptIDs {
			if known[id] {
				members = append(members, id)
			}
		}
		if len(members) == 0 {
			continue
		}

		topic, err := s.ensureTopic(ctx, learnerID, name)
		if err != nil {
			return err
		}
		if err := s.nodes.AssignTopic(ctx, members, topic.ID, topic.Name); err != nil {
			return fmt.Errorf("assign topic %q: %w", topic.Name, err)
		}
	}

	return s.RefreshTopicStats(ctx, learnerID)
}

func (s *Service) proposeTopics(ctx context.Context, nodes []store.NodeData) (*clusterResponse, error) {
	var b strings.Builder
	b.WriteString("Group the following concepts into 2-6 coherent topics. ")
	b.WriteString("Every concept id must appear in exactly one topic.\n\n")
	for _, n := range nodes {
		fmt.Fprintf(&b, "- id=%s name=%q", n.ID, n.DisplayName)
		if n.Definition != "" {
			fmt.Fprintf(&b, " definition=%q", n.Definition)
		}
		b.WriteByte('\n')
	}

	resp, err := s.llm.Generate(llm.WithPurpose(ctx, "topic-clustering"), llm.Request{
		System:    "You organize a learner's knowledge graph. Cluster concepts into a small set of clearly named topics based on subject-matter similarity.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    clusterSchema,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, err
	}

	var out clusterResponse
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode clustering response: %w", err)
	}
	return &out, nil
}

func (s *Service) ensureTopic(ctx context.Context, learnerID, name string) (*store.TopicData, error) {
	topic, err := s.topics.GetByName(ctx, learnerID, name)
	if err == nil {
		return topic, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	created := store.TopicData{
		ID:              uuid.NewString(),
		LearnerID:       learnerID,
		Name:            name,
		DominantMastery: string(mastery.StateRevisit),
	}
	if err := s.topics.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create topic %q: %w", name, err)
	}
	return &created, nil
}

// RefreshTopicStats recomputes every topic's member count and dominant
// mastery from the current node assignments.
func (s *Service) RefreshTopicStats(ctx context.Context, learnerID string) error {
	nodes, err := s.nodes.ListByLearner(ctx, learnerID)
	if err != nil {
		return err
	}
	topics, err := s.topics.ListByLearner(ctx, learnerID)
	if err != nil {
		return err
	}

	members := make(map[string][]store.NodeData)
	for _, n := range nodes {
		if n.TopicID != "" {
			members[n.TopicID] = append(members[n.TopicID], n)
		}
	}

	for _, t := range topics {
		group := members[t.ID]
		dominant := DominantMastery(group)
		if err := s.topics.UpdateStats(ctx, t.ID, len(group), string(dominant)); err != nil {
			return fmt.Errorf("update stats for topic %q: %w", t.Name, err)
		}
	}
	return nil
}

// DominantMastery is the majority mastery state across a topic's member
// nodes. Ties break toward the stronger state, and an empty group reads
// as revisit.
func DominantMastery(nodes []store.NodeData) mastery.State {
	counts := make(map[mastery.State]int)
	for _, n := range nodes {
		state := mastery.State(n.CurrentMastery)
		if !state.Valid() {
			state = mastery.StateRevisit
		}
		counts[state]++
	}

	order := []mastery.State{
		mastery.StateSolid,
		mastery.StateDeveloping,
		mastery.StateShaky,
		mastery.StateRevisit,
	}
	best := mastery.StateRevisit
	bestCount := 0
	for _, state := range order {
		if counts[state] > bestCount {
			best = state
			bestCount = counts[state]
		}
	}
	return best
}
