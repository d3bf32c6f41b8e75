package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reflowhq/reflow/ent"
	"github.com/reflowhq/reflow/ent/knowledgenode"
)

type nodeRepo struct {
	client *ent.Client
}

func (r *nodeRepo) ListByLearner(ctx context.Context, learnerID string) ([]NodeData, error) {
	rows, err := r.client.KnowledgeNode.Query().
		Where(knowledgenode.LearnerID(learnerID)).
		Order(ent.Asc(knowledgenode.FieldCanonicalName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	out := make([]NodeData, len(rows))
	for i, row := range rows {
		out[i] = nodeFromEnt(row)
	}
	return out, nil
}

func (r *nodeRepo) GetByCanonical(ctx context.Context, learnerID, canonicalName string) (*NodeData, error) {
	row, err := r.client.KnowledgeNode.Query().
		Where(
			knowledgenode.LearnerID(learnerID),
			knowledgenode.CanonicalName(canonicalName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get node by canonical name: %w", err)
	}
	n := nodeFromEnt(row)
	return &n, nil
}

func (r *nodeRepo) Get(ctx context.Context, nodeID string) (*NodeData, error) {
	row, err := r.client.KnowledgeNode.Get(ctx, nodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get node: %w", err)
	}
	n := nodeFromEnt(row)
	return &n, nil
}

func (r *nodeRepo) Create(ctx context.Context, n NodeData) error {
	create := r.client.KnowledgeNode.Create().
		SetID(n.ID).
		SetLearnerID(n.LearnerID).
		SetCanonicalName(n.CanonicalName).
		SetDisplayName(n.DisplayName).
		SetCurrentMastery(n.CurrentMastery).
		SetSessionCount(n.SessionCount)

	if n.Definition != "" {
		create.SetDefinition(n.Definition)
	}
	if n.MasteryHistory != nil {
		create.SetMasteryHistory(n.MasteryHistory)
	}
	if len(n.SessionIDs) > 0 {
		create.SetSessionIds(n.SessionIDs)
	}

	if _, err := create.Save(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create node: %w", err)
	}
	return nil
}

func (r *nodeRepo) Merge(ctx context.Context, nodeID, displayName string, sessionIDs []string, sessionCount int, lastSeen time.Time) error {
	_, err := r.client.KnowledgeNode.UpdateOneID(nodeID).
		SetDisplayName(displayName).
		SetSessionIds(sessionIDs).
		SetSessionCount(sessionCount).
		SetLastSeen(lastSeen).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("merge node: %w", err)
	}
	return nil
}

func (r *nodeRepo) UpdateMastery(ctx context.Context, nodeID string, history json.RawMessage, currentMastery string) error {
	_, err := r.client.KnowledgeNode.UpdateOneID(nodeID).
		SetMasteryHistory(history).
		SetCurrentMastery(currentMastery).
		ClearSynthesisCache().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update mastery: %w", err)
	}
	return nil
}

func (r *nodeRepo) AssignTopic(ctx context.Context, nodeIDs []string, topicID, topicName string) error {
	if len(nodeIDs) == 0 {
		return nil
	}
	_, err := r.client.KnowledgeNode.Update().
		Where(knowledgenode.IDIn(nodeIDs...)).
		SetTopicID(topicID).
		SetTopicName(topicName).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("assign topic: %w", err)
	}
	return nil
}

func nodeFromEnt(row *ent.KnowledgeNode) NodeData {
	return NodeData{
		ID:             row.ID,
		LearnerID:      row.LearnerID,
		CanonicalName:  row.CanonicalName,
		DisplayName:    row.DisplayName,
		Definition:     row.Definition,
		CurrentMastery: row.CurrentMastery,
		MasteryHistory: row.MasteryHistory,
		SessionIDs:     row.SessionIds,
		SessionCount:   row.SessionCount,
		TopicID:        row.TopicID,
		TopicName:      row.TopicName,
		SynthesisCache: row.SynthesisCache,
		FirstSeen:      row.FirstSeen,
		LastSeen:       row.LastSeen,
	}
}
