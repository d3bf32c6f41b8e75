package store

import (
	"context"
	"fmt"

	"github.com/reflowhq/reflow/ent"
	"github.com/reflowhq/reflow/ent/concepttopic"
)

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) ListByLearner(ctx context.Context, learnerID string) ([]TopicData, error) {
	rows, err := r.client.ConceptTopic.Query().
		Where(concepttopic.LearnerID(learnerID)).
		Order(ent.Asc(concepttopic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	out := make([]TopicData, len(rows))
	for i, row := range rows {
		out[i] = topicFromEnt(row)
	}
	return out, nil
}

func (r *topicRepo) GetByName(ctx context.Context, learnerID, name string) (*TopicData, error) {
	row, err := r.client.ConceptTopic.Query().
		Where(
			concepttopic.LearnerID(learnerID),
			concepttopic.Name(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get topic by name: %w", err)
	}
	t := topicFromEnt(row)
	return &t, nil
}

func (r *topicRepo) Create(ctx context.Context, t TopicData) error {
	_, err := r.client.ConceptTopic.Create().
		SetID(t.ID).
		SetLearnerID(t.LearnerID).
		SetName(t.Name).
		SetConceptCount(t.ConceptCount).
		SetDominantMastery(t.DominantMastery).
		Save(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepo) UpdateStats(ctx context.Context, topicID string, conceptCount int, dominantMastery string) error {
	_, err := r.client.ConceptTopic.UpdateOneID(topicID).
		SetConceptCount(conceptCount).
		SetDominantMastery(dominantMastery).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update topic stats: %w", err)
	}
	return nil
}

func topicFromEnt(row *ent.ConceptTopic) TopicData {
	return TopicData{
		ID:              row.ID,
		LearnerID:       row.LearnerID,
		Name:            row.Name,
		ConceptCount:    row.ConceptCount,
		DominantMastery: row.DominantMastery,
	}
}
