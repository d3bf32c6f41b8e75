package store

import (
	"context"
	"fmt"

	"github.com/reflowhq/reflow/ent"
)

type curriculumRepo struct {
	client *ent.Client
}

func (r *curriculumRepo) Get(ctx context.Context, id string) (*CurriculumData, error) {
	row, err := r.client.Curriculum.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get curriculum: %w", err)
	}
	return &CurriculumData{
		ID:           row.ID,
		LearnerID:    row.LearnerID,
		Title:        row.Title,
		ConceptIDs:   row.ConceptIds,
		CompletedIDs: row.CompletedIds,
		Cursor:       row.Cursor,
		Status:       row.Status,
	}, nil
}

func (r *curriculumRepo) Create(ctx context.Context, c CurriculumData) error {
	create := r.client.Curriculum.Create().
		SetID(c.ID).
		SetLearnerID(c.LearnerID).
		SetConceptIds(c.ConceptIDs).
		SetCursor(c.Cursor).
		SetStatus(c.Status)

	if c.Title != "" {
		create.SetTitle(c.Title)
	}
	if len(c.CompletedIDs) > 0 {
		create.SetCompletedIds(c.CompletedIDs)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create curriculum: %w", err)
	}
	return nil
}

func (r *curriculumRepo) SaveProgress(ctx context.Context, id string, completedIDs []string, cursor int, status string) error {
	_, err := r.client.Curriculum.UpdateOneID(id).
		SetCompletedIds(completedIDs).
		SetCursor(cursor).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("save curriculum progress: %w", err)
	}
	return nil
}
