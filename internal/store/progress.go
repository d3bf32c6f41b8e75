package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reflowhq/reflow/ent"
	"github.com/reflowhq/reflow/ent/conceptprogress"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, sessionID, conceptID string) (*ProgressData, error) {
	row, err := r.client.ConceptProgress.Query().
		Where(
			conceptprogress.SessionID(sessionID),
			conceptprogress.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	p := progressFromEnt(row)
	return &p, nil
}

func (r *progressRepo) Create(ctx context.Context, p ProgressData) error {
	create := r.client.ConceptProgress.Create().
		SetID(p.ID).
		SetSessionID(p.SessionID).
		SetConceptID(p.ConceptID).
		SetLearnerID(p.LearnerID).
		SetConceptName(p.ConceptName).
		SetStatus(p.Status)

	if p.Plan != nil {
		create.SetPlan(p.Plan)
	}
	if p.CurriculumID != "" {
		create.SetCurriculumID(p.CurriculumID)
	}
	if p.NodeID != "" {
		create.SetNodeID(p.NodeID)
	}

	if _, err := create.Save(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *progressRepo) SavePlan(ctx context.Context, sessionID, conceptID string, plan json.RawMessage) error {
	n, err := r.client.ConceptProgress.Update().
		Where(
			conceptprogress.SessionID(sessionID),
			conceptprogress.ConceptID(conceptID),
		).
		SetPlan(plan).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *progressRepo) SetStatus(ctx context.Context, sessionID, conceptID, status string) error {
	n, err := r.client.ConceptProgress.Update().
		Where(
			conceptprogress.SessionID(sessionID),
			conceptprogress.ConceptID(conceptID),
		).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CompleteConcept writes the terminal step and the status flip in one
// transaction. The step log and the progress row can never disagree about
// whether a concept finished.
func (r *progressRepo) CompleteConcept(ctx context.Context, sessionID, conceptID string, terminal StepData) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	create := tx.StepRecord.Create().
		SetID(terminal.ID).
		SetSessionID(terminal.SessionID).
		SetConceptID(terminal.ConceptID).
		SetStepNumber(terminal.StepNumber).
		SetStepType(terminal.StepType).
		SetContent(terminal.Content)

	if _, err := create.Save(ctx); err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("append terminal step: %w", err)
	}

	n, err := tx.ConceptProgress.Update().
		Where(
			conceptprogress.SessionID(sessionID),
			conceptprogress.ConceptID(conceptID),
		).
		SetStatus("completed").
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("mark completed: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit completion: %w", err)
	}
	return nil
}

func progressFromEnt(row *ent.ConceptProgress) ProgressData {
	return ProgressData{
		ID:           row.ID,
		SessionID:    row.SessionID,
		ConceptID:    row.ConceptID,
		LearnerID:    row.LearnerID,
		ConceptName:  row.ConceptName,
		Status:       row.Status,
		Plan:         row.Plan,
		CurriculumID: row.CurriculumID,
		NodeID:       row.NodeID,
		UpdatedAt:    row.UpdatedAt,
	}
}
