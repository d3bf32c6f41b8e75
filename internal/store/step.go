package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reflowhq/reflow/ent"
	"github.com/reflowhq/reflow/ent/steprecord"
)

type stepRepo struct {
	client *ent.Client
}

func (r *stepRepo) List(ctx context.Context, sessionID, conceptID string) ([]StepData, error) {
	rows, err := r.client.StepRecord.Query().
		Where(
			steprecord.SessionID(sessionID),
			steprecord.ConceptID(conceptID),
		).
		Order(ent.Asc(steprecord.FieldStepNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}

	out := make([]StepData, len(rows))
	for i, row := range rows {
		out[i] = stepFromEnt(row)
	}
	return out, nil
}

func (r *stepRepo) Append(ctx context.Context, step StepData) error {
	create := r.client.StepRecord.Create().
		SetID(step.ID).
		SetSessionID(step.SessionID).
		SetConceptID(step.ConceptID).
		SetStepNumber(step.StepNumber).
		SetStepType(step.StepType).
		SetContent(step.Content)

	if step.UserResponse != nil {
		create.SetUserResponse(*step.UserResponse)
	}
	if step.ResponseType != "" {
		create.SetResponseType(step.ResponseType)
	}
	if step.Evaluation != nil {
		create.SetEvaluation(step.Evaluation)
	}

	if _, err := create.Save(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("append step: %w", err)
	}
	return nil
}

func (r *stepRepo) AttachResponse(ctx context.Context, stepID, response, responseType string, evaluation json.RawMessage) error {
	update := r.client.StepRecord.UpdateOneID(stepID).
		SetUserResponse(response).
		SetResponseType(responseType)

	if evaluation != nil {
		update.SetEvaluation(evaluation)
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("attach response: %w", err)
	}
	return nil
}

func stepFromEnt(row *ent.StepRecord) StepData {
	return StepData{
		ID:           row.ID,
		SessionID:    row.SessionID,
		ConceptID:    row.ConceptID,
		StepNumber:   row.StepNumber,
		StepType:     row.StepType,
		Content:      row.Content,
		UserResponse: row.UserResponse,
		ResponseType: row.ResponseType,
		Evaluation:   row.Evaluation,
		CreatedAt:    row.CreatedAt,
	}
}
