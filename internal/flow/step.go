package flow

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

// StepType identifies the stage a step belongs to.
type StepType string

const (
	StepOrient     StepType = "orient"
	StepBuildLayer StepType = "build_layer"
	StepAnchor     StepType = "anchor"
	StepCheck      StepType = "check"
	StepReinforce  StepType = "reinforce"
	StepConfirm    StepType = "confirm"
	StepCompleted  StepType = "completed"
)

// Outcome is the evaluation's classification of a learner response.
type Outcome string

const (
	OutcomeStrong    Outcome = "strong"
	OutcomeNeedsWork Outcome = "needs_work"
)

// Path is the evaluation's coarse routing label.
type Path string

const (
	PathA Path = "A"
	PathB Path = "B"
	PathC Path = "C"
)

// Evaluation is the grading attached to a learner response.
type Evaluation struct {
	Outcome              Outcome       `json:"outcome"`
	Path                 Path          `json:"path,omitempty"`
	MasterySignal        mastery.State `json:"masterySignal,omitempty"`
	FeedbackText         string        `json:"feedbackText,omitempty"`
	NextReinforceContent string        `json:"nextReinforceContent,omitempty"`
}

// Passed reports whether the response cleared the step.
func (e *Evaluation) Passed() bool {
	return e.Path == PathA || e.Outcome == OutcomeStrong
}

// StepContent is the payload shown to the learner for one step. Fields are
// populated per step type; unused ones stay zero.
type StepContent struct {
	Text          string `json:"text"`
	LayerNumber   int    `json:"layerNumber,omitempty"`
	LayerType     string `json:"layerType,omitempty"`
	CheckType     string `json:"checkType,omitempty"`
	Form          string `json:"form,omitempty"`
	IsAlternative bool   `json:"isAlternative,omitempty"`
	Path          Path   `json:"path,omitempty"`
}

// Step is one unit of interaction in a concept's Flow Mode execution.
type Step struct {
	ID           string
	SessionID    string
	ConceptID    string
	StepNumber   int
	Type         StepType
	Content      StepContent
	UserResponse *string
	ResponseType string
	Evaluation   *Evaluation
	CreatedAt    time.Time
}

// Pending reports whether the step is still waiting on a learner response.
// The terminal completed marker never takes one.
func (s *Step) Pending() bool {
	return s.UserResponse == nil && s.Type != StepCompleted
}

// stepFromData decodes a stored step row.
func stepFromData(d store.StepData) (Step, error) {
	step := Step{
		ID:           d.ID,
		SessionID:    d.SessionID,
		ConceptID:    d.ConceptID,
		StepNumber:   d.StepNumber,
		Type:         StepType(d.StepType),
		UserResponse: d.UserResponse,
		ResponseType: d.ResponseType,
		CreatedAt:    d.CreatedAt,
	}

	if len(d.Content) > 0 {
		if err := json.Unmarshal(d.Content, &step.Content); err != nil {
			return Step{}, fmt.Errorf("decode step %s content: %w", d.ID, err)
		}
	}

	if len(d.Evaluation) > 0 {
		var ev Evaluation
		if err := json.Unmarshal(d.Evaluation, &ev); err != nil {
			return Step{}, fmt.Errorf("decode step %s evaluation: %w", d.ID, err)
		}
		step.Evaluation = &ev
	}

	return step, nil
}

// stepToData encodes a step for storage.
func stepToData(s Step) (store.StepData, error) {
	content, err := json.Marshal(s.Content)
	if err != nil {
		return store.StepData{}, fmt.Errorf("encode step content: %w", err)
	}

	d := store.StepData{
		ID:           s.ID,
		SessionID:    s.SessionID,
		ConceptID:    s.ConceptID,
		StepNumber:   s.StepNumber,
		StepType:     string(s.Type),
		Content:      content,
		UserResponse: s.UserResponse,
		ResponseType: s.ResponseType,
	}

	if s.Evaluation != nil {
		ev, err := json.Marshal(s.Evaluation)
		if err != nil {
			return store.StepData{}, fmt.Errorf("encode step evaluation: %w", err)
		}
		d.Evaluation = ev
	}

	return d, nil
}

// StepsFromData decodes a stored step log, oldest first.
func StepsFromData(rows []store.StepData) ([]Step, error) {
	steps := make([]Step, len(rows))
	for i, row := range rows {
		s, err := stepFromData(row)
		if err != nil {
			return nil, err
		}
		steps[i] = s
	}
	return steps, nil
}
