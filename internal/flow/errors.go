package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrPlanNotInitialized indicates advance was called before a plan
	// was generated for the concept. The caller must run plan generation
	// first.
	ErrPlanNotInitialized = errors.New("plan not initialized: generate the concept plan before advancing")

	// ErrNotEvaluated indicates the last check or confirm step has a
	// response but no evaluation, so the sequencer cannot branch. The
	// caller invoked advance out of order.
	ErrNotEvaluated = errors.New("step response has not been evaluated")

	// ErrNoPendingStep indicates a response was submitted but no step is
	// awaiting one.
	ErrNoPendingStep = errors.New("no pending step awaiting a response")
)

// NotEvaluatedError wraps ErrNotEvaluated with the offending step.
type NotEvaluatedError struct {
	StepType   StepType
	StepNumber int
}

func (e *NotEvaluatedError) Error() string {
	return fmt.Sprintf("%s step %d has not been evaluated", e.StepType, e.StepNumber)
}

func (e *NotEvaluatedError) Unwrap() error { return ErrNotEvaluated }
