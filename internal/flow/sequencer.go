package flow

// The sequencer is pure decision logic: given the concept plan and the
// ordered step log, it computes what happens next. No clock, no store, no
// collaborator calls — every branch keys off the plan and prior
// evaluations, which is what makes the state machine deterministic and
// replayable.

// Decision is the sequencer's verdict for one advance call.
type Decision struct {
	// StepType is the type of the step to emit. StepCompleted means the
	// concept completes now and the terminal marker should be written.
	StepType StepType

	// Content is the payload for the emitted step.
	Content StepContent

	// Terminal is set when the log already ends in a completed marker:
	// nothing is emitted or written, the caller returns a summary.
	Terminal bool

	// ForceCompleted is set when completion came from the confirm
	// attempt cap rather than a passing evaluation.
	ForceCompleted bool

	// Fallback is set when no transition matched and the never-get-stuck
	// default fired. The caller should emit a diagnostic signal.
	Fallback bool
}

// completedContent is the terminal marker payload.
func completedContent() StepContent {
	return StepContent{Text: "Concept complete. Nice work — this one is in your knowledge graph now."}
}

// Next computes the next step for a concept from its plan and full step
// log (oldest first). It returns *NotEvaluatedError when the last step is
// a check or confirm whose response has not been graded yet.
//
// Resumability (a pending last step) is the caller's concern: Next assumes
// every non-terminal logged step has been responded to.
func Next(plan *ConceptPlan, log []Step) (Decision, error) {
	if len(log) == 0 {
		return Decision{
			StepType: StepOrient,
			Content:  StepContent{Text: plan.Orient.Text},
		}, nil
	}

	last := log[len(log)-1]
	transition, ok := transitions[last.Type]
	if !ok {
		// Unknown step type in the log. Complete rather than strand the
		// learner, but mark the decision so the caller can flag it.
		return Decision{
			StepType: StepCompleted,
			Content:  completedContent(),
			Fallback: true,
		}, nil
	}

	return transition(plan, log, last)
}

// confirmAttempts counts confirm steps already present in the log.
func confirmAttempts(log []Step) int {
	n := 0
	for _, s := range log {
		if s.Type == StepConfirm {
			n++
		}
	}
	return n
}

// lastQuestion finds the most recent check or confirm step, searching the
// log backward.
func lastQuestion(log []Step) (Step, bool) {
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Type == StepCheck || log[i].Type == StepConfirm {
			return log[i], true
		}
	}
	return Step{}, false
}
