package flow

import "github.com/reflowhq/reflow/internal/mastery"

// transitionFn computes the decision that follows the last logged step.
type transitionFn func(plan *ConceptPlan, log []Step, last Step) (Decision, error)

// transitions is the state machine, first-class: one entry per step type
// the log can end in. Anything absent falls through to the generic
// completion in Next.
var transitions = map[StepType]transitionFn{
	StepOrient:     afterOrient,
	StepBuildLayer: afterBuildLayer,
	StepAnchor:     afterAnchor,
	StepCheck:      afterCheck,
	StepReinforce:  afterReinforce,
	StepConfirm:    afterConfirm,
	StepCompleted:  afterCompleted,
}

func afterOrient(plan *ConceptPlan, _ []Step, _ Step) (Decision, error) {
	if layer, ok := plan.firstLayer(); ok {
		return emitLayer(layer), nil
	}
	return emitCheck(plan.firstCheck()), nil
}

func afterBuildLayer(plan *ConceptPlan, _ []Step, last Step) (Decision, error) {
	if layer, ok := plan.layerAfter(last.Content.LayerNumber); ok {
		return emitLayer(layer), nil
	}
	if plan.hasAnchor() {
		return Decision{
			StepType: StepAnchor,
			Content: StepContent{
				Text: plan.Anchor.Text,
				Form: plan.Anchor.Form,
			},
		}, nil
	}
	return emitCheck(plan.firstCheck()), nil
}

func afterAnchor(plan *ConceptPlan, _ []Step, last Step) (Decision, error) {
	// One shot at the alternative phrasing: only when the first anchor
	// didn't land and an alternative exists.
	if last.Evaluation != nil &&
		last.Evaluation.Outcome == OutcomeNeedsWork &&
		plan.Anchor != nil &&
		plan.Anchor.AlternativeText != "" &&
		!last.Content.IsAlternative {
		return Decision{
			StepType: StepAnchor,
			Content: StepContent{
				Text:          plan.Anchor.AlternativeText,
				Form:          plan.Anchor.Form,
				IsAlternative: true,
			},
		}, nil
	}
	return emitCheck(plan.firstCheck()), nil
}

func afterCheck(plan *ConceptPlan, _ []Step, last Step) (Decision, error) {
	ev := last.Evaluation
	if ev == nil {
		return Decision{}, &NotEvaluatedError{StepType: last.Type, StepNumber: last.StepNumber}
	}

	if ev.Passed() {
		if next, ok := plan.checkAfter(last.Content.Text); ok {
			return emitCheck(next), nil
		}
		return Decision{
			StepType: StepConfirm,
			Content:  StepContent{Text: plan.Confirm.QuestionText},
		}, nil
	}

	if ev.NextReinforceContent != "" {
		return Decision{
			StepType: StepReinforce,
			Content: StepContent{
				Text: ev.NextReinforceContent,
				Path: ev.Path,
			},
		}, nil
	}

	// No reinforcement available: let the learner retry the same check.
	return Decision{StepType: StepCheck, Content: last.Content}, nil
}

func afterReinforce(plan *ConceptPlan, log []Step, _ Step) (Decision, error) {
	if q, ok := lastQuestion(log); ok {
		return Decision{StepType: q.Type, Content: q.Content}, nil
	}
	return emitCheck(plan.firstCheck()), nil
}

func afterConfirm(_ *ConceptPlan, log []Step, last Step) (Decision, error) {
	ev := last.Evaluation
	if ev == nil {
		return Decision{}, &NotEvaluatedError{StepType: last.Type, StepNumber: last.StepNumber}
	}

	passed := ev.Passed() ||
		ev.MasterySignal == mastery.StateSolid ||
		ev.MasterySignal == mastery.StateDeveloping
	if passed {
		return Decision{StepType: StepCompleted, Content: completedContent()}, nil
	}

	// Forward progress guarantee: two failed confirms is enough, the
	// third advance completes the concept regardless.
	if confirmAttempts(log) >= 2 {
		return Decision{
			StepType:       StepCompleted,
			Content:        completedContent(),
			ForceCompleted: true,
		}, nil
	}

	if ev.NextReinforceContent != "" {
		return Decision{
			StepType: StepReinforce,
			Content: StepContent{
				Text: ev.NextReinforceContent,
				Path: PathC,
			},
		}, nil
	}

	return Decision{StepType: StepConfirm, Content: last.Content}, nil
}

func afterCompleted(_ *ConceptPlan, _ []Step, _ Step) (Decision, error) {
	return Decision{Terminal: true}, nil
}

func emitLayer(layer BuildLayer) Decision {
	return Decision{
		StepType: StepBuildLayer,
		Content: StepContent{
			Text:        layer.Text,
			LayerNumber: layer.LayerNumber,
			LayerType:   layer.LayerType,
		},
	}
}

func emitCheck(c Check) Decision {
	return Decision{
		StepType: StepCheck,
		Content: StepContent{
			Text:      c.QuestionText,
			CheckType: c.CheckType,
		},
	}
}
