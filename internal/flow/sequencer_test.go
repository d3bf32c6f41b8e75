package flow

import (
	"errors"
	"testing"
)

func testPlan() *ConceptPlan {
	return &ConceptPlan{
		Orient: Orient{Text: "Why the chain rule matters."},
		Build: Build{Layers: []BuildLayer{
			{LayerNumber: 1, LayerType: LayerMechanism, Text: "Outer times inner."},
			{LayerNumber: 2, LayerType: LayerExample, Text: "d/dx sin(x^2)."},
		}},
		Anchor: &Anchor{
			Text:            "Peeling an onion, outside in.",
			Form:            "analogy",
			AlternativeText: "Russian dolls: differentiate each shell.",
		},
		Checks: []Check{
			{QuestionText: "What does the inner derivative contribute?", CheckType: "explain"},
			{QuestionText: "Differentiate cos(3x).", CheckType: "apply"},
		},
		Confirm: Confirm{QuestionText: "Walk through d/dx e^(x^2) end to end."},
	}
}

func answered(stepType StepType, content StepContent, ev *Evaluation) Step {
	resp := "a response"
	return Step{
		Type:         stepType,
		Content:      content,
		UserResponse: &resp,
		Evaluation:   ev,
	}
}

func TestNextEmptyLogEmitsOrient(t *testing.T) {
	d, err := Next(testPlan(), nil)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepOrient {
		t.Errorf("first step = %s, want orient", d.StepType)
	}
	if d.Content.Text != "Why the chain rule matters." {
		t.Errorf("orient text = %q", d.Content.Text)
	}
}

func TestNextOrientToFirstLayer(t *testing.T) {
	log := []Step{answered(StepOrient, StepContent{}, nil)}
	d, err := Next(testPlan(), log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepBuildLayer || d.Content.LayerNumber != 1 {
		t.Errorf("got %s layer %d, want build_layer 1", d.StepType, d.Content.LayerNumber)
	}
}

func TestNextOrientSkipsToCheckWithoutLayers(t *testing.T) {
	plan := testPlan()
	plan.Build.Layers = nil
	log := []Step{answered(StepOrient, StepContent{}, nil)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck {
		t.Errorf("got %s, want check", d.StepType)
	}
}

func TestNextLayersAdvanceByNumber(t *testing.T) {
	plan := testPlan()
	// Non-contiguous numbering still advances in order.
	plan.Build.Layers = []BuildLayer{
		{LayerNumber: 5, LayerType: LayerExample, Text: "second"},
		{LayerNumber: 2, LayerType: LayerMechanism, Text: "first"},
	}

	d, err := Next(plan, []Step{answered(StepOrient, StepContent{}, nil)})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.Content.LayerNumber != 2 {
		t.Fatalf("first layer = %d, want 2", d.Content.LayerNumber)
	}

	log := []Step{answered(StepBuildLayer, StepContent{LayerNumber: 2}, nil)}
	d, err = Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.Content.LayerNumber != 5 {
		t.Errorf("next layer = %d, want 5", d.Content.LayerNumber)
	}
}

func TestNextLastLayerToAnchor(t *testing.T) {
	log := []Step{answered(StepBuildLayer, StepContent{LayerNumber: 2}, nil)}
	d, err := Next(testPlan(), log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepAnchor {
		t.Errorf("got %s, want anchor", d.StepType)
	}
	if d.Content.Text != "Peeling an onion, outside in." {
		t.Errorf("anchor text = %q", d.Content.Text)
	}
}

func TestNextLastLayerSkipsDisabledAnchor(t *testing.T) {
	plan := testPlan()
	plan.Anchor.Form = AnchorFormSkip
	log := []Step{answered(StepBuildLayer, StepContent{LayerNumber: 2}, nil)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck {
		t.Errorf("got %s, want check past skipped anchor", d.StepType)
	}
}

func TestNextAnchorAlternativeOnce(t *testing.T) {
	plan := testPlan()
	needsWork := &Evaluation{Outcome: OutcomeNeedsWork, Path: PathB}

	// First anchor missed: offer the alternative.
	log := []Step{answered(StepAnchor, StepContent{Text: plan.Anchor.Text}, needsWork)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepAnchor || !d.Content.IsAlternative {
		t.Fatalf("got %s alternative=%v, want alternative anchor", d.StepType, d.Content.IsAlternative)
	}
	if d.Content.Text != plan.Anchor.AlternativeText {
		t.Errorf("alternative text = %q", d.Content.Text)
	}

	// The alternative also missed: move on, never loop.
	log = append(log, answered(StepAnchor, d.Content, needsWork))
	d, err = Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck {
		t.Errorf("after failed alternative got %s, want check", d.StepType)
	}
}

func TestNextAnchorLandedGoesToCheck(t *testing.T) {
	plan := testPlan()
	log := []Step{answered(StepAnchor, StepContent{Text: plan.Anchor.Text}, &Evaluation{Outcome: OutcomeStrong, Path: PathA})}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck {
		t.Errorf("got %s, want check", d.StepType)
	}
	if d.Content.Text != plan.Checks[0].QuestionText {
		t.Errorf("check text = %q, want first check", d.Content.Text)
	}
}

func TestNextCheckUngraded(t *testing.T) {
	plan := testPlan()
	log := []Step{answered(StepCheck, StepContent{Text: plan.Checks[0].QuestionText}, nil)}
	_, err := Next(plan, log)
	if !errors.Is(err, ErrNotEvaluated) {
		t.Fatalf("err = %v, want ErrNotEvaluated", err)
	}
	var notEval *NotEvaluatedError
	if !errors.As(err, &notEval) {
		t.Fatalf("err is not *NotEvaluatedError")
	}
	if notEval.StepType != StepCheck {
		t.Errorf("step type = %s, want check", notEval.StepType)
	}
}

func TestNextCheckPassedAdvancesThroughChecks(t *testing.T) {
	plan := testPlan()
	pass := &Evaluation{Outcome: OutcomeStrong, Path: PathA}

	log := []Step{answered(StepCheck, StepContent{Text: plan.Checks[0].QuestionText}, pass)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck || d.Content.Text != plan.Checks[1].QuestionText {
		t.Fatalf("got %s %q, want second check", d.StepType, d.Content.Text)
	}

	log = append(log, answered(StepCheck, d.Content, pass))
	d, err = Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepConfirm {
		t.Errorf("after last check got %s, want confirm", d.StepType)
	}
	if d.Content.Text != plan.Confirm.QuestionText {
		t.Errorf("confirm text = %q", d.Content.Text)
	}
}

func TestNextCheckFailedWithReinforcement(t *testing.T) {
	plan := testPlan()
	fail := &Evaluation{
		Outcome:              OutcomeNeedsWork,
		Path:                 PathB,
		NextReinforceContent: "The inner derivative multiplies the outer one.",
	}

	checkContent := StepContent{Text: plan.Checks[0].QuestionText, CheckType: "explain"}
	log := []Step{answered(StepCheck, checkContent, fail)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepReinforce || d.Content.Path != PathB {
		t.Fatalf("got %s path %s, want reinforce path B", d.StepType, d.Content.Path)
	}

	// After the reinforcement the same question comes back.
	log = append(log, answered(StepReinforce, d.Content, nil))
	d, err = Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck || d.Content.Text != checkContent.Text {
		t.Errorf("after reinforce got %s %q, want the same check back", d.StepType, d.Content.Text)
	}
}

func TestNextCheckFailedWithoutReinforcementRetries(t *testing.T) {
	plan := testPlan()
	fail := &Evaluation{Outcome: OutcomeNeedsWork, Path: PathB}
	content := StepContent{Text: plan.Checks[0].QuestionText}
	log := []Step{answered(StepCheck, content, fail)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck || d.Content.Text != content.Text {
		t.Errorf("got %s %q, want the same check re-emitted", d.StepType, d.Content.Text)
	}
}

func TestNextConfirmPassedCompletes(t *testing.T) {
	plan := testPlan()
	log := []Step{answered(StepConfirm, StepContent{Text: plan.Confirm.QuestionText}, &Evaluation{Outcome: OutcomeStrong, Path: PathA})}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCompleted || d.ForceCompleted {
		t.Errorf("got %s forced=%v, want completed unforced", d.StepType, d.ForceCompleted)
	}
}

func TestNextConfirmMasterySignalCompletes(t *testing.T) {
	plan := testPlan()
	// needs_work overall but the signal says developing: that still ends
	// the concept.
	ev := &Evaluation{Outcome: OutcomeNeedsWork, Path: PathB, MasterySignal: "developing"}
	log := []Step{answered(StepConfirm, StepContent{Text: plan.Confirm.QuestionText}, ev)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCompleted {
		t.Errorf("got %s, want completed", d.StepType)
	}
}

func TestNextConfirmAttemptCap(t *testing.T) {
	plan := testPlan()
	fail := &Evaluation{Outcome: OutcomeNeedsWork, Path: PathC, NextReinforceContent: "One more angle on it."}
	confirmContent := StepContent{Text: plan.Confirm.QuestionText}

	// First failed confirm: reinforce on path C.
	log := []Step{answered(StepConfirm, confirmContent, fail)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepReinforce || d.Content.Path != PathC {
		t.Fatalf("after first failed confirm got %s path %s, want reinforce path C", d.StepType, d.Content.Path)
	}

	// Second failed confirm: the cap forces completion.
	log = append(log,
		answered(StepReinforce, d.Content, nil),
		answered(StepConfirm, confirmContent, fail),
	)
	d, err = Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCompleted || !d.ForceCompleted {
		t.Errorf("after second failed confirm got %s forced=%v, want forced completion", d.StepType, d.ForceCompleted)
	}
}

func TestNextCompletedIsTerminal(t *testing.T) {
	log := []Step{{Type: StepCompleted, Content: completedContent()}}
	d, err := Next(testPlan(), log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !d.Terminal {
		t.Errorf("completed log not terminal")
	}
}

func TestNextUnknownStepTypeFallsBack(t *testing.T) {
	log := []Step{answered(StepType("mystery"), StepContent{}, nil)}
	d, err := Next(testPlan(), log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCompleted || !d.Fallback {
		t.Errorf("got %s fallback=%v, want fallback completion", d.StepType, d.Fallback)
	}
}

func TestNextNoChecksUsesGenericFallbackQuestion(t *testing.T) {
	plan := testPlan()
	plan.Checks = nil
	plan.Anchor = nil
	log := []Step{answered(StepBuildLayer, StepContent{LayerNumber: 2}, nil)}
	d, err := Next(plan, log)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if d.StepType != StepCheck || d.Content.Text == "" {
		t.Errorf("got %s %q, want a non-empty generic check", d.StepType, d.Content.Text)
	}
}
