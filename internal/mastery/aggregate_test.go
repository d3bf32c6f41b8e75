package mastery

import "testing"

func entries(states ...State) []Entry {
	out := make([]Entry, len(states))
	for i, s := range states {
		out[i] = Entry{State: s, SourceType: SourceQuiz}
	}
	return out
}

func TestAggregateEmptyHistory(t *testing.T) {
	if got := Aggregate(nil); got != StateRevisit {
		t.Errorf("empty history = %s, want revisit", got)
	}
}

func TestAggregateSingleEntry(t *testing.T) {
	tests := []struct {
		state State
		want  State
	}{
		// One solid scores 3.0 but dampening caps it at developing.
		{StateSolid, StateDeveloping},
		{StateDeveloping, StateDeveloping},
		{StateShaky, StateShaky},
		{StateRevisit, StateRevisit},
	}
	for _, tt := range tests {
		if got := Aggregate(entries(tt.state)); got != tt.want {
			t.Errorf("Aggregate([%s]) = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestAggregateRecencyDominates(t *testing.T) {
	// Old struggles, recent strength: the 1.5^i weights let the recent
	// entries win.
	history := entries(StateRevisit, StateShaky, StateDeveloping, StateSolid, StateSolid)
	if got := Aggregate(history); got != StateDeveloping && got != StateSolid {
		t.Errorf("improving history = %s, want developing or solid", got)
	}

	// The mirror image must not stay solid.
	declining := entries(StateSolid, StateSolid, StateShaky, StateRevisit, StateRevisit)
	if got := Aggregate(declining); got == StateSolid {
		t.Errorf("declining history = solid, want a lower state")
	}
}

func TestAggregateSessionRevisitOverride(t *testing.T) {
	history := entries(StateSolid, StateSolid, StateSolid)
	history = append(history, Entry{State: StateRevisit, SourceType: SourceSession})

	if got := Aggregate(history); got != StateRevisit {
		t.Errorf("session revisit as last entry = %s, want revisit", got)
	}

	// The same regression from a lighter source is not authoritative.
	lighter := entries(StateSolid, StateSolid, StateSolid, StateRevisit)
	if got := Aggregate(lighter); got == StateRevisit {
		t.Errorf("quiz revisit after three solids = revisit, want weighted result")
	}
}

func TestAggregateSessionRevisitNotLastIsOrdinary(t *testing.T) {
	history := []Entry{
		{State: StateRevisit, SourceType: SourceSession},
		{State: StateSolid, SourceType: SourceQuiz},
		{State: StateSolid, SourceType: SourceQuiz},
		{State: StateSolid, SourceType: SourceQuiz},
	}
	if got := Aggregate(history); got != StateSolid {
		t.Errorf("old session revisit buried under solids = %s, want solid", got)
	}
}

func TestAggregateDampening(t *testing.T) {
	// Weighted score 2.6 clears the solid threshold, but with a single
	// solid on record the verdict is dampened to developing.
	history := entries(StateDeveloping, StateSolid)
	if got := Aggregate(history); got != StateDeveloping {
		t.Errorf("one solid on record = %s, want dampened to developing", got)
	}

	// A second solid lifts the dampening: score 2.789 reads solid.
	history = entries(StateDeveloping, StateSolid, StateSolid)
	if got := Aggregate(history); got != StateSolid {
		t.Errorf("two solids = %s, want solid", got)
	}
}

func TestAggregateTrailingStreakOverride(t *testing.T) {
	// A deep hole followed by three straight solids reads solid even if
	// the weighted mean has not caught up.
	history := entries(
		StateRevisit, StateRevisit, StateRevisit, StateRevisit,
		StateSolid, StateSolid, StateSolid,
	)
	if got := Aggregate(history); got != StateSolid {
		t.Errorf("trailing three solids = %s, want solid", got)
	}

	// A broken streak does not trigger the override.
	broken := entries(
		StateRevisit, StateRevisit, StateRevisit, StateRevisit, StateRevisit,
		StateSolid, StateShaky, StateSolid,
	)
	if got := Aggregate(broken); got == StateSolid {
		t.Errorf("broken streak = solid, want weighted result")
	}
}

func TestAggregateStreakBeatsSessionOverrideOrdering(t *testing.T) {
	// The session-revisit override fires only on the most recent entry,
	// so a trailing solid streak after a session regression reads solid.
	history := []Entry{
		{State: StateRevisit, SourceType: SourceSession},
		{State: StateSolid, SourceType: SourceFlashcards},
		{State: StateSolid, SourceType: SourceQuiz},
		{State: StateSolid, SourceType: SourceQuiz},
	}
	if got := Aggregate(history); got != StateSolid {
		t.Errorf("recovered after session regression = %s, want solid", got)
	}
}

func TestThresholdState(t *testing.T) {
	tests := []struct {
		score float64
		want  State
	}{
		{3.0, StateSolid},
		{2.5, StateSolid},
		{2.49, StateDeveloping},
		{1.5, StateDeveloping},
		{1.49, StateShaky},
		{0.75, StateShaky},
		{0.74, StateRevisit},
		{0, StateRevisit},
	}
	for _, tt := range tests {
		if got := thresholdState(tt.score); got != tt.want {
			t.Errorf("thresholdState(%.2f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
