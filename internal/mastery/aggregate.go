package mastery

import "math"

// Aggregation thresholds on the weighted mean score.
const (
	thresholdSolid      = 2.5
	thresholdDeveloping = 1.5
	thresholdShaky      = 0.75
)

// weightBase is the per-entry recency multiplier: entry i (0 = oldest)
// weighs weightBase^i, so the newest entry always dominates.
const weightBase = 1.5

// Aggregate computes the current mastery label from a concept's full
// chronological history.
//
// The weighted mean is adjusted by three rules, applied in this order:
//
//  1. A most-recent entry of (session, revisit) is authoritative — a full
//     diagnostic session reporting regression overrides lighter signals.
//  2. Dampening: a "solid" verdict needs at least two solid entries on
//     record; one high-scoring entry alone downgrades to developing.
//  3. Streak: three consecutive trailing solids force solid. Evaluated
//     after dampening, as an override — not merged into it.
func Aggregate(history []Entry) State {
	if len(history) == 0 {
		return StateRevisit
	}

	last := history[len(history)-1]
	if last.SourceType == SourceSession && last.State == StateRevisit {
		return StateRevisit
	}

	var weightSum, scoreSum float64
	for i, e := range history {
		w := math.Pow(weightBase, float64(i))
		weightSum += w
		scoreSum += w * Points[e.State]
	}
	score := scoreSum / weightSum

	state := thresholdState(score)

	if state == StateSolid && countState(history, StateSolid) < 2 {
		state = StateDeveloping
	}

	if trailingStreak(history, StateSolid) >= 3 {
		state = StateSolid
	}

	return state
}

func thresholdState(score float64) State {
	switch {
	case score >= thresholdSolid:
		return StateSolid
	case score >= thresholdDeveloping:
		return StateDeveloping
	case score >= thresholdShaky:
		return StateShaky
	default:
		return StateRevisit
	}
}

func countState(history []Entry, s State) int {
	n := 0
	for _, e := range history {
		if e.State == s {
			n++
		}
	}
	return n
}

// trailingStreak returns how many entries at the end of history share
// state s.
func trailingStreak(history []Entry, s State) int {
	n := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].State != s {
			break
		}
		n++
	}
	return n
}
