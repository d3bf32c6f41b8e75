package mastery

import "time"

// State is the qualitative mastery label for a concept.
type State string

const (
	StateSolid      State = "solid"
	StateDeveloping State = "developing"
	StateShaky      State = "shaky"
	StateRevisit    State = "revisit"
)

// Points maps states to the point values used by the weighted aggregation.
var Points = map[State]float64{
	StateSolid:      3,
	StateDeveloping: 2,
	StateShaky:      1,
	StateRevisit:    0,
}

// Valid reports whether s is a known mastery state.
func (s State) Valid() bool {
	_, ok := Points[s]
	return ok
}

// Source types for mastery history entries. A "session" entry comes from a
// full diagnostic learning session and carries authoritative weight in the
// aggregation's regression override.
const (
	SourceSession    = "session"
	SourceFlashcards = "flashcards"
	SourceQuiz       = "quiz"
	SourceFeynman    = "feynman"
	SourceTutor      = "tutor"
	SourceExplain    = "explain"
	SourceDeepDive   = "deepdive"
)

// Entry is one immutable observation in a concept's mastery history.
// Entries are appended in chronological order and never truncated.
type Entry struct {
	Date       time.Time `json:"date"`
	State      State     `json:"state"`
	SourceType string    `json:"sourceType"`
	SourceID   string    `json:"sourceId"`
}
