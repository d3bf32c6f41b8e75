package flow

import (
	"encoding/json"
	"fmt"
)

// Layer types a build layer can carry.
const (
	LayerMechanism  = "mechanism"
	LayerExample    = "example"
	LayerConnection = "connection"
)

// AnchorFormSkip disables the anchor stage for a plan.
const AnchorFormSkip = "skip"

// ConceptPlan is the structured micro-lesson generated once per concept per
// learning session. Immutable once generated; owned by the session.
type ConceptPlan struct {
	Orient  Orient  `json:"orient"`
	Build   Build   `json:"build"`
	Anchor  *Anchor `json:"anchor,omitempty"`
	Checks  []Check `json:"checks"`
	Confirm Confirm `json:"confirmQuestion"`
}

// Orient is the opening framing text.
type Orient struct {
	Text string `json:"text"`
}

// Build holds the ordered explanation layers.
type Build struct {
	Layers []BuildLayer `json:"layers"`
}

// BuildLayer is one explanation layer. Layers are numbered from 1 but not
// necessarily contiguously.
type BuildLayer struct {
	LayerNumber int    `json:"layerNumber"`
	LayerType   string `json:"layerType"`
	Text        string `json:"text"`
}

// Anchor is an optional memorable hook, with an alternative phrasing to
// fall back to when the first one doesn't land.
type Anchor struct {
	Text            string `json:"text"`
	Form            string `json:"form"`
	AlternativeText string `json:"alternativeText,omitempty"`
}

// Check is one comprehension question.
type Check struct {
	QuestionText string `json:"questionText"`
	CheckType    string `json:"checkType"`
}

// Confirm is the final confirmation question.
type Confirm struct {
	QuestionText string `json:"questionText"`
}

// ParsePlan decodes a stored plan blob.
func ParsePlan(raw json.RawMessage) (*ConceptPlan, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty plan")
	}
	var p ConceptPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// firstLayer returns the lowest-numbered build layer.
func (p *ConceptPlan) firstLayer() (BuildLayer, bool) {
	return p.layerAfter(0)
}

// layerAfter returns the lowest-numbered layer with number > n.
func (p *ConceptPlan) layerAfter(n int) (BuildLayer, bool) {
	var best BuildLayer
	found := false
	for _, l := range p.Build.Layers {
		if l.LayerNumber <= n {
			continue
		}
		if !found || l.LayerNumber < best.LayerNumber {
			best = l
			found = true
		}
	}
	return best, found
}

// hasAnchor reports whether the anchor stage is enabled.
func (p *ConceptPlan) hasAnchor() bool {
	return p.Anchor != nil && p.Anchor.Form != AnchorFormSkip
}

// firstCheck returns the first check, or a generic fallback when the plan
// carries none.
func (p *ConceptPlan) firstCheck() Check {
	if len(p.Checks) > 0 {
		return p.Checks[0]
	}
	return Check{
		QuestionText: "Can you explain this concept in your own words?",
		CheckType:    "explain",
	}
}

// checkAfter returns the check following the one whose question text
// matches, in plan order. Returns false when the matched check is the last
// one or no check matches.
func (p *ConceptPlan) checkAfter(questionText string) (Check, bool) {
	for i, c := range p.Checks {
		if c.QuestionText == questionText {
			if i+1 < len(p.Checks) {
				return p.Checks[i+1], true
			}
			return Check{}, false
		}
	}
	return Check{}, false
}
