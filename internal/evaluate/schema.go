package evaluate

import "github.com/reflowhq/reflow/internal/llm"

// evalSchema constrains grading output to the routing fields the
// sequencer branches on.
var evalSchema = &llm.Schema{
	Name:        "response-evaluation",
	Description: "Grading of a learner's answer to one lesson step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"outcome": map[string]any{
				"type": "string",
				"enum": []string{"strong", "needs_work"},
			},
			"path": map[string]any{
				"type":        "string",
				"enum":        []string{"A", "B", "C"},
				"description": "A: fully correct. B: partial understanding, one targeted reinforcement will fix it. C: fundamental gap.",
			},
			"masterySignal": map[string]any{
				"type":        "string",
				"enum":        []string{"solid", "developing", "shaky", "revisit"},
				"description": "Only on confirm steps: the overall mastery this answer demonstrates",
			},
			"feedbackText": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback addressed to the learner",
			},
			"nextReinforceContent": map[string]any{
				"type":        "string",
				"description": "When outcome is needs_work: a short re-explanation targeting the specific gap. Omit otherwise.",
			},
		},
		"required":             []string{"outcome", "path", "feedbackText"},
		"additionalProperties": false,
	},
}
