package planner

import "github.com/reflowhq/reflow/internal/llm"

// planSchema mirrors flow.ConceptPlan. Generation happens against this
// schema so a malformed plan is caught at the provider boundary, not in
// the middle of a learning session.
var planSchema = &llm.Schema{
	Name:        "concept-plan",
	Description: "A structured micro-lesson for teaching one concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"orient": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "One or two sentences framing why this concept matters to the learner right now",
					},
				},
				"required":             []string{"text"},
				"additionalProperties": false,
			},
			"build": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"layers": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"layerNumber": map[string]any{"type": "integer"},
								"layerType": map[string]any{
									"type": "string",
									"enum": []string{"mechanism", "example", "connection"},
								},
								"text": map[string]any{"type": "string"},
							},
							"required":             []string{"layerNumber", "layerType", "text"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []string{"layers"},
				"additionalProperties": false,
			},
			"anchor": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string"},
					"form": map[string]any{
						"type":        "string",
						"description": "The anchor's form, e.g. 'analogy', 'mnemonic', or 'skip' when no good anchor exists",
					},
					"alternativeText": map[string]any{
						"type":        "string",
						"description": "A different phrasing to try when the first anchor does not land",
					},
				},
				"required":             []string{"text", "form"},
				"additionalProperties": false,
			},
			"checks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionText": map[string]any{"type": "string"},
						"checkType": map[string]any{
							"type": "string",
							"enum": []string{"explain", "apply", "predict", "contrast"},
						},
					},
					"required":             []string{"questionText", "checkType"},
					"additionalProperties": false,
				},
			},
			"confirmQuestion": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"questionText": map[string]any{"type": "string"},
				},
				"required":             []string{"questionText"},
				"additionalProperties": false,
			},
		},
		"required":             []string{"orient", "build", "checks", "confirmQuestion"},
		"additionalProperties": false,
	},
}
