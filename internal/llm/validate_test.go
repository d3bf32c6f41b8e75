package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func evaluationSchema() *Schema {
	return &Schema{
		Name:        "test-evaluation",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"outcome": map[string]any{
					"type": "string",
					"enum": []string{"strong", "needs_work"},
				},
				"feedbackText": map[string]any{"type": "string"},
			},
			"required":             []string{"outcome"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_ValidPayload(t *testing.T) {
	raw := json.RawMessage(`{"outcome":"strong","feedbackText":"Good explanation."}`)
	if err := validateResponse(evaluationSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(evaluationSchema(), json.RawMessage(`{"outcome":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(evaluationSchema(), json.RawMessage(`{"feedbackText":"hi"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	err := validateResponse(evaluationSchema(), json.RawMessage(`{"outcome":"mediocre"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_AdditionalPropertyRejected(t *testing.T) {
	err := validateResponse(evaluationSchema(), json.RawMessage(`{"outcome":"strong","extra":1}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_SchemaCacheReuse(t *testing.T) {
	schema := evaluationSchema()
	raw := json.RawMessage(`{"outcome":"needs_work"}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: unexpected error: %v", i, err)
		}
	}
}
