package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-pair",
	Description: "Two strings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{"type": "string"},
		},
		"required":             []any{"a", "b"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"a": "x", "b": "y"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("validateResponse() error = %v", err)
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"a": "x"}`)
	err := validateResponse(testSchema, raw)

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("validateResponse() error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`definitely not json`)
	err := validateResponse(testSchema, raw)

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("validateResponse() error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Errorf("validateResponse(nil) error = %v, want nil", err)
	}
}
