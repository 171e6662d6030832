package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-suggestion",
		Description: "A module suggestion",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"modules": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D", "E", "F"}},
				},
				"reason": map[string]any{"type": "string"},
				"score":  map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"modules", "reason"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"modules":["A","C"],"reason":"fits","score":3}`, false},
		{"valid without optional", `{"modules":["B"],"reason":"fits"}`, false},
		{"missing required", `{"modules":["A"]}`, true},
		{"wrong type", `{"modules":["A"],"reason":"x","score":"three"}`, true},
		{"invalid enum", `{"modules":["Z"],"reason":"x"}`, true},
		{"empty array", `{"modules":[],"reason":"x"}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`<html>not json</html>`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestStructuredContent_StripsFence(t *testing.T) {
	raw := json.RawMessage("```json\n{\"modules\":[\"A\"],\"reason\":\"ok\"}\n```\n")
	got, err := structuredContent(testSchema(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"modules":["A"],"reason":"ok"}` {
		t.Fatalf("unexpected content: %s", got)
	}
}

func TestStructuredContent_NoSchemaKeepsText(t *testing.T) {
	raw := json.RawMessage("  <h1>Plan</h1>\n")
	got, err := structuredContent(nil, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("expected text untouched, got %q", got)
	}
}
