package llm

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-image", "gemini-3-pro-image-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiConfig_PlanRequest(t *testing.T) {
	cfg := buildGeminiConfig(Request{
		System:         "system prompt",
		Temperature:    0.7,
		WebSearch:      true,
		ThinkingBudget: 2048,
	})

	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "system prompt" {
		t.Fatal("expected system instruction to be set")
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.7) {
		t.Fatalf("expected temperature 0.7, got %v", cfg.Temperature)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].GoogleSearch == nil {
		t.Fatalf("expected google search tool, got %+v", cfg.Tools)
	}
	if cfg.ThinkingConfig == nil || cfg.ThinkingConfig.ThinkingBudget == nil || *cfg.ThinkingConfig.ThinkingBudget != 2048 {
		t.Fatal("expected thinking budget 2048")
	}
	if cfg.MaxOutputTokens != 0 {
		t.Fatalf("expected no max tokens, got %d", cfg.MaxOutputTokens)
	}
}

func TestBuildGeminiConfig_SuggestionRequest(t *testing.T) {
	cfg := buildGeminiConfig(Request{
		Temperature: 0.7,
		Schema:      testSchema(),
	})

	if len(cfg.Tools) != 0 {
		t.Fatalf("expected no tools, got %d", len(cfg.Tools))
	}
	if cfg.ThinkingConfig != nil {
		t.Fatal("expected no thinking config")
	}
	if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
		t.Fatal("expected JSON response schema")
	}
}

func TestBuildGeminiContents_Roles(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if contents[0].Role != string(genai.RoleUser) || contents[1].Role != string(genai.RoleModel) {
		t.Fatalf("unexpected roles: %q, %q", contents[0].Role, contents[1].Role)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"reason": map[string]any{"type": "string"},
			"count":  map[string]any{"type": "integer"},
		},
		"required": []any{"modules", "reason"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["modules"].Type != genai.TypeArray {
		t.Fatalf("expected ARRAY for modules, got %s", schema.Properties["modules"].Type)
	}
	if len(schema.Properties["modules"].Items.Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["modules"].Items.Enum))
	}
	if schema.Properties["count"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER for count, got %s", schema.Properties["count"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestFirstInlineImage(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}},
			}},
		}},
	}

	img, err := firstInlineImage(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MIMEType != "image/png" || len(img.Data) != 4 {
		t.Fatalf("unexpected image: %+v", img)
	}
}

func TestFirstInlineImage_NoImage(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}},
		}},
	}

	_, err := firstInlineImage(result)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestMapGeminiError_EntityNotFound(t *testing.T) {
	err := mapGeminiError(errors.New("Error 404, Message: Requested entity was not found., Status: NOT_FOUND"))
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %T", err)
	}
}

func TestMapGeminiError_Generic(t *testing.T) {
	err := mapGeminiError(errors.New("connection reset"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
