package planner

import "github.com/abhisek/eduvision/internal/llm"

// SuggestionSchema is the structured output of a module suggestion.
var SuggestionSchema = &llm.Schema{
	Name:        "module-suggestion",
	Description: "Recommended visualization modules with a one-sentence reason",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":        "array",
				"description": "Recommended module ids, most useful first",
				"items": map[string]any{
					"type": "string",
					"enum": []any{"A", "B", "C", "D", "E", "F"},
				},
				"minItems": 1,
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One sentence in Traditional Chinese explaining the combination",
			},
		},
		"required":             []any{"modules", "reason"},
		"additionalProperties": false,
	},
}
