package insights

import "github.com/devika/neuroquest/internal/llm"

// InsightsSchema defines the JSON schema for LLM insight responses.
var InsightsSchema = &llm.Schema{
	Name:        "training-insights",
	Description: "Personalized cognitive training tips based on recent quest history",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"insights": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly 3 short, encouraging tips written directly to the player",
			},
		},
		"required":             []any{"insights"},
		"additionalProperties": false,
	},
}
