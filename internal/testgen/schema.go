package testgen

import "github.com/jhalilaj/my-ai/internal/jsonx"

// questionListSchema enforces the structural floor for generated
// tests: at least two well-formed questions. Per-type rules (option
// counts, answer labels) are checked after decoding.
var questionListSchema = &jsonx.Schema{
	Name: "question_list",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 2,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"type", "question", "correctAnswer"},
			"properties": map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []any{"mcq", "theory", "practical"},
				},
				"question": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"correctAnswer": map[string]any{
					"type": "string",
				},
			},
		},
	},
}
