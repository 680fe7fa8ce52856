package thinggen

import "github.com/abhisek/pismenka/internal/llm"

// ThingSchema is the reply shape for a batch of suggestions.
var ThingSchema = &llm.Schema{
	Name:        "thing-batch",
	Description: "Concrete nouns for a child to spell, each with a picture emoji",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"things": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The word in lower case, nominative singular",
						},
						"emoji": map[string]any{
							"type":        "string",
							"description": "A single emoji that pictures the word",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required":             []any{"word", "emoji", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"things"},
		"additionalProperties": false,
	},
}
