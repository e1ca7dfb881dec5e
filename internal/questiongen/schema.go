package questiongen

import "github.com/acarerdinc/relevia/internal/llm"

// QuestionSchema defines the JSON schema for question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "topic-question",
	Description: "A single multiple-choice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 options, one of which is correct",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The full text of the correct option, matching one entry in options exactly",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right and the others are wrong",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Self-assessed difficulty from 1 (easy) to 10 (hard)",
			},
		},
		"required":             []any{"question_text", "options", "correct_answer", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}

// SubtopicListSchema defines the JSON schema for subtopic generation
// responses.
var SubtopicListSchema = &llm.Schema{
	Name:        "subtopic-list",
	Description: "A mutually exclusive, collectively exhaustive breakdown of a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subtopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short display name of the subdivision",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What this subdivision covers",
						},
						"difficulty_min": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 10,
						},
						"difficulty_max": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 10,
						},
					},
					"required":             []any{"name", "description", "difficulty_min", "difficulty_max"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"subtopics"},
		"additionalProperties": false,
	},
}
