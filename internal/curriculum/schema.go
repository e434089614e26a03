package curriculum

// courseSchema defines the JSON schema for course documents. Only the
// shapes matter — nearly every field is optional, matching the loader's
// defaulting behavior. Validation exists to catch authoring mistakes
// (a string where a list belongs), not to gate generation.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"course_name": map[string]any{
			"type": "string",
		},
		"modules": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"topics": map[string]any{
						"type":  "array",
						"items": topicSchema,
					},
				},
			},
		},
	},
}

var topicSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":   map[string]any{"type": "string"},
		"content": map[string]any{"type": "string"},
		"key_points": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"code_examples": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":   map[string]any{"type": "string"},
					"output": map[string]any{"type": "string"},
				},
				"required": []any{"code"},
			},
		},
		"videos": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"youtube_url": map[string]any{"type": "string"},
				},
				"required": []any{"title", "youtube_url"},
			},
		},
	},
	"required": []any{"title"},
}
