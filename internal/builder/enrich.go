package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/dsagen/internal/llm"
)

// variationSchema constrains enrichment output to the two sections the
// teaching template allows to vary.
var variationSchema = &llm.Schema{
	Name:        "tone-variation",
	Description: "Tone-adjusted acknowledgement and analogy for a tutoring response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"acknowledgement": map[string]any{
				"type":        "string",
				"description": "1-2 sentences acknowledging the student's emotional state",
			},
			"analogy": map[string]any{
				"type":        "string",
				"description": "1-2 sentence real-world analogy for the concept",
			},
		},
		"required":             []any{"acknowledgement", "analogy"},
		"additionalProperties": false,
	},
}

const enrichSystemPrompt = `You are a Data Structures and Algorithms tutor. You adapt the opening of a scripted lesson to the student's emotional state without changing the lesson's substance.`

// EnrichConfig holds enrichment generation settings.
type EnrichConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEnrichConfig returns sensible defaults for enrichment.
func DefaultEnrichConfig() EnrichConfig {
	return EnrichConfig{
		MaxTokens:   256,
		Temperature: 0.5,
	}
}

// Enricher rewrites the tone-sensitive sections of a teaching response
// per emotion profile. It is strictly opt-in; the historical output
// keeps those sections identical across emotions.
type Enricher struct {
	provider llm.Provider
	cfg      EnrichConfig
}

// NewEnricher creates an Enricher backed by the given provider.
func NewEnricher(provider llm.Provider, cfg EnrichConfig) *Enricher {
	return &Enricher{provider: provider, cfg: cfg}
}

type variationOutput struct {
	Acknowledgement string `json:"acknowledgement"`
	Analogy         string `json:"analogy"`
}

// Variation generates tone-adjusted acknowledgement and analogy
// sections for one topic and profile.
func (e *Enricher) Variation(ctx context.Context, title, content string, p Profile) (*teachingVariation, error) {
	req := llm.Request{
		System:      enrichSystemPrompt,
		Prompt:      buildVariationPrompt(title, content, p),
		Schema:      variationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tone variation: %w", err)
	}

	var out variationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tone variation: %w", err)
	}

	return &teachingVariation{
		Acknowledgement: out.Acknowledgement,
		Analogy:         out.Analogy,
	}, nil
}

func buildVariationPrompt(title, content string, p Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", title)
	fmt.Fprintf(&b, "Definition: %s\n", content)
	fmt.Fprintf(&b, "Student emotion: %s\n", p.Emotion)
	fmt.Fprintf(&b, "Tutor tone: %s\n", p.Tone)

	b.WriteString(`
Instructions:
Write two short sections for the opening of a tutoring response:
1. An acknowledgement (1-2 sentences) matching the tutor tone above.
2. A real-world analogy (1-2 sentences) for this specific topic.
Plain ASCII text only. Do not restate the definition.`)

	return b.String()
}
