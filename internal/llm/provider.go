// Package llm provides a minimal single-turn LLM abstraction used for
// optional record enrichment. Providers return schema-validated JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends a single prompt and returns structured JSON output.
type Provider interface {
	// Generate sends one prompt to the model. When req.Schema is set the
	// provider uses its native structured output mechanism and the
	// response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single-turn generation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds model output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, otherwise raw text.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
