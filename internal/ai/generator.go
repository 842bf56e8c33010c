package ai

import "context"

// Generator is a text-generation provider. One call produces one completion
// for a prompt plus optional system instruction.
type Generator interface {
	Generate(ctx context.Context, prompt, system string) (string, error)

	// Name returns the provider name (e.g. "gemini", "openai").
	Name() string
}

// Params are the generation settings shared by all providers.
type Params struct {
	Model           string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}
