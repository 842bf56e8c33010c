package ai

import (
	"context"
	"fmt"

	"simplified/internal/config"
	"simplified/internal/logger"
)

// New creates the configured text-generation provider.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (Generator, error) {
	switch cfg.GenerationProvider {
	case "gemini":
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, Params{
			Model:           cfg.GeminiModel,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			TopK:            cfg.TopK,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}, log)
	case "openai":
		return NewOpenAIGenerator(cfg.OpenAIKey, Params{
			Model:           cfg.OpenAIModel,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}, log), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s (supported: gemini, openai)", cfg.GenerationProvider)
	}
}
