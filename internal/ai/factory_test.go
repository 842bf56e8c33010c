package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"simplified/internal/apperr"
	"simplified/internal/config"
	"simplified/internal/logger"
)

func TestNewGeminiProviderWithoutKey(t *testing.T) {
	cfg := &config.Config{GenerationProvider: "gemini", GeminiModel: "gemini-2.5-flash"}

	gen, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	require.Equal(t, "gemini", gen.Name())

	// No key configured: the handle exists but calls report unavailability.
	_, err = gen.Generate(context.Background(), "prompt", "system")
	require.Error(t, err)
	require.Equal(t, apperr.KindProviderUnavailable, apperr.KindOf(err))
}

func TestNewOpenAIProviderWithoutKey(t *testing.T) {
	cfg := &config.Config{GenerationProvider: "openai", OpenAIModel: "gpt-4o-mini"}

	gen, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	require.Equal(t, "openai", gen.Name())

	_, err = gen.Generate(context.Background(), "prompt", "system")
	require.Error(t, err)
	require.Equal(t, apperr.KindProviderUnavailable, apperr.KindOf(err))
}

func TestNewUnsupportedProvider(t *testing.T) {
	cfg := &config.Config{GenerationProvider: "anthropic"}

	_, err := New(context.Background(), cfg, logger.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported generation provider")
}
