package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"simplified/internal/apperr"
	"simplified/internal/logger"
)

// OpenAIGenerator is the alternate provider, driven through the OpenAI chat
// completion API.
type OpenAIGenerator struct {
	client *openai.Client
	params Params
	log    *logger.Logger
}

func NewOpenAIGenerator(apiKey string, params Params, log *logger.Logger) *OpenAIGenerator {
	g := &OpenAIGenerator{params: params, log: log.With("provider", "openai")}
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("OPENAI_API_KEY not set, generation requests will fail until configured")
		return g
	}
	g.client = openai.NewClient(apiKey)
	return g
}

func (g *OpenAIGenerator) Name() string { return "openai" }

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	if g.client == nil {
		return "", apperr.New(apperr.KindProviderUnavailable, "openai.Generate", "openai api key is not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.params.Model,
		Messages:    messages,
		Temperature: float32(g.params.Temperature),
		TopP:        float32(g.params.TopP),
		MaxTokens:   g.params.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai generate (model %s): %w", g.params.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai returned an empty response")
	}
	return text, nil
}
