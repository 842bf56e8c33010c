package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"simplified/internal/apperr"
	"simplified/internal/logger"
)

// GeminiGenerator generates text through the Gemini API. The client is
// created once and reused across requests.
type GeminiGenerator struct {
	client *genai.Client
	params Params
	log    *logger.Logger
}

// NewGeminiGenerator builds the provider. A missing API key is not fatal
// here: the handle is still constructed and Generate reports the provider as
// unavailable, matching startup-without-credentials behavior.
func NewGeminiGenerator(ctx context.Context, apiKey string, params Params, log *logger.Logger) (*GeminiGenerator, error) {
	g := &GeminiGenerator{params: params, log: log.With("provider", "gemini")}
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("GEMINI_API_KEY not set, generation requests will fail until configured")
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *GeminiGenerator) Name() string { return "gemini" }

func (g *GeminiGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	if g.client == nil {
		return "", apperr.New(apperr.KindProviderUnavailable, "gemini.Generate", "gemini api key is not configured")
	}

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	temp := float32(g.params.Temperature)
	config.Temperature = &temp
	topP := float32(g.params.TopP)
	config.TopP = &topP
	topK := float32(g.params.TopK)
	config.TopK = &topK
	config.MaxOutputTokens = int32(g.params.MaxOutputTokens)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	response, err := g.client.Models.GenerateContent(ctx, g.params.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate (model %s): %w", g.params.Model, err)
	}

	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
